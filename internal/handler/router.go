package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	gearHandler *api.GearHandler,
	bookingHandler *api.BookingHandler,
	trustHandler *api.TrustHandler,
	reviewHandler *api.ReviewHandler,
	messageHandler *api.MessageHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, gearHandler, bookingHandler, trustHandler, reviewHandler, messageHandler, dashboardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	gearHandler *api.GearHandler,
	bookingHandler *api.BookingHandler,
	trustHandler *api.TrustHandler,
	reviewHandler *api.ReviewHandler,
	messageHandler *api.MessageHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		gear := apiGroup.Group("/gear")
		{
			addRoutes(gear, []route{
				{Method: http.MethodGet, Path: "", Handler: gearHandler.ListGear},
				{Method: http.MethodGet, Path: "/:id", Handler: gearHandler.GetGear},
				{Method: http.MethodGet, Path: "/:id/check-availability", Handler: bookingHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/blocked-dates", Handler: bookingHandler.BlockedDates},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListGearReviews},
			})

			gearRequired := gear.Group("")
			gearRequired.Use(authMiddleware.RequireAuth())
			addRoutes(gearRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: gearHandler.CreateGear},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListGearBookings},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: messageHandler.SendMessage},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: messageHandler.ListGearMessages},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateBookingStatus},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me/trust-info", Handler: trustHandler.GetTrustInfo},
				{Method: http.MethodGet, Path: "/me/dashboard", Handler: dashboardHandler.GetOwnerDashboard},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(messages, []route{
				{Method: http.MethodGet, Path: "", Handler: messageHandler.ListConversations},
				{Method: http.MethodGet, Path: "/unread-count", Handler: messageHandler.UnreadCount},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: messageHandler.MarkRead},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.CreateReview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package api

import (
	"net/http"

	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Owner dashboard
// @Description Booking and earnings aggregates across the caller's listings
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerDashboardResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/dashboard [get]
func (h *DashboardHandler) GetOwnerDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	view, err := h.dashboardQueries.OwnerDashboard(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOwnerDashboardView(view))
}

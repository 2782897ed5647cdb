package api

import (
	"errors"
	"net/http"

	"gearshare/internal/domain/gear"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GearHandler struct {
	gearCommands commands.GearCommands
	gearQueries  queries.GearQueries
}

func NewGearHandler(gearCommands commands.GearCommands, gearQueries queries.GearQueries) *GearHandler {
	return &GearHandler{
		gearCommands: gearCommands,
		gearQueries:  gearQueries,
	}
}

// @Summary List gear
// @Description List available gear, optionally filtered by category
// @Tags gear
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.GearResponse
// @Failure 400 {object} map[string]string
// @Router /gear [get]
func (h *GearHandler) ListGear(c *gin.Context) {
	var category *gear.Category
	if raw := c.Query("category"); raw != "" {
		parsed, err := gear.NewCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category",
			})
			return
		}
		category = &parsed
	}

	views, err := h.gearQueries.ListAvailable(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGearViews(views))
}

// @Summary Get gear
// @Description Get a gear listing by ID
// @Tags gear
// @Produce json
// @Param id path string true "Gear ID"
// @Success 200 {object} resdto.GearResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gear/{id} [get]
func (h *GearHandler) GetGear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid gear ID format",
		})
		return
	}

	view, err := h.gearQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGearNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gear not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGearView(view))
}

// @Summary Create gear
// @Description List a new piece of gear
// @Tags gear
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGearRequest true "Gear listing"
// @Success 201 {object} resdto.GearResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /gear [post]
func (h *GearHandler) CreateGear(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateGearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.gearCommands.CreateGear(c.Request.Context(), commands.CreateGearRequest{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		DailyPriceCents: req.DailyPriceCents,
		Location:        req.Location,
	}, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotAnOwnerAccount):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only owner accounts can list gear",
			})
		case errors.Is(err, gear.ErrInvalidCategory),
			errors.Is(err, gear.ErrEmptyName),
			errors.Is(err, gear.ErrEmptyDescription),
			errors.Is(err, gear.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGearView(view))
}

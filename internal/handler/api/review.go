package api

import (
	"errors"
	"net/http"

	"gearshare/internal/domain/review"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary List reviews
// @Description List reviews for a gear listing
// @Tags reviews
// @Produce json
// @Param id path string true "Gear ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /gear/{id}/reviews [get]
func (h *ReviewHandler) ListGearReviews(c *gin.Context) {
	gearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gear ID format", nil)
		return
	}

	views, err := h.reviewQueries.ListByGear(c.Request.Context(), gearID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReviewView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create review
// @Description Review a completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, renterID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the booking's renter may review it", nil)
		case errors.Is(err, errs.ErrBookingNotReviewable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Only completed bookings can be reviewed", nil)
		case errors.Is(err, errs.ErrReviewAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already has a review", nil)
		case errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrEmptyComment),
			errors.Is(err, review.ErrCommentTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{
		ReviewID: result.ReviewID,
		GearID:   result.GearID,
	})
}

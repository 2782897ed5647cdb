package api

import (
	"errors"
	"net/http"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TrustHandler struct {
	trustQueries queries.TrustQueries
}

func NewTrustHandler(trustQueries queries.TrustQueries) *TrustHandler {
	return &TrustHandler{
		trustQueries: trustQueries,
	}
}

// @Summary Trust info
// @Description Get the authenticated user's trust standing and progression
// @Tags trust
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.TrustSnapshot
// @Failure 401 {object} httperr.Response
// @Router /users/me/trust-info [get]
func (h *TrustHandler) GetTrustInfo(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	snapshot, err := h.trustQueries.Snapshot(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

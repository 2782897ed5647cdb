//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gearshare/internal/handler/api"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrustHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTrustQueries
	handler     *api.TrustHandler
	actorID     uuid.UUID
}

func (s *TrustHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTrustQueries(s.mockCtrl)
	s.handler = api.NewTrustHandler(s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.GET("/users/me/trust-info", authMiddleware, s.handler.GetTrustInfo)
}

func (s *TrustHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrustHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrustHandlerTestSuite))
}

// ================================================================================
// TestGetTrustInfo
// ================================================================================

func (s *TrustHandlerTestSuite) TestGetTrustInfo() {
	url := "/users/me/trust-info"

	s.Run("success: returns the trust snapshot", func() {
		maxDaily := int64(200_00)
		next := "silver"
		remaining := 2
		snapshot := &queries.TrustSnapshot{
			Tier:               "bronze",
			TierLabel:          "Bronze Renter",
			CompletedRentals:   2,
			MaxDailyPriceCents: &maxDaily,
			NextTier:           &next,
			RentalsToNextTier:  &remaining,
		}
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), s.actorID).
			Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.TrustSnapshot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("bronze", response.Tier)
		s.Equal(2, response.CompletedRentals)
		s.Require().NotNil(response.MaxDailyPriceCents)
		s.Equal(int64(200_00), *response.MaxDailyPriceCents)
		s.Require().NotNil(response.NextTier)
		s.Equal("silver", *response.NextTier)
	})

	s.Run("success: omits cap and next tier for gold renters", func() {
		snapshot := &queries.TrustSnapshot{
			Tier:             "gold",
			TierLabel:        "Gold Renter",
			CompletedRentals: 14,
		}
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), s.actorID).
			Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("gold", response["trust_level"])
		s.NotContains(response, "max_daily_price_cents")
		s.NotContains(response, "next_tier")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 404 Not Found for a deleted account", func() {
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), s.actorID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Snapshot(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

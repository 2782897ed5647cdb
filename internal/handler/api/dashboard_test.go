//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gearshare/internal/handler/api"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
	handler     *api.DashboardHandler
	actorID     uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewDashboardHandler(s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.GET("/users/me/dashboard", authMiddleware, s.handler.GetOwnerDashboard)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestGetOwnerDashboard() {
	url := "/users/me/dashboard"

	s.Run("success: returns the aggregated dashboard", func() {
		gearID := uuid.New()
		view := &queries.OwnerDashboardView{
			TotalGear:            2,
			TotalBookings:        6,
			TotalEarningsCents:   88_00,
			PendingEarningsCents: 66_00,
			ActiveRentals:        1,
			CompletedRentals:     3,
			AverageRating:        4.5,
			TotalReviews:         3,
			GearPerformance: []*queries.GearPerformanceView{
				{
					GearID:            gearID,
					GearName:          "Trail Bike",
					TotalBookings:     5,
					CompletedBookings: 3,
					EarningsCents:     88_00,
					AverageRating:     4.5,
					DailyPriceCents:   45_00,
				},
			},
		}
		s.mockQueries.EXPECT().OwnerDashboard(gomock.Any(), s.actorID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OwnerDashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.TotalGear)
		s.Equal(int64(88_00), response.TotalEarningsCents)
		s.Equal(int64(66_00), response.PendingEarningsCents)
		s.InDelta(4.5, response.AverageRating, 0.001)
		s.Require().Len(response.GearPerformance, 1)
		s.Equal(gearID, response.GearPerformance[0].GearID)
		s.Equal("Trail Bike", response.GearPerformance[0].GearName)
	})

	s.Run("success: empty dashboard for a user with no listings", func() {
		s.mockQueries.EXPECT().OwnerDashboard(gomock.Any(), s.actorID).
			Return(&queries.OwnerDashboardView{GearPerformance: []*queries.GearPerformanceView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OwnerDashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.TotalGear)
		s.Empty(response.GearPerformance)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().OwnerDashboard(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"gearshare/internal/domain/review"
	"gearshare/internal/handler/api"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.CreateReview)
	s.router.GET("/gear/:id/reviews", s.handler.ListGearReviews)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestCreateReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	url := "/reviews"

	bookingID := uuid.New()
	reqBody := map[string]any{
		"booking_id": bookingID.String(),
		"rating":     5,
		"comment":    "Bike was in great shape, smooth handoff.",
	}

	s.Run("success: returns 201 Created with review and gear IDs", func() {
		result := &commands.CreateReviewResult{ReviewID: uuid.New(), GearID: uuid.New()}
		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), commands.CreateReviewRequest{
				BookingID: bookingID,
				Rating:    5,
				Comment:   "Bike was in great shape, smooth handoff.",
			}, s.actorID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.ReviewID, response.ReviewID)
		s.Equal(result.GearID, response.GearID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "rating below 1", mutate: testutil.Field("rating", 0)},
			{name: "rating above 5", mutate: testutil.Field("rating", 6)},
			{name: "missing comment", mutate: testutil.Field("comment", nil)},
			{name: "comment over 1000 chars", mutate: testutil.Field("comment", strings.Repeat("a", 1001))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "actor is not the renter",
				commandsError:  errs.ErrUnauthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "renter",
			},
			{
				name:           "booking not completed",
				commandsError:  errs.ErrBookingNotReviewable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "completed",
			},
			{
				name:           "duplicate review",
				commandsError:  errs.ErrReviewAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already has a review",
			},
			{
				name:           "domain rejects the comment",
				commandsError:  review.ErrEmptyComment,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateReview(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListGearReviews
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListGearReviews() {
	gearID := uuid.New()
	url := "/gear/" + gearID.String() + "/reviews"

	s.Run("success: returns reviews newest first", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
				b.GearID = gearID
			}).BuildView(),
			builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
				b.GearID = gearID
				b.Rating = 3
				b.Comment = "Chain needed oil but otherwise fine."
			}).BuildView(),
		}
		s.mockQueries.EXPECT().ListByGear(gomock.Any(), gearID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(int32(5), response[0].Rating)
		s.Equal(int32(3), response[1].Rating)
	})

	s.Run("success: empty list for unreviewed gear", func() {
		s.mockQueries.EXPECT().ListByGear(gomock.Any(), gearID).
			Return([]*queries.ReviewView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gear/not-a-uuid/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid gear ID")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByGear(gomock.Any(), gearID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

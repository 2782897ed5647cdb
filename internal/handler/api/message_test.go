//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"gearshare/internal/domain/message"
	"gearshare/internal/handler/api"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMessageCommands
	mockQueries  *queriesmock.MockMessageQueries
	handler      *api.MessageHandler
	actorID      uuid.UUID
}

func (s *MessageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMessageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMessageQueries(s.mockCtrl)
	s.handler = api.NewMessageHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.POST("/gear/:id/messages", authMiddleware, s.handler.SendMessage)
	s.router.GET("/gear/:id/messages", authMiddleware, s.handler.ListGearMessages)
	s.router.GET("/messages", authMiddleware, s.handler.ListConversations)
	s.router.GET("/messages/unread-count", authMiddleware, s.handler.UnreadCount)
	s.router.PATCH("/messages/:id/read", authMiddleware, s.handler.MarkRead)
}

func (s *MessageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessageHandlerSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}

// ================================================================================
// TestSendMessage
// ================================================================================

func (s *MessageHandlerTestSuite) TestSendMessage() {
	gearID := uuid.New()
	url := "/gear/" + gearID.String() + "/messages"
	reqBody := map[string]any{
		"message": "Is the tent free over Labor Day weekend?",
	}

	s.Run("success: returns 201 Created with the stored message", func() {
		view := &queries.MessageView{
			ID:           uuid.New(),
			GearID:       gearID,
			SenderID:     s.actorID,
			SenderName:   "Riko Tanaka",
			ReceiverID:   uuid.New(),
			ReceiverName: "Ann Baker",
			Body:         "Is the tent free over Labor Day weekend?",
		}
		s.mockCommands.EXPECT().
			SendMessage(gomock.Any(), commands.SendMessageRequest{
				GearID: gearID,
				Body:   "Is the tent free over Labor Day weekend?",
			}, s.actorID).
			Return(&commands.SendMessageResult{Message: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Ann Baker", response.ReceiverName)
		s.Equal(view.Body, response.Message)
		s.Empty(response.Warning)
	})

	s.Run("success: surfaces a notification warning", func() {
		view := &queries.MessageView{ID: uuid.New(), GearID: gearID, SenderID: s.actorID}
		s.mockCommands.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), s.actorID).
			Return(&commands.SendMessageResult{
				Message: view,
				Warning: "message sent but notification email failed",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("message sent but notification email failed", response.Warning)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing message", mutate: testutil.Field("message", nil)},
			{name: "message over 2000 chars", mutate: testutil.Field("message", strings.Repeat("a", 2001))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Message is required")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid gear UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/gear/not-a-uuid/messages", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid gear ID")
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
				name:           "gear not found",
				commandsError:  errs.ErrGearNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Gear not found",
			},
			{
				name:           "owner messaging own listing",
				commandsError:  message.ErrSelfMessage,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "yourself",
			},
			{
				name:           "body empty after trimming",
				commandsError:  message.ErrEmptyBody,
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
					SendMessage(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListGearMessages
// ================================================================================

func (s *MessageHandlerTestSuite) TestListGearMessages() {
	gearID := uuid.New()
	url := "/gear/" + gearID.String() + "/messages"

	s.Run("success: returns the thread and marks it read", func() {
		views := []*queries.MessageView{
			{ID: uuid.New(), GearID: gearID, SenderID: s.actorID, Body: "Does it come with poles?"},
			{ID: uuid.New(), GearID: gearID, ReceiverID: s.actorID, Body: "Poles and footprint included."},
		}
		s.mockQueries.EXPECT().ListForGear(gomock.Any(), gearID, s.actorID).
			Return(views, nil).Times(1)
		s.mockCommands.EXPECT().MarkConversationRead(gomock.Any(), gearID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Does it come with poles?", response[0].Message)
	})

	s.Run("success: a mark-read failure never fails the fetch", func() {
		s.mockQueries.EXPECT().ListForGear(gomock.Any(), gearID, s.actorID).
			Return([]*queries.MessageView{}, nil).Times(1)
		s.mockCommands.EXPECT().MarkConversationRead(gomock.Any(), gearID, s.actorID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 404 Not Found for unknown gear", func() {
		s.mockQueries.EXPECT().ListForGear(gomock.Any(), gearID, s.actorID).
			Return(nil, errs.ErrGearNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Gear not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gear/not-a-uuid/messages", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid gear ID")
	})
}

// ================================================================================
// TestListConversations
// ================================================================================

func (s *MessageHandlerTestSuite) TestListConversations() {
	url := "/messages"

	s.Run("success: returns conversations with unread counts", func() {
		views := []*queries.ConversationView{
			{
				GearID:      uuid.New(),
				GearName:    "Trail Bike",
				PartnerID:   uuid.New(),
				PartnerName: "Ann Baker",
				LastMessage: "Helmet is included.",
				UnreadCount: 2,
			},
		}
		s.mockQueries.EXPECT().ListConversations(gomock.Any(), s.actorID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ConversationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Trail Bike", response[0].GearName)
		s.Equal(2, response[0].UnreadCount)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListConversations(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUnreadCount
// ================================================================================

func (s *MessageHandlerTestSuite) TestUnreadCount() {
	url := "/messages/unread-count"

	s.Run("success: returns the count", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.actorID).
			Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.UnreadCount)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestMarkRead
// ================================================================================

func (s *MessageHandlerTestSuite) TestMarkRead() {
	messageID := uuid.New()
	url := "/messages/" + messageID.String() + "/read"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().MarkMessageRead(gomock.Any(), messageID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Message marked as read", response["message"])
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/messages/not-a-uuid/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid message ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "message not found",
				commandsError:  errs.ErrMessageNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Message not found",
			},
			{
				name:           "actor is not the recipient",
				commandsError:  errs.ErrNotMessageRecipient,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "recipient",
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
				s.mockCommands.EXPECT().MarkMessageRead(gomock.Any(), messageID, s.actorID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"gearshare/internal/domain/message"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageCommands commands.MessageCommands
	messageQueries  queries.MessageQueries
}

func NewMessageHandler(messageCommands commands.MessageCommands, messageQueries queries.MessageQueries) *MessageHandler {
	return &MessageHandler{
		messageCommands: messageCommands,
		messageQueries:  messageQueries,
	}
}

// @Summary Send message
// @Description Message a gear listing's owner
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gear ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gear/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	gearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid gear ID format",
		})
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Message is required",
		})
		return
	}

	result, err := h.messageCommands.SendMessage(c.Request.Context(), commands.SendMessageRequest{
		GearID: gearID,
		Body:   req.Message,
	}, senderID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGearNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gear not found",
			})
		case errors.Is(err, message.ErrSelfMessage),
			errors.Is(err, message.ErrEmptyBody),
			errors.Is(err, message.ErrBodyTooLong):
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

	c.JSON(http.StatusCreated, resdto.FromMessageView(result.Message, result.Warning))
}

// @Summary List gear messages
// @Description The caller's conversation on a listing, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gear ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gear/{id}/messages [get]
func (h *MessageHandler) ListGearMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	gearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid gear ID format",
		})
		return
	}

	views, err := h.messageQueries.ListForGear(c.Request.Context(), gearID, userID)
	if err != nil {
		if errors.Is(err, errs.ErrGearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gear not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Opening the thread counts as reading it. A failure here never fails
	// the fetch.
	if markErr := h.messageCommands.MarkConversationRead(c.Request.Context(), gearID, userID); markErr != nil {
		slog.Warn("failed to mark conversation read", "gear_id", gearID, "error", markErr)
	}

	response := make([]*resdto.MessageResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromMessageView(v, "")
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List conversations
// @Description The caller's conversations, most recent first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConversationResponse
// @Failure 401 {object} map[string]string
// @Router /messages [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.messageQueries.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ConversationResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromConversationView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Unread count
// @Description How many messages the caller has not read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Failure 401 {object} map[string]string
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	count, err := h.messageQueries.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.UnreadCountResponse{UnreadCount: count})
}

// @Summary Mark message read
// @Description Mark a received message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message ID format",
		})
		return
	}

	if err := h.messageCommands.MarkMessageRead(c.Request.Context(), messageID, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Message not found",
			})
		case errors.Is(err, errs.ErrNotMessageRecipient):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the recipient may mark a message read",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message marked as read",
	})
}

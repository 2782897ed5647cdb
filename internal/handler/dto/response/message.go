package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID           uuid.UUID `json:"id"`
	GearID       uuid.UUID `json:"gear_id"`
	SenderID     uuid.UUID `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
	Warning      string    `json:"warning,omitempty"`
}

func FromMessageView(v *queries.MessageView, warning string) *MessageResponse {
	return &MessageResponse{
		ID:           v.ID,
		GearID:       v.GearID,
		SenderID:     v.SenderID,
		SenderName:   v.SenderName,
		ReceiverID:   v.ReceiverID,
		ReceiverName: v.ReceiverName,
		Message:      v.Body,
		IsRead:       v.IsRead,
		CreatedAt:    v.CreatedAt,
		Warning:      warning,
	}
}

type ConversationResponse struct {
	GearID        uuid.UUID `json:"gear_id"`
	GearName      string    `json:"gear_name"`
	PartnerID     uuid.UUID `json:"partner_id"`
	PartnerName   string    `json:"partner_name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_time"`
	UnreadCount   int       `json:"unread_count"`
}

func FromConversationView(v *queries.ConversationView) *ConversationResponse {
	return &ConversationResponse{
		GearID:        v.GearID,
		GearName:      v.GearName,
		PartnerID:     v.PartnerID,
		PartnerName:   v.PartnerName,
		LastMessage:   v.LastMessage,
		LastMessageAt: v.LastMessageAt,
		UnreadCount:   v.UnreadCount,
	}
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

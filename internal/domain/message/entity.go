package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBody   = errors.New("message cannot be empty")
	ErrBodyTooLong = errors.New("message exceeds maximum length")
	ErrSelfMessage = errors.New("cannot send a message to yourself")
)

const maxBodyLength = 2000

// Message is a note from a prospective renter to a gear owner, threaded by
// listing. The receiver is always the listing's owner; owners answer out of
// band or on their own listings.
type Message struct {
	id         uuid.UUID
	gearID     uuid.UUID
	senderID   uuid.UUID
	receiverID uuid.UUID
	body       string
	isRead     bool
	createdAt  time.Time
}

func NewMessage(gearID, senderID, receiverID uuid.UUID, body string) (*Message, error) {
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if len(body) > maxBodyLength {
		return nil, ErrBodyTooLong
	}
	return &Message{
		id:         uuid.New(),
		gearID:     gearID,
		senderID:   senderID,
		receiverID: receiverID,
		body:       body,
	}, nil
}

func (m *Message) ID() uuid.UUID         { return m.id }
func (m *Message) GearID() uuid.UUID     { return m.gearID }
func (m *Message) SenderID() uuid.UUID   { return m.senderID }
func (m *Message) ReceiverID() uuid.UUID { return m.receiverID }
func (m *Message) Body() string          { return m.body }
func (m *Message) IsRead() bool          { return m.isRead }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }

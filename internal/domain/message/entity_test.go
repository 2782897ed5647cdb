//go:build unit

package message_test

import (
	"strings"
	"testing"

	"gearshare/internal/domain/message"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	gearID, senderID, receiverID := uuid.New(), uuid.New(), uuid.New()

	t.Run("valid message", func(t *testing.T) {
		m, err := message.NewMessage(gearID, senderID, receiverID, "Is the kayak free next weekend?")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, m.ID())
		assert.Equal(t, gearID, m.GearID())
		assert.Equal(t, senderID, m.SenderID())
		assert.Equal(t, receiverID, m.ReceiverID())
		assert.Equal(t, "Is the kayak free next weekend?", m.Body())
		assert.False(t, m.IsRead())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		m, err := message.NewMessage(gearID, senderID, receiverID, "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", m.Body())
	})

	t.Run("sender and receiver must differ", func(t *testing.T) {
		_, err := message.NewMessage(gearID, senderID, senderID, "talking to myself")
		assert.ErrorIs(t, err, message.ErrSelfMessage)
	})

	t.Run("empty after trimming is rejected", func(t *testing.T) {
		_, err := message.NewMessage(gearID, senderID, receiverID, "   ")
		assert.ErrorIs(t, err, message.ErrEmptyBody)
	})

	t.Run("length is capped at 2000", func(t *testing.T) {
		_, err := message.NewMessage(gearID, senderID, receiverID, strings.Repeat("a", 2000))
		assert.NoError(t, err)

		_, err = message.NewMessage(gearID, senderID, receiverID, strings.Repeat("a", 2001))
		assert.ErrorIs(t, err, message.ErrBodyTooLong)
	})
}

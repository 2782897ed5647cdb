package repository

import (
	"context"

	"gearshare/internal/domain/message"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
)

const createMessageSQL = `
INSERT INTO messages (
    id, gear_id, sender_id, receiver_id, body, is_read
) VALUES ($1, $2, $3, $4, $5, false)`

const findMessageByIDSQL = `
SELECT id, gear_id, sender_id, receiver_id, is_read
FROM messages
WHERE id = $1`

const markMessageReadSQL = `
UPDATE messages
SET is_read = true
WHERE id = $1`

const markConversationReadSQL = `
UPDATE messages
SET is_read = true
WHERE gear_id = $1 AND receiver_id = $2 AND NOT is_read`

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, tx db.DBTX, m *message.Message) error {
	_, err := tx.Exec(ctx, createMessageSQL,
		m.ID(),
		m.GearID(),
		m.SenderID(),
		m.ReceiverID(),
		m.Body(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create message", err)
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.MessageSnapshot, error) {
	var snap commands.MessageSnapshot
	err := dbtx.QueryRow(ctx, findMessageByIDSQL, id).Scan(
		&snap.ID,
		&snap.GearID,
		&snap.SenderID,
		&snap.ReceiverID,
		&snap.IsRead,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find message", err)
	}
	return &snap, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, markMessageReadSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark message read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, tx db.DBTX, gearID, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, markConversationReadSQL, gearID, userID); err != nil {
		return infra.WrapRepoErr("failed to mark conversation read", err)
	}
	return nil
}

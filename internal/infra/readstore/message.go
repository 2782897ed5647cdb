package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findMessagesForGearSQL = `
SELECT m.id, m.gear_id,
       m.sender_id, su.first_name || ' ' || su.last_name AS sender_name,
       m.receiver_id, ru.first_name || ' ' || ru.last_name AS receiver_name,
       m.body, m.is_read, m.created_at
FROM messages m
JOIN users su ON su.id = m.sender_id
JOIN users ru ON ru.id = m.receiver_id
WHERE m.gear_id = $1
  AND (m.sender_id = $2 OR m.receiver_id = $2)
ORDER BY m.created_at ASC`

// One row per (gear, partner) pair: the latest message, with how many of the
// partner's messages on that gear the user has not read yet.
const findConversationsSQL = `
SELECT c.* FROM (
    SELECT DISTINCT ON (m.gear_id, partner.id)
           m.gear_id,
           g.name AS gear_name,
           partner.id AS partner_id,
           partner.first_name || ' ' || partner.last_name AS partner_name,
           m.body,
           m.created_at,
           (SELECT count(*) FROM messages u
             WHERE u.gear_id = m.gear_id
               AND u.receiver_id = $1
               AND u.sender_id = partner.id
               AND NOT u.is_read) AS unread_count
    FROM messages m
    JOIN gear g ON g.id = m.gear_id
    JOIN users partner
      ON partner.id = CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END
    WHERE m.sender_id = $1 OR m.receiver_id = $1
    ORDER BY m.gear_id, partner.id, m.created_at DESC
) c
ORDER BY c.created_at DESC`

const countUnreadMessagesSQL = `
SELECT count(*)
FROM messages
WHERE receiver_id = $1 AND NOT is_read`

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

func (r *MessageReadStore) FindForGear(ctx context.Context, gearID, userID uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := r.db.Query(ctx, findMessagesForGearSQL, gearID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	var views []*queries.MessageView
	for rows.Next() {
		var (
			view    queries.MessageView
			created pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.GearID,
			&view.SenderID, &view.SenderName,
			&view.ReceiverID, &view.ReceiverName,
			&view.Body, &view.IsRead, &created,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(created)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message rows", err)
	}
	return views, nil
}

func (r *MessageReadStore) FindConversations(ctx context.Context, userID uuid.UUID) ([]*queries.ConversationView, error) {
	rows, err := r.db.Query(ctx, findConversationsSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}
	defer rows.Close()

	var views []*queries.ConversationView
	for rows.Next() {
		var (
			view    queries.ConversationView
			created pgtype.Timestamptz
			unread  int64
		)
		if err := rows.Scan(
			&view.GearID, &view.GearName,
			&view.PartnerID, &view.PartnerName,
			&view.LastMessage, &created, &unread,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conversation row", err)
		}
		view.LastMessageAt = pgconv.TimeFromPgtype(created)
		view.UnreadCount = int(unread)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conversation rows", err)
	}
	return views, nil
}

func (r *MessageReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countUnreadMessagesSQL, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread messages", err)
	}
	return int(count), nil
}

package repository

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/commands"

	"github.com/google/uuid"
)

const createPaymentSQL = `
INSERT INTO payments (
    id, booking_id, payment_type, amount_cents, provider_intent_id, status
) VALUES ($1, $2, $3, $4, $5, 'pending')`

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) CreatePending(ctx context.Context, tx db.DBTX, rec commands.PaymentRecord) error {
	_, err := tx.Exec(ctx, createPaymentSQL,
		uuid.New(),
		rec.BookingID,
		rec.PaymentType,
		rec.AmountCents,
		rec.ProviderIntentID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment record", err)
	}
	return nil
}

//go:build integration

package dbtest

import (
	"context"
	"testing"

	"gearshare/internal/infra/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, dbtx db.DBTX, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := dbtx.Exec(context.Background(), `
		INSERT INTO users (id, email, password_hash, first_name, last_name, account_type)
		VALUES ($1, $2, $3, 'Test', 'User', 'both')`,
		userID, email, testPasswordHash)
	require.NoError(t, err)
	return userID
}

func CreateTestGear(t *testing.T, dbtx db.DBTX, ownerID uuid.UUID, name string, dailyPriceCents int64) uuid.UUID {
	t.Helper()

	gearID := uuid.New()
	_, err := dbtx.Exec(context.Background(), `
		INSERT INTO gear (id, owner_id, name, description, category, daily_price_cents, location)
		VALUES ($1, $2, $3, 'Well maintained', 'camping', $4, 'Boulder, CO')`,
		gearID, ownerID, name, dailyPriceCents)
	require.NoError(t, err)
	return gearID
}

package shared

import (
	"context"

	"gearshare/internal/infra/db"
)

type UnitOfWork interface {
	// Within: write transaction (read committed) with retry on
	// serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

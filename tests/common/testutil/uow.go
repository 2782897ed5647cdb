//go:build unit

package testutil

import (
	"context"

	"gearshare/internal/infra/db"
)

// StubUnitOfWork runs the callback directly with a nil DBTX. Repository
// collaborators are mocked in unit tests, so no real transaction exists.
type StubUnitOfWork struct {
	// WithinErr replaces the callback's result when set.
	WithinErr error
	// WithDBErr replaces the callback's result when set.
	WithDBErr error
}

func (s *StubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	return fn(ctx, nil)
}

func (s *StubUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	if s.WithDBErr != nil {
		return s.WithDBErr
	}
	return fn(ctx, nil)
}

package aiusage

import (
	"context"

	"mrtbot/internal/types"
)

// QuotaStore is the persistence slice the service needs.
type QuotaStore interface {
	UseCall(ctx context.Context, userID types.ID) error
	EnsureUser(ctx context.Context, userID types.ID) error
}

// Service guards the generative fallback with a per-user monthly allowance.
type Service struct {
	store QuotaStore
}

// NewService creates a Service backed by the given store.
func NewService(store QuotaStore) *Service {
	return &Service{store: store}
}

// UseCall deducts one fallback call from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the call is
// immediately consumed. Returns ErrQuotaExhausted when the month's
// allowance is gone.
func (s *Service) UseCall(ctx context.Context, userID types.ID) error {
	err := s.store.UseCall(ctx, userID)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.UseCall(ctx, userID)
}

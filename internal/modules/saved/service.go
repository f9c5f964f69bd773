// README: Saved-list service; resolves stored IDs against the shop cache.
package saved

import (
	"context"

	"mrtbot/internal/modules/shop"
	"mrtbot/internal/types"
)

// ListStore is the persistence slice the service needs.
type ListStore interface {
	Add(ctx context.Context, userID types.ID, list ListType, shopID types.ID) error
	ListIDs(ctx context.Context, userID types.ID, list ListType) ([]types.ID, error)
}

// ShopResolver resolves cached shop records by ID.
type ShopResolver interface {
	GetMany(ctx context.Context, ids []types.ID) ([]shop.Shop, error)
}

type Service struct {
	store ListStore
	shops ShopResolver
}

func NewService(store ListStore, shops ShopResolver) *Service {
	return &Service{store: store, shops: shops}
}

func (s *Service) Add(ctx context.Context, userID types.ID, list ListType, shopID types.ID) error {
	if userID == "" || shopID == "" {
		return ErrBadRequest
	}
	return s.store.Add(ctx, userID, list, shopID)
}

// List returns the resolved shop records for a saved list, ordered by save
// time descending. Shops evicted from the cache are dropped from the view,
// matching the pagination engine's missing-entry policy.
func (s *Service) List(ctx context.Context, userID types.ID, list ListType) ([]shop.Shop, error) {
	ids, err := s.store.ListIDs(ctx, userID, list)
	if err != nil {
		return nil, err
	}
	return s.shops.GetMany(ctx, ids)
}

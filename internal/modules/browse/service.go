// README: Pagination engine; windows a frozen search result set page by page.
package browse

import (
	"context"
	"errors"
	"log"

	"mrtbot/internal/modules/session"
	"mrtbot/internal/modules/shop"
	"mrtbot/internal/types"
)

// PageSize is the number of shops per page. It is also the carousel card
// cap, enforced here rather than in the renderer.
const PageSize = 5

// ErrNoSession mirrors the store condition: page-advance without a prior search.
var ErrNoSession = session.ErrNoSession

// ErrExhausted means every page of the current session has been shown.
// The cursor is left untouched, so repeated advances keep landing here.
var ErrExhausted = errors.New("results exhausted")

// SessionStore is the slice of the session store the engine needs.
type SessionStore interface {
	Get(ctx context.Context, userID types.ID) (session.Record, error)
	AdvanceCursor(ctx context.Context, userID types.ID, newCursor int) error
}

// ShopResolver resolves cached shop records by ID, dropping misses.
type ShopResolver interface {
	GetMany(ctx context.Context, ids []types.ID) ([]shop.Shop, error)
}

// Page is a derived view: one window of resolved shops plus whether more
// identifiers remain beyond it. A page may hold fewer than PageSize shops
// (or none) when cache entries have gone missing; that is still a valid page.
type Page struct {
	Shops   []shop.Shop
	HasNext bool
}

type Service struct {
	sessions SessionStore
	shops    ShopResolver
}

func NewService(sessions SessionStore, shops ShopResolver) *Service {
	return &Service{sessions: sessions, shops: shops}
}

// FirstPage windows a fresh result set for the initial reply. Pure: the
// session record already stores cursor 1 ("page one shown") for this set.
func FirstPage(results []shop.Shop) Page {
	if len(results) <= PageSize {
		return Page{Shops: results}
	}
	return Page{Shops: results[:PageSize], HasNext: true}
}

// NextPage serves the next unseen window of the user's current session.
//
// The cursor counts pages already shown, so the next window starts at
// cursor*PageSize. Identifier order was frozen at search time and is never
// re-sorted here; identifiers missing from the cache are dropped from the
// page without error. The cursor is persisted after the page is composed:
// if that write fails the user may see the same page twice, which is
// harmless and idempotent.
func (s *Service) NextPage(ctx context.Context, userID types.ID) (Page, error) {
	rec, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return Page{}, err
	}

	start := rec.Cursor * PageSize
	if start >= len(rec.PlaceIDs) {
		return Page{}, ErrExhausted
	}

	end := start + PageSize
	if end > len(rec.PlaceIDs) {
		end = len(rec.PlaceIDs)
	}

	shops, err := s.shops.GetMany(ctx, rec.PlaceIDs[start:end])
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Shops:   shops,
		HasNext: len(rec.PlaceIDs) > start+PageSize,
	}

	if err := s.sessions.AdvanceCursor(ctx, userID, rec.Cursor+1); err != nil {
		// The page is already composed; a lost advance only re-serves it.
		log.Printf("browse: advance cursor for %s: %v", userID, err)
	}
	return page, nil
}

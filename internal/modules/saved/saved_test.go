// README: Saved-list service tests with in-memory fakes.
package saved

import (
	"context"
	"testing"
	"time"

	"mrtbot/internal/modules/shop"
	"mrtbot/internal/types"
)

type savedRow struct {
	shopID  types.ID
	savedAt time.Time
}

type fakeListStore struct {
	rows map[types.ID]map[ListType][]savedRow
	now  time.Time
}

func newFakeListStore() *fakeListStore {
	return &fakeListStore{rows: map[types.ID]map[ListType][]savedRow{}, now: time.Unix(0, 0)}
}

func (f *fakeListStore) Add(ctx context.Context, userID types.ID, list ListType, shopID types.ID) error {
	f.now = f.now.Add(time.Second)
	byList, ok := f.rows[userID]
	if !ok {
		byList = map[ListType][]savedRow{}
		f.rows[userID] = byList
	}
	rows := byList[list]
	for i, r := range rows {
		if r.shopID == shopID {
			rows[i].savedAt = f.now
			return nil
		}
	}
	byList[list] = append(rows, savedRow{shopID: shopID, savedAt: f.now})
	return nil
}

func (f *fakeListStore) ListIDs(ctx context.Context, userID types.ID, list ListType) ([]types.ID, error) {
	rows := append([]savedRow(nil), f.rows[userID][list]...)
	// saved_at DESC
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].savedAt.After(rows[i].savedAt) {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	ids := make([]types.ID, len(rows))
	for i, r := range rows {
		ids[i] = r.shopID
	}
	return ids, nil
}

type fakeResolver struct {
	byID map[types.ID]shop.Shop
}

func (f *fakeResolver) GetMany(ctx context.Context, ids []types.ID) ([]shop.Shop, error) {
	var out []shop.Shop
	for _, id := range ids {
		if sh, ok := f.byID[id]; ok {
			out = append(out, sh)
		}
	}
	return out, nil
}

func TestParseListType(t *testing.T) {
	if _, err := ParseListType("favorites"); err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if _, err := ParseListType("watch_later"); err != nil {
		t.Fatalf("watch_later: %v", err)
	}
	if _, err := ParseListType("wishlist"); err != ErrBadList {
		t.Fatalf("expected ErrBadList, got %v", err)
	}
}

func TestListOrderedBySaveTimeDescending(t *testing.T) {
	ctx := context.Background()
	store := newFakeListStore()
	resolver := &fakeResolver{byID: map[types.ID]shop.Shop{
		"s1": {ID: "s1", Name: "one"},
		"s2": {ID: "s2", Name: "two"},
		"s3": {ID: "s3", Name: "three"},
	}}
	svc := NewService(store, resolver)

	for _, id := range []types.ID{"s1", "s2", "s3"} {
		if err := svc.Add(ctx, "u1", ListFavorites, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	// Re-saving s1 bumps it to the top.
	if err := svc.Add(ctx, "u1", ListFavorites, "s1"); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	shops, err := svc.List(ctx, "u1", ListFavorites)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []types.ID{"s1", "s3", "s2"}
	if len(shops) != len(want) {
		t.Fatalf("expected %d shops, got %d", len(want), len(shops))
	}
	for i, id := range want {
		if shops[i].ID != id {
			t.Fatalf("slot %d: expected %s, got %s", i, id, shops[i].ID)
		}
	}
}

func TestListsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := newFakeListStore()
	resolver := &fakeResolver{byID: map[types.ID]shop.Shop{
		"s1": {ID: "s1"},
		"s2": {ID: "s2"},
	}}
	svc := NewService(store, resolver)

	if err := svc.Add(ctx, "u1", ListFavorites, "s1"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := svc.Add(ctx, "u1", ListWatchLater, "s2"); err != nil {
		t.Fatalf("add watch later: %v", err)
	}

	favs, err := svc.List(ctx, "u1", ListFavorites)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != "s1" {
		t.Fatalf("unexpected favorites: %v", favs)
	}
	later, err := svc.List(ctx, "u1", ListWatchLater)
	if err != nil {
		t.Fatalf("list watch later: %v", err)
	}
	if len(later) != 1 || later[0].ID != "s2" {
		t.Fatalf("unexpected watch later: %v", later)
	}
}

func TestAddValidation(t *testing.T) {
	svc := NewService(newFakeListStore(), &fakeResolver{})
	if err := svc.Add(context.Background(), "u1", ListFavorites, ""); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest for empty shop id, got %v", err)
	}
	if err := svc.Add(context.Background(), "", ListFavorites, "s1"); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest for empty user id, got %v", err)
	}
}

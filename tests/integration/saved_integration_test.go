// README: Integration tests for saved-list persistence and ordering.
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mrtbot/internal/modules/saved"
	"mrtbot/internal/types"
)

func TestSavedListOrderingAndBump(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := connectDB(t, ctx)
	ensureSchema(t, ctx, db)

	uid := types.ID(fmt.Sprintf("u%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM saved_shops WHERE user_id = $1", string(uid))
	})

	store := saved.NewStore(db)

	for _, id := range []types.ID{"p1", "p2", "p3"} {
		if err := store.Add(ctx, uid, saved.ListFavorites, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
		// Distinct saved_at timestamps so the ordering is deterministic.
		time.Sleep(10 * time.Millisecond)
	}

	ids, err := store.ListIDs(ctx, uid, saved.ListFavorites)
	if err != nil {
		t.Fatalf("list ids: %v", err)
	}
	if len(ids) != 3 || ids[0] != "p3" || ids[2] != "p1" {
		t.Fatalf("expected [p3 p2 p1], got %v", ids)
	}

	// Re-saving p1 moves it back to the top.
	time.Sleep(10 * time.Millisecond)
	if err := store.Add(ctx, uid, saved.ListFavorites, "p1"); err != nil {
		t.Fatalf("re-add p1: %v", err)
	}
	ids, err = store.ListIDs(ctx, uid, saved.ListFavorites)
	if err != nil {
		t.Fatalf("list ids after bump: %v", err)
	}
	if len(ids) != 3 || ids[0] != "p1" {
		t.Fatalf("expected p1 first after re-save, got %v", ids)
	}
}

func TestSavedListsAreIndependent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := connectDB(t, ctx)
	ensureSchema(t, ctx, db)

	uid := types.ID(fmt.Sprintf("u%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM saved_shops WHERE user_id = $1", string(uid))
	})

	store := saved.NewStore(db)

	if err := store.Add(ctx, uid, saved.ListFavorites, "fav1"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := store.Add(ctx, uid, saved.ListWatchLater, "later1"); err != nil {
		t.Fatalf("add watch later: %v", err)
	}

	favs, err := store.ListIDs(ctx, uid, saved.ListFavorites)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 1 || favs[0] != "fav1" {
		t.Fatalf("expected [fav1], got %v", favs)
	}

	later, err := store.ListIDs(ctx, uid, saved.ListWatchLater)
	if err != nil {
		t.Fatalf("list watch later: %v", err)
	}
	if len(later) != 1 || later[0] != "later1" {
		t.Fatalf("expected [later1], got %v", later)
	}
}

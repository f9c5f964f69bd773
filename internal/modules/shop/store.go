// README: Shop cache store backed by Firestore merge writes.
package shop

import (
	"context"

	"cloud.google.com/go/firestore"

	"mrtbot/internal/types"
)

const collection = "shops"

type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// shopDoc is the Firestore document shape. Rating and photo refs are
// pointers/slices so absent fields stay absent on read.
type shopDoc struct {
	Name      string   `firestore:"name"`
	Address   string   `firestore:"address"`
	Rating    *float64 `firestore:"rating"`
	PhotoRefs []string `firestore:"photo_refs"`
}

// UpsertMany merge-writes the given shops in one atomic batch, keyed by
// place ID. Fields absent from a write are preserved on the stored record,
// so concurrent upserts of the same place stay commutative per field.
// Shops with an empty ID are skipped.
func (s *Store) UpsertMany(ctx context.Context, shops []Shop) error {
	batch := s.client.Batch()
	wrote := false
	for _, sh := range shops {
		if sh.ID == "" {
			continue
		}
		data := map[string]interface{}{
			"name":    sh.DisplayName(),
			"address": sh.DisplayAddress(),
		}
		if sh.Rating != nil {
			data["rating"] = *sh.Rating
		}
		if len(sh.PhotoRefs) > 0 {
			data["photo_refs"] = sh.PhotoRefs
		}
		batch.Set(s.client.Collection(collection).Doc(string(sh.ID)), data, firestore.MergeAll)
		wrote = true
	}
	if !wrote {
		return nil
	}
	_, err := batch.Commit(ctx)
	return err
}

// GetMany resolves place IDs against the cache with one batched read.
// IDs with no cached document are silently dropped; input order is kept.
func (s *Store) GetMany(ctx context.Context, ids []types.ID) ([]Shop, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = s.client.Collection(collection).Doc(string(id))
	}
	snaps, err := s.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	out := make([]Shop, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var doc shopDoc
		if err := snap.DataTo(&doc); err != nil {
			continue
		}
		out = append(out, Shop{
			ID:        types.ID(snap.Ref.ID),
			Name:      doc.Name,
			Address:   doc.Address,
			Rating:    doc.Rating,
			PhotoRefs: doc.PhotoRefs,
		})
	}
	return out, nil
}

// README: Saved-list persistence in Postgres.
package saved

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mrtbot/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Add saves a shop to the user's list. Re-saving an already-saved shop
// refreshes its save time so it moves back to the top of the list.
func (s *Store) Add(ctx context.Context, userID types.ID, list ListType, shopID types.ID) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO saved_shops (user_id, list_type, shop_id, saved_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, list_type, shop_id) DO UPDATE SET saved_at = EXCLUDED.saved_at
	`, string(userID), string(list), string(shopID))
	return err
}

// ListIDs returns the user's saved shop IDs, most recently saved first.
func (s *Store) ListIDs(ctx context.Context, userID types.ID, list ListType) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
		SELECT shop_id FROM saved_shops
		WHERE user_id = $1 AND list_type = $2
		ORDER BY saved_at DESC
	`, string(userID), string(list))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []types.ID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, types.ID(id))
	}
	return ids, rows.Err()
}

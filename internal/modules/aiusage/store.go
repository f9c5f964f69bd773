// README: Fallback-quota persistence.
package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mrtbot/internal/types"
)

// Store handles fallback_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseCall atomically checks the monthly quota and deducts one call.
// It resets the counter to DefaultCalls when reset_month is behind the
// current month. Returns ErrQuotaExhausted when 0 rows are updated (quota
// exhausted or user absent).
func (s *Store) UseCall(ctx context.Context, userID types.ID) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE fallback_quota SET
			calls_remaining = CASE WHEN reset_month != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			reset_month = $1
		WHERE user_id = $3 AND (reset_month < $1 OR calls_remaining > 0)
	`, month, DefaultCalls, string(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureUser inserts a new quota row for userID with the default allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, userID types.ID) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO fallback_quota (user_id, calls_remaining, reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, string(userID), DefaultCalls, time.Now().Format("2006-01"))
	return err
}

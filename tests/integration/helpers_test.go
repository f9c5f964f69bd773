// README: Shared helpers for Postgres-backed integration tests.
package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// connectDB opens the test database named by MRTBOT_TEST_DSN, skipping the
// test when the variable is unset or the database is unreachable.
func connectDB(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("MRTBOT_TEST_DSN"))
	if dsn == "" {
		t.Skip("MRTBOT_TEST_DSN not set; skipping integration test")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := pgxpool.New(pingCtx, dsn)
	if err != nil {
		t.Skipf("cannot create pool for %s: %v", redactedDSN(dsn), err)
	}
	if err := db.Ping(pingCtx); err != nil {
		db.Close()
		t.Skipf("cannot reach postgres at %s: %v", redactedDSN(dsn), err)
	}
	t.Cleanup(db.Close)
	return db
}

func redactedDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || at <= scheme+3 {
		return dsn
	}
	return dsn[:scheme+3] + "***:***" + dsn[at:]
}

func ensureSchema(t *testing.T, ctx context.Context, db *pgxpool.Pool) {
	t.Helper()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saved_shops (
			user_id TEXT NOT NULL,
			list_type TEXT NOT NULL,
			shop_id TEXT NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, list_type, shop_id)
		)`,
		`CREATE TABLE IF NOT EXISTS fallback_quota (
			user_id TEXT PRIMARY KEY,
			calls_remaining INT NOT NULL DEFAULT 100,
			reset_month TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM')
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			t.Fatalf("ensure schema: %v", err)
		}
	}
}

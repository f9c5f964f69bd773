// README: Session store backed by a Redis hash per user, with TTL.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mrtbot/internal/types"
)

const keyPrefix = "session:%s"

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewStore returns a Store whose records expire ttl after the last write.
func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// StartSearch replaces any existing session for userID with a fresh record:
// the given query and result IDs, cursor 1 (page one already shown). The old
// record is deleted first so stale fields cannot leak into the new one.
func (s *Store) StartSearch(ctx context.Context, userID types.ID, query string, placeIDs []types.ID) error {
	ids, err := json.Marshal(placeIDs)
	if err != nil {
		return fmt.Errorf("session: marshal place ids: %w", err)
	}
	key := sessionKey(userID)
	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "query", query, "place_ids", string(ids), "cursor", 1)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Get returns the user's session record, or ErrNoSession.
func (s *Store) Get(ctx context.Context, userID types.ID) (Record, error) {
	fields, err := s.redis.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return Record{}, err
	}
	idsJSON, ok := fields["place_ids"]
	if !ok {
		return Record{}, ErrNoSession
	}
	var ids []types.ID
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return Record{}, fmt.Errorf("session: unmarshal place ids: %w", err)
	}
	cursor, err := strconv.Atoi(fields["cursor"])
	if err != nil {
		return Record{}, fmt.Errorf("session: bad cursor %q: %w", fields["cursor"], err)
	}
	return Record{Query: fields["query"], PlaceIDs: ids, Cursor: cursor}, nil
}

// AdvanceCursor updates only the cursor field of an existing record and
// refreshes the TTL. When the record is gone the advance is a no-op. A
// concurrent StartSearch may slip in between the existence check and the
// write; that is last-writer-wins. The cost is one re-shown or skipped page
// on the user's own session, never corruption.
func (s *Store) AdvanceCursor(ctx context.Context, userID types.ID, newCursor int) error {
	key := sessionKey(userID)
	exists, err := s.redis.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}
	pipe := s.redis.TxPipeline()
	pipe.HSet(ctx, key, "cursor", newCursor)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func sessionKey(userID types.ID) string {
	return fmt.Sprintf(keyPrefix, string(userID))
}

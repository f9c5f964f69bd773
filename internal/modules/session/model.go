// README: Per-user search session: last query, frozen result IDs, page cursor.
package session

import (
	"errors"

	"mrtbot/internal/types"
)

// ErrNoSession is returned when a user has no current search session.
var ErrNoSession = errors.New("no session")

// Record is the per-user session state. PlaceIDs is the full result set of
// the last search in provider order; it is replaced wholesale on every new
// search, never merged. Cursor counts pages already shown (1-based: a fresh
// search has already shown page one, so Cursor starts at 1).
type Record struct {
	Query    string
	PlaceIDs []types.ID
	Cursor   int
}

// README: Saved shop lists: favorites and watch-later.
package saved

import "errors"

var (
	ErrBadRequest = errors.New("bad request")
	ErrBadList    = errors.New("unknown list type")
)

// ListType names one of the two per-user saved lists.
type ListType string

const (
	ListFavorites  ListType = "favorites"
	ListWatchLater ListType = "watch_later"
)

// ParseListType validates an externally supplied list name.
func ParseListType(s string) (ListType, error) {
	switch ListType(s) {
	case ListFavorites, ListWatchLater:
		return ListType(s), nil
	}
	return "", ErrBadList
}

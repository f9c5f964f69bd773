// README: Postback payload parsing into an explicit action enum.
package bot

import (
	"errors"
	"net/url"

	"mrtbot/internal/types"
)

// ErrBadPostback marks payloads that must be silently ignored: unknown
// action, unparsable query string, or a save action without its shop_id.
var ErrBadPostback = errors.New("malformed postback payload")

// Action enumerates the recognised postback actions.
type Action string

const (
	ActionAddFavorite   Action = "add_favorite"
	ActionAddWatchLater Action = "add_watch_later"
	ActionNextPage      Action = "next_page"
)

// Postback is a parsed postback payload.
type Postback struct {
	Action Action
	ShopID types.ID
}

// ParsePostback decodes an `action=...&shop_id=...` payload. Required
// fields are validated here, before dispatch, so handlers never see a
// half-formed request.
func ParsePostback(data string) (Postback, error) {
	values, err := url.ParseQuery(data)
	if err != nil {
		return Postback{}, ErrBadPostback
	}

	pb := Postback{ShopID: types.ID(values.Get("shop_id"))}
	switch Action(values.Get("action")) {
	case ActionAddFavorite:
		pb.Action = ActionAddFavorite
	case ActionAddWatchLater:
		pb.Action = ActionAddWatchLater
	case ActionNextPage:
		pb.Action = ActionNextPage
		return pb, nil
	default:
		return Postback{}, ErrBadPostback
	}

	if pb.ShopID == "" {
		return Postback{}, ErrBadPostback
	}
	return pb, nil
}

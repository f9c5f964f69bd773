// README: Intent classification contract.
package intent

import (
	"context"
	"errors"

	"mrtbot/internal/types"
)

// ErrNoIntent signals that no structured intent was detected; the caller
// hands the text to the fallback responder.
var ErrNoIntent = errors.New("no intent")

// FindShops is the place-search intent name.
const FindShops = "find_shops"

// Slot names used by FindShops.
const (
	SlotStation = "station"
	SlotKeyword = "keyword"
)

// Result is the structured output of a classification.
type Result struct {
	// Intent is the detected intent name (e.g. FindShops).
	Intent string `json:"intent"`

	// Slots carries extracted parameters, keyed by slot name.
	Slots map[string]string `json:"slots"`

	// FulfillmentText is a ready-made clarification reply to relay verbatim
	// when required slots are missing.
	FulfillmentText string `json:"reply"`

	// Complete reports whether every required slot is filled.
	Complete bool `json:"complete"`
}

// Slot returns a slot value, empty when absent.
func (r *Result) Slot(name string) string {
	if r.Slots == nil {
		return ""
	}
	return r.Slots[name]
}

// Classifier turns raw user text into a structured intent.
// Implementations return ErrNoIntent when the text carries none; any other
// error is a provider failure the caller degrades to the fallback path.
type Classifier interface {
	Classify(ctx context.Context, userID types.ID, text string) (*Result, error)
}

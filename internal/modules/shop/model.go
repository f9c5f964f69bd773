// README: Cached shop (venue) records keyed by provider place ID.
package shop

import "mrtbot/internal/types"

const (
	// DefaultName is stored when the provider returns a place without a name.
	DefaultName = "unnamed"
	// DefaultAddress is stored when the provider returns no vicinity text.
	DefaultAddress = "unspecified"
)

// Shop is the normalized venue record. ID is the only required field; every
// display field degrades to a documented placeholder.
type Shop struct {
	ID        types.ID
	Name      string
	Address   string
	Rating    *float64
	PhotoRefs []string
}

// DisplayName returns the name or its placeholder.
func (s Shop) DisplayName() string {
	if s.Name == "" {
		return DefaultName
	}
	return s.Name
}

// DisplayAddress returns the address or its placeholder.
func (s Shop) DisplayAddress() string {
	if s.Address == "" {
		return DefaultAddress
	}
	return s.Address
}

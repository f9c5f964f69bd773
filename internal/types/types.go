// README: Common value types shared across modules.
package types

// ID is an opaque identifier (LINE user IDs, Google place IDs).
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

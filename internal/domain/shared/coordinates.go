package shared

import (
	"fmt"
	"math"
)

// Coordinates represents an immutable point in space
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewCoordinates creates coordinates with validation
func NewCoordinates(x, y float64) (Coordinates, error) {
	if !IsFinite(x) || !IsFinite(y) {
		return Coordinates{}, fmt.Errorf("coordinates must be finite numbers, got %v,%v", x, y)
	}
	return Coordinates{X: x, Y: y}, nil
}

// CoordinatesFromPair builds coordinates from a two-element slice.
// Example: []float64{50, 20} -> Coordinates{X: 50, Y: 20}
func CoordinatesFromPair(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, fmt.Errorf("coordinates need exactly 2 values, got %d", len(pair))
	}
	return NewCoordinates(pair[0], pair[1])
}

// MustNewCoordinates panics on invalid input (fixtures and tests only)
func MustNewCoordinates(x, y float64) Coordinates {
	c, err := NewCoordinates(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// Equals reports whether both axes match
func (c Coordinates) Equals(other Coordinates) bool {
	return c.X == other.X && c.Y == other.Y
}

// SharesAxisWith reports whether at least one axis matches
func (c Coordinates) SharesAxisWith(other Coordinates) bool {
	return c.X == other.X || c.Y == other.Y
}

// IsValid checks that both axes are finite
func (c Coordinates) IsValid() bool {
	return IsFinite(c.X) && IsFinite(c.Y)
}

// String renders "x,y"
func (c Coordinates) String() string {
	return FormatTons(c.X) + "," + FormatTons(c.Y)
}

// IsFinite rejects NaN and ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsNonNegativeAmount is the shared check for capacities and cargo weights
func IsNonNegativeAmount(v float64) bool {
	return IsFinite(v) && v >= 0
}

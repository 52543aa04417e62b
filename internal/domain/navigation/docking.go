package navigation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// DockingPolicy decides whether a docked vessel counts as landed on a given planet
type DockingPolicy string

const (
	// DockingLenient rejects only when both axes differ, so a vessel docked at
	// any planet sharing an X or a Y with the target is accepted.
	// TODO: switch the default to DockingStrict once the lenient behaviour is
	// confirmed unintended by scenario authors.
	DockingLenient DockingPolicy = "lenient"

	// DockingStrict requires the vessel's planet to sit at the target's coordinates.
	DockingStrict DockingPolicy = "strict"
)

// DefaultDockingPolicy is used when a planet is created without WithDockingPolicy
const DefaultDockingPolicy = DockingLenient

// ParseDockingPolicy converts config text to a policy
func ParseDockingPolicy(s string) (DockingPolicy, error) {
	switch DockingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case DockingLenient, "":
		return DockingLenient, nil
	case DockingStrict:
		return DockingStrict, nil
	default:
		return "", fmt.Errorf("invalid docking policy: %s", s)
	}
}

// Accepts compares the coordinates of the vessel's planet with the target planet's
func (d DockingPolicy) Accepts(dockedAt, target shared.Coordinates) bool {
	if d == DockingStrict {
		return dockedAt.Equals(target)
	}
	return dockedAt.SharesAxisWith(target)
}

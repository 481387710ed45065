package dungeon

import (
	"errors"
	"fmt"

	"github.com/floorforge/floorforge/internal/assign"
	"github.com/floorforge/floorforge/internal/hallway"
	"github.com/floorforge/floorforge/internal/spatial"
)

// ConfigError reports an invalid floor configuration, detected before any
// generation stage runs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dungeon: invalid configuration: %s %s", e.Field, e.Reason)
}

// The three failure categories a caller can branch on. Retrying with a
// different seed only makes sense for constraint and placement failures,
// never for an invalid configuration.

// IsConfigError reports whether err is an invalid-configuration failure.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsConstraintError reports whether err is a constraint-violation failure
// from the room-type assigner.
func IsConstraintError(err error) bool {
	var ce *assign.ConstraintError
	return errors.As(err, &ce)
}

// IsPlacementError reports whether err is a spatial-placement failure,
// covering both room placement and corridor pathfinding.
func IsPlacementError(err error) bool {
	var pe *spatial.PlacementError
	var he *hallway.PathError
	return errors.As(err, &pe) || errors.As(err, &he)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLocation       = errors.New("unknown location")
	ErrDuplicateLocation     = errors.New("duplicate location")
	ErrNoPath                = errors.New("no path")
	ErrNoCapableVehicle      = errors.New("no capable vehicle")
	ErrSameOriginDestination = errors.New("cargo origin equals destination")
)

// UnknownLocationError reports a name that does not resolve to a network location.
// It invalidates the whole network and must stop a run before planning starts.
type UnknownLocationError struct {
	Name string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Name)
}

func (e *UnknownLocationError) Is(target error) bool { return target == ErrUnknownLocation }

// NoPathError reports that To cannot be reached from From.
type NoPathError struct {
	From string
	To   string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from %q to %q", e.From, e.To)
}

func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }

// NoCapableVehicleError reports that no vehicle can serve a cargo item, either
// because none has enough capacity or because every capable vehicle failed to
// reach the cargo origin. In the latter case the per-vehicle failures are kept
// in Unreachable for diagnostics; they are not unwrapped, so the error never
// matches ErrNoPath.
type NoCapableVehicleError struct {
	Cargo       string
	Weight      uint32
	Unreachable []error
}

func (e *NoCapableVehicleError) Error() string {
	if len(e.Unreachable) > 0 {
		return fmt.Sprintf(
			"no capable vehicle for cargo %q (weight=%d): %d capable vehicle(s) cannot reach the origin",
			e.Cargo, e.Weight, len(e.Unreachable),
		)
	}
	return fmt.Sprintf("no capable vehicle for cargo %q (weight=%d)", e.Cargo, e.Weight)
}

func (e *NoCapableVehicleError) Is(target error) bool { return target == ErrNoCapableVehicle }

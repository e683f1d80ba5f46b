package services

import (
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
)

var ErrEmptyPath = errors.New("timeline path must not be empty")

// BuildTimeline converts a stitched vehicle path into movement events.
//
// path excludes the vehicle start. hopWeights[j] is the weight of the hop that
// arrives at path[j], so len(hopWeights) must equal len(path). The first event
// is the departure (vehicle start -> path[0]) reported at weight 0; every later
// event path[i] -> path[i+1] accumulates hopWeights[i+1]. Indexing with
// hopWeights[i] instead shifts every weight one hop late and reports 60, not
// 40, for the last event of B -> A -> B -> C over A-B 30, B-C 10.
//
// Cargo markers are plain name comparisons: From is marked when it equals the
// cargo origin, To when it equals the destination. The departure hop is only
// marked when the vehicle already starts at the origin.
// The result always has len(path) events.
func BuildTimeline(
	vehicle domain.Vehicle,
	path []domain.Location,
	cargo domain.CargoItem,
	hopWeights []uint32,
) ([]domain.MovementEvent, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("build timeline: vehicle %q cargo %q: %w", vehicle.Name, cargo.Name, ErrEmptyPath)
	}
	if len(hopWeights) != len(path) {
		return nil, fmt.Errorf(
			"build timeline: vehicle %q cargo %q: %d hop weights for %d path locations",
			vehicle.Name, cargo.Name, len(hopWeights), len(path),
		)
	}

	events := make([]domain.MovementEvent, 0, len(path))

	departure := domain.MovementEvent{
		Vehicle: vehicle.Name,
		From:    vehicle.Start,
		To:      path[0].Name,
	}
	if vehicle.Start == cargo.Origin {
		departure.CarriedAtFrom = cargo.Name
		if path[0].Name == cargo.Destination {
			departure.CarriedAtTo = cargo.Name
		}
	}
	events = append(events, departure)

	var w uint64
	for i := 0; i < len(path)-1; i++ {
		w += uint64(hopWeights[i+1])

		ev := domain.MovementEvent{
			CumulativeWeight: w,
			Vehicle:          vehicle.Name,
			From:             path[i].Name,
			To:               path[i+1].Name,
		}
		if ev.From == cargo.Origin {
			ev.CarriedAtFrom = cargo.Name
		}
		if ev.To == cargo.Destination {
			ev.CarriedAtTo = cargo.Name
		}
		events = append(events, ev)
	}

	return events, nil
}

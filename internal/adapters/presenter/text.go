package presenter

import (
	"fmt"
	"freight-route-service/internal/domain"
	"io"
)

// FormatEvent renders one movement event in the plain-text timeline format:
//
//	W=<weight>, T=<vehicle>, N1=<from>, P1=[<cargo>], N2=<to>, P2=[<cargo>]
func FormatEvent(e domain.MovementEvent) string {
	return fmt.Sprintf(
		"W=%d, T=%s, N1=%s, P1=[%s], N2=%s, P2=[%s]",
		e.CumulativeWeight, e.Vehicle, e.From, e.CarriedAtFrom, e.To, e.CarriedAtTo,
	)
}

// WritePlans writes one line per event, plans in the given order.
func WritePlans(w io.Writer, plans []domain.TimelinePlan) error {
	for _, p := range plans {
		for _, e := range p.Events {
			if _, err := fmt.Fprintln(w, FormatEvent(e)); err != nil {
				return fmt.Errorf("write plans: cargo %q: %w", p.Cargo.Name, err)
			}
		}
	}
	return nil
}

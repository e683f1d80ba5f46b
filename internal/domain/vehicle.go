package domain

// Capacity-limited vehicle that starts its trip at a network location.
type Vehicle struct {
	Name     string
	Capacity uint32
	Start    string
}

// CanCarry reports whether the vehicle has enough capacity for the cargo.
func (v Vehicle) CanCarry(c CargoItem) bool {
	return v.Capacity >= c.Weight
}

// CapableVehicles returns the vehicles able to carry c, preserving input order.
func CapableVehicles(vehicles []Vehicle, c CargoItem) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.CanCarry(c) {
			out = append(out, v)
		}
	}
	return out
}

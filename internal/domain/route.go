package domain

// Represents the result of one shortest-path query.
// Locations excludes the query source; HopWeights[i] is the weight of the hop
// that arrives at Locations[i], so both slices always have the same length.
// A self-route has both slices empty.
type PathResult struct {
	Locations  []Location
	HopWeights []uint32
}

// TotalWeight sums the hop weights.
func (p PathResult) TotalWeight() uint64 {
	var total uint64
	for _, w := range p.HopWeights {
		total += uint64(w)
	}
	return total
}

// Clone returns a deep copy so callers can append without aliasing.
func (p PathResult) Clone() PathResult {
	return PathResult{
		Locations:  append([]Location{}, p.Locations...),
		HopWeights: append([]uint32{}, p.HopWeights...),
	}
}

// Represents one hop of a vehicle timeline.
// CarriedAtFrom / CarriedAtTo hold the cargo name when From is the cargo
// origin (loaded) or To is the cargo destination (unloaded), else "".
type MovementEvent struct {
	CumulativeWeight uint64
	Vehicle          string
	From             string
	CarriedAtFrom    string
	To               string
	CarriedAtTo      string
}

// Represents the planned movement of one cargo item.
// A TimelinePlan is immutable planning output and contains no side effects.
type TimelinePlan struct {
	Cargo       CargoItem
	Vehicle     Vehicle
	Events      []MovementEvent
	TotalWeight uint64
}

package domain

// Represents a single item of freight to be moved through the network.
// A CargoItem is picked up at Origin and unloaded at Destination by exactly
// one vehicle. Planning treats every cargo item independently.
type CargoItem struct {
	Name        string
	Weight      uint32
	Origin      string
	Destination string
}

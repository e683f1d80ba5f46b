package domain

// A named point in the transport network.
// Locations are identified by name only; names are unique within a Network.
type Location struct {
	Name string
}

// Represents an undirected weighted link between two locations.
// Name is informational and does not need to be unique.
// A Weight of 0 is indistinguishable from "no connection" once the
// adjacency matrix is built, so zero-weight connections are never traversed.
type Connection struct {
	Name   string
	Weight uint32
	From   string
	To     string
}

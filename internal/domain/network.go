package domain

import (
	"encoding/binary"
	"fmt"

	"freight-route-service/internal/graph"

	"github.com/cespare/xxhash/v2"
)

// Network is the read-only set of locations and connections for a planning run.
// Location names are interned to indices at construction time; all external
// identity stays name based.
type Network struct {
	locations   []Location
	connections []Connection
	index       map[string]int
	fingerprint uint64
}

// NewNetwork validates and freezes the given locations and connections.
// Location names must be unique and every connection endpoint must resolve.
func NewNetwork(locations []Location, connections []Connection) (*Network, error) {
	index := make(map[string]int, len(locations))
	for i, l := range locations {
		if l.Name == "" {
			return nil, fmt.Errorf("new network: location #%d: empty name", i+1)
		}
		if _, ok := index[l.Name]; ok {
			return nil, fmt.Errorf("new network: location %q: %w", l.Name, ErrDuplicateLocation)
		}
		index[l.Name] = i
	}

	for _, c := range connections {
		for _, end := range []string{c.From, c.To} {
			if _, ok := index[end]; !ok {
				return nil, fmt.Errorf("new network: connection %q: %w", c.Name, &UnknownLocationError{Name: end})
			}
		}
	}

	n := &Network{
		locations:   append([]Location(nil), locations...),
		connections: append([]Connection(nil), connections...),
		index:       index,
	}
	n.fingerprint = n.computeFingerprint()

	return n, nil
}

// Locations returns a copy of the network locations in index order.
func (n *Network) Locations() []Location {
	return append([]Location(nil), n.locations...)
}

// Connections returns a copy of the network connections in input order.
func (n *Network) Connections() []Connection {
	return append([]Connection(nil), n.connections...)
}

func (n *Network) Len() int { return len(n.locations) }

// ResolveIndex maps a location name to its index.
func (n *Network) ResolveIndex(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return 0, &UnknownLocationError{Name: name}
	}
	return i, nil
}

// LocationAt returns the location stored at index i.
func (n *Network) LocationAt(i int) Location { return n.locations[i] }

// BuildAdjacencyMatrix materializes a fresh symmetric weight matrix.
// When several connections join the same pair, the last one wins.
func (n *Network) BuildAdjacencyMatrix() graph.AdjacencyMatrix {
	m := graph.NewAdjacencyMatrix(len(n.locations))
	for _, c := range n.connections {
		m.Connect(n.index[c.From], n.index[c.To], c.Weight)
	}
	return m
}

// Fingerprint identifies the network contents; two networks with the same
// locations and connections in the same order share a fingerprint.
func (n *Network) Fingerprint() uint64 { return n.fingerprint }

func (n *Network) computeFingerprint() uint64 {
	h := xxhash.New()
	var buf [4]byte

	for _, l := range n.locations {
		_, _ = h.WriteString(l.Name)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{1})
	for _, c := range n.connections {
		_, _ = h.WriteString(c.From)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(c.To)
		_, _ = h.Write([]byte{0})
		binary.BigEndian.PutUint32(buf[:], c.Weight)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

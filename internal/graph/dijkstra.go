package graph

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Infinity marks a node that has not been reached from the source.
const Infinity = math.MaxUint64

// NoPredecessor marks the source and unreached nodes in a predecessor slice.
const NoPredecessor = -1

var ErrIndexOutOfRange = errors.New("node index out of range")

// ShortestPaths computes single-source minimum distances over m.
//
// It runs the plain O(V²) variant of Dijkstra's algorithm: exactly V-1
// selection rounds, each picking the unvisited node with the smallest
// distance. Ties go to the lowest index, so results are deterministic.
// Edges with weight 0 are treated as absent.
func ShortestPaths(m AdjacencyMatrix, source int) ([]uint64, []int, error) {
	n := m.Len()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("shortest paths: source %d of %d: %w", source, n, ErrIndexOutOfRange)
	}

	dist := make([]uint64, n)
	prev := make([]int, n)
	seen := make([]bool, n)
	for i := range dist {
		dist[i] = Infinity
		prev[i] = NoPredecessor
	}
	dist[source] = 0

	for round := 0; round < n-1; round++ {
		current := nearestUnvisited(dist, seen)
		seen[current] = true

		// Every remaining node is unreachable; keep looping for the fixed round count.
		if dist[current] == Infinity {
			continue
		}

		for next, w := range m[current] {
			if w == 0 {
				continue
			}

			total := dist[current] + uint64(w)
			if total < dist[next] {
				dist[next] = total
				prev[next] = current
			}
		}
	}

	return dist, prev, nil
}

// nearestUnvisited returns the first unvisited index holding the minimum distance.
func nearestUnvisited(dist []uint64, seen []bool) int {
	best := -1
	for i, d := range dist {
		if seen[i] {
			continue
		}
		if best == -1 || d < dist[best] {
			best = i
		}
	}
	return best
}

// PathTo walks the predecessors from dest back to the source and returns the
// index path source..dest inclusive. ok is false when dest is unreachable.
func PathTo(dist []uint64, prev []int, dest int) (path []int, ok bool) {
	if dest < 0 || dest >= len(dist) || dist[dest] == Infinity {
		return nil, false
	}

	for cur := dest; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, true
}

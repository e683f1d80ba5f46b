package graph

// AdjacencyMatrix is a square matrix of connection weights indexed by
// location index. A weight of 0 means there is no direct connection.
type AdjacencyMatrix [][]uint32

// NewAdjacencyMatrix allocates an n x n matrix with no connections.
func NewAdjacencyMatrix(n int) AdjacencyMatrix {
	m := make(AdjacencyMatrix, n)
	for i := range m {
		m[i] = make([]uint32, n)
	}
	return m
}

func (m AdjacencyMatrix) Len() int { return len(m) }

// Connect sets the weight in both directions, overwriting any previous value.
func (m AdjacencyMatrix) Connect(a, b int, weight uint32) {
	m[a][b] = weight
	m[b][a] = weight
}

func (m AdjacencyMatrix) Weight(from, to int) uint32 { return m[from][to] }

// HopWeights returns the matrix weight of every consecutive pair of path.
// The result has len(path)-1 entries (none for a path of length 0 or 1).
func (m AdjacencyMatrix) HopWeights(path []int) []uint32 {
	if len(path) < 2 {
		return []uint32{}
	}

	out := make([]uint32, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		out = append(out, m[path[i]][path[i+1]])
	}
	return out
}

package model

import (
	"github.com/pkg/errors"
)

const (
	MinDensity = 1
	MaxDensity = 5
)

// Sentinel errors for malformed puzzle definitions. All of them are fatal:
// a definition that trips one must never reach play.
var (
	ErrEmptyDefinition   = errors.New("model: definition has no vertices")
	ErrDuplicateVertex   = errors.New("model: duplicate vertex id")
	ErrNeighborCount     = errors.New("model: neighbor list count does not match vertex count")
	ErrUnknownNeighbor   = errors.New("model: neighbor id not in vertex set")
	ErrSelfNeighbor      = errors.New("model: vertex lists itself as neighbor")
	ErrDuplicateNeighbor = errors.New("model: neighbor listed twice")
	ErrAsymmetric        = errors.New("model: neighbor lists are not symmetric")
	ErrEdgeMismatch      = errors.New("model: edge list disagrees with neighbor lists")
	ErrDensityOutOfRange = errors.New("model: density out of range")
)

// Definition is the static, authored description of one puzzle.
// Neighbors[i] belongs to VertexIDs[i]; Edges hold unordered id pairs.
type Definition struct {
	Name      string
	VertexIDs []VertexID
	Edges     [][2]VertexID
	Neighbors [][]VertexID
	Density   int
}

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

type pair struct{ a, b VertexID }

func unordered(a, b VertexID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Validate checks def for the structural invariants the game relies on.
func Validate(def Definition) error {
	if len(def.VertexIDs) == 0 {
		return wrapf(ErrEmptyDefinition, "puzzle %q", def.Name)
	}
	if def.Density < MinDensity || def.Density > MaxDensity {
		return wrapf(ErrDensityOutOfRange, "puzzle %q: density %d not in [%d,%d]", def.Name, def.Density, MinDensity, MaxDensity)
	}
	if len(def.Neighbors) != len(def.VertexIDs) {
		return wrapf(ErrNeighborCount, "puzzle %q: %d lists for %d vertices", def.Name, len(def.Neighbors), len(def.VertexIDs))
	}

	known := make(map[VertexID]bool, len(def.VertexIDs))
	for _, id := range def.VertexIDs {
		if known[id] {
			return wrapf(ErrDuplicateVertex, "puzzle %q: vertex %d", def.Name, id)
		}
		known[id] = true
	}

	adj := make(map[pair]int) // how many endpoints list the pair: 2 when symmetric
	for i, id := range def.VertexIDs {
		seen := make(map[VertexID]bool, len(def.Neighbors[i]))
		for _, n := range def.Neighbors[i] {
			switch {
			case n == id:
				return wrapf(ErrSelfNeighbor, "puzzle %q: vertex %d", def.Name, id)
			case !known[n]:
				return wrapf(ErrUnknownNeighbor, "puzzle %q: vertex %d lists %d", def.Name, id, n)
			case seen[n]:
				return wrapf(ErrDuplicateNeighbor, "puzzle %q: vertex %d lists %d twice", def.Name, id, n)
			}
			seen[n] = true
			adj[unordered(id, n)]++
		}
	}
	for p, c := range adj {
		if c != 2 {
			return wrapf(ErrAsymmetric, "puzzle %q: %d-%d listed on one side only", def.Name, p.a, p.b)
		}
	}

	edges := make(map[pair]bool, len(def.Edges))
	for _, e := range def.Edges {
		p := unordered(e[0], e[1])
		if _, ok := adj[p]; !ok || edges[p] {
			return wrapf(ErrEdgeMismatch, "puzzle %q: edge %d-%d", def.Name, e[0], e[1])
		}
		edges[p] = true
	}
	if len(edges) != len(adj) {
		return wrapf(ErrEdgeMismatch, "puzzle %q: %d edges for %d adjacent pairs", def.Name, len(edges), len(adj))
	}
	return nil
}

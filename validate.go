package aoc

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrDanglingNeighbor is reported for an edge whose target is not one
	// of the graph's vertices.
	ErrDanglingNeighbor = errors.New("neighbor is not a vertex of the graph")

	// ErrNegativeCost is reported for an edge with a cost below zero.
	ErrNegativeCost = errors.New("negative edge cost")
)

// ValidateGraph checks g against the WeightedGraph contract and reports
// every violation it finds. The returned error, if any, is a
// *multierror.Error whose entries wrap ErrDanglingNeighbor or
// ErrNegativeCost.
//
// It queries the neighbors of every vertex, so it defeats the laziness of
// graphs that compute their edges on demand.
func ValidateGraph[V comparable](g WeightedGraph[V]) error {
	vs := g.Vertices()
	known := make(map[V]bool, len(vs))
	for _, v := range vs {
		known[v] = true
	}

	var result *multierror.Error
	for v := range known {
		for _, n := range g.Neighbors(v) {
			if !known[n.V] {
				result = multierror.Append(result, fmt.Errorf("edge %v->%v: %w", v, n.V, ErrDanglingNeighbor))
			}
			if n.Cost < 0 {
				result = multierror.Append(result, fmt.Errorf("edge %v->%v cost %d: %w", v, n.V, n.Cost, ErrNegativeCost))
			}
		}
	}
	return result.ErrorOrNil()
}

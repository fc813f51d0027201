package aoc

import (
	"context"
	"fmt"
	"math"
)

// Unreachable is the distance recorded for vertices with no path from the
// source.
const Unreachable = math.MaxInt

// Neighbor is a directed edge to V that costs Cost to traverse.
type Neighbor[V comparable] struct {
	V    V
	Cost int
}

// WeightedGraph is a finite directed graph with non-negative integer edge
// costs. It is queried lazily: Neighbors is only called for vertices the
// search actually reaches, so implementations may compute edges on demand.
//
// Every vertex returned by Neighbors must also be returned by Vertices.
type WeightedGraph[V comparable] interface {
	Vertices() []V
	Neighbors(v V) []Neighbor[V]
}

// VertexInfo is the result of a search for a single vertex.
type VertexInfo[V comparable] struct {
	// Dist is the cost of the cheapest path from the source, or Unreachable.
	Dist int
	// Prev is the vertex before this one on that path. It is only valid if
	// HasPrev is set.
	Prev    V
	HasPrev bool
}

func (vi VertexInfo[V]) Reachable() bool {
	return vi.Dist != Unreachable
}

// ShortestPathTree maps every vertex of a graph to its distance from a
// single source and its predecessor on a cheapest path.
type ShortestPathTree[V comparable] map[V]VertexInfo[V]

// Dist returns the distance to v, or Unreachable.
func (t ShortestPathTree[V]) Dist(v V) int {
	vi, ok := t[v]
	if !ok {
		return Unreachable
	}
	return vi.Dist
}

// PathTo returns the vertices from the source to v, both inclusive. It
// returns nil if v is unreachable.
func (t ShortestPathTree[V]) PathTo(v V) []V {
	vi, ok := t[v]
	if !ok || !vi.Reachable() {
		return nil
	}
	var s Stack[V]
	s.Push(v)
	for vi.HasPrev {
		s.Push(vi.Prev)
		vi = t[vi.Prev]
	}
	return s.Drain()
}

// ShortestPaths runs Dijkstra's algorithm on g from src and returns the
// distance to every vertex of g.
//
// It panics if src or any neighbor reported by g is not one of
// g.Vertices(). Negative costs are not detected and produce wrong
// distances; use ValidateGraph when the graph is not trusted.
func ShortestPaths[V comparable](g WeightedGraph[V], src V) ShortestPathTree[V] {
	return dijkstra(g, src, nil)
}

// ShortestPath returns a cheapest path from src to dst, both inclusive, or
// nil if there is none. The search stops as soon as dst is settled.
func ShortestPath[V comparable](g WeightedGraph[V], src, dst V) []V {
	if src == dst {
		return []V{src}
	}
	return dijkstra(g, src, &dst).PathTo(dst)
}

// ShortestDistance returns the cost of a cheapest path from src to dst, or
// Unreachable.
func ShortestDistance[V comparable](g WeightedGraph[V], src, dst V) int {
	return dijkstra(g, src, &dst).Dist(dst)
}

// ShortestPathsFrom runs ShortestPaths for every source concurrently. g
// must not change while it runs.
//
// Canceling ctx stops searches that have not started yet; it returns
// ctx.Err() in that case.
func ShortestPathsFrom[V comparable](ctx context.Context, g WeightedGraph[V], sources []V) (map[V]ShortestPathTree[V], error) {
	trees, err := Parallel(ctx, sources, func(ctx context.Context, src V) (ShortestPathTree[V], error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return ShortestPaths(g, src), nil
	})
	if err != nil {
		return nil, err
	}
	out := make(map[V]ShortestPathTree[V], len(sources))
	for i, src := range sources {
		out[src] = trees[i]
	}
	return out, nil
}

// dijkstra computes distances from src. If dst is non-nil, it stops once
// dst is popped; distances of vertices that were still queued at that
// point are upper bounds only.
func dijkstra[V comparable](g WeightedGraph[V], src V, dst *V) ShortestPathTree[V] {
	vs := g.Vertices()
	tree := make(ShortestPathTree[V], len(vs))
	items := make(map[V]*PQI[V], len(vs))
	q := MinQueue[V](len(vs))
	for _, v := range vs {
		if _, ok := items[v]; ok {
			continue
		}
		it := &PQI[V]{V: v, P: Unreachable}
		if v == src {
			it.P = 0
		}
		items[v] = it
		tree[v] = VertexInfo[V]{Dist: it.P}
		q.Push(it)
	}
	if _, ok := items[src]; !ok {
		panic(fmt.Sprintf("dijkstra: source %v is not a vertex of the graph", src))
	}

	for q.Len() > 0 {
		u := q.Pop()
		if u.P == Unreachable {
			// Everything left in the queue is unreachable too.
			break
		}
		if dst != nil && u.V == *dst {
			break
		}
		for _, n := range g.Neighbors(u.V) {
			it, ok := items[n.V]
			if !ok {
				panic(fmt.Sprintf("dijkstra: neighbor %v of %v is not a vertex of the graph", n.V, u.V))
			}
			if it.Index() == -1 {
				continue // settled
			}
			if d := u.P + n.Cost; d < it.P {
				it.P = d
				tree[n.V] = VertexInfo[V]{Dist: d, Prev: u.V, HasPrev: true}
				q.Update(it)
			}
		}
	}
	return tree
}

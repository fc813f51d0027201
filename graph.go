package aoc

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is an adjacency-map graph with integer edge costs. Edges added
// with AddEdge go both ways; AddArc adds a single direction.
//
// *Graph implements WeightedGraph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

var _ WeightedGraph[string] = (*Graph[string])(nil)

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) Vertices() []K {
	return maps.Keys(g.Nodes)
}

// Neighbors returns the outgoing edges of k, cheapest first.
func (g *Graph[K]) Neighbors(k K) []Neighbor[K] {
	e := g.Edges[k]
	out := make([]Neighbor[K], 0, len(e))
	for v, d := range e {
		out = append(out, Neighbor[K]{V: v, Cost: d})
	}
	slices.SortFunc(out, func(a, b Neighbor[K]) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
	return out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// AllShortestPaths returns the distance between every ordered pair of
// nodes, computed with Floyd–Warshall. Pairs without a path map to
// Unreachable.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for via := range g.Nodes {
		for from := range g.Nodes {
			d1 := dist[key{from, via}]
			if d1 == math.MaxInt {
				continue
			}
			for to := range g.Nodes {
				d2 := dist[key{via, to}]
				if d2 == math.MaxInt {
					continue
				}
				if d := d1 + d2; d < dist[key{from, to}] {
					dist[key{from, to}] = d
				}
			}
		}
	}
	return dist
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b, replacing any existing one.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
}

// AddEdge adds an edge between a and b in both directions.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// Collapse shrinks an undirected graph by replacing every node with
// exactly two neighbors by a single edge between those neighbors. Nodes in
// keep are never removed.
func (g *Graph[K]) Collapse(keep ...K) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || slices.Contains(keep, k1) {
				continue
			}
			ends := make([]Neighbor[K], 0, 2)
			for k, v := range e {
				ends = append(ends, Neighbor[K]{V: k, Cost: v})
			}
			a, b := ends[0], ends[1]
			d := a.Cost + b.Cost
			if old, ok := g.Edges[a.V][b.V]; ok && old < d {
				d = old
			}
			g.RemoveNode(k1)
			g.AddEdge(a.V, b.V, d)
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

package aoc

import (
	"reflect"
	"testing"
)

func TestAllShortestPathsDirected(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "b", 2)
	g.AddArc("b", "c", 3)
	g.AddArc("a", "c", 10)
	g.AddNode("d")

	dist := g.AllShortestPaths()
	tests := []struct {
		from, to string
		want     int
	}{
		{"a", "a", 0},
		{"a", "b", 2},
		{"a", "c", 5},
		{"c", "a", Unreachable},
		{"b", "a", Unreachable},
		{"a", "d", Unreachable},
	}
	for _, tt := range tests {
		if got := dist[Edge[string]{tt.from, tt.to}]; got != tt.want {
			t.Errorf("AllShortestPaths()[%s->%s] = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAllShortestPathsUndirected(t *testing.T) {
	// Distances along a chain are only all found if the intermediate
	// vertex is the outermost loop.
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(4, 5, 1)

	dist := g.AllShortestPaths()
	for from := 1; from <= 5; from++ {
		for to := 1; to <= 5; to++ {
			if got, want := dist[Edge[int]{from, to}], AbsDiff(from, to); got != want {
				t.Errorf("AllShortestPaths()[%d->%d] = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestNeighborsCheapestFirst(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "x", 7)
	g.AddArc("a", "y", 1)
	g.AddArc("a", "z", 4)

	got := g.Neighbors("a")
	want := []Neighbor[string]{{"y", 1}, {"z", 4}, {"x", 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(a) = %v, want %v", got, want)
	}
	if got := g.Neighbors("x"); len(got) != 0 {
		t.Errorf("Neighbors(x) = %v, want none", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	c := g.Clone()
	c.AddEdge("b", "c", 1)
	c.RemoveEdge("a", "b")

	if g.Nodes["c"] || g.Edges["a"]["b"] != 1 {
		t.Errorf("mutating the clone changed the original: %+v", g)
	}
}

func TestReachableNodes(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("b", "c", 1)
	g.AddArc("d", "a", 1)

	got := g.ReachableNodes("a")
	want := map[string]bool{"a": true, "b": true, "c": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReachableNodes(a) = %v, want %v", got, want)
	}

	// Reachability and finite distance agree.
	tree := ShortestPaths[string](&g, "a")
	for v := range g.Nodes {
		if got[v] != tree[v].Reachable() {
			t.Errorf("%s: reachable = %v, but distance is %v", v, got[v], tree.Dist(v))
		}
	}
}

func TestCollapseKeepsShorterEdge(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "m", 5)
	g.AddEdge("m", "b", 5)
	g.AddEdge("a", "b", 3)
	g.AddEdge("b", "c", 1)
	g.AddEdge("b", "e", 1)

	g.Collapse("a")
	if _, ok := g.Nodes["m"]; ok {
		t.Fatal("corridor node m was not collapsed")
	}
	if got := g.Edges["a"]["b"]; got != 3 {
		t.Errorf("edge a-b = %d, want 3", got)
	}
	if !g.Nodes["a"] {
		t.Error("kept node a was removed")
	}
}

func TestRemoveNode(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)
	g.RemoveNode("b")

	if len(g.Nodes) != 2 || len(g.Edges["a"]) != 0 || len(g.Edges["c"]) != 0 {
		t.Errorf("after RemoveNode(b): %+v", g)
	}
	if d := ShortestDistance[string](&g, "a", "c"); d != Unreachable {
		t.Errorf("distance a->c = %v, want Unreachable", d)
	}
}

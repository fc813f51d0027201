package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines of text, converting each rune with f.
func ParseGrid[T any](lines []string, f func(rune) T) Grid[T] {
	out := make(Grid[T], 0, len(lines))
	for _, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, f(r))
		}
		out = append(out, row)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a fingerprint of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// CostGraph returns a view of the grid as a WeightedGraph. Cells for which
// cost reports false are walls and not part of the graph. Every other cell
// is connected to its straight neighbors, and stepping onto a cell costs
// that cell's cost.
//
// Edges are computed from the grid when asked for, so changes to the grid
// show through the view.
func (g Grid[T]) CostGraph(cost func(T) (int, bool)) WeightedGraph[Pt] {
	return gridGraph[T]{g: g, cost: cost}
}

type gridGraph[T any] struct {
	g    Grid[T]
	cost func(T) (int, bool)
}

func (gg gridGraph[T]) Vertices() []Pt {
	size := gg.g.Size()
	out := make([]Pt, 0, size.X*size.Y)
	for y, row := range gg.g {
		for x, v := range row {
			if _, ok := gg.cost(v); ok {
				out = append(out, Pt{x, y})
			}
		}
	}
	return out
}

func (gg gridGraph[T]) Neighbors(p Pt) []Neighbor[Pt] {
	var out []Neighbor[Pt]
	p.ForImmediateNeighbors(func(n Pt) bool {
		v, ok := gg.g.AtOk(n)
		if !ok {
			return true
		}
		if c, ok := gg.cost(v); ok {
			out = append(out, Neighbor[Pt]{V: n, Cost: c})
		}
		return true
	})
	return out
}

// ToGraph converts the grid into a graph with unit edge costs between
// cells reachable from start, then collapses corridors (see
// Graph.Collapse), keeping start. If allowDiagonals is true, diagonal
// neighbors are included. disallowed is called on each cell, and if it
// returns true, that cell is not included in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	seen := make(map[Pt]bool)
	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if seen[p1] {
			return true
		}
		seen[p1] = true
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); !ok || disallowed(v) {
				return true
			}
			if seen[p2] {
				return true // already expanded
			}
			q.Push(p2)
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	g.Collapse(start)
	return g
}

// State is a point and a direction.
type State struct {
	Pt  Pt
	Dir Direction
}

// Move advances s one cell in its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(s State) (State, bool) {
	s.Pt = s.Pt.Step(s.Dir)
	if _, ok := g.AtOk(s.Pt); !ok {
		return State{}, false
	}
	return s, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction, clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the point one cell away from p in direction d. Up is
// towards lower Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

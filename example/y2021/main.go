package main

import (
	_ "embed"

	aoc "github.com/SvenGroot/AdventOfCode-sub000"
)

func main() {
	aoc.Run(2021, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// risk makes every cell passable; entering a cell costs its risk level.
func risk(v int) (int, bool) {
	return v, true
}

func corner(g aoc.Grid[int]) aoc.Pt {
	size := g.Size()
	return aoc.Pt{X: size.X - 1, Y: size.Y - 1}
}

/*
want=40

1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
*/
func (s solver) D15p1() any {
	g := s.Grid()
	path := aoc.ShortestPath(g.CostGraph(risk), aoc.Pt{}, corner(g))
	total := 0
	for _, p := range path[1:] {
		total += g.At(p)
	}
	s.Debugf("%d steps", len(path)-1)
	return total
}

// tile repeats g n times in each direction. Each repeat to the right or
// down adds one to every risk level, wrapping from 9 back to 1.
func tile(g aoc.Grid[int], n int) aoc.Grid[int] {
	size := g.Size()
	out := aoc.MakeGrid[int](size.X*n, size.Y*n)
	for y := range out {
		for x := range out[y] {
			v := g[y%size.Y][x%size.X]
			out[y][x] = (v-1+y/size.Y+x/size.X)%9 + 1
		}
	}
	return out
}

// want=315
func (s solver) D15p2() any {
	g := tile(s.Grid(), 5)
	s.Debug("tiled size", g.Size())
	return aoc.ShortestDistance(g.CostGraph(risk), aoc.Pt{}, corner(g))
}

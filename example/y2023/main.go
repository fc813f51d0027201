package main

import (
	_ "embed"

	aoc "github.com/SvenGroot/AdventOfCode-sub000"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// crucible is a search state: where the crucible is, which way it is
// heading and how many cells it has moved in that direction. run is 0 only
// at the start, where it may leave in any direction.
type crucible struct {
	aoc.State
	run int
}

// minHeat returns the least heat lost moving a crucible from the top left
// to the bottom right. It must move at least minRun cells before turning
// or stopping, and may move at most maxRun cells in a straight line.
func (s solver) minHeat(minRun, maxRun int) int {
	g := s.Grid()
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	next := func(c crucible) []aoc.Neighbor[crucible] {
		var out []aoc.Neighbor[crucible]
		try := func(d aoc.Direction, run int) {
			ns, ok := g.Move(aoc.State{Pt: c.Pt, Dir: d})
			if !ok {
				return
			}
			out = append(out, aoc.Neighbor[crucible]{V: crucible{ns, run}, Cost: g.At(ns.Pt)})
		}
		if c.run == 0 {
			for _, d := range aoc.Directions {
				try(d, 1)
			}
			return out
		}
		if c.run < maxRun {
			try(c.Dir, c.run+1)
		}
		if c.run >= minRun {
			try(c.Dir.Turn(true), 1)
			try(c.Dir.Turn(false), 1)
		}
		return out
	}
	done := func(c crucible) bool {
		return c.Pt == end && c.run >= minRun
	}

	path, heat, ok := aoc.Search(crucible{}, next, done)
	if !ok {
		panic("no way to the factory")
	}
	s.Debugf("%d moves", len(path)-1)
	return heat
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return s.minHeat(1, 3)
}

// want=94
func (s solver) D17p2() any {
	return s.minHeat(4, 10)
}

/*
want=71

111111111111
999999999991
999999999991
999999999991
999999999991
*/
func (s solver) D17p2b() any {
	return s.minHeat(4, 10)
}

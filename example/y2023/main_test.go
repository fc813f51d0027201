package main

import (
	"testing"

	aoc "github.com/SvenGroot/AdventOfCode-sub000"
)

const city = `2413432311323
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
`

const ultra = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func TestMinHeat(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		minRun, maxRun int
		want           int
	}{
		{"crucible", city, 1, 3, 102},
		{"ultra", city, 4, 10, 94},
		{"ultra long corridor", ultra, 4, 10, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := solver{aoc.NewPuzzle(tt.input)}
			if got := s.minHeat(tt.minRun, tt.maxRun); got != tt.want {
				t.Errorf("minHeat(%d, %d) = %d, want %d", tt.minRun, tt.maxRun, got, tt.want)
			}
		})
	}
}

// Package mocks holds gomock mocks of the aoc interfaces.
package mocks

import aoc "github.com/SvenGroot/AdventOfCode-sub000"

//go:generate mockgen -destination=mock_graph.go -package=mocks github.com/SvenGroot/AdventOfCode-sub000/mocks StringGraph

// StringGraph is a WeightedGraph with string vertices. mockgen cannot mock
// generic interfaces directly.
type StringGraph interface {
	aoc.WeightedGraph[string]
}

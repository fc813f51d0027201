// Package aoc holds helpers for solving Advent of Code puzzles: a runner
// that checks solutions against the samples in their doc comments, grid
// and graph types, and shortest-path searches over arbitrary vertex types.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples maps method names to the sample in their doc comment. A
// sample without input reuses the input of the previous one.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			if s, ok := parseSample(c.Text); ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded by solvers. Run fills it in before calling each part.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	part    part
	samples map[string]sample
	input   []byte // fixed input; see NewPuzzle
}

// NewPuzzle returns a Puzzle whose Input is always input. It is meant for
// testing solvers without the runner.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{input: []byte(input)}
}

func (p *Puzzle) Input() []byte {
	switch {
	case p.input != nil:
		return p.input
	case p.SampleMode:
		return []byte(p.Sample().input)
	case flagInput != "":
		return MustGet(os.ReadFile(flagInput))
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input. y is the line number,
// starting at 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	for y := 0; s.Scan(); y++ {
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the non-empty lines of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) {
		if line != "" {
			out = append(out, line)
		}
	})
	return out
}

// Grid parses the input as a grid of single digits.
func (p *Puzzle) Grid() Grid[int] {
	return ParseGrid(p.Lines(), Digit)
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.part.method]
	if !ok {
		log.Fatalf("no sample found for %v", p.part.method)
	}
	return s
}

type part struct {
	fn     func() any
	name   string // "1", "2", "2b", ...
	method string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part} and groups
// them by day, with parts in name order.
func extractMethods(x any) map[int][]part {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	days := map[int][]part{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", name, v.Method(i).Type())
		}
		d := Int(m[1])
		days[d] = append(days[d], part{fn: fn, name: m[2], method: name})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b part) int {
			return strings.Compare(a.name, b.name)
		})
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run; all days if negative")
	flag.StringVar(&flagPart, "part", "", "part to run; all parts if empty")
	flag.StringVar(&flagInput, "input", "", "file to read the puzzle input from instead of the cache or the website")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run samples")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip samples")
	flag.BoolVar(&flagDebug, "debug", false, "print debug output")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year, day int, parts []part, samples map[string]sample) {
	p := &Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, pt := range parts {
		if flagPart != "" && pt.name != flagPart {
			continue
		}
		p.part = pt
		for _, sm := range []bool{true, false} {
			if (sm && flagSkipSample) || (!sm && flagOnlySample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Fetch before starting the clock.
				p.Input()
			}
			t0 := time.Now()
			got := pt.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", pt.name, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s sample: %v ❌; want %v\n", pt.name, got, want)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", pt.name, got, took)
		}
	}
}

// Run runs the D{day}p{part} methods of slvr, a pointer to a struct that
// embeds *Puzzle. src is the solver's source code, from which samples are
// extracted: a doc comment of the form
//
//	/*
//	want=42
//
//	sample input
//	*/
//
// makes the part check its answer against the sample before running on
// the real input.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay >= 0 {
		parts, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, flagCurDay, parts, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		runDay(slvr, year, d, days[d], samples)
		fmt.Println()
	}
}

var session = sync.OnceValue(func() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

// fileOrFetch returns the contents of filename, first downloading them
// from url if the file does not exist.
func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

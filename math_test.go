package aoc

import (
	"reflect"
	"testing"
)

func TestParseNumbers(t *testing.T) {
	if got, want := Digits("1163"), []int{1, 1, 6, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Digits(1163) = %v, want %v", got, want)
	}
	if got, want := Ints(" 12", "-3 ", "0"), []int{12, -3, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ints = %v, want %v", got, want)
	}
	if got := Sum(Ints("4", "5", "-2")...); got != 7 {
		t.Errorf("Sum = %v, want 7", got)
	}
}

func TestDistances(t *testing.T) {
	tests := []struct {
		a, b Pt
		want int
	}{
		{Pt{0, 0}, Pt{0, 0}, 0},
		{Pt{0, 0}, Pt{3, 4}, 7},
		{Pt{-2, 5}, Pt{1, -1}, 9},
	}
	for _, tt := range tests {
		if got := tt.a.MDist(tt.b); got != tt.want {
			t.Errorf("%v.MDist(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.MDist(tt.a); got != tt.want {
			t.Errorf("%v.MDist(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
	if got := AbsDiff(2.5, 4.0); got != 1.5 {
		t.Errorf("AbsDiff(2.5, 4) = %v, want 1.5", got)
	}
}

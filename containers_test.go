package aoc

import (
	"reflect"
	"testing"
)

func TestPQDecreaseKey(t *testing.T) {
	q := MinQueue[string](4)
	items := map[string]*PQI[string]{}
	for _, it := range []*PQI[string]{{V: "a", P: 5}, {V: "b", P: 3}, {V: "c", P: 8}, {V: "d", P: 1}} {
		items[it.V] = it
		q.Push(it)
	}
	items["c"].P = 0
	q.Update(items["c"])

	if got := q.Peek().V; got != "c" {
		t.Errorf("Peek() = %v, want c", got)
	}
	var got []string
	for q.Len() > 0 {
		it := q.Pop()
		if it.Index() != -1 {
			t.Errorf("popped %v has index %d, want -1", it, it.Index())
		}
		got = append(got, it.V)
	}
	if want := []string{"c", "d", "b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pop order = %v, want %v", got, want)
	}
}

func TestStackDrain(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if v, ok := s.Peek(); !ok || v != 3 {
		t.Errorf("Peek() = %v, %v; want 3, true", v, ok)
	}
	if got, want := s.Drain(), []int{3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Drain() = %v, want %v", got, want)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after Drain = %d", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty stack succeeded")
	}
}

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1, 2, 3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return v != 3
	})
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("While visited %v, want %v", got, want)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

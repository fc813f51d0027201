package aoc

// Search runs Dijkstra's algorithm over a graph that is discovered as it
// goes: neighbors is only called for settled vertices, and vertices are
// queued the first time they are seen. This suits state spaces that are
// too large, or too awkward, to enumerate up front.
//
// It returns a cheapest path from src to the first settled vertex for
// which goal returns true, along with its cost. ok is false if every
// reachable vertex was settled without meeting goal.
func Search[V comparable](src V, neighbors func(V) []Neighbor[V], goal func(V) bool) (path []V, cost int, ok bool) {
	items := map[V]*PQI[V]{}
	prev := map[V]V{}
	q := MinQueue[V](0)

	start := &PQI[V]{V: src}
	items[src] = start
	q.Push(start)

	for q.Len() > 0 {
		u := q.Pop()
		if goal(u.V) {
			var s Stack[V]
			for v := u.V; ; {
				s.Push(v)
				p, found := prev[v]
				if !found {
					break
				}
				v = p
			}
			return s.Drain(), u.P, true
		}
		for _, n := range neighbors(u.V) {
			d := u.P + n.Cost
			it, seen := items[n.V]
			switch {
			case !seen:
				it = &PQI[V]{V: n.V, P: d}
				items[n.V] = it
				prev[n.V] = u.V
				q.Push(it)
			case it.Index() != -1 && d < it.P:
				it.P = d
				prev[n.V] = u.V
				q.Update(it)
			}
		}
	}
	return nil, 0, false
}

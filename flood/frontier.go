package flood

import "github.com/katalvlaran/floodsim/grid"

// frontier is the pending-work container driving the iterative strategies.
// Swapping a FIFO for a LIFO changes only the visit order.
type frontier interface {
	push(p grid.Point)
	pop() grid.Point
	len() int
}

// queue is a FIFO over a slice with a moving head.
type queue struct {
	items []grid.Point
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]grid.Point, 0, capacity)}
}

func (q *queue) push(p grid.Point) {
	q.items = append(q.items, p)
}

func (q *queue) pop() grid.Point {
	p := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p
}

func (q *queue) len() int {
	return len(q.items) - q.head
}

// stack is a LIFO over a slice.
type stack struct {
	items []grid.Point
}

func newStack(capacity int) *stack {
	return &stack{items: make([]grid.Point, 0, capacity)}
}

func (s *stack) push(p grid.Point) {
	s.items = append(s.items, p)
}

func (s *stack) pop() grid.Point {
	last := len(s.items) - 1
	p := s.items[last]
	s.items = s.items[:last]
	return p
}

func (s *stack) len() int {
	return len(s.items)
}

// schedule pushes p and fires OnSchedule.
func (w *walker) schedule(f frontier, p grid.Point) {
	w.opts.OnSchedule(p)
	f.push(p)
}

// drain runs the shared queue/stack algorithm:
//  1. Seed f with every on-grid source, without checking floodability.
//  2. Pop a point; skip it if already flooded.
//  3. Mark it if floodable.
//  4. Either way, push each floodable neighbor (up, down, left, right).
//
// Duplicates from multiple directions are expected and dropped by step 2.
// Time: O(R×C), each flooded cell pushes at most four entries.
func (w *walker) drain(f frontier) error {
	for _, s := range w.seeds() {
		w.schedule(f, s)
	}
	for f.len() > 0 {
		p := f.pop()
		if w.state.IsFlooded(p) {
			continue
		}
		if w.floodable(p) {
			if err := w.mark(p); err != nil {
				return err
			}
		}
		for _, n := range p.Neighbors() {
			if w.floodable(n) {
				w.schedule(f, n)
			}
		}
	}
	return nil
}

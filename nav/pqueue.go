package nav

import "container/heap"

// genHeap is a min-heap of arena indices, ordered by the referenced Node's
// Cost().
type genHeap struct {
	indices []int
	a       *arena
}

func (h *genHeap) Len() int { return len(h.indices) }
func (h *genHeap) Less(i, j int) bool {
	return h.a.get(h.indices[i]).Cost() < h.a.get(h.indices[j]).Cost()
}
func (h *genHeap) Swap(i, j int) { h.indices[i], h.indices[j] = h.indices[j], h.indices[i] }
func (h *genHeap) Push(x any)    { h.indices = append(h.indices, x.(int)) }
func (h *genHeap) Pop() any {
	old := h.indices
	n := len(old)
	v := old[n-1]
	h.indices = old[:n-1]
	return v
}

// generationalPQueue is a vector of per-generation min-heaps plus a
// parallel vector of per-generation bias costs. Node costs never change
// once enqueued, but the generation-level bias can change cheaply and
// frequently without reheaping.
type generationalPQueue struct {
	a      *arena
	heaps  []*genHeap
	biases []float32
}

func newGenerationalPQueue(a *arena) *generationalPQueue {
	return &generationalPQueue{a: a}
}

func (q *generationalPQueue) allocate(generation int) {
	for len(q.heaps) <= generation {
		h := &genHeap{a: q.a}
		heap.Init(h)
		q.heaps = append(q.heaps, h)
		q.biases = append(q.biases, DefaultStagnationCost)
	}
}

// enqueue pushes the node at arena index idx into its generation's heap.
func (q *generationalPQueue) enqueue(idx int) {
	n := q.a.get(idx)
	q.allocate(n.Generation)
	heap.Push(q.heaps[n.Generation], idx)
}

// dequeue returns the arena index with the lowest (heap-top cost + bias)
// across all non-empty generation heaps, or ok=false if the queue is
// empty.
func (q *generationalPQueue) dequeue() (idx int, ok bool) {
	bestGen := -1
	var bestCost float32

	for g, h := range q.heaps {
		if h.Len() == 0 {
			continue
		}
		top := q.a.get(h.indices[0])
		cost := top.Cost() + q.biases[g]
		if bestGen == -1 || cost < bestCost {
			bestGen = g
			bestCost = cost
		}
	}

	if bestGen == -1 {
		return 0, false
	}
	return heap.Pop(q.heaps[bestGen]).(int), true
}

// setBias updates the additive cost applied to every node of generation g.
func (q *generationalPQueue) setBias(g int, cost float32) {
	q.allocate(g)
	q.biases[g] = cost
}

func (q *generationalPQueue) empty() bool {
	for _, h := range q.heaps {
		if h.Len() > 0 {
			return false
		}
	}
	return true
}

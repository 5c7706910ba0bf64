package queue

import "sort"

// Item is one donor candidate: its original row and its distance to the
// recipient under the active metric.
type Item struct {
	Row      int
	Distance float64
}

// worse reports whether a ranks after b in the ascending (distance, row)
// order. The row tie break makes the order strict.
func worse(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Row > b.Row
}

// DonorHeap is a bounded max-heap that retains the k nearest candidates
// seen so far. Value-based storage, no pointer indirection.
type DonorHeap struct {
	k     int
	items []Item
}

// NewDonorHeap returns a heap bounded to the k nearest candidates.
func NewDonorHeap(k int) *DonorHeap {
	return &DonorHeap{k: k, items: make([]Item, 0, k+1)}
}

// Len returns the number of retained candidates.
func (h *DonorHeap) Len() int { return len(h.items) }

// Offer considers a candidate, evicting the current worst when full.
func (h *DonorHeap) Offer(row int, dist float64) {
	it := Item{Row: row, Distance: dist}
	if len(h.items) == h.k {
		if !worse(h.items[0], it) {
			return
		}
		h.items[0] = it
		h.siftDown(0)
		return
	}
	h.items = append(h.items, it)
	h.siftUp(len(h.items) - 1)
}

// Sorted returns the retained candidates ascending by (distance, row).
func (h *DonorHeap) Sorted() []Item {
	out := append([]Item(nil), h.items...)
	sort.Slice(out, func(i, j int) bool { return worse(out[j], out[i]) })
	return out
}

func (h *DonorHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !worse(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *DonorHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		worst := l
		if r := l + 1; r < n && worse(h.items[r], h.items[l]) {
			worst = r
		}
		if !worse(h.items[worst], h.items[i]) {
			return
		}
		h.items[i], h.items[worst] = h.items[worst], h.items[i]
		i = worst
	}
}

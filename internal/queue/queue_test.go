package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonorHeap(t *testing.T) {
	t.Run("KeepsNearest", func(t *testing.T) {
		h := NewDonorHeap(3)
		for row, dist := range []float64{5, 1, 4, 2, 3} {
			h.Offer(row, dist)
		}
		got := h.Sorted()
		require.Len(t, got, 3)
		assert.Equal(t, []Item{{Row: 1, Distance: 1}, {Row: 3, Distance: 2}, {Row: 4, Distance: 3}}, got)
	})

	t.Run("FewerCandidatesThanK", func(t *testing.T) {
		h := NewDonorHeap(10)
		h.Offer(7, 0.5)
		h.Offer(2, 0.25)
		got := h.Sorted()
		assert.Equal(t, []Item{{Row: 2, Distance: 0.25}, {Row: 7, Distance: 0.5}}, got)
	})

	t.Run("TieBreakByRow", func(t *testing.T) {
		h := NewDonorHeap(2)
		h.Offer(9, 1)
		h.Offer(3, 1)
		h.Offer(6, 1)
		got := h.Sorted()
		assert.Equal(t, []Item{{Row: 3, Distance: 1}, {Row: 6, Distance: 1}}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		h := NewDonorHeap(4)
		assert.Zero(t, h.Len())
		assert.Empty(t, h.Sorted())
	})
}

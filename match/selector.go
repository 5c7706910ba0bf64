package match

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/internal/queue"
	"github.com/hupe1980/mimatch/internal/rng"
	"github.com/hupe1980/mimatch/schema"
)

// nearestDonors ranks the partition's donors by distance to the recipient
// and returns the k nearest, ascending by (distance, original row).
func nearestDonors(scorer distance.Scorer, recipient int, donors *roaring.Bitmap, k int) []queue.Item {
	h := queue.NewDonorHeap(k)
	donors.Iterate(func(d uint32) bool {
		h.Offer(int(d), scorer.Distance(recipient, int(d)))
		return true
	})
	return h.Sorted()
}

// pickDonor applies the selection policy to the ranked donor pool.
//
// Policy 2 weights candidates by inverse distance, 1/(d+eps); the eps floor
// keeps an exact-match donor from absorbing all probability mass.
func pickDonor(pool []queue.Item, policy int, r *rng.Source, eps float64) int {
	switch policy {
	case schema.PolicyUniform:
		return pool[r.Intn(len(pool))].Row
	case schema.PolicyWeighted:
		weights := make([]float64, len(pool))
		var total float64
		for i, it := range pool {
			weights[i] = 1 / (it.Distance + eps)
			total += weights[i]
		}
		u := r.Float64() * total
		for i, w := range weights {
			u -= w
			if u < 0 {
				return pool[i].Row
			}
		}
		return pool[len(pool)-1].Row
	default: // schema.PolicyNearest
		return pool[0].Row
	}
}

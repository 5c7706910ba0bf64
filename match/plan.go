package match

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Partition is one donor/recipient split of a group's eligible rows. For a
// group without a match variable there is exactly one partition covering
// the full eligibility masks.
type Partition struct {
	// Value is the match-variable value shared by the partition's rows;
	// zero and meaningless when the group has no match variable.
	Value float64
	// Donors and Recipients are row sets within the group's eligibility
	// masks. Every partition with recipients also has donors.
	Donors     *roaring.Bitmap
	Recipients *roaring.Bitmap
}

// GroupPlan is the reusable per-group analysis result: eligibility masks,
// partitions, and the working values needed by the distance engine and the
// assembler. It is read-only after Analyze returns.
type GroupPlan struct {
	// Cols is the group's canonical column tuple.
	Cols []int
	// Weights is the per-dimension weight vector, nil for uniform.
	Weights []float64
	// MatchVar is the partitioning column, schema.NoMatchVar for none.
	MatchVar int

	// CompleteR marks rows eligible as donors: predictor set available and
	// every group column observed. CompleteW marks eligible recipients:
	// predictor set available and every group column an imputation target.
	CompleteR *roaring.Bitmap
	CompleteW *roaring.Bitmap

	// Partitions holds the donor/recipient splits; a single entry when the
	// group has no match variable.
	Partitions []Partition

	// Working holds, per group column, the working values for every row:
	// observed data for donors, reference-imputation values for targets.
	// The assembler copies donor entries from here.
	Working [][]float64

	// ImpIndex maps a target row to its row offset within the group
	// columns' imputed-value matrices.
	ImpIndex map[int]int
}

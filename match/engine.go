package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/internal/rng"
	"github.com/hupe1980/mimatch/model"
	"github.com/hupe1980/mimatch/schema"
)

// Engine executes the matching passes for a set of analyzed group plans.
type Engine struct {
	// Options is the validated matching configuration.
	Options schema.Options
	// Seed is the base seed; every (group, imputation) pass derives an
	// independent stream from it.
	Seed int64
	// Parallelism bounds the number of concurrent passes; <= 0 means
	// GOMAXPROCS.
	Parallelism int
	// Logger receives per-pass debug logs; nil disables logging.
	Logger *slog.Logger
}

// Run matches every recipient of every plan for all completed imputations,
// writing the selected donor patterns into c's imputed-value matrices.
// Passes run concurrently on a bounded errgroup; each pass writes to
// disjoint positions, so the container needs no locking. The first failing
// pass cancels the rest.
func (e *Engine) Run(ctx context.Context, c *model.Container, src model.PredictionSource, plans []*GroupPlan) error {
	g, ctx := errgroup.WithContext(ctx)
	limit := e.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for gi, plan := range plans {
		for imp := 0; imp < c.M; imp++ {
			gi, plan, imp := gi, plan, imp
			g.Go(func() error {
				return e.runPass(ctx, c, src, gi, plan, imp)
			})
		}
	}
	return g.Wait()
}

// runPass matches all recipients of one group under one completed
// imputation.
func (e *Engine) runPass(ctx context.Context, c *model.Container, src model.PredictionSource, gi int, plan *GroupPlan, imp int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	preds := make([][]float64, len(plan.Cols))
	for k, col := range plan.Cols {
		p, err := src.Predictions(col, imp)
		if err != nil {
			return fmt.Errorf("group %s: predictions for column %d, imputation %d: %w",
				schema.GroupTuple(plan.Cols), col, imp, err)
		}
		if len(p) != c.Rows() {
			return fmt.Errorf("%w: group %s: predictions for column %d have %d rows, want %d",
				model.ErrConsistency, schema.GroupTuple(plan.Cols), col, len(p), c.Rows())
		}
		preds[k] = p
	}

	stream := rng.Derive(e.Seed, gi, imp)
	params := distance.Params{Ridge: e.Options.Ridge, Eps: e.Options.Eps, MaxCor: e.Options.MaxCor}

	matched := 0
	for _, part := range plan.Partitions {
		donors := make([]int, 0, part.Donors.GetCardinality())
		part.Donors.Iterate(func(d uint32) bool {
			donors = append(donors, int(d))
			return true
		})
		scorer, err := distance.New(e.Options.Metric, preds, plan.Working, plan.Weights, donors, params)
		if err != nil {
			return fmt.Errorf("group %s: %w", schema.GroupTuple(plan.Cols), err)
		}
		part.Recipients.Iterate(func(w uint32) bool {
			pool := nearestDonors(scorer, int(w), part.Donors, e.Options.Donors)
			donor := pickDonor(pool, e.Options.Policy, stream, e.Options.Eps)
			assemble(c, plan, int(w), donor, imp)
			matched++
			return true
		})
	}

	if e.Logger != nil {
		e.Logger.DebugContext(ctx, "matching pass completed",
			"group", schema.GroupTuple(plan.Cols),
			"imputation", imp,
			"partitions", len(plan.Partitions),
			"matched", matched,
		)
	}
	return nil
}

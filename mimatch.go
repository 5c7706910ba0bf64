package mimatch

import (
	"context"
	"fmt"

	"github.com/hupe1980/mimatch/distance"
	"github.com/hupe1980/mimatch/match"
	"github.com/hupe1980/mimatch/model"
	"github.com/hupe1980/mimatch/schema"
)

// Match re-matches every configured column group of c jointly against
// fully observed donor rows, for every completed imputation, and writes the
// selected donor patterns into c's imputed-value matrices.
//
// All validation and eligibility analysis completes before the first
// matching pass starts; on error the container is untouched. The caller
// owns c before and after.
func Match(ctx context.Context, c *model.Container, src model.PredictionSource, optFns ...Option) error {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	if c == nil {
		return fmt.Errorf("%w: nil container", ErrSchema)
	}
	if src == nil {
		return fmt.Errorf("%w: nil prediction source", ErrSchema)
	}
	if err := c.Check(); err != nil {
		return err
	}
	if c.Params != nil {
		if err := c.Params.Validate(c); err != nil {
			return err
		}
	}
	if o.metricName != "" {
		m, err := distance.ParseMetric(o.metricName)
		if err != nil {
			return err
		}
		o.matching.Metric = m
	}

	opts, err := schema.ValidateOptions(o.matching)
	if err != nil {
		return err
	}
	groups, err := schema.ValidateGroups(c, o.groups)
	if err != nil {
		return err
	}
	weights, err := schema.ValidateWeights(o.weights, groups)
	if err != nil {
		return err
	}
	matchVars, err := schema.ValidateMatchVars(c, groups, o.matchVars)
	if err != nil {
		return err
	}

	plans := make([]*match.GroupPlan, len(groups))
	for g := range groups {
		plan, err := match.Analyze(c, groups[g], weights[g], matchVars[g])
		if err != nil {
			return err
		}
		o.logger.LogAnalyze(ctx, schema.GroupTuple(plan.Cols),
			plan.CompleteR.GetCardinality(), plan.CompleteW.GetCardinality(), len(plan.Partitions))
		plans[g] = plan
	}

	engine := &match.Engine{
		Options:     opts,
		Seed:        o.seed,
		Parallelism: o.parallelism,
		Logger:      o.logger.Logger,
	}
	err = engine.Run(ctx, c, src, plans)
	o.logger.LogMatch(ctx, len(groups), c.M, err)
	return err
}

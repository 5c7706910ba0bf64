// Package distance implements the donor-distance metrics used by the
// matching engine.
//
// A Scorer is constructed once per (group, partition, completed imputation)
// pass from the group's predicted values and the eligible donor pool, then
// queried for recipient/donor pairs. All metrics produce a strict total
// order when combined with the engine's ascending row-index tie break.
package distance

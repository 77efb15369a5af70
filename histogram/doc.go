// Package histogram builds equal-count bins over one attribute of a
// dataset.Dataset and tracks per-bin aggregate statistics as the projection
// search's sliding window adds and removes rows.
//
// Two concrete Aggregator implementations exist: Discrete (per-class counts,
// for classification targets) and Numeric (sum/sum-of-squares, for
// regression targets). Both satisfy the same Aggregator interface so the
// search package and recttree package never need to know which one they are
// driving — the capability-trait approach DESIGN NOTES recommends in place
// of runtime polymorphism over a single histogram type.
package histogram

// Package recttree finds the best contiguous, admissible range of bins
// within a single sweep column, using an implicit segment tree.
//
// Each leaf holds one bin's histogram.Stats; internal nodes hold three
// candidate ranges — the best range fully inside the subtree (Best), the
// best range anchored at the subtree's left edge (Prefix), and the best
// anchored at its right edge (Suffix) — following the classic "maximum
// subarray" segment tree, generalized from a sum comparison to an
// Aggregator's Admissible/Score gate. Candidates are grown only from bins
// that are admissible on their own (see Tree.Best). Nodes hold no pointers to each
// other; the tree is a flat []Node indexed by the usual 2*i/2*i+1
// implicit layout, and merge is a pure function of two child Nodes.
package recttree

package recttree

import "github.com/arborly/projectionbox/histogram"

// Tree is an implicit (pointer-free) segment tree over B bins, padded up
// to the next power of two so every internal node has exactly two
// children. nodes[1] is the root; node i's children are 2*i and 2*i+1.
// Padding leaves carry Width 0 and an empty Stats, so they never win a
// merge and never contribute to a range's width.
type Tree struct {
	nodes []Node
	agg   histogram.Aggregator
	size  int // next power of two >= numLeaves
	b     int // real leaf count
}

// New builds a Tree over b bins, all leaves empty. Callers populate real
// data via SetLeaf as the sweep's window slides.
func New(b int, agg histogram.Aggregator) *Tree {
	size := ceilPow2(b)
	t := &Tree{
		nodes: make([]Node, 2*size),
		agg:   agg,
		size:  size,
		b:     b,
	}
	for k := 0; k < size; k++ {
		width := 0
		if k < b {
			width = 1
		}
		t.nodes[size+k] = leafNode(histogram.Stats{}, width, k, agg)
	}
	for i := size - 1; i >= 1; i-- {
		t.nodes[i] = merge(t.nodes[2*i], t.nodes[2*i+1], agg)
	}
	return t
}

// SetLeaf replaces bin k's Stats and propagates the change up to the
// root. Complexity: O(log B).
func (t *Tree) SetLeaf(k int, s histogram.Stats) error {
	if k < 0 || k >= t.b {
		return ErrInvalidLeaf
	}
	idx := t.size + k
	t.nodes[idx] = leafNode(s, 1, k, t.agg)
	for idx > 1 {
		idx /= 2
		t.nodes[idx] = merge(t.nodes[2*idx], t.nodes[2*idx+1], t.agg)
	}
	return nil
}

// Best returns the root's best admissible contiguous range and whether
// one was found. Every candidate range contains at least one bin that is
// admissible on its own: a range made only of bins that are each
// inadmissible (for example two bins that reach the support threshold
// only together) is never considered, and found is false whenever no
// single bin is admissible.
func (t *Tree) Best() (Range, bool) {
	root := t.nodes[1]
	return root.Best, root.Best.Valid
}

func leafNode(s histogram.Stats, width, pos int, agg histogram.Aggregator) Node {
	n := Node{Start: pos, End: pos, Width: width, Leaf: s, Total: s}
	if width == 0 || s.Total == 0 {
		return n
	}
	if agg.Admissible(s) {
		score, tie := agg.Score(s)
		r := Range{Valid: true, Stats: s, Score: score, Tie: tie, Start: pos, End: pos, Width: width}
		n.Best, n.Prefix, n.Suffix = r, r, r
	}
	return n
}

// merge combines two sibling subtrees into their parent, per the
// classic "maximum subarray" segment tree generalized from a sum
// comparison to Aggregator.Admissible/Score: Prefix/Suffix/Best each
// consider the two children's own candidates plus the new range formed
// by crossing the L/R boundary.
func merge(left, right Node, agg histogram.Aggregator) Node {
	total := left.Total.Merge(right.Total)
	n := Node{Start: left.Start, End: right.End, Width: left.Width + right.Width, Total: total}

	prefixCross := Range{}
	if right.Prefix.Valid {
		prefixCross = evalRange(left.Total.Merge(right.Prefix.Stats), left.Start, right.Prefix.End, agg)
	}
	n.Prefix = better(left.Prefix, prefixCross)

	suffixCross := Range{}
	if left.Suffix.Valid {
		// End at right's last real leaf, never on a padding leaf.
		end := right.Start + right.Width - 1
		suffixCross = evalRange(left.Suffix.Stats.Merge(right.Total), left.Suffix.Start, end, agg)
	}
	n.Suffix = better(right.Suffix, suffixCross)

	boundaryCross := Range{}
	if left.Suffix.Valid && right.Prefix.Valid {
		boundaryCross = evalRange(left.Suffix.Stats.Merge(right.Prefix.Stats), left.Suffix.Start, right.Prefix.End, agg)
	}
	n.Best = better(better(better(left.Best, right.Best), boundaryCross), better(n.Prefix, n.Suffix))
	return n
}

func evalRange(stats histogram.Stats, start, end int, agg histogram.Aggregator) Range {
	if !agg.Admissible(stats) {
		return Range{}
	}
	score, tie := agg.Score(stats)
	return Range{Valid: true, Stats: stats, Score: score, Tie: tie, Start: start, End: end, Width: end - start + 1}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

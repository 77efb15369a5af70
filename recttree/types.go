package recttree

import "github.com/arborly/projectionbox/histogram"

// Range is one admissible contiguous run of bins found somewhere in a
// subtree: its merged Stats, the Aggregator-derived (Score, Tie), and
// its leaf-index span [Start, End] (inclusive; Width = End-Start+1, the
// second tiebreak: narrower wins). Valid is false for "no admissible
// range here".
type Range struct {
	Valid      bool
	Stats      histogram.Stats
	Score      float64
	Tie        float64
	Start, End int
	Width      int
}

// better returns whichever of a, b is the preferred range: higher Score
// wins, ties broken by higher Tie (support), further ties broken by
// smaller Width (narrower range), and a kept over b on a full tie so the
// choice is stable and reproducible (§8 determinism).
func better(a, b Range) Range {
	if !a.Valid {
		return b
	}
	if !b.Valid {
		return a
	}
	if a.Score != b.Score {
		if a.Score > b.Score {
			return a
		}
		return b
	}
	if a.Tie != b.Tie {
		if a.Tie > b.Tie {
			return a
		}
		return b
	}
	if b.Width < a.Width {
		return b
	}
	return a
}

// Node is one entry of the implicit array: the subtree's raw leaf Stats
// (meaningful only when Width == 1), its merged Total, the leaf-index
// span [Start, End] it geometrically covers (fixed at construction,
// regardless of admissibility), and the three candidate ranges
// (Best/Prefix/Suffix) described in doc.go.
type Node struct {
	Start, End int
	Width      int
	Leaf       histogram.Stats
	Total      histogram.Stats
	Best       Range
	Prefix     Range
	Suffix     Range
}

package histogram

import "github.com/arborly/projectionbox/dataset"

// BuildBins partitions the active rows of ds's column col into B equal-count
// bins (B == binsize, per §3: "B bins (B = configured binsize)"), scanning
// the attribute's ascending sort permutation and slicing it into ⌈N/B⌉-row
// chunks, restricted to the active subset per §4.2.
//
// Complexity: O(N) where N = ds.NumRows() (one pass over the permutation).
func BuildBins(ds *dataset.Dataset, col, binsize int) (*Bins, error) {
	perm := ds.Perm(col)
	activeRows := ds.ActiveRows()
	isActive := make([]bool, ds.NumRows())
	for _, r := range activeRows {
		isActive[r] = true
	}

	ordered := make([]int, 0, len(activeRows))
	for _, r := range perm {
		if isActive[r] {
			ordered = append(ordered, r)
		}
	}
	n := len(ordered)
	if n < 2 || binsize <= 0 {
		return nil, ErrDegenerateBins
	}

	chunkSize := (n + binsize - 1) / binsize
	rowBin := make([]int, ds.NumRows())
	for i := range rowBin {
		rowBin[i] = -1
	}
	edges := make([]BinEdge, binsize)
	for b := range edges {
		edges[b] = BinEdge{Min: 0, Max: -1} // sentinel for "never populated"
	}

	for pos, row := range ordered {
		bin := pos / chunkSize
		if bin >= binsize {
			bin = binsize - 1 // absorb rounding remainder into the last bin
		}
		rowBin[row] = bin
		v := ds.Value(row, col)
		if edges[bin].Max < edges[bin].Min {
			edges[bin] = BinEdge{Min: v, Max: v}
		} else {
			if v < edges[bin].Min {
				edges[bin].Min = v
			}
			if v > edges[bin].Max {
				edges[bin].Max = v
			}
		}
	}

	// Any bin that received zero rows degenerates the pair. With
	// ⌈n/binsize⌉-row chunks this happens whenever the chunks run out before
	// the last bin: always when n < binsize, and also for some n >= binsize
	// (n=9 with binsize=4 fills only bins 0-2).
	for _, e := range edges {
		if e.Max < e.Min {
			return nil, ErrDegenerateBins
		}
	}

	return &Bins{Edges: edges, RowBin: rowBin}, nil
}

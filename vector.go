/*
 *  vector.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
)

// State is the per-position call of a molecule
type State int8

const (
	// Missing means the molecule has no data at this position
	Missing State = -1
	// Linker is inside the read span but outside every block
	Linker State = 0
	// Occupied is covered by a block, i.e. a nucleosome
	Occupied State = 1
)

// DefaultSentinel replaces Missing before clustering. Sitting halfway between
// Linker and Occupied, an unknown position is equally far from both states.
// A negative sentinel such as -1 instead pulls sparse reads into their own
// cluster.
const DefaultSentinel = 0.5

// OccupancyVector has one State per position of a Region, index 0 is Region.Start
type OccupancyVector []State

// ImputedVector is an OccupancyVector with Missing replaced by a number
type ImputedVector []float64

// BuildVector converts a read into an OccupancyVector over region. The read
// span is marked Linker first, then blocks are overlaid as Occupied. Both
// the span and each block are closed intervals.
func BuildVector(rec *ReadRecord, region Region) OccupancyVector {
	v := make(OccupancyVector, region.Len())
	for i := range v {
		v[i] = Missing
	}
	if !region.Matches(rec.Chrom) {
		return v
	}

	fill := func(start, end int, state State) {
		start, end, ok := region.Clip(start, end)
		if !ok {
			return
		}
		for pos := start; pos <= end; pos++ {
			v[pos-region.Start] = state
		}
	}

	fill(rec.Start, rec.Stop, Linker)
	for i, offset := range rec.BlockOffsets {
		blockStart := rec.Start + offset
		fill(blockStart, blockStart+rec.BlockLengths[i], Occupied)
	}
	return v
}

// CountMissing returns the number of Missing positions
func (v OccupancyVector) CountMissing() int {
	n := 0
	for _, x := range v {
		if x == Missing {
			n++
		}
	}
	return n
}

// CoverageFraction is the fraction of positions that are not Missing
func CoverageFraction(v OccupancyVector) (float64, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("%w: coverage of an empty vector, region has no positions", ErrValidation)
	}
	return 1. - float64(v.CountMissing())/float64(len(v)), nil
}

// Retain checks if the vector covers strictly more than threshold of the region
func Retain(v OccupancyVector, threshold float64) (bool, error) {
	frac, err := CoverageFraction(v)
	if err != nil {
		return false, err
	}
	return frac > threshold, nil
}

// Impute replaces Missing with sentinel, Linker and Occupied become 0 and 1
func Impute(v OccupancyVector, sentinel float64) ImputedVector {
	ans := make(ImputedVector, len(v))
	for i, x := range v {
		if x == Missing {
			ans[i] = sentinel
		} else {
			ans[i] = float64(x)
		}
	}
	return ans
}

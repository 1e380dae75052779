/*
 *  region.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
)

// MaxRegionLen bounds the number of positions of a region, every read gets a
// vector this long
const MaxRegionLen = 1 << 28

// Region is the closed interval [Start, End] all occupancy vectors are
// built against. Chrom is optional, an empty Chrom matches every record.
type Region struct {
	Chrom string
	Start int
	End   int
}

// NewRegion validates the coordinates and returns the Region
func NewRegion(chrom string, start, end int) (Region, error) {
	if start >= end {
		return Region{}, fmt.Errorf("%w: start coordinate (%d) must be less than end coordinate (%d)",
			ErrValidation, start, end)
	}
	// end - start wraps around to negative on overflow
	if span := end - start; span < 0 || span >= MaxRegionLen {
		return Region{}, fmt.Errorf("%w: region %d-%d is longer than %d positions",
			ErrValidation, start, end, MaxRegionLen)
	}
	return Region{Chrom: chrom, Start: start, End: end}, nil
}

// Len is the number of positions covered by the region, i.e. the vector length
func (r Region) Len() int {
	return r.End - r.Start + 1
}

// Contains checks if pos falls inside the region
func (r Region) Contains(pos int) bool {
	return pos >= r.Start && pos <= r.End
}

// Clip restricts [start, end] to the region. The returned flag is false
// when the two intervals do not overlap.
func (r Region) Clip(start, end int) (int, int, bool) {
	start = max(start, r.Start)
	end = min(end, r.End)
	return start, end, start <= end
}

// Matches checks if a record on chrom belongs to this region
func (r Region) Matches(chrom string) bool {
	return r.Chrom == "" || r.Chrom == chrom
}

// String outputs the string representation of the Region
func (r Region) String() string {
	if r.Chrom == "" {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

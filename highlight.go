/*
 *  highlight.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"strings"
)

// Highlight is a sub-interval of the region to be marked on the plot,
// usually a gene body. Start and End are always inside the region.
type Highlight struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Strand string `json:"strand"`
}

// ParseHighlight parses `{start}-{end}:{strand}` and clamps the interval to region.
// A leading minus sign on start is read as a negative coordinate, so
// "-50-99999:+" is [-50, 99999] on the plus strand. A reversed interval, or
// one that does not overlap the region, is rejected.
func ParseHighlight(s string, region Region) (Highlight, error) {
	interval := s
	strand := ""
	if i := strings.LastIndex(interval, ":"); i >= 0 {
		interval, strand = interval[:i], interval[i+1:]
	}
	// Skip a sign on start when searching for the separator
	sep := strings.Index(interval[min(1, len(interval)):], "-")
	if sep < 0 {
		return Highlight{}, &ParseError{Field: "highlight", Value: s,
			Reason: "expected format {start}-{end}:{strand}"}
	}
	sep += min(1, len(interval))
	start, err := parseInt("highlight start", interval[:sep])
	if err != nil {
		return Highlight{}, err
	}
	end, err := parseInt("highlight end", interval[sep+1:])
	if err != nil {
		return Highlight{}, err
	}
	if start > end {
		return Highlight{}, &ParseError{Field: "highlight", Value: s,
			Reason: "start is past end"}
	}
	start, end, ok := region.Clip(start, end)
	if !ok {
		return Highlight{}, &ParseError{Field: "highlight", Value: s,
			Reason: "does not overlap region " + region.String()}
	}
	return Highlight{Start: start, End: end, Strand: strand}, nil
}

// ParseHighlights parses all the highlight specs against region
func ParseHighlights(specs []string, region Region) ([]Highlight, error) {
	highlights := make([]Highlight, 0, len(specs))
	for _, s := range specs {
		h, err := ParseHighlight(s, region)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, h)
	}
	return highlights, nil
}

// Colors returns the colors of the 5' and 3' boundary lines
func (h Highlight) Colors() (string, string) {
	switch h.Strand {
	case "+":
		return "green", "red"
	case "-":
		return "red", "green"
	}
	return "black", "black"
}

// Offsets returns Start and End relative to the region start, i.e. matrix columns
func (h Highlight) Offsets(region Region) (int, int) {
	return h.Start - region.Start, h.End - region.Start
}

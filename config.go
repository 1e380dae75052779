/*
 *  config.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
	"path/filepath"
)

// Config holds every knob of a cluster run. It is fixed once the run starts.
type Config struct {
	Input      string
	OutDir     string
	Chrom      string
	Start      int
	End        int
	Threshold  float64
	K          int
	Seed       int64
	Sentinel   float64
	MaxIter    int
	NInit      int
	Strand     string
	Highlights []string
	Title      string
}

// NewConfig returns a Config with the defaults filled in
func NewConfig(input string, start, end int) Config {
	return Config{
		Input:     input,
		Start:     start,
		End:       end,
		Threshold: DefaultThreshold,
		K:         DefaultK,
		Seed:      DefaultSeed,
		Sentinel:  DefaultSentinel,
		MaxIter:   DefaultMaxIter,
		NInit:     DefaultNInit,
		Title:     DefaultTitle,
	}
}

// Validate checks the options before any input is touched
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: no input bedfile given", ErrValidation)
	}
	if _, err := NewRegion(c.Chrom, c.Start, c.End); err != nil {
		return err
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: coverage threshold %g is outside [0, 1]", ErrValidation, c.Threshold)
	}
	if c.K <= 0 {
		return fmt.Errorf("%w: k = %d, must be at least 1", ErrInvalidK, c.K)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: max iterations %d must be positive", ErrValidation, c.MaxIter)
	}
	if c.NInit <= 0 {
		return fmt.Errorf("%w: number of k-means restarts %d must be positive", ErrValidation, c.NInit)
	}
	switch c.Strand {
	case "", "+", "-":
	default:
		return fmt.Errorf("%w: strand %q must be one of +, -", ErrValidation, c.Strand)
	}
	return nil
}

// Region returns the validated region of the run
func (c *Config) Region() (Region, error) {
	return NewRegion(c.Chrom, c.Start, c.End)
}

// OutputDir defaults to the directory of the input
func (c *Config) OutputDir() string {
	if c.OutDir != "" {
		return c.OutDir
	}
	return filepath.Dir(c.Input)
}

/*
 *  base.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
	"os"
	"path"
	"strings"

	logging "github.com/op/go-logging"
)

const (
	// Version is the current version of smfclust
	Version = "0.1.0"
	// DefaultThreshold is the minimum fraction of the region a read must cover
	DefaultThreshold = 0.9
	// DefaultK is the default number of clusters
	DefaultK = 3
	// DefaultSeed seeds the k-means initialization
	DefaultSeed = 42
	// DefaultMaxIter caps the Lloyd iterations of a single k-means run
	DefaultMaxIter = 300
	// DefaultNInit is the number of k-means restarts
	DefaultNInit = 10
	// DefaultTol is the relative centroid shift that counts as converged
	DefaultTol = 1e-4
	// DefaultTitle is the figure title handed to the plotter
	DefaultTitle = "Region name"
)

var log = logging.MustGetLogger("smfclust")
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Backend is the default stderr output
var Backend = logging.NewLogBackend(os.Stderr, "", 0)

// BackendFormatter contains the fancy debug formatter
var BackendFormatter = logging.NewBackendFormatter(Backend, format)

// SetVerbose switches between NOTICE and DEBUG output
func SetVerbose(verbose bool) {
	leveled := logging.AddModuleLevel(BackendFormatter)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.NOTICE, "")
	}
	logging.SetBackend(leveled)
}

// RemoveExt returns the substring minus the extension
func RemoveExt(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

// Stem returns the base name minus the extension, a trailing .gz is dropped first
func Stem(filename string) string {
	base := path.Base(filename)
	base = strings.TrimSuffix(base, ".gz")
	return RemoveExt(base)
}

// Percentage prints a human readable message of the percentage
func Percentage(a, b int) string {
	if b == 0 {
		return fmt.Sprintf("%d of %d", a, b)
	}
	return fmt.Sprintf("%d of %d (%.1f %%)", a, b, float64(a)*100./float64(b))
}

// min gets the minimum for two ints
func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// max gets the maximum for two ints
func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

/*
 *  strand_test.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tanghaibao/smfclust"
)

func TestStrandSplitter(t *testing.T) {
	s := smfclust.StrandSplitter{Bedfile: filepath.Join("tests", "test.bed"), OutDir: t.TempDir()}
	if err := s.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	expectedCounts := []int{4, 3, 1}
	expectedTracks := []string{"test.plus", "test.minus", "test.unknown"}
	for i, filename := range s.OutBedfiles {
		lines := readLines(t, filename)
		if len(lines)-1 != expectedCounts[i] || s.Counts[i] != expectedCounts[i] {
			t.Errorf("`%s`: expected %d reads, got %d", filename, expectedCounts[i], len(lines)-1)
		}
		if lines[0] != strings.TrimSuffix(smfclust.TrackHeader(expectedTracks[i]), "\n") {
			t.Errorf("`%s`: unexpected track line %q", filename, lines[0])
		}
	}
}

func TestStrandSplitterMissingFile(t *testing.T) {
	s := smfclust.StrandSplitter{Bedfile: filepath.Join("tests", "nonexistent.bed"), OutDir: t.TempDir()}
	if err := s.Run(); !errors.Is(err, smfclust.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}

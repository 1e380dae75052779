/*
 *  cli_test.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tanghaibao/smfclust"
)

func TestClusterCommand(t *testing.T) {
	outdir := t.TempDir()
	err := smfclust.ExecuteArgs([]string{"cluster",
		"-i", filepath.Join("tests", "test.bed"), "-s", "100", "-e", "139",
		"-n", "2", "--seed", "11", "--highlight", "110-120:+", "-o", outdir})
	if err != nil {
		t.Fatalf("cluster failed: %v", err)
	}
	for _, name := range []string{"cluster0.test.bed", "cluster1.test.bed", "test.cluster.json"} {
		if _, err := os.Stat(filepath.Join(outdir, name)); err != nil {
			t.Errorf("Missing output: %v", err)
		}
	}
}

func TestClusterCommandInvalidRegion(t *testing.T) {
	outdir := t.TempDir()
	err := smfclust.ExecuteArgs([]string{"cluster",
		"-i", filepath.Join("tests", "test.bed"), "-s", "139", "-e", "100", "-o", outdir})
	if !errors.Is(err, smfclust.ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(outdir, "cluster0.test.bed")); !os.IsNotExist(err) {
		t.Error("No output should be written for an invalid region")
	}
}

func TestClusterCommandLowCoverage(t *testing.T) {
	err := smfclust.ExecuteArgs([]string{"cluster",
		"-i", filepath.Join("tests", "test.bed"), "-s", "100", "-e", "139",
		"-p", "1", "-o", t.TempDir()})
	if !errors.Is(err, smfclust.ErrInsufficientData) {
		t.Fatalf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestSplitStrandCommand(t *testing.T) {
	outdir := t.TempDir()
	err := smfclust.ExecuteArgs([]string{"split-strand", "-i", filepath.Join("tests", "test.bed"), "-o", outdir})
	if err != nil {
		t.Fatalf("split-strand failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outdir, "test.minus.bed")); err != nil {
		t.Errorf("Missing output: %v", err)
	}
}

func TestMainExitCode(t *testing.T) {
	if code := smfclust.Main([]string{"--version"}); code != 0 {
		t.Errorf("--version: expected exit code 0, got %d", code)
	}
	code := smfclust.Main([]string{"cluster",
		"-i", filepath.Join("tests", "test.bed"), "-s", "139", "-e", "100", "-o", t.TempDir()})
	if code != 1 {
		t.Errorf("Invalid region: expected exit code 1, got %d", code)
	}
}

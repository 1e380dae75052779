/*
 *  record_test.go
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

func TestParseRecord(t *testing.T) {
	line := "chr1\t1000\t1650\tread1\t0\t+\t1000\t1650\t0,0,0\t3\t147,150,146\t12,250,480\n"
	rec, err := smfclust.ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if rec.Chrom != "chr1" || rec.Start != 1000 || rec.Stop != 1650 || rec.Strand != "+" {
		t.Fatalf("Unexpected record %+v", rec)
	}
	if len(rec.BlockLengths) != 3 || rec.BlockLengths[2] != 146 || rec.BlockOffsets[1] != 250 {
		t.Fatalf("Unexpected blocks %v %v", rec.BlockLengths, rec.BlockOffsets)
	}
	if rec.Line != strings.TrimSuffix(line, "\n") {
		t.Errorf("Line should be kept verbatim, got %q", rec.Line)
	}
}

func TestParseRecordTrailingComma(t *testing.T) {
	rec, err := smfclust.ParseRecord("chr1\t0\t50\tr\t0\t-\t0\t50\t0,0,0\t2\t10,10,\t0,30,")
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if len(rec.BlockLengths) != 2 || len(rec.BlockOffsets) != 2 {
		t.Fatalf("Expected 2 blocks, got %v %v", rec.BlockLengths, rec.BlockOffsets)
	}
}

func TestParseRecordErrors(t *testing.T) {
	bad := map[string]string{
		"too few fields":  "chr1\t0\t50\tr\t0\t+",
		"bad start":       "chr1\tx\t50\tr\t0\t+\t0\t50\t0,0,0\t1\t10\t0",
		"bad stop":        "chr1\t0\t5.5\tr\t0\t+\t0\t50\t0,0,0\t1\t10\t0",
		"bad block size":  "chr1\t0\t50\tr\t0\t+\t0\t50\t0,0,0\t1\t1a\t0",
		"mismatch blocks": "chr1\t0\t50\tr\t0\t+\t0\t50\t0,0,0\t2\t10,10\t0",
	}
	for name, line := range bad {
		_, err := smfclust.ParseRecord(line)
		if !errors.Is(err, smfclust.ErrParse) {
			t.Errorf("%s: expected ErrParse, got %v", name, err)
		}
	}
}

func TestParseRecordsLineNumber(t *testing.T) {
	input := "header\n" +
		"chr1\t0\t50\tr\t0\t+\t0\t50\t0,0,0\t1\t10\t0\n" +
		"\n" +
		"chr1\t0\t50\tr\t0\t+\t0\t50\t0,0,0\t1\tx\t0\n"
	_, err := smfclust.ParseRecords(strings.NewReader(input))
	var pe *smfclust.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected a ParseError, got %v", err)
	}
	if pe.Line != 4 {
		t.Errorf("Expected error on line 4, got %d", pe.Line)
	}
}

func TestReadRecords(t *testing.T) {
	records, err := smfclust.ReadRecords(filepath.Join("tests", "test.bed"))
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	expectedNumRecords := 8
	if len(records) != expectedNumRecords {
		t.Fatalf("Expected %d records, got %d records", expectedNumRecords, len(records))
	}
	if records[0].Name != "A1" {
		t.Errorf("Header should be skipped, first record is %s", records[0].Name)
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := smfclust.ReadRecords(filepath.Join("tests", "nonexistent.bed"))
	if !errors.Is(err, smfclust.ErrIO) {
		t.Fatalf("Expected ErrIO, got %v", err)
	}
}

func TestParseRecordCRLF(t *testing.T) {
	line := "chr1\t100\t139\tA1\t0\t+\t100\t139\t0,0,0\t1\t19,\t0,\r\n"
	rec, err := smfclust.ParseRecord(line)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.BlockOffsets) != 1 || rec.BlockOffsets[0] != 0 {
		t.Errorf("Unexpected block starts %v", rec.BlockOffsets)
	}
	if rec.Line != strings.TrimSuffix(line, "\n") {
		t.Errorf("Expected the line minus its newline, got %q", rec.Line)
	}
}

/*
 *  record.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

// BEDFields is the minimum number of columns of a BED12 line
const BEDFields = 12

// ReadRecord is one single-molecule BED12 line, usually from `cawlr sma`:
//
// chrI  1000  1650  read1  0  +  1000  1650  0,0,0  3  147,150,146  12,250,480
//
// Blocks (occupied segments) are given as lengths and offsets relative to
// Start. Line keeps the original text, without the line terminator.
type ReadRecord struct {
	Chrom        string
	Start        int
	Stop         int
	Name         string
	Strand       string
	BlockLengths []int
	BlockOffsets []int
	Line         string
}

// ParseRecord turns a tab-separated BED12 line into a ReadRecord
func ParseRecord(line string) (*ReadRecord, error) {
	text := strings.TrimRight(line, "\r\n")
	words := strings.Split(text, "\t")
	if len(words) < BEDFields {
		return nil, &ParseError{Reason: "expected at least " + strconv.Itoa(BEDFields) +
			" tab-separated fields, got " + strconv.Itoa(len(words))}
	}
	start, err := parseInt("read_start", words[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt("read_stop", words[2])
	if err != nil {
		return nil, err
	}
	lengths, err := parseIntList("blockSizes", words[10])
	if err != nil {
		return nil, err
	}
	offsets, err := parseIntList("blockStarts", words[11])
	if err != nil {
		return nil, err
	}
	if len(lengths) != len(offsets) {
		return nil, &ParseError{Field: "blockStarts", Value: words[11],
			Reason: "expected " + strconv.Itoa(len(lengths)) + " block starts to match blockSizes, got " +
				strconv.Itoa(len(offsets))}
	}
	return &ReadRecord{
		Chrom:        words[0],
		Start:        start,
		Stop:         stop,
		Name:         words[3],
		Strand:       words[5],
		BlockLengths: lengths,
		BlockOffsets: offsets,
		Line:         strings.TrimSuffix(line, "\n"), // a CR is kept so output stays byte-verbatim
	}, nil
}

// parseInt converts a single field, reporting the field name on failure
func parseInt(field, value string) (int, error) {
	x, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Reason: "not an integer"}
	}
	return x, nil
}

// parseIntList converts a comma-separated list, a trailing comma is allowed
func parseIntList(field, value string) ([]int, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), ",")
	if value == "" {
		return []int{}, nil
	}
	words := strings.Split(value, ",")
	ans := make([]int, len(words))
	for i, word := range words {
		x, err := strconv.Atoi(word)
		if err != nil {
			return nil, &ParseError{Field: field, Value: value, Reason: "not a list of integers"}
		}
		ans[i] = x
	}
	return ans, nil
}

// ReadRecords parses the BED file (plain or gzipped), skipping the header line.
// Parsing stops at the first malformed line.
func ReadRecords(filename string) ([]*ReadRecord, error) {
	log.Noticef("Parse bedfile `%s`", filename)
	fh, err := xopen.Ropen(filename)
	if err != nil {
		return nil, ioError("open", filename, err)
	}
	defer fh.Close()

	records, err := ParseRecords(fh.Reader)
	if err != nil {
		return nil, err
	}
	log.Noticef("Imported %d records from `%s`", len(records), filename)
	return records, nil
}

// ParseRecords reads all records from reader; the first line is the header
func ParseRecords(reader io.Reader) ([]*ReadRecord, error) {
	var records []*ReadRecord
	err := eachLine(reader, func(lineno int, line string) error {
		rec, err := ParseRecord(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = lineno
			}
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// eachLine calls fn on every non-blank line after the header
func eachLine(reader io.Reader, fn func(lineno int, line string) error) error {
	br, ok := reader.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(reader)
	}
	for lineno := 1; ; lineno++ {
		row, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return ioError("read", "input", err)
		}
		if lineno > 1 && strings.TrimSpace(row) != "" { // Skip header
			if ferr := fn(lineno, row); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

/*
 *  strand.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"path/filepath"

	"github.com/shenwei356/xopen"
)

// StrandSplitter splits a single-molecule bedfile into plus, minus and
// unknown strand tracks
type StrandSplitter struct {
	Bedfile string
	OutDir  string
	// Output file
	OutBedfiles []string
	Counts      []int
}

// strandIndex routes the strand column to plus (0), minus (1) or unknown (2)
func strandIndex(strand string) int {
	switch strand {
	case "+":
		return 0
	case "-":
		return 1
	}
	return 2
}

// Run splits the reads by strand
func (r *StrandSplitter) Run() (err error) {
	outdir := r.OutDir
	if outdir == "" {
		outdir = filepath.Dir(r.Bedfile)
	}
	stem := Stem(r.Bedfile)
	r.OutBedfiles = []string{
		filepath.Join(outdir, stem+".plus.bed"),
		filepath.Join(outdir, stem+".minus.bed"),
		filepath.Join(outdir, stem+".none.bed"),
	}
	trackNames := []string{stem + ".plus", stem + ".minus", stem + ".unknown"}
	r.Counts = make([]int, len(r.OutBedfiles))

	log.Noticef("Parse bedfile `%s`", r.Bedfile)
	fh, err := xopen.Ropen(r.Bedfile)
	if err != nil {
		return ioError("open", r.Bedfile, err)
	}
	defer fh.Close()

	tracks, err := OpenTracks(r.OutBedfiles, trackNames)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tracks.Close(); err == nil {
			err = cerr
		}
	}()

	err = eachLine(fh.Reader, func(lineno int, line string) error {
		rec, err := ParseRecord(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = lineno
			}
			return err
		}
		i := strandIndex(rec.Strand)
		r.Counts[i]++
		return tracks.WriteLine(i, rec.Line)
	})
	if err != nil {
		return err
	}

	total := r.Counts[0] + r.Counts[1] + r.Counts[2]
	for i, filename := range r.OutBedfiles {
		log.Noticef("%s reads written to `%s`", Percentage(r.Counts[i], total), filename)
	}
	return nil
}

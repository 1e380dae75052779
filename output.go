/*
 *  output.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kshedden/gonpy"
)

// HighlightSummary is a resolved highlight as the plotter needs it
type HighlightSummary struct {
	Highlight
	Left       int    `json:"left"`
	Right      int    `json:"right"`
	FivePrime  string `json:"five_prime_color"`
	ThreePrime string `json:"three_prime_color"`
}

// Summary describes a run, written next to the per-cluster matrices
type Summary struct {
	Version    string             `json:"smfclust_version"`
	Input      string             `json:"input"`
	Title      string             `json:"title"`
	Region     string             `json:"region"`
	Start      int                `json:"start"`
	End        int                `json:"end"`
	Threshold  float64            `json:"pct"`
	K          int                `json:"n_clusters"`
	Seed       int64              `json:"seed"`
	Sentinel   float64            `json:"sentinel"`
	Strand     string             `json:"strand,omitempty"`
	NRecords   int                `json:"n_records"`
	NKept      int                `json:"n_kept"`
	Sizes      []int              `json:"cluster_sizes"`
	Bedfiles   []string           `json:"bedfiles"`
	Npyfiles   []string           `json:"npyfiles"`
	Highlights []HighlightSummary `json:"highlights"`
}

// writeOutputs writes the clustered BED tracks, the matrices and the summary
func (r *Partitioner) writeOutputs() error {
	outdir := r.OutputDir()
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return ioError("create directory", outdir, err)
	}
	stem := Stem(r.Input)
	r.OutBedfiles = make([]string, r.K)
	r.OutNpyfiles = make([]string, r.K)
	trackNames := make([]string, r.K)
	for label := 0; label < r.K; label++ {
		name := fmt.Sprintf("cluster%d.%s", label, stem)
		trackNames[label] = name
		r.OutBedfiles[label] = filepath.Join(outdir, name+".bed")
		r.OutNpyfiles[label] = filepath.Join(outdir, name+".npy")
	}
	r.OutSummary = filepath.Join(outdir, stem+".cluster.json")

	if err := writeClusteredBeds(r.partition, r.OutBedfiles, trackNames); err != nil {
		return err
	}
	log.Noticef("Clustered reads written to %d bedfiles in `%s`", r.K, outdir)

	D := r.region.Len()
	for label, vectors := range r.partition.Vectors() {
		if err := WriteMatrix(r.OutNpyfiles[label], vectors, D); err != nil {
			return err
		}
	}
	log.Noticef("Cluster matrices written to %d npy files in `%s`", r.K, outdir)

	if err := r.writeSummary(); err != nil {
		return err
	}
	log.Noticef("Summary written to `%s`", r.OutSummary)
	return nil
}

// writeClusteredBeds opens every track before writing, and closes all of them
// on every path out
func writeClusteredBeds(p *Partition, filenames, trackNames []string) (err error) {
	tracks, err := OpenTracks(filenames, trackNames)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tracks.Close(); err == nil {
			err = cerr
		}
	}()

	for label, lines := range p.Lines() {
		for _, line := range lines {
			if err := tracks.WriteLine(label, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteMatrix serializes the vectors as a rows x ncols float64 npy array
func WriteMatrix(filename string, vectors []ImputedVector, ncols int) error {
	data := make([]float64, 0, len(vectors)*ncols)
	for _, v := range vectors {
		data = append(data, v...)
	}
	w, err := gonpy.NewFileWriter(filename)
	if err != nil {
		return ioError("create", filename, err)
	}
	w.Shape = []int{len(vectors), ncols}
	if err := w.WriteFloat64(data); err != nil {
		return ioError("write", filename, err)
	}
	return nil
}

// writeSummary dumps the run parameters and results as JSON
func (r *Partitioner) writeSummary() error {
	s := Summary{
		Version:    Version,
		Input:      r.Input,
		Title:      r.Title,
		Region:     r.region.String(),
		Start:      r.region.Start,
		End:        r.region.End,
		Threshold:  r.Threshold,
		K:          r.K,
		Seed:       r.Seed,
		Sentinel:   r.Sentinel,
		Strand:     r.Strand,
		NRecords:   r.nRecords,
		NKept:      len(r.partition.Members),
		Sizes:      r.partition.Sizes(),
		Bedfiles:   r.OutBedfiles,
		Npyfiles:   r.OutNpyfiles,
		Highlights: []HighlightSummary{},
	}
	for _, h := range r.highlights {
		left, right := h.Offsets(r.region)
		fp, tp := h.Colors()
		s.Highlights = append(s.Highlights, HighlightSummary{
			Highlight: h, Left: left, Right: right, FivePrime: fp, ThreePrime: tp,
		})
	}

	resp, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return fmt.Errorf("encode summary: %v", err)
	}
	resp = append(resp, '\n')
	if err := os.WriteFile(r.OutSummary, resp, 0644); err != nil {
		return ioError("write", r.OutSummary, err)
	}
	return nil
}

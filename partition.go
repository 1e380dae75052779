/*
 *  partition.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"
)

// Member is one read that passed the coverage filter, together with its
// vectors and, once clustered, its label
type Member struct {
	Record  *ReadRecord
	Vector  OccupancyVector
	Imputed ImputedVector
	Label   int
}

// Partition is the kept reads in input order, each carrying one label in [0, K)
type Partition struct {
	K       int
	Members []*Member
}

// Reassemble attaches labels[i] to members[i]. Both slices come from the
// same post-filter ordering, so a length mismatch is a programming error.
func Reassemble(members []*Member, labels []int, k int) (*Partition, error) {
	if len(members) != len(labels) {
		return nil, fmt.Errorf("%w: %d labels for %d records", ErrValidation, len(labels), len(members))
	}
	for i, label := range labels {
		if label < 0 || label >= k {
			return nil, fmt.Errorf("%w: label %d of record %d is outside [0, %d)",
				ErrValidation, label, i, k)
		}
		members[i].Label = label
	}
	return &Partition{K: k, Members: members}, nil
}

// Groups returns the members of every label, preserving input order.
// Every label in [0, K) is present, possibly empty.
func (r *Partition) Groups() [][]*Member {
	groups := make([][]*Member, r.K)
	for _, m := range r.Members {
		groups[m.Label] = append(groups[m.Label], m)
	}
	return groups
}

// Lines returns the original BED lines of every label
func (r *Partition) Lines() [][]string {
	lines := make([][]string, r.K)
	for label, group := range r.Groups() {
		lines[label] = make([]string, len(group))
		for i, m := range group {
			lines[label][i] = m.Record.Line
		}
	}
	return lines
}

// Vectors returns the imputed vectors of every label, the rows of the plot
func (r *Partition) Vectors() [][]ImputedVector {
	vectors := make([][]ImputedVector, r.K)
	for label, group := range r.Groups() {
		vectors[label] = make([]ImputedVector, len(group))
		for i, m := range group {
			vectors[label][i] = m.Imputed
		}
	}
	return vectors
}

// Sizes returns the number of members per label
func (r *Partition) Sizes() []int {
	sizes := make([]int, r.K)
	for _, m := range r.Members {
		sizes[m.Label]++
	}
	return sizes
}

// Partitioner clusters the reads over a region into K groups
type Partitioner struct {
	Config
	region     Region
	highlights []Highlight
	nRecords   int
	partition  *Partition
	// Output files
	OutBedfiles []string
	OutNpyfiles []string
	OutSummary  string
}

// Run is the main function body of partition
func (r *Partitioner) Run() error {
	if err := r.Validate(); err != nil {
		return err
	}
	region, err := r.Region()
	if err != nil {
		return err
	}
	r.region = region
	if r.highlights, err = ParseHighlights(r.Highlights, region); err != nil {
		return err
	}

	records, err := ReadRecords(r.Input)
	if err != nil {
		return err
	}
	r.nRecords = len(records)

	members, err := r.selectMembers(records)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return fmt.Errorf("%w (pct = %g, region = %s)", ErrInsufficientData, r.Threshold, r.region)
	}

	km := &KMeans{K: r.K, Seed: r.Seed, MaxIter: r.MaxIter, NInit: r.NInit, Tol: DefaultTol}
	vectors := make([]ImputedVector, len(members))
	for i, m := range members {
		vectors[i] = m.Imputed
	}
	res, err := km.Fit(vectors)
	if err != nil {
		return err
	}
	if r.partition, err = Reassemble(members, res.Labels, r.K); err != nil {
		return err
	}
	for label, size := range r.partition.Sizes() {
		log.Noticef("Cluster %d: %s reads", label, Percentage(size, len(members)))
	}

	if err := r.writeOutputs(); err != nil {
		return err
	}
	log.Notice("Success")
	return nil
}

// Partition returns the result of the last Run
func (r *Partitioner) Partition() *Partition {
	return r.partition
}

// selectMembers builds the vectors and keeps reads passing the strand and coverage filters
func (r *Partitioner) selectMembers(records []*ReadRecord) ([]*Member, error) {
	var members []*Member
	nStrand := 0
	for _, rec := range records {
		if r.Strand != "" && rec.Strand != r.Strand {
			continue
		}
		nStrand++
		v := BuildVector(rec, r.region)
		ok, err := Retain(v, r.Threshold)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		members = append(members, &Member{
			Record:  rec,
			Vector:  v,
			Imputed: Impute(v, r.Sentinel),
		})
	}
	if r.Strand != "" {
		log.Noticef("Strand %s: %s reads", r.Strand, Percentage(nStrand, len(records)))
	}
	log.Noticef("Coverage > %g of %s: %s reads kept", r.Threshold, r.region,
		Percentage(len(members), nStrand))
	return members, nil
}

/*
 *  track.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"fmt"

	"github.com/shenwei356/xopen"
)

// TrackHeader is the first line of every BED track we write
func TrackHeader(name string) string {
	return fmt.Sprintf("track name=\"%s\" itemRgb=\"on\" visibility=2\n", name)
}

// TrackSet is a group of open BED track files. All handles are released by
// Close, including after a partial Open.
type TrackSet struct {
	Filenames []string
	writers   []*xopen.Writer
}

// OpenTracks creates one file per name and writes its track line. On failure
// the files opened so far are closed.
func OpenTracks(filenames, trackNames []string) (*TrackSet, error) {
	ts := &TrackSet{Filenames: filenames}
	for i, filename := range filenames {
		w, err := xopen.Wopen(filename)
		if err != nil {
			ts.Close()
			return nil, ioError("create", filename, err)
		}
		ts.writers = append(ts.writers, w)
		if _, err := w.WriteString(TrackHeader(trackNames[i])); err != nil {
			ts.Close()
			return nil, ioError("write", filename, err)
		}
	}
	return ts, nil
}

// WriteLine appends a verbatim BED line to the i-th track
func (r *TrackSet) WriteLine(i int, line string) error {
	w := r.writers[i]
	if _, err := w.WriteString(line); err != nil {
		return ioError("write", r.Filenames[i], err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return ioError("write", r.Filenames[i], err)
	}
	return nil
}

// Close flushes and closes every open track, returning the first error.
// Calling Close twice is harmless.
func (r *TrackSet) Close() error {
	var first error
	for i, w := range r.writers {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && first == nil {
			first = ioError("close", r.Filenames[i], err)
		}
		r.writers[i] = nil
	}
	return first
}

/*
 *  errors.go
 *  smfclust
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package smfclust

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks a malformed input line
	ErrParse = errors.New("parse error")
	// ErrValidation marks an invalid region or clustering request
	ErrValidation = errors.New("validation error")
	// ErrInvalidK marks a cluster count outside [1, number of vectors]
	ErrInvalidK = fmt.Errorf("%w: invalid number of clusters", ErrValidation)
	// ErrInsufficientData means no record survived the coverage filter
	ErrInsufficientData = errors.New("empty results, input maybe empty or lower % threshold")
	// ErrIO marks a file that could not be opened or written
	ErrIO = errors.New("io error")
)

// ParseError describes a malformed BED line
type ParseError struct {
	Line   int    // 1-based line number, 0 when unknown
	Field  string // name of the offending field
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrParse) match
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ioError wraps a failing filesystem call with ErrIO
func ioError(op, filename string, err error) error {
	return fmt.Errorf("%w: %s `%s`: %v", ErrIO, op, filename, err)
}

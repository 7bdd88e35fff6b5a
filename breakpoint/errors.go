// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import "github.com/pkg/errors"

var (
	// ErrInput is the cause of errors reporting malformed or inconsistent
	// alignment input: an unknown reference name, a contig span that
	// disagrees with the cigar, or a contig sequence that is too short. It
	// indicates an upstream data bug and should not be retried.
	ErrInput = errors.New("invalid alignment input")

	// ErrAmbiguousChimera is the cause of errors reporting a chimeric pair
	// whose rearrangement cannot be resolved. Callers skip the pair and
	// continue with the rest of the contig.
	ErrAmbiguousChimera = errors.New("ambiguous chimeric alignment")
)

// IsInputError checks if err was caused by ErrInput.
func IsInputError(err error) bool { return err != nil && errors.Cause(err) == ErrInput }

// IsAmbiguousChimera checks if err was caused by ErrAmbiguousChimera.
func IsAmbiguousChimera(err error) bool {
	return err != nil && errors.Cause(err) == ErrAmbiguousChimera
}

// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SimpleInterval is a closed range [Start, End] on a named reference
// sequence. Coordinates are 1-based.
type SimpleInterval struct {
	Contig     string
	Start, End int
}

// NewSimpleInterval creates a new SimpleInterval.
//
// REQUIRES: 1 <= start <= end
func NewSimpleInterval(contig string, start, end int) SimpleInterval {
	if start < 1 || end < start {
		panic(fmt.Sprintf("invalid interval %s:%d-%d", contig, start, end))
	}
	return SimpleInterval{Contig: contig, Start: start, End: end}
}

// NewLocus creates a single-base interval at pos.
func NewLocus(contig string, pos int) SimpleInterval {
	return NewSimpleInterval(contig, pos, pos)
}

// Size returns the number of bases covered.
func (s SimpleInterval) Size() int { return s.End - s.Start + 1 }

// IsZero checks if s is the zero value.
func (s SimpleInterval) IsZero() bool { return s == SimpleInterval{} }

// Overlaps checks if s and o share at least one base.
func (s SimpleInterval) Overlaps(o SimpleInterval) bool {
	return s.Contig == o.Contig && s.Start <= o.End && o.Start <= s.End
}

// Contains checks if o lies entirely within s.
func (s SimpleInterval) Contains(o SimpleInterval) bool {
	return s.Contig == o.Contig && s.Start <= o.Start && o.End <= s.End
}

// Intersect returns the bases shared by s and o.
//
// REQUIRES: s.Overlaps(o)
func (s SimpleInterval) Intersect(o SimpleInterval) SimpleInterval {
	if !s.Overlaps(o) {
		panic(fmt.Sprintf("%v and %v do not overlap", s, o))
	}
	return NewSimpleInterval(s.Contig, max(s.Start, o.Start), min(s.End, o.End))
}

// String returns "contig:start-end".
func (s SimpleInterval) String() string {
	return s.Contig + ":" + strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}

// ParseSimpleInterval parses the output of SimpleInterval.String. The contig
// name itself may contain ':'.
func ParseSimpleInterval(str string) (SimpleInterval, error) {
	colon := strings.LastIndexByte(str, ':')
	if colon <= 0 {
		return SimpleInterval{}, errors.Wrapf(ErrInput, "interval %q: missing contig", str)
	}
	rng := str[colon+1:]
	dash := strings.IndexByte(rng, '-')
	if dash < 0 {
		return SimpleInterval{}, errors.Wrapf(ErrInput, "interval %q: missing range", str)
	}
	start, err := strconv.Atoi(rng[:dash])
	if err != nil {
		return SimpleInterval{}, errors.Wrapf(ErrInput, "interval %q: %v", str, err)
	}
	end, err := strconv.Atoi(rng[dash+1:])
	if err != nil {
		return SimpleInterval{}, errors.Wrapf(ErrInput, "interval %q: %v", str, err)
	}
	if start < 1 || end < start {
		return SimpleInterval{}, errors.Wrapf(ErrInput, "interval %q: inverted range", str)
	}
	return SimpleInterval{Contig: str[:colon], Start: start, End: end}, nil
}

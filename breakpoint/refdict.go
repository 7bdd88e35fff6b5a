// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// RefDict is the read-only reference dictionary: the names, lengths and
// order of the reference sequences. It is safe for concurrent use.
type RefDict struct {
	header *sam.Header
	byName map[string]*sam.Reference
}

// NewRefDict creates a RefDict from the @SQ lines of a SAM header.
func NewRefDict(header *sam.Header) *RefDict {
	d := &RefDict{header: header, byName: map[string]*sam.Reference{}}
	for _, ref := range header.Refs() {
		d.byName[ref.Name()] = ref
	}
	return d
}

// NewRefDictFromLengths creates a RefDict holding the given references in
// order.
func NewRefDictFromLengths(names []string, lengths []int) (*RefDict, error) {
	if len(names) != len(lengths) {
		return nil, errors.Errorf("refdict: %d names, %d lengths", len(names), len(lengths))
	}
	refs := make([]*sam.Reference, len(names))
	for i, name := range names {
		ref, err := sam.NewReference(name, "", "", lengths[i], nil, nil)
		if err != nil {
			return nil, errors.Wrapf(ErrInput, "reference %s: %v", name, err)
		}
		refs[i] = ref
	}
	header, err := sam.NewHeader(nil, refs)
	if err != nil {
		return nil, errors.Wrapf(ErrInput, "refdict: %v", err)
	}
	return NewRefDict(header), nil
}

// Header returns the SAM header the dictionary was built from.
func (d *RefDict) Header() *sam.Header { return d.header }

// Len returns the length of the named reference. It returns false if the
// name is unknown.
func (d *RefDict) Len(name string) (int, bool) {
	ref, ok := d.byName[name]
	if !ok {
		return 0, false
	}
	return ref.Len(), true
}

// Index returns the position of the named reference in the dictionary, or
// -1 if the name is unknown.
func (d *RefDict) Index(name string) int {
	ref, ok := d.byName[name]
	if !ok {
		return -1
	}
	return ref.ID()
}

// Names lists the reference names in dictionary order.
func (d *RefDict) Names() []string {
	refs := d.header.Refs()
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name()
	}
	return names
}

// checkInterval verifies that s lies within a known reference.
func (d *RefDict) checkInterval(s SimpleInterval) error {
	n, ok := d.Len(s.Contig)
	if !ok {
		return errors.Wrapf(ErrInput, "unknown reference %q in %v", s.Contig, s)
	}
	if s.Start < 1 || s.End < s.Start || s.End > n {
		return errors.Wrapf(ErrInput, "%v lies outside of reference %s (length %d)", s, s.Contig, n)
	}
	return nil
}

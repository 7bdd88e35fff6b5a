// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// ParseCigar parses a text cigar such as "10S90M".
func ParseCigar(s string) (sam.Cigar, error) {
	if s == "" || s == "*" {
		return nil, nil
	}
	c, err := sam.ParseCigar([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInput, "cigar %q: %v", s, err)
	}
	return c, nil
}

func isClip(t sam.CigarOpType) bool {
	return t == sam.CigarSoftClipped || t == sam.CigarHardClipped
}

// reverseCigar returns the operations of c in reverse order.
func reverseCigar(c sam.Cigar) sam.Cigar {
	r := make(sam.Cigar, len(c))
	for i, op := range c {
		r[len(c)-1-i] = op
	}
	return r
}

// clipLengths returns the number of soft- and hard-clipped bases at the
// start and the end of c.
func clipLengths(c sam.Cigar) (lead, trail int) {
	i := 0
	for ; i < len(c) && isClip(c[i].Type()); i++ {
		lead += c[i].Len()
	}
	for j := len(c) - 1; j >= i && isClip(c[j].Type()); j-- {
		trail += c[j].Len()
	}
	return lead, trail
}

// alignedLengths returns the number of reference bases and the number of
// unclipped query bases consumed by c.
func alignedLengths(c sam.Cigar) (ref, read int) {
	for _, op := range c {
		t := op.Type()
		if isClip(t) {
			continue
		}
		con := t.Consumes()
		ref += con.Reference * op.Len()
		read += con.Query * op.Len()
	}
	return ref, read
}

// hardToSoftClip replaces hard clips with soft clips. It reports whether c
// had any hard clip.
func hardToSoftClip(c sam.Cigar) (sam.Cigar, bool) {
	var converted bool
	r := make(sam.Cigar, 0, len(c))
	for _, op := range c {
		if op.Type() == sam.CigarHardClipped {
			op = sam.NewCigarOp(sam.CigarSoftClipped, op.Len())
			converted = true
		}
		r = appendCigarOp(r, op.Type(), op.Len())
	}
	return r, converted
}

func appendCigarOp(c sam.Cigar, t sam.CigarOpType, n int) sam.Cigar {
	if n <= 0 {
		return c
	}
	if last := len(c) - 1; last >= 0 && c[last].Type() == t {
		c[last] = sam.NewCigarOp(t, c[last].Len()+n)
		return c
	}
	return append(c, sam.NewCigarOp(t, n))
}

// subCigar extracts the operations of c covering the closed range [from,
// to]. Positions are counted along the query (byQuery) or the reference
// axis, starting at start for the first unclipped base. An operation that
// does not move along the axis is kept when it lies strictly inside the
// range.
func subCigar(c sam.Cigar, start, from, to int, byQuery bool) sam.Cigar {
	var r sam.Cigar
	pos := start
	for _, op := range c {
		t := op.Type()
		if isClip(t) {
			continue
		}
		step := t.Consumes().Reference
		if byQuery {
			step = t.Consumes().Query
		}
		if step == 0 {
			if from < pos && pos <= to {
				r = appendCigarOp(r, t, op.Len())
			}
			continue
		}
		end := pos + op.Len() - 1
		if lo, hi := max(pos, from), min(end, to); lo <= hi {
			r = appendCigarOp(r, t, hi-lo+1)
		}
		pos = end + 1
	}
	return r
}

// refPosToContigPos maps a reference position covered by the
// forward-strand alignment a to the contig position aligned to it. For a
// position inside a deletion it returns the contig base preceding the
// deletion.
func refPosToContigPos(a AlignmentInterval, refPos int) int {
	ref, ctg := a.RefSpan.Start, a.StartInContig
	for _, op := range a.Cigar {
		t := op.Type()
		if isClip(t) {
			continue
		}
		con := t.Consumes()
		n := op.Len()
		if con.Reference > 0 && refPos < ref+n {
			if con.Query > 0 {
				return ctg + refPos - ref
			}
			return ctg - 1
		}
		ref += con.Reference * n
		ctg += con.Query * n
	}
	return a.EndInContig
}

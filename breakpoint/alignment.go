// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// AlnModType records how an AlignmentInterval was derived from the raw
// alignment record.
type AlnModType uint8

const (
	// AlnModNone means the interval is the record as aligned.
	AlnModNone AlnModType = iota
	// AlnModReverseComplemented means the interval was mirrored onto the
	// reverse complement of the contig.
	AlnModReverseComplemented
	// AlnModClipConverted means hard clips in the record were turned into
	// soft clips.
	AlnModClipConverted
)

var alnModCodes = [...]string{AlnModNone: "O", AlnModReverseComplemented: "R", AlnModClipConverted: "C"}

// String returns the one-letter code used in packed intervals.
func (m AlnModType) String() string {
	if int(m) < len(alnModCodes) {
		return alnModCodes[m]
	}
	return fmt.Sprintf("AlnModType(%d)", m)
}

func parseAlnModType(s string) (AlnModType, error) {
	for i, code := range alnModCodes {
		if code == s {
			return AlnModType(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInput, "unknown alignment modification %q", s)
}

// AlignmentInterval is one contiguous alignment of a contig sub-range to a
// reference sub-range.
type AlignmentInterval struct {
	// RefSpan is the aligned reference range.
	RefSpan SimpleInterval
	// StartInContig and EndInContig delimit the aligned contig bases,
	// 1-based, inclusive, counted along the contig's own 5'->3' direction.
	StartInContig, EndInContig int
	// Cigar lists the operations along the contig's 5'->3' direction.  For a
	// reverse-strand alignment it is the reverse of the record's cigar.
	Cigar sam.Cigar
	// Forward is true iff the contig aligns to the forward reference strand.
	Forward bool
	MapQ    int
	// Mismatches is the NM value, or -1 if unknown.
	Mismatches int
	// AlnScore is the AS value, or -1 if unknown.
	AlnScore int
	ModType  AlnModType
}

// RefOrderCigar returns the cigar along the reference direction.
func (a AlignmentInterval) RefOrderCigar() sam.Cigar {
	if a.Forward {
		return a.Cigar
	}
	return reverseCigar(a.Cigar)
}

// ContigSpan returns the number of aligned contig bases.
func (a AlignmentInterval) ContigSpan() int { return a.EndInContig - a.StartInContig + 1 }

// contigLength returns the length of the whole contig implied by the
// cigar's clips.
func (a AlignmentInterval) contigLength() int {
	_, trail := clipLengths(a.Cigar)
	return a.EndInContig + trail
}

// Validate checks that a lies within dict and that its spans agree with its
// cigar.
func (a AlignmentInterval) Validate(dict *RefDict) error {
	if err := dict.checkInterval(a.RefSpan); err != nil {
		return err
	}
	if a.StartInContig < 1 || a.EndInContig < a.StartInContig {
		return errors.Wrapf(ErrInput, "%v: invalid contig span %d-%d", a.RefSpan, a.StartInContig, a.EndInContig)
	}
	if lead, _ := clipLengths(a.Cigar); lead+1 != a.StartInContig {
		return errors.Wrapf(ErrInput, "%v: cigar %v starts at contig base %d, not %d", a.RefSpan, a.Cigar, lead+1, a.StartInContig)
	}
	ref, read := alignedLengths(a.Cigar)
	if read != a.ContigSpan() {
		return errors.Wrapf(ErrInput, "%v: cigar %v covers %d contig bases, span is %d", a.RefSpan, a.Cigar, read, a.ContigSpan())
	}
	if ref != a.RefSpan.Size() {
		return errors.Wrapf(ErrInput, "%v: cigar %v covers %d reference bases", a.RefSpan, a.Cigar, ref)
	}
	return nil
}

// Equal checks if the two intervals are identical.
func (a AlignmentInterval) Equal(b AlignmentInterval) bool {
	if a.RefSpan != b.RefSpan || a.StartInContig != b.StartInContig || a.EndInContig != b.EndInContig ||
		a.Forward != b.Forward || a.MapQ != b.MapQ || a.Mismatches != b.Mismatches ||
		a.AlnScore != b.AlnScore || a.ModType != b.ModType || len(a.Cigar) != len(b.Cigar) {
		return false
	}
	for i := range a.Cigar {
		if a.Cigar[i] != b.Cigar[i] {
			return false
		}
	}
	return true
}

func (a AlignmentInterval) strand() string {
	if a.Forward {
		return "+"
	}
	return "-"
}

// String returns a human-readable description of a.
func (a AlignmentInterval) String() string {
	return fmt.Sprintf("%v(%s) contig:%d-%d %v mq=%d", a.RefSpan, a.strand(), a.StartInContig, a.EndInContig, a.Cigar, a.MapQ)
}

const packSep = "_"

// Pack encodes a as
// "startInContig_endInContig_ref:start-end_strand_cigar_mapq_mismatches_score_mod",
// e.g. "516_557_20:23103196-23103238_-_515S42M968S_60_2_100_O".
func (a AlignmentInterval) Pack() string {
	return strings.Join([]string{
		strconv.Itoa(a.StartInContig),
		strconv.Itoa(a.EndInContig),
		a.RefSpan.String(),
		a.strand(),
		a.Cigar.String(),
		strconv.Itoa(a.MapQ),
		strconv.Itoa(a.Mismatches),
		strconv.Itoa(a.AlnScore),
		a.ModType.String(),
	}, packSep)
}

// ParseAlignmentInterval parses the output of AlignmentInterval.Pack.
// Reference names may contain '_'.
func ParseAlignmentInterval(packed string) (AlignmentInterval, error) {
	fields := strings.Split(packed, packSep)
	if len(fields) < 9 {
		return AlignmentInterval{}, errors.Wrapf(ErrInput, "packed interval %q: %d fields", packed, len(fields))
	}
	// The reference span occupies everything between the two leading and the
	// six trailing fields.
	tail := fields[len(fields)-6:]
	span := strings.Join(fields[2:len(fields)-6], packSep)

	var (
		a    AlignmentInterval
		err  error
		ints [5]int
	)
	for i, s := range []string{fields[0], fields[1], tail[2], tail[3], tail[4]} {
		if ints[i], err = strconv.Atoi(s); err != nil {
			return AlignmentInterval{}, errors.Wrapf(ErrInput, "packed interval %q: %v", packed, err)
		}
	}
	a.StartInContig, a.EndInContig, a.MapQ, a.Mismatches, a.AlnScore = ints[0], ints[1], ints[2], ints[3], ints[4]
	if a.RefSpan, err = ParseSimpleInterval(span); err != nil {
		return AlignmentInterval{}, err
	}
	switch tail[0] {
	case "+":
		a.Forward = true
	case "-":
	default:
		return AlignmentInterval{}, errors.Wrapf(ErrInput, "packed interval %q: strand %q", packed, tail[0])
	}
	if a.Cigar, err = ParseCigar(tail[1]); err != nil {
		return AlignmentInterval{}, err
	}
	if a.ModType, err = parseAlnModType(tail[5]); err != nil {
		return AlignmentInterval{}, err
	}
	return a, nil
}

var (
	nmTag = sam.NewTag("NM")
	asTag = sam.NewTag("AS")
)

// auxInt returns the integer value of the tag, or -1 if r lacks it.
func auxInt(r *sam.Record, tag sam.Tag) int {
	aux := r.AuxFields.Get(tag)
	if aux == nil {
		return -1
	}
	switch v := aux.Value().(type) {
	case int8:
		return int(v)
	case uint8:
		return int(v)
	case int16:
		return int(v)
	case uint16:
		return int(v)
	case int32:
		return int(v)
	case uint32:
		return int(v)
	case int:
		return v
	}
	return -1
}

// NewAlignmentIntervalFromRecord converts a mapped contig alignment record
// to an AlignmentInterval. Hard clips become soft clips.
func NewAlignmentIntervalFromRecord(r *sam.Record) (AlignmentInterval, error) {
	if r.Ref == nil || r.Flags&sam.Unmapped != 0 {
		return AlignmentInterval{}, errors.Wrapf(ErrInput, "%s: record is unmapped", r.Name)
	}
	cigar, converted := hardToSoftClip(r.Cigar)
	forward := r.Flags&sam.Reverse == 0
	if !forward {
		cigar = reverseCigar(cigar)
	}
	lead, _ := clipLengths(cigar)
	refLen, readLen := alignedLengths(cigar)
	if refLen == 0 || readLen == 0 {
		return AlignmentInterval{}, errors.Wrapf(ErrInput, "%s: cigar %v aligns no bases", r.Name, r.Cigar)
	}
	a := AlignmentInterval{
		RefSpan:       NewSimpleInterval(r.Ref.Name(), r.Pos+1, r.Pos+refLen),
		StartInContig: lead + 1,
		EndInContig:   lead + readLen,
		Cigar:         cigar,
		Forward:       forward,
		MapQ:          int(r.MapQ),
		Mismatches:    auxInt(r, nmTag),
		AlnScore:      auxInt(r, asTag),
		ModType:       AlnModNone,
	}
	if converted {
		a.ModType = AlnModClipConverted
	}
	return a, nil
}

// reverseComplement mirrors a onto the reverse complement of a contig of
// the given length.
func (a AlignmentInterval) reverseComplement(contigLen int) AlignmentInterval {
	b := a
	b.StartInContig = contigLen - a.EndInContig + 1
	b.EndInContig = contigLen - a.StartInContig + 1
	b.Forward = !a.Forward
	b.Cigar = reverseCigar(a.Cigar)
	switch a.ModType {
	case AlnModNone:
		b.ModType = AlnModReverseComplemented
	case AlnModReverseComplemented:
		b.ModType = AlnModNone
	}
	return b
}

// overlapOnContig returns the number of contig bases covered by both a and
// b.
func overlapOnContig(a, b AlignmentInterval) int {
	return max(0, min(a.EndInContig, b.EndInContig)-max(a.StartInContig, b.StartInContig)+1)
}

func (a AlignmentInterval) containsOnContig(b AlignmentInterval) bool {
	return a.StartInContig <= b.StartInContig && b.EndInContig <= a.EndInContig
}

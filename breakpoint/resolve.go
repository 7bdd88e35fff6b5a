// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"github.com/antzucaro/matchr"
	"github.com/pkg/errors"
)

// resolver computes the complication of one chimera in its forward-strand
// representation.
type resolver struct {
	ca     ChimericAlignment
	lo, hi AlignmentInterval
	seq    []byte
}

// bases returns the contig bases [from, to].
func (r *resolver) bases(from, to int) ([]byte, error) {
	if to < from {
		return []byte{}, nil
	}
	if r.seq == nil {
		return nil, errors.Wrapf(ErrInput, "contig %s: sequence needed for contig bases %d-%d", r.ca.ContigName, from, to)
	}
	if from < 1 || to > len(r.seq) {
		return nil, errors.Wrapf(ErrInput, "contig %s: bases %d-%d outside of the %d-base sequence", r.ca.ContigName, from, to, len(r.seq))
	}
	return contigBases(r.seq, from, to), nil
}

// junctionBases returns the contig bases covered by both intervals
// (homology), or the contig bases covered by neither (inserted sequence).
func (r *resolver) junctionBases() (homology, inserted []byte, err error) {
	c1e, c2b := r.lo.EndInContig, r.hi.StartInContig
	if c2b <= c1e {
		homology, err = r.bases(c2b, c1e)
		return homology, []byte{}, err
	}
	inserted, err = r.bases(c1e+1, c2b-1)
	return []byte{}, inserted, err
}

func (r *resolver) ambiguous(format string, args ...interface{}) error {
	args = append([]interface{}{r.ca.ContigName, r.lo, r.hi}, args...)
	return errors.Wrapf(ErrAmbiguousChimera, "contig %s (%v, %v): "+format, args...)
}

// breakpoints builds the single-base breakpoint pair, with the smaller
// position first when both are on one chromosome.
func (r *resolver) breakpoints(leftContig string, left int, rightContig string, right int) (SimpleInterval, SimpleInterval, error) {
	if leftContig == rightContig && right < left {
		left, right = right, left
	}
	if left < 1 || right < 1 {
		return SimpleInterval{}, SimpleInterval{}, r.ambiguous("breakpoint before the reference start")
	}
	return NewLocus(leftContig, left), NewLocus(rightContig, right), nil
}

func (r *resolver) inferNoSwitch() (Inference, error) {
	r1e, r2b := r.lo.RefSpan.End, r.hi.RefSpan.Start
	d1 := r2b - r1e - 1
	d2 := r.hi.StartInContig - r.lo.EndInContig - 1
	switch {
	case d1 > 0 || (d1 == 0 && d2 > 0):
		return r.inferSimpleInsDel()
	case d1 < 0 && d2 > 0:
		return r.inferExpansionWithInsertion()
	case d1 == 0 && d2 == 0:
		return Inference{}, r.ambiguous("intervals are colinear")
	default:
		return r.inferTandemRepeat(-d1, -d2)
	}
}

// inferSimpleInsDel handles a reference gap (deletion), a contig gap
// (insertion), or both (replacement). Contig bases shared by the two
// intervals are homology. The right breakpoint is the last deleted
// reference base, hi.RefSpan.Start-1.
func (r *resolver) inferSimpleInsDel() (Inference, error) {
	hom, ins, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	contig := r.lo.RefSpan.Contig
	left, right, err := r.breakpoints(contig, r.lo.RefSpan.End-len(hom), contig, r.hi.RefSpan.Start-1)
	if err != nil {
		return Inference{}, err
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewSimpleInsDelOrReplacement(string(hom), string(ins)),
		altHaplotype: ins,
	}, nil
}

// inferExpansionWithInsertion handles one extra copy of the unit
// [hi.RefSpan.Start, lo.RefSpan.End] with novel bases between the copies.
func (r *resolver) inferExpansionWithInsertion() (Inference, error) {
	contig := r.lo.RefSpan.Contig
	unit := NewSimpleInterval(contig, r.hi.RefSpan.Start, r.lo.RefSpan.End)
	if !r.lo.RefSpan.Contains(unit) || !r.hi.RefSpan.Contains(unit) {
		return Inference{}, r.ambiguous("repeat unit %v is not covered by both intervals", unit)
	}
	_, ins, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	alt, err := r.bases(refPosToContigPos(r.lo, unit.Start), refPosToContigPos(r.hi, unit.End))
	if err != nil {
		return Inference{}, err
	}
	left, right, err := r.breakpoints(contig, unit.Start-1, contig, unit.Start-1)
	if err != nil {
		return Inference{}, err
	}
	dup := DupAnnotation{
		RepeatUnitRefSpan: unit,
		RepeatNumOnRef:    1,
		RepeatNumOnCtg:    2,
		CigarsOnCtg: []string{
			subCigar(r.lo.Cigar, r.lo.RefSpan.Start, unit.Start, unit.End, false).String(),
			subCigar(r.hi.Cigar, r.hi.RefSpan.Start, unit.Start, unit.End, false).String(),
		},
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewSmallDuplication("", string(ins), dup),
		altHaplotype: alt,
	}, nil
}

// inferTandemRepeat handles intervals that overlap both on the reference
// (by refOverlap bases) and on the contig (by ctgOverlap bases). The
// difference of the two overlaps is taken as the length of a repeat unit
// whose copy number differs by one between the reference and the contig;
// the remainder is pseudo-homology, a partial copy trailing the last full
// copy.
func (r *resolver) inferTandemRepeat(refOverlap, ctgOverlap int) (Inference, error) {
	if refOverlap == ctgOverlap {
		return Inference{}, r.ambiguous("reference and contig overlaps are both %d", refOverlap)
	}
	bigger, smaller := max(refOverlap, ctgOverlap), min(refOverlap, ctgOverlap)
	unitLen := bigger - smaller
	copies, pseudo := bigger/unitLen, bigger%unitLen
	refNum, ctgNum := copies+1, copies
	if refOverlap > ctgOverlap {
		refNum, ctgNum = copies, copies+1
	}
	r1e := r.lo.RefSpan.End
	if r1e-bigger+1 < r.lo.RefSpan.Start {
		return Inference{}, r.ambiguous("repeat unit starts before the lower interval")
	}
	contig := r.lo.RefSpan.Contig
	unit := NewSimpleInterval(contig, r1e-bigger+1, r1e-bigger+unitLen)

	// The contig copies must lie within the two intervals.
	altStart := r.lo.EndInContig - bigger + 1
	altEnd := altStart + ctgNum*unitLen + pseudo - 1
	if altStart < r.lo.StartInContig || altEnd > r.hi.EndInContig {
		return Inference{}, r.ambiguous("repeat copies at contig %d-%d fall outside the intervals", altStart, altEnd)
	}
	alt, err := r.bases(altStart, altEnd)
	if err != nil {
		return Inference{}, err
	}
	if err := r.checkRepeatCopies(alt, unitLen, ctgNum); err != nil {
		return Inference{}, err
	}
	hom, _, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	leftPos := unit.Start - 1
	rightPos := leftPos
	if refNum > ctgNum {
		rightPos = leftPos + (refNum-ctgNum)*unitLen
	}
	left, right, err := r.breakpoints(contig, leftPos, contig, rightPos)
	if err != nil {
		return Inference{}, err
	}
	dup := DupAnnotation{
		RepeatUnitRefSpan: unit,
		RepeatNumOnRef:    refNum,
		RepeatNumOnCtg:    ctgNum,
		CigarsOnCtg:       r.contigCopyCigars(altStart, unitLen, ctgNum),
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewSmallDuplication(string(hom), "", dup),
		altHaplotype: alt,
	}, nil
}

// checkRepeatCopies verifies that alt consists of n approximate copies of a
// unitLen-long unit followed by an approximate prefix of the unit.
func (r *resolver) checkRepeatCopies(alt []byte, unitLen, n int) error {
	unit := string(alt[:unitLen])
	for i := 1; i < n; i++ {
		c := string(alt[i*unitLen : (i+1)*unitLen])
		if d := matchr.Levenshtein(c, unit); d > MaxPseudoHomologyEditDistance {
			return r.ambiguous("repeat copy %d is %d edits away from the first", i, d)
		}
	}
	if p := string(alt[n*unitLen:]); p != "" {
		if d := matchr.Levenshtein(p, unit[:len(p)]); d > MaxPseudoHomologyEditDistance {
			return r.ambiguous("pseudo-homology %s is %d edits away from the unit", p, d)
		}
	}
	return nil
}

// contigCopyCigars returns, for each of the n repeat copies starting at
// contig base start, the cigar of the interval that covers the copy,
// preferring the lower interval.
func (r *resolver) contigCopyCigars(start, unitLen, n int) []string {
	cigars := make([]string, n)
	for i := range cigars {
		from := start + i*unitLen
		to := from + unitLen - 1
		a := r.hi
		if r.lo.StartInContig <= from && to <= r.lo.EndInContig {
			a = r.lo
		}
		cigars[i] = subCigar(a.Cigar, a.StartInContig, from, to, true).String()
	}
	return cigars
}

// inferStrandSwitch handles an inversion-like junction on one chromosome.
func (r *resolver) inferStrandSwitch() (Inference, error) {
	hom, ins, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	var leftPos, rightPos int
	if r.ca.StrandSwitch == ForwardToReverse {
		leftPos, rightPos = r.lo.RefSpan.End-len(hom), r.hi.RefSpan.End
	} else {
		leftPos, rightPos = r.lo.RefSpan.Start-1, r.hi.RefSpan.Start+len(hom)-1
	}
	contig := r.lo.RefSpan.Contig
	left, right, err := r.breakpoints(contig, leftPos, contig, rightPos)
	if err != nil {
		return Inference{}, err
	}
	var dup DupAnnotation
	if r.lo.RefSpan.Overlaps(r.hi.RefSpan) {
		unit := r.lo.RefSpan.Intersect(r.hi.RefSpan)
		dup = DupAnnotation{
			RepeatUnitRefSpan: unit,
			RepeatNumOnRef:    1,
			RepeatNumOnCtg:    2,
			CigarsOnCtg: []string{
				subCigar(r.lo.RefOrderCigar(), r.lo.RefSpan.Start, unit.Start, unit.End, false).String(),
				subCigar(r.hi.RefOrderCigar(), r.hi.RefSpan.Start, unit.Start, unit.End, false).String(),
			},
		}
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewIntraChrStrandSwitch(string(hom), string(ins), dup),
		altHaplotype: ins,
	}, nil
}

// inferRefOrderSwap handles a same-strand junction where the higher
// interval precedes the lower one on the reference.
func (r *resolver) inferRefOrderSwap() (Inference, error) {
	hom, ins, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	contig := r.lo.RefSpan.Contig
	left, right, err := r.breakpoints(contig, r.hi.RefSpan.Start, contig, r.lo.RefSpan.End-len(hom))
	if err != nil {
		return Inference{}, err
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewRefOrderSwap(string(hom), string(ins)),
		altHaplotype: ins,
	}, nil
}

// inferInterChromosome handles a junction between two chromosomes. In the
// forward-strand representation the lower interval is on the chromosome
// that comes first in the reference dictionary.
func (r *resolver) inferInterChromosome() (Inference, error) {
	hom, ins, err := r.junctionBases()
	if err != nil {
		return Inference{}, err
	}
	h := len(hom)
	lo, hi := r.lo.RefSpan, r.hi.RefSpan
	var leftPos, rightPos int
	switch r.ca.StrandSwitch {
	case NoSwitch:
		if r.lo.Forward {
			leftPos, rightPos = lo.End-h, hi.Start
		} else {
			leftPos, rightPos = lo.Start, hi.End-h
		}
	case ForwardToReverse:
		leftPos, rightPos = lo.End-h, hi.End
	default:
		leftPos, rightPos = lo.Start, hi.Start+h
	}
	left, right, err := r.breakpoints(lo.Contig, leftPos, hi.Contig, rightPos)
	if err != nil {
		return Inference{}, err
	}
	return Inference{
		left:         left,
		right:        right,
		complication: NewInterChromosome(string(hom), string(ins)),
		altHaplotype: ins,
	}, nil
}

// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// StrandSwitch describes the strand relationship of the two intervals of a
// chimeric alignment, in contig order.
type StrandSwitch uint8

const (
	// NoSwitch means both intervals align to the same strand.
	NoSwitch StrandSwitch = iota
	// ForwardToReverse means the lower interval on the contig is forward and
	// the higher one reverse.
	ForwardToReverse
	// ReverseToForward is the opposite of ForwardToReverse.
	ReverseToForward
)

var strandSwitchNames = [...]string{"NO_SWITCH", "FORWARD_TO_REVERSE", "REVERSE_TO_FORWARD"}

func (s StrandSwitch) String() string {
	if int(s) < len(strandSwitchNames) {
		return strandSwitchNames[s]
	}
	return "INVALID_STRAND_SWITCH"
}

// AlignedContig is an assembled contig together with its alignment
// intervals.
type AlignedContig struct {
	Name string
	// Seq is the contig sequence. It may be nil when unknown.
	Seq []byte
	// Alignments are sorted by StartInContig.
	Alignments []AlignmentInterval
}

// ReverseComplement returns the same contig as seen from its other end.
func (c AlignedContig) ReverseComplement() AlignedContig {
	n := len(c.Seq)
	if c.Seq == nil {
		for _, a := range c.Alignments {
			n = max(n, a.contigLength())
		}
	}
	rc := AlignedContig{Name: c.Name, Alignments: make([]AlignmentInterval, len(c.Alignments))}
	if c.Seq != nil {
		rc.Seq = reverseComplemented(c.Seq)
	}
	for i, a := range c.Alignments {
		rc.Alignments[len(c.Alignments)-1-i] = a.reverseComplement(n)
	}
	sortAlignments(rc.Alignments)
	return rc
}

func sortAlignments(alns []AlignmentInterval) {
	sort.SliceStable(alns, func(i, j int) bool {
		if alns[i].StartInContig != alns[j].StartInContig {
			return alns[i].StartInContig < alns[j].StartInContig
		}
		return alns[i].EndInContig < alns[j].EndInContig
	})
}

// ChimericAlignment is a pair of alignment intervals of one contig that are
// not colinear on the reference.
type ChimericAlignment struct {
	ContigName string
	// Lower is the interval that comes first along the contig, Higher the
	// other.
	Lower, Higher AlignmentInterval
	// InsertionMappings are the packed (AlignmentInterval.Pack) intervals
	// aligned to the contig bases between Lower and Higher. They do not take
	// part in inference.
	InsertionMappings []string
	StrandSwitch      StrandSwitch
	// IsForwardStrandRepresentation is true iff the pair is in the
	// canonical orientation; the reverse complement of the contig yields the
	// opposite value.
	IsForwardStrandRepresentation bool
}

// NewChimericAlignment pairs two intervals of the named contig. The order
// of a and b does not matter.
func NewChimericAlignment(a, b AlignmentInterval, insertionMappings []string, contigName string, dict *RefDict) (ChimericAlignment, error) {
	for _, aln := range [...]AlignmentInterval{a, b} {
		if err := aln.Validate(dict); err != nil {
			return ChimericAlignment{}, errors.Wrapf(err, "contig %s", contigName)
		}
	}
	if b.StartInContig < a.StartInContig || (b.StartInContig == a.StartInContig && b.EndInContig < a.EndInContig) {
		a, b = b, a
	}
	if a.StartInContig == b.StartInContig && a.EndInContig == b.EndInContig {
		return ChimericAlignment{}, errors.Wrapf(ErrInput, "contig %s: intervals %v and %v cover the same contig bases", contigName, a, b)
	}
	ca := ChimericAlignment{
		ContigName:        contigName,
		Lower:             a,
		Higher:            b,
		InsertionMappings: insertionMappings,
		StrandSwitch:      strandSwitchOf(a, b),
	}
	ca.IsForwardStrandRepresentation = ca.isForwardStrandRepresentation(dict)
	return ca, nil
}

func strandSwitchOf(lower, higher AlignmentInterval) StrandSwitch {
	switch {
	case lower.Forward == higher.Forward:
		return NoSwitch
	case lower.Forward:
		return ForwardToReverse
	default:
		return ReverseToForward
	}
}

func (ca ChimericAlignment) isForwardStrandRepresentation(dict *RefDict) bool {
	lo, hi := ca.Lower.RefSpan, ca.Higher.RefSpan
	switch {
	case lo.Contig != hi.Contig:
		return dict.Index(lo.Contig) < dict.Index(hi.Contig)
	case ca.StrandSwitch == NoSwitch:
		return ca.Lower.Forward
	default:
		return !(hi.Start < lo.Start || (hi.Start == lo.Start && hi.End < lo.End))
	}
}

// isRefOrderSwap checks if the pair is on one strand of one chromosome but
// the reference order of the intervals disagrees with their contig order.
func (ca ChimericAlignment) isRefOrderSwap() bool {
	lo, hi := ca.Lower.RefSpan, ca.Higher.RefSpan
	if ca.StrandSwitch != NoSwitch || lo.Contig != hi.Contig {
		return false
	}
	if ca.Lower.Forward {
		return hi.Start < lo.Start
	}
	return hi.Start > lo.Start
}

// contigLength returns the contig length implied by the two intervals.
func (ca ChimericAlignment) contigLength() int {
	return max(ca.Lower.contigLength(), ca.Higher.contigLength())
}

// reverseComplement returns the chimera as seen on the reverse complement of
// a contig of the given length.
func (ca ChimericAlignment) reverseComplement(contigLen int) ChimericAlignment {
	rc := ca
	rc.Lower = ca.Higher.reverseComplement(contigLen)
	rc.Higher = ca.Lower.reverseComplement(contigLen)
	rc.IsForwardStrandRepresentation = !ca.IsForwardStrandRepresentation
	return rc
}

// ParseContig splits the alignments of one contig into chimeric alignments,
// one per adjacent pair of intervals that pass the Opts thresholds, in
// contig order. Intervals between an emitted pair are recorded as the pair's
// insertion mappings. Pairs that cannot be resolved are skipped. An error is
// returned only for inconsistent input.
func ParseContig(contig AlignedContig, dict *RefDict, opts Opts) ([]ChimericAlignment, error) {
	if len(contig.Alignments) < 2 {
		return nil, nil
	}
	alns := append([]AlignmentInterval(nil), contig.Alignments...)
	sortAlignments(alns)

	i := 0
	for i < len(alns)-1 && alns[i].MapQ < opts.HighMQThreshold {
		i++
	}
	current := alns[i]
	var (
		results    []ChimericAlignment
		insertions []string
	)
	for j := i + 1; j < len(alns); j++ {
		next := alns[j]
		overlap := overlapOnContig(current, next)
		if current.RefSpan.Size()-overlap < opts.MinAlignLength {
			log.Debug.Printf("contig %s: %v too short next to %v, skipping the latter", contig.Name, current, next)
			continue
		}
		if nextMayBeInsertion(current, next, overlap, opts) {
			if j == len(alns)-1 {
				break
			}
			insertions = append(insertions, next.Pack())
			continue
		}
		if opts.FilterAmbiguous && overlap >= min(current.ContigSpan(), next.ContigSpan()) {
			log.Debug.Printf("contig %s: %v and %v overlap by %d contig bases, skipping", contig.Name, current, next, overlap)
			continue
		}
		ca, err := NewChimericAlignment(current, next, insertions, contig.Name, dict)
		if err != nil {
			return nil, err
		}
		if !opts.IncludeSameStrandInversions && ca.isRefOrderSwap() {
			log.Debug.Printf("contig %s: dropping same-strand order swap %v -> %v", contig.Name, current, next)
		} else {
			results = append(results, ca)
		}
		current, insertions = next, nil
	}
	return results, nil
}

// nextMayBeInsertion checks if next lacks the uniqueness or the mapping
// quality to anchor a chimeric alignment with current.
func nextMayBeInsertion(current, next AlignmentInterval, overlap int, opts Opts) bool {
	if next.MapQ < opts.HighMQThreshold || next.RefSpan.Size()-overlap < opts.MinAlignLength {
		return true
	}
	return opts.FilterAmbiguous && (current.containsOnContig(next) || current.RefSpan.Contains(next.RefSpan))
}

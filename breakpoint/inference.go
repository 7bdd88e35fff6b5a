// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"github.com/pkg/errors"
)

// Inference is the result of resolving one chimeric alignment: the
// left-justified breakpoints, the junction complication, and the novel
// bases of the alternate haplotype.
type Inference struct {
	left, right  SimpleInterval
	strandSwitch StrandSwitch
	complication Complication
	altHaplotype []byte
}

// LeftJustifiedBreakpoints returns the left and right breakpoints as
// single-base intervals. Homologous and repeated bases are assigned to the
// left of the adjacency.
func (inf Inference) LeftJustifiedBreakpoints() (left, right SimpleInterval) {
	return inf.left, inf.right
}

// StrandSwitch returns the strand switch of the chimera.
func (inf Inference) StrandSwitch() StrandSwitch { return inf.strandSwitch }

// Complication returns the junction complication.
func (inf Inference) Complication() Complication { return inf.complication }

// AltHaplotype returns the contig bases between the left and the right
// reference flank. It is empty for a pure deletion.
func (inf Inference) AltHaplotype() []byte { return inf.altHaplotype }

// Infer computes the breakpoints and the complication implied by ca.
// contigSeq may be nil when the junction needs no contig bases (no homology,
// no inserted sequence and no repeat); otherwise it must cover both
// intervals.
//
// The result does not depend on which strand of the contig ca was built
// from.
func Infer(ca ChimericAlignment, contigSeq []byte, dict *RefDict) (Inference, error) {
	for _, a := range [...]AlignmentInterval{ca.Lower, ca.Higher} {
		if err := a.Validate(dict); err != nil {
			return Inference{}, errors.Wrapf(err, "contig %s", ca.ContigName)
		}
	}
	contigLen := ca.contigLength()
	if contigSeq != nil {
		if need := max(ca.Lower.EndInContig, ca.Higher.EndInContig); len(contigSeq) < need {
			return Inference{}, errors.Wrapf(ErrInput, "contig %s: sequence has %d bases, alignments need %d",
				ca.ContigName, len(contigSeq), need)
		}
		contigLen = len(contigSeq)
	}
	if !ca.IsForwardStrandRepresentation {
		ca = ca.reverseComplement(contigLen)
		if contigSeq != nil {
			contigSeq = reverseComplemented(contigSeq)
		}
	}
	r := resolver{ca: ca, lo: ca.Lower, hi: ca.Higher, seq: contigSeq}
	var (
		inf Inference
		err error
	)
	switch {
	case r.lo.RefSpan.Contig != r.hi.RefSpan.Contig:
		inf, err = r.inferInterChromosome()
	case ca.StrandSwitch != NoSwitch:
		inf, err = r.inferStrandSwitch()
	case r.hi.RefSpan.Start < r.lo.RefSpan.Start:
		inf, err = r.inferRefOrderSwap()
	default:
		inf, err = r.inferNoSwitch()
	}
	if err != nil {
		return Inference{}, err
	}
	inf.strandSwitch = ca.StrandSwitch
	if inf.altHaplotype == nil {
		inf.altHaplotype = []byte{}
	}
	return inf, nil
}

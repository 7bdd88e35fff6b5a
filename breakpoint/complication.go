// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Complication.
type Kind uint8

const (
	// SimpleInsDelOrReplacement is a same-strand deletion, insertion or
	// replacement without a copy-number change.
	SimpleInsDelOrReplacement Kind = iota
	// SmallDuplication is a same-strand change in the copy number of a tandem
	// repeat unit.
	SmallDuplication
	// IntraChrStrandSwitch is an inversion-like junction on one chromosome,
	// possibly with an inverted duplication.
	IntraChrStrandSwitch
	// RefOrderSwap is a same-strand junction whose pieces appear on the
	// reference in the opposite order of the contig.
	RefOrderSwap
	// InterChromosome is a junction between two chromosomes.
	InterChromosome
	numKinds
)

var kindNames = [...]string{
	SimpleInsDelOrReplacement: "SimpleInsDelOrReplacement",
	SmallDuplication:          "SmallDuplication",
	IntraChrStrandSwitch:      "IntraChrStrandSwitch",
	RefOrderSwap:              "RefOrderSwap",
	InterChromosome:           "InterChromosome",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// DupAnnotation describes a change in the copy number of a repeat unit.
// The zero value means no duplication.
type DupAnnotation struct {
	// RepeatUnitRefSpan is the reference span of one copy of the unit.
	RepeatUnitRefSpan SimpleInterval
	// RepeatNumOnRef and RepeatNumOnCtg are the number of copies of the unit
	// on the reference and on the contig.
	RepeatNumOnRef, RepeatNumOnCtg int
	// CigarsOnCtg holds, for each copy on the contig, the cigar of the
	// alignment of that copy to the unit, in reference order.
	CigarsOnCtg []string
}

// IsZero checks if d describes no duplication.
func (d DupAnnotation) IsZero() bool {
	return d.RepeatUnitRefSpan.IsZero() && d.RepeatNumOnRef == 0 && d.RepeatNumOnCtg == 0 && len(d.CigarsOnCtg) == 0
}

// IsExpansion checks if the contig carries more copies than the reference.
func (d DupAnnotation) IsExpansion() bool { return d.RepeatNumOnCtg > d.RepeatNumOnRef }

// Equal checks if the two annotations are identical.
func (d DupAnnotation) Equal(o DupAnnotation) bool {
	if d.RepeatUnitRefSpan != o.RepeatUnitRefSpan || d.RepeatNumOnRef != o.RepeatNumOnRef ||
		d.RepeatNumOnCtg != o.RepeatNumOnCtg || len(d.CigarsOnCtg) != len(o.CigarsOnCtg) {
		return false
	}
	for i := range d.CigarsOnCtg {
		if d.CigarsOnCtg[i] != o.CigarsOnCtg[i] {
			return false
		}
	}
	return true
}

// Complication describes what makes the exact junction of a novel adjacency
// ambiguous. Exactly one Kind is active; Dup is set only for
// SmallDuplication, and for IntraChrStrandSwitch when the two reference
// spans overlap.
//
// Homology and InsertedSequence are in the forward-strand representation
// and empty when absent.
type Complication struct {
	Kind             Kind
	Homology         string
	InsertedSequence string
	Dup              DupAnnotation
}

// NewSimpleInsDelOrReplacement creates a SimpleInsDelOrReplacement
// complication.
func NewSimpleInsDelOrReplacement(homology, inserted string) Complication {
	return Complication{Kind: SimpleInsDelOrReplacement, Homology: homology, InsertedSequence: inserted}
}

// NewSmallDuplication creates a SmallDuplication complication.
//
// REQUIRES: dup.RepeatNumOnRef and dup.RepeatNumOnCtg are positive and
// differ.
func NewSmallDuplication(homology, inserted string, dup DupAnnotation) Complication {
	if dup.RepeatNumOnRef < 1 || dup.RepeatNumOnCtg < 1 || dup.RepeatNumOnRef == dup.RepeatNumOnCtg {
		panic(fmt.Sprintf("invalid duplication copy numbers %d -> %d", dup.RepeatNumOnRef, dup.RepeatNumOnCtg))
	}
	return Complication{Kind: SmallDuplication, Homology: homology, InsertedSequence: inserted, Dup: dup}
}

// NewIntraChrStrandSwitch creates an IntraChrStrandSwitch complication. dup
// is the zero value unless the junction is an inverted duplication.
func NewIntraChrStrandSwitch(homology, inserted string, dup DupAnnotation) Complication {
	return Complication{Kind: IntraChrStrandSwitch, Homology: homology, InsertedSequence: inserted, Dup: dup}
}

// NewRefOrderSwap creates a RefOrderSwap complication.
func NewRefOrderSwap(homology, inserted string) Complication {
	return Complication{Kind: RefOrderSwap, Homology: homology, InsertedSequence: inserted}
}

// NewInterChromosome creates an InterChromosome complication.
func NewInterChromosome(homology, inserted string) Complication {
	return Complication{Kind: InterChromosome, Homology: homology, InsertedSequence: inserted}
}

// HasDuplication checks if the complication carries a repeat annotation.
func (c Complication) HasDuplication() bool { return !c.Dup.IsZero() }

// Equal checks if the two complications are identical.
func (c Complication) Equal(o Complication) bool {
	return c.Kind == o.Kind && c.Homology == o.Homology && c.InsertedSequence == o.InsertedSequence && c.Dup.Equal(o.Dup)
}

func (c Complication) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%v{hom=%q ins=%q", c.Kind, c.Homology, c.InsertedSequence)
	if c.HasDuplication() {
		fmt.Fprintf(&b, " unit=%v %d->%d cigars=%s", c.Dup.RepeatUnitRefSpan,
			c.Dup.RepeatNumOnRef, c.Dup.RepeatNumOnCtg, strings.Join(c.Dup.CigarsOnCtg, ","))
	}
	b.WriteString("}")
	return b.String()
}

// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"encoding/hex"
	"fmt"

	farm "github.com/dgryski/go-farm"
	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
)

// NovelAdjacency is a junction between two reference loci that is absent
// from the reference, inferred from one chimeric alignment. It is immutable
// once built.
type NovelAdjacency struct {
	// LeftLoc and RightLoc are the left-justified breakpoints.
	LeftLoc, RightLoc SimpleInterval
	StrandSwitch      StrandSwitch
	Complication      Complication
	// AltHaplotype holds the novel bases between the left and the right
	// reference flank. It is derived from the other fields and takes no part
	// in equality.
	AltHaplotype []byte
}

// NewNovelAdjacency infers the adjacency implied by ca. contigSeq must
// cover both intervals of ca.
func NewNovelAdjacency(ca ChimericAlignment, contigSeq []byte, dict *RefDict) (*NovelAdjacency, error) {
	if need := max(ca.Lower.EndInContig, ca.Higher.EndInContig); len(contigSeq) < need {
		return nil, errors.Wrapf(ErrInput, "contig %s: sequence has %d bases, alignments need %d",
			ca.ContigName, len(contigSeq), need)
	}
	inf, err := Infer(ca, contigSeq, dict)
	if err != nil {
		return nil, err
	}
	left, right := inf.LeftJustifiedBreakpoints()
	return &NovelAdjacency{
		LeftLoc:      left,
		RightLoc:     right,
		StrandSwitch: inf.StrandSwitch(),
		Complication: inf.Complication(),
		AltHaplotype: inf.AltHaplotype(),
	}, nil
}

// Key is the canonical identity of a NovelAdjacency. Two adjacencies are
// equal iff their keys are equal. Keys may be used as map keys.
type Key string

// Key returns the canonical identity of n: the encoding of every field
// except AltHaplotype.
func (n *NovelAdjacency) Key() Key {
	e := newEncoder()
	e.identity(n)
	return Key(e.Bytes())
}

// Equal checks if n and o describe the same event.
func (n *NovelAdjacency) Equal(o *NovelAdjacency) bool { return n.Key() == o.Key() }

// Hash returns a hash of the key of n.
func (n *NovelAdjacency) Hash() uint64 { return farm.Hash64([]byte(n.Key())) }

var eventIDSeed [highwayhash.Size]byte

// EventID returns a stable 128-bit digest of the key of n, in hex.
func (n *NovelAdjacency) EventID() string {
	sum := highwayhash.Sum128([]byte(n.Key()), eventIDSeed[:])
	return hex.EncodeToString(sum[:])
}

func (n *NovelAdjacency) String() string {
	return fmt.Sprintf("%v|%v %v %v alt=%d", n.LeftLoc, n.RightLoc, n.StrandSwitch, n.Complication, len(n.AltHaplotype))
}

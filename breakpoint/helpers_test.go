// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDict lists "20" before "21", as in b37.
var testDict = func() *RefDict {
	d, err := NewRefDictFromLengths([]string{"20", "21", "chr21"}, []int{63025520, 48129895, 46709983})
	if err != nil {
		panic(err)
	}
	return d
}()

func newAln(t *testing.T, span string, start, end int, cigar string, forward bool) AlignmentInterval {
	ref, err := ParseSimpleInterval(span)
	require.NoError(t, err)
	c, err := ParseCigar(cigar)
	require.NoError(t, err)
	return AlignmentInterval{
		RefSpan:       ref,
		StartInContig: start,
		EndInContig:   end,
		Cigar:         c,
		Forward:       forward,
		MapQ:          60,
		Mismatches:    0,
		AlnScore:      end - start + 1,
	}
}

func randomBases(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[r.Intn(4)]
	}
	return b
}

// refWindow is a made-up stretch of reference starting at 1-based position
// start.
type refWindow struct {
	start int
	seq   []byte
}

func newRefWindow(start, n int, seed int64) refWindow {
	return refWindow{start: start, seq: randomBases(n, seed)}
}

// bases returns a copy of the reference bases [from, to].
func (w refWindow) bases(from, to int) []byte {
	return append([]byte(nil), w.seq[from-w.start:to-w.start+1]...)
}

// set overwrites the reference starting at pos.
func (w refWindow) set(pos int, b []byte) {
	copy(w.seq[pos-w.start:], b)
}

func cat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func rc(s string) string { return string(reverseComplemented([]byte(s))) }

// substitute returns a copy of b with the base at i replaced by its
// complement.
func substitute(b []byte, i int) []byte {
	b = append([]byte(nil), b...)
	b[i] = revCompTable[b[i]]
	return b
}

// chimeraOf pairs the two alignments of the contig.
func chimeraOf(t *testing.T, contig AlignedContig) ChimericAlignment {
	require.Len(t, contig.Alignments, 2)
	ca, err := NewChimericAlignment(contig.Alignments[0], contig.Alignments[1], nil, contig.Name, testDict)
	require.NoError(t, err)
	return ca
}

// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

// revCompTable maps an ASCII base to its complement. IUPAC ambiguity codes
// map to their complementary codes, lowercase is preserved, and anything
// else becomes 'N'.
var revCompTable [256]byte

func init() {
	for i := range revCompTable {
		revCompTable[i] = 'N'
	}
	for _, p := range []string{"AT", "CG", "RY", "KM", "SS", "WW", "BV", "DH", "NN"} {
		revCompTable[p[0]], revCompTable[p[1]] = p[1], p[0]
		lo0, lo1 := p[0]+'a'-'A', p[1]+'a'-'A'
		revCompTable[lo0], revCompTable[lo1] = lo1, lo0
	}
}

// ReverseComplement writes the reverse complement of src to dst.
//
// REQUIRES: len(dst) == len(src). dst and src may be the same slice.
func ReverseComplement(dst, src []byte) {
	n := len(src)
	if len(dst) != n {
		panic("ReverseComplement requires len(dst) == len(src)")
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = revCompTable[src[j]], revCompTable[src[i]]
	}
	if n&1 == 1 {
		dst[n/2] = revCompTable[src[n/2]]
	}
}

// reverseComplemented returns a new slice holding the reverse complement of
// src.
func reverseComplemented(src []byte) []byte {
	dst := make([]byte, len(src))
	ReverseComplement(dst, src)
	return dst
}

// contigBases returns a copy of the 1-based inclusive range [from, to] of
// seq. It returns an empty non-nil slice when to < from.
func contigBases(seq []byte, from, to int) []byte {
	if to < from {
		return []byte{}
	}
	b := make([]byte, to-from+1)
	copy(b, seq[from-1:to])
	return b
}

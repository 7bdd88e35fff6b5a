// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reverseComp8Slow reverse-complements ascii8 in place with the A/C/G/T/N
// mapping of biosimd.ReverseComp8Inplace.
func reverseComp8Slow(ascii8 []byte) {
	comp := func(b byte) byte {
		switch b {
		case 'A':
			return 'T'
		case 'C':
			return 'G'
		case 'G':
			return 'C'
		case 'T':
			return 'A'
		}
		return 'N'
	}
	n := len(ascii8)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		ascii8[i], ascii8[j] = comp(ascii8[j]), comp(ascii8[i])
	}
	if n&1 == 1 {
		ascii8[n/2] = comp(ascii8[n/2])
	}
}

func TestReverseComplementACGTN(t *testing.T) {
	const maxSize = 500
	r := rand.New(rand.NewSource(0))
	arr := make([]byte, maxSize+1)
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(maxSize)
		src := make([]byte, n)
		for i := range src {
			src[i] = "ACGTN"[r.Intn(5)]
		}
		want := append([]byte(nil), src...)
		reverseComp8Slow(want)

		sentinel := byte(r.Intn(256))
		arr[n] = sentinel
		ReverseComplement(arr[:n], src)
		if !bytes.Equal(want, arr[:n]) {
			t.Fatalf("mismatched reverse complement of %s", src)
		}
		if arr[n] != sentinel {
			t.Fatal("ReverseComplement clobbered an extra byte")
		}
		inplace := append([]byte(nil), src...)
		ReverseComplement(inplace, inplace)
		if !bytes.Equal(want, inplace) {
			t.Fatalf("mismatched in-place reverse complement of %s", src)
		}
	}
}

func TestReverseComplementIUPAC(t *testing.T) {
	assert.Equal(t, "NnBVDHWSMKYRtgca", string(reverseComplemented([]byte("tgcaYRMKSWDHBVnN"))))
	assert.Equal(t, "N", string(reverseComplemented([]byte("X"))))
	s := []byte("ACGTRYKMSWBDHVNacgtrykmswbdhvn")
	assert.Equal(t, string(s), string(reverseComplemented(reverseComplemented(s))))
	assert.Panics(t, func() { ReverseComplement(make([]byte, 2), []byte("ACG")) })
}

// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCigar(t *testing.T, s string) sam.Cigar {
	c, err := ParseCigar(s)
	require.NoError(t, err)
	return c
}

func TestCigarHelpers(t *testing.T) {
	c := mustCigar(t, "5H10S20M2I30M3D8M7S")
	lead, trail := clipLengths(c)
	assert.Equal(t, 15, lead)
	assert.Equal(t, 7, trail)
	ref, read := alignedLengths(c)
	assert.Equal(t, 61, ref)
	assert.Equal(t, 60, read)
	assert.Equal(t, "7S8M3D30M2I20M10S5H", reverseCigar(c).String())

	soft, converted := hardToSoftClip(c)
	assert.True(t, converted)
	assert.Equal(t, "15S20M2I30M3D8M7S", soft.String())
	_, converted = hardToSoftClip(soft)
	assert.False(t, converted)

	_, err := ParseCigar("10Q")
	assert.True(t, IsInputError(err))
}

func TestSubCigar(t *testing.T) {
	c := mustCigar(t, "10S20M2I30M3D8M")
	tests := []struct {
		from, to int
		byQuery  bool
		want     string
	}{
		// Reference axis starting at 1001: 20M covers 1001-1020, 30M
		// 1021-1050, 3D 1051-1053, 8M 1054-1061.
		{1011, 1030, false, "10M2I10M"},
		{1021, 1030, false, "10M"},
		{1045, 1058, false, "6M3D5M"},
		{1001, 1020, false, "20M"},
		// Query axis starting at contig base 11: 20M covers 11-30, 2I 31-32,
		// 30M 33-62, 8M 63-70.
		{21, 40, true, "10M2I8M"},
		{60, 66, true, "3M3D4M"},
		{31, 32, true, "2I"},
	}
	for _, test := range tests {
		start := 1001
		if test.byQuery {
			start = 11
		}
		assert.Equal(t, test.want, subCigar(c, start, test.from, test.to, test.byQuery).String(), "%+v", test)
	}
}

func TestRefPosToContigPos(t *testing.T) {
	a := newAln(t, "20:1001-1061", 11, 70, "10S20M2I30M3D8M", true)
	assert.Equal(t, 11, refPosToContigPos(a, 1001))
	assert.Equal(t, 30, refPosToContigPos(a, 1020))
	assert.Equal(t, 33, refPosToContigPos(a, 1021))
	assert.Equal(t, 62, refPosToContigPos(a, 1052))
	assert.Equal(t, 63, refPosToContigPos(a, 1054))
}

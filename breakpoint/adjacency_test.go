// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacencyOf builds the adjacency of a two-interval contig, substituting a
// placeholder sequence when the contig has none.
func adjacencyOf(t *testing.T, contig AlignedContig) *NovelAdjacency {
	ca := chimeraOf(t, contig)
	seq := contig.Seq
	if seq == nil {
		seq = bytes.Repeat([]byte("A"), ca.contigLength())
	}
	adj, err := NewNovelAdjacency(ca, seq, testDict)
	require.NoError(t, err)
	return adj
}

func TestNovelAdjacencyEqualAcrossContigs(t *testing.T) {
	region1 := newAln(t, "20:10001-10100", 1, 100, "100M100S", true)
	region2 := newAln(t, "20:20101-20200", 101, 200, "100S100M", false)
	seq := bytes.Repeat([]byte("A"), 200)

	ca1, err := NewChimericAlignment(region1, region2, []string{"foo"}, "1", testDict)
	require.NoError(t, err)
	ca2, err := NewChimericAlignment(region1, region2, []string{"bar"}, "2", testDict)
	require.NoError(t, err)
	adj1, err := NewNovelAdjacency(ca1, seq, testDict)
	require.NoError(t, err)
	adj2, err := NewNovelAdjacency(ca2, seq, testDict)
	require.NoError(t, err)

	expect.True(t, adj1.Equal(adj2))
	expect.EQ(t, adj1.Hash(), adj2.Hash())
	expect.EQ(t, adj1.EventID(), adj2.EventID())
	expect.EQ(t, adj1.LeftLoc, NewLocus("20", 10100))
	expect.EQ(t, adj1.RightLoc, NewLocus("20", 20200))

	// The alternate haplotype is not part of the identity.
	adj2.AltHaplotype = []byte("ACGT")
	expect.True(t, adj1.Equal(adj2))
}

func TestNovelAdjacencyStrandIndependent(t *testing.T) {
	for _, c := range inferenceCases(t) {
		plus := adjacencyOf(t, c.contig)
		minus := adjacencyOf(t, c.contig.ReverseComplement())
		assert.True(t, plus.Equal(minus), "%s: %v vs %v", c.name, plus, minus)
		assert.Equal(t, plus.Hash(), minus.Hash(), c.name)
		assert.Equal(t, plus.AltHaplotype, minus.AltHaplotype, c.name)
	}
}

func TestNovelAdjacencyDistinct(t *testing.T) {
	seen := map[Key]string{}
	for _, c := range inferenceCases(t) {
		adj := adjacencyOf(t, c.contig)
		if prev, ok := seen[adj.Key()]; ok {
			t.Errorf("%s and %s have the same key", prev, c.name)
		}
		seen[adj.Key()] = c.name
	}
}

func TestNovelAdjacencyRoundTrip(t *testing.T) {
	for _, c := range inferenceCases(t) {
		adj := adjacencyOf(t, c.contig)
		got, err := UnmarshalNovelAdjacency(adj.Marshal())
		require.NoError(t, err, c.name)
		assert.True(t, adj.Equal(got), "%s: %v vs %v", c.name, adj, got)
		assert.True(t, adj.Complication.Equal(got.Complication), c.name)
		assert.Equal(t, adj.AltHaplotype, got.AltHaplotype, c.name)
		assert.Equal(t, adj.EventID(), got.EventID(), c.name)
	}
}

func TestUnmarshalNovelAdjacencyErrors(t *testing.T) {
	cases := inferenceCases(t)
	data := adjacencyOf(t, cases[0].contig).Marshal()

	_, err := UnmarshalNovelAdjacency(data[:len(data)/2])
	assert.Error(t, err)
	_, err = UnmarshalNovelAdjacency(nil)
	assert.Error(t, err)

	b := proto.NewBuffer(nil)
	require.NoError(t, b.EncodeVarint(codecVersion+1))
	_, err = UnmarshalNovelAdjacency(append(b.Bytes(), data[1:]...))
	assert.Error(t, err)

	bad := &NovelAdjacency{
		LeftLoc:      NewLocus("20", 10),
		RightLoc:     NewLocus("20", 20),
		Complication: Complication{Kind: numKinds},
	}
	_, err = UnmarshalNovelAdjacency(bad.Marshal())
	assert.Error(t, err)

	// dupRecord encodes a SmallDuplication up to the cigar count.
	dupRecord := func(refNum, ctgNum int, ncigars uint64) []byte {
		e := newEncoder()
		e.int(codecVersion)
		e.locus(NewLocus("20", 10))
		e.locus(NewLocus("20", 10))
		e.int(int(NoSwitch))
		e.int(int(SmallDuplication))
		e.str("")
		e.str("")
		e.bool(true)
		e.locus(NewSimpleInterval("20", 11, 20))
		e.int(refNum)
		e.int(ctgNum)
		require.NoError(t, e.EncodeVarint(ncigars))
		return e.Bytes()
	}
	for _, data := range [][]byte{
		dupRecord(1, 2, ^uint64(0)),
		dupRecord(1, 2, 1<<40),
		append(dupRecord(-1, 2, 0), 0),
		append(dupRecord(1, 0, 0), 0),
	} {
		assert.NotPanics(t, func() {
			_, err := UnmarshalNovelAdjacency(data)
			assert.Error(t, err)
		})
	}
	// The same layout with sane values decodes.
	got, err := UnmarshalNovelAdjacency(append(dupRecord(1, 2, 0), 0))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Complication.Dup.RepeatNumOnCtg)

	neg := &NovelAdjacency{
		LeftLoc:  SimpleInterval{Contig: "20", Start: -5, End: -5},
		RightLoc: NewLocus("20", 20),
	}
	_, err = UnmarshalNovelAdjacency(neg.Marshal())
	assert.Error(t, err)
}

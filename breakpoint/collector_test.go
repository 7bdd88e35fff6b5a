// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"fmt"
	"sync"
	"testing"

	"github.com/grailbio/base/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCollector(t *testing.T) {
	var adjs []*NovelAdjacency
	for _, c := range inferenceCases(t) {
		adjs = append(adjs, adjacencyOf(t, c.contig))
	}
	c := NewEventCollector(testDict)
	// Every adjacency is reported by three contigs, one of them twice.
	require.NoError(t, traverse.Each(len(adjs)*4, func(i int) error {
		adj, n := adjs[i%len(adjs)], i/len(adjs)
		c.Add(adj, fmt.Sprintf("tig%d", min(n, 2)))
		return nil
	}))
	assert.Equal(t, len(adjs), c.Len())

	events := c.Events()
	require.Len(t, events, len(adjs))
	for i, ev := range events {
		assert.Equal(t, []string{"tig0", "tig1", "tig2"}, ev.Contigs)
		if i == 0 {
			continue
		}
		prev := events[i-1].Adjacency
		cur := ev.Adjacency
		prevRef, curRef := testDict.Index(prev.LeftLoc.Contig), testDict.Index(cur.LeftLoc.Contig)
		assert.True(t, prevRef < curRef || (prevRef == curRef && prev.LeftLoc.Start <= cur.LeftLoc.Start),
			"%v before %v", prev, cur)
	}
}

func TestEventCollectorConcurrentAdd(t *testing.T) {
	adj := adjacencyOf(t, inferenceCases(t)[0].contig)
	c := NewEventCollector(testDict)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add(adj, fmt.Sprintf("tig%02d", i))
		}(i)
	}
	wg.Wait()
	events := c.Events()
	require.Len(t, events, 1)
	assert.Len(t, events[0].Contigs, 16)
	assert.Equal(t, "tig00", events[0].Contigs[0])
	assert.Equal(t, "tig15", events[0].Contigs[15])
}

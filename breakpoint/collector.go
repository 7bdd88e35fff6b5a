// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"sort"
	"strings"
	"sync"

	"github.com/biogo/store/llrb"
)

// Event is a distinct novel adjacency with the contigs that support it.
type Event struct {
	Adjacency *NovelAdjacency
	// Contigs lists the names of the supporting contigs, sorted and without
	// duplicates.
	Contigs []string
}

type eventKey struct {
	leftRef, leftPos   int
	rightRef, rightPos int
	key                Key
	event              *Event
}

// Compare compares two eventKey objects for use in llrb.
func (k eventKey) Compare(c2 llrb.Comparable) int {
	k2 := c2.(eventKey)
	if diff := k.leftRef - k2.leftRef; diff != 0 {
		return diff
	}
	if diff := k.leftPos - k2.leftPos; diff != 0 {
		return diff
	}
	if diff := k.rightRef - k2.rightRef; diff != 0 {
		return diff
	}
	if diff := k.rightPos - k2.rightPos; diff != 0 {
		return diff
	}
	return strings.Compare(string(k.key), string(k2.key))
}

// EventCollector merges adjacencies that describe the same event. It is
// safe for concurrent use.
type EventCollector struct {
	dict *RefDict

	mu     sync.Mutex
	events llrb.Tree
	byKey  map[Key]*Event
}

// NewEventCollector creates an empty collector. dict orders the events.
func NewEventCollector(dict *RefDict) *EventCollector {
	return &EventCollector{dict: dict, byKey: map[Key]*Event{}}
}

// Add records that the named contig supports adj. The first adjacency seen
// for an event is kept.
func (c *EventCollector) Add(adj *NovelAdjacency, contigName string) {
	key := adj.Key()
	c.mu.Lock()
	defer c.mu.Unlock()
	ev, ok := c.byKey[key]
	if !ok {
		ev = &Event{Adjacency: adj}
		c.byKey[key] = ev
		c.events.Insert(eventKey{
			leftRef:  c.dict.Index(adj.LeftLoc.Contig),
			leftPos:  adj.LeftLoc.Start,
			rightRef: c.dict.Index(adj.RightLoc.Contig),
			rightPos: adj.RightLoc.Start,
			key:      key,
			event:    ev,
		})
	}
	i := sort.SearchStrings(ev.Contigs, contigName)
	if i < len(ev.Contigs) && ev.Contigs[i] == contigName {
		return
	}
	ev.Contigs = append(ev.Contigs, "")
	copy(ev.Contigs[i+1:], ev.Contigs[i:])
	ev.Contigs[i] = contigName
}

// Len returns the number of distinct events.
func (c *EventCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byKey)
}

// Events lists the distinct events ordered by the reference position of the
// left, then the right breakpoint.
func (c *EventCollector) Events() []*Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := make([]*Event, 0, len(c.byKey))
	c.events.Do(func(item llrb.Comparable) bool {
		events = append(events, item.(eventKey).event)
		return false
	})
	return events
}

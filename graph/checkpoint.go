/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"devt.de/krotik/common/datautil"

	"github.com/krotik/chronograph/graph/data"
)

/*
Checkpoint is a full copy of graph state taken after a given number of
events have been appended. Snapshot uses the newest checkpoint at or
before a requested timestamp as its replay base instead of always
replaying from the empty graph.
*/
type Checkpoint struct {
	Timestamp  int64
	EventIndex int
	Nodes      map[string]data.Node
	Edges      map[string]data.Edge
	Outgoing   map[string][]string
	Incoming   map[string][]string
}

func newCheckpoint(eventIndex int, ts int64, nodes map[string]data.Node, edges map[string]data.Edge,
	outgoing, incoming map[string][]string) *Checkpoint {

	cp := &Checkpoint{
		Timestamp:  ts,
		EventIndex: eventIndex,
		Nodes:      make(map[string]data.Node, len(nodes)),
		Edges:      make(map[string]data.Edge, len(edges)),
		Outgoing:   make(map[string][]string, len(outgoing)),
		Incoming:   make(map[string][]string, len(incoming)),
	}

	for k, v := range nodes {
		cp.Nodes[k] = v.Clone()
	}
	for k, v := range edges {
		cp.Edges[k] = v.Clone()
	}
	for k, v := range outgoing {
		cp.Outgoing[k] = append([]string(nil), v...)
	}
	for k, v := range incoming {
		cp.Incoming[k] = append([]string(nil), v...)
	}

	return cp
}

/*
checkpointStore holds a Graph's checkpoints ordered oldest-first. When
bounded (retention > 0) it is backed by a datautil.RingBuffer so the
oldest checkpoint is evicted first once the bound is reached; eviction
only ever drops the oldest entries, so "the newest checkpoint at or
before T" is still correctly answered for any T newer than the oldest
surviving checkpoint. When unbounded (retention == 0, the default) it
keeps every checkpoint ever taken in a plain slice.
*/
type checkpointStore struct {
	retention int
	ring      *datautil.RingBuffer
	list      []*Checkpoint
}

func newCheckpointStore(retention int) *checkpointStore {
	cs := &checkpointStore{retention: retention}
	if retention > 0 {
		cs.ring = datautil.NewRingBuffer(retention)
	}
	return cs
}

func (cs *checkpointStore) add(cp *Checkpoint) {
	if cs.ring != nil {
		cs.ring.Add(cp)
		return
	}
	cs.list = append(cs.list, cp)
}

/*
slice returns the stored checkpoints, oldest first.
*/
func (cs *checkpointStore) slice() []*Checkpoint {
	if cs.ring != nil {
		raw := cs.ring.Slice()
		out := make([]*Checkpoint, len(raw))
		for i, v := range raw {
			out[i] = v.(*Checkpoint)
		}
		return out
	}
	return cs.list
}

/*
latestAtOrBefore returns the newest checkpoint whose Timestamp is <= t,
or nil if none qualifies.
*/
func (cs *checkpointStore) latestAtOrBefore(t int64) *Checkpoint {
	all := cs.slice()
	var best *Checkpoint
	for _, cp := range all {
		if cp.Timestamp <= t {
			if best == nil || cp.Timestamp > best.Timestamp ||
				(cp.Timestamp == best.Timestamp && cp.EventIndex > best.EventIndex) {
				best = cp
			}
		}
	}
	return best
}

func (cs *checkpointStore) reset() {
	if cs.ring != nil {
		cs.ring.Reset()
		return
	}
	cs.list = nil
}

func (cs *checkpointStore) len() int {
	return len(cs.slice())
}

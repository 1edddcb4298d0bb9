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

import "github.com/krotik/chronograph/graph/data"

/*
Snapshot is a read-only view of graph state as of a given timestamp T.
It is built by taking the newest Checkpoint at or before T, if any,
and then replaying every logged event with Timestamp <= T on top of
it - not every event up to that point in log order, since the log is
insertion-ordered rather than time-ordered.

A Snapshot shares ApplyEvent's cascade-delete and merge semantics with
the live Graph, so "what did the graph look like at T" and "what does
the graph look like now, replayed from scratch up to T" never diverge.
*/
type Snapshot struct {
	at       int64
	nodes    map[string]data.Node
	edges    map[string]data.Edge
	outgoing map[string][]string
	incoming map[string][]string
}

/*
NewSnapshot builds a Snapshot of g as of timestamp t.
*/
func NewSnapshot(g *Graph, t int64) *Snapshot {
	s := &Snapshot{
		at:       t,
		nodes:    make(map[string]data.Node),
		edges:    make(map[string]data.Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}

	base := g.checkpoints.latestAtOrBefore(t)

	startIndex := 0
	if base != nil {
		startIndex = base.EventIndex
		for k, v := range base.Nodes {
			s.nodes[k] = v.Clone()
		}
		for k, v := range base.Edges {
			s.edges[k] = v.Clone()
		}
		for k, v := range base.Outgoing {
			s.outgoing[k] = append([]string(nil), v...)
		}
		for k, v := range base.Incoming {
			s.incoming[k] = append([]string(nil), v...)
		}
	}

	replay := &Graph{
		nodes:    s.nodes,
		edges:    s.edges,
		outgoing: s.outgoing,
		incoming: s.incoming,
	}

	for _, ev := range g.events[startIndex:] {
		if ev.Timestamp <= t {
			replay.ApplyEvent(ev)
		}
	}

	return s
}

/*
At returns the timestamp this snapshot was taken at.
*/
func (s *Snapshot) At() int64 { return s.at }

/*
Nodes returns the node set as of this snapshot's timestamp.
*/
func (s *Snapshot) Nodes() map[string]data.Node { return s.nodes }

/*
Edges returns the edge set as of this snapshot's timestamp.
*/
func (s *Snapshot) Edges() map[string]data.Edge { return s.edges }

/*
Outgoing returns outgoing adjacency as of this snapshot's timestamp.
*/
func (s *Snapshot) Outgoing() map[string][]string { return s.outgoing }

/*
Incoming returns incoming adjacency as of this snapshot's timestamp.
*/
func (s *Snapshot) Incoming() map[string][]string { return s.incoming }

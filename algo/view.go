/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package algo implements the read-only graph algorithms: reachability,
shortest path, time-respecting reachability, weighted shortest path,
connected components, cycle detection and topological sort. Every
algorithm is a pure function over a GraphView and never mutates it.
*/
package algo

import (
	"github.com/krotik/chronograph/graph/data"
	"github.com/krotik/chronograph/internal/chronolog"
)

var log = chronolog.Get("chronograph.algo")

/*
GraphView is the read-only surface every algorithm in this package
needs. Both *graph.Graph and *graph.Snapshot satisfy it structurally,
so an algorithm can run unchanged over current state or over any past
point in time. The non-test code of this package does not import
graph.
*/
type GraphView interface {
	Nodes() map[string]data.Node
	Edges() map[string]data.Edge
	Outgoing() map[string][]string
	Incoming() map[string][]string
}

/*
neighborsOut returns, for node id, the ids of nodes reachable via one
outgoing edge, in the insertion order of the node's outgoing adjacency
list (BFS tie-breaking relies on this order).
*/
func neighborsOut(g GraphView, id string) []string {
	var out []string
	for _, eid := range g.Outgoing()[id] {
		if e, ok := g.Edges()[eid]; ok {
			out = append(out, e.To())
		}
	}
	return out
}

/*
neighborsUndirected returns both outgoing and incoming neighbors of
id, outgoing first.
*/
func neighborsUndirected(g GraphView, id string) []string {
	var out []string
	for _, eid := range g.Outgoing()[id] {
		if e, ok := g.Edges()[eid]; ok {
			out = append(out, e.To())
		}
	}
	for _, eid := range g.Incoming()[id] {
		if e, ok := g.Edges()[eid]; ok {
			out = append(out, e.From())
		}
	}
	return out
}

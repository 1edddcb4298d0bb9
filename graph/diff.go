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
NodeUpdate pairs a node's attributes before and after, for an id
present in both sides of a Diff with differing attributes.
*/
type NodeUpdate struct {
	ID     string
	Before data.Node
	After  data.Node
}

/*
EdgeUpdate pairs an edge's endpoints/attributes before and after, for
an id present in both sides of a Diff with differing endpoints or
attributes.
*/
type EdgeUpdate struct {
	ID     string
	Before data.Edge
	After  data.Edge
}

/*
DiffResult is the symmetric difference between two Snapshots: full
values for ids present only in s2 (Added), ids present only in s1
(Removed), and for ids present in both sides with differing
attributes, before/after pairs (Updated). Added carries full values
rather than bare ids so a caller can apply nodesAdded/edgesAdded
directly to a Snapshot without a second lookup.
*/
type DiffResult struct {
	NodesAdded   []data.Node
	NodesRemoved []string
	NodesUpdated []NodeUpdate

	EdgesAdded   []data.Edge
	EdgesRemoved []string
	EdgesUpdated []EdgeUpdate
}

/*
diffSnapshots compares a "before" snapshot (s1) against an "after"
snapshot (s2): ids only in s2 are additions, ids only in s1 are
removals, ids in both with differing attributes are updates. Edge
equality considers endpoints as well as attributes (data.EdgesEqual),
since an edge id can be re-added with different endpoints.
*/
func diffSnapshots(s1, s2 *Snapshot) DiffResult {
	var d DiffResult

	for id, n2 := range s2.nodes {
		n1, ok := s1.nodes[id]
		if !ok {
			d.NodesAdded = append(d.NodesAdded, n2)
		} else if !data.AttrsEqual(n1.Attrs(), n2.Attrs()) {
			d.NodesUpdated = append(d.NodesUpdated, NodeUpdate{ID: id, Before: n1, After: n2})
		}
	}
	for id := range s1.nodes {
		if _, ok := s2.nodes[id]; !ok {
			d.NodesRemoved = append(d.NodesRemoved, id)
		}
	}

	for id, e2 := range s2.edges {
		e1, ok := s1.edges[id]
		if !ok {
			d.EdgesAdded = append(d.EdgesAdded, e2)
		} else if !data.EdgesEqual(e1, e2) {
			d.EdgesUpdated = append(d.EdgesUpdated, EdgeUpdate{ID: id, Before: e1, After: e2})
		}
	}
	for id := range s1.edges {
		if _, ok := s2.edges[id]; !ok {
			d.EdgesRemoved = append(d.EdgesRemoved, id)
		}
	}

	return d
}

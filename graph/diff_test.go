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
	"testing"

	"github.com/krotik/chronograph/graph/data"
)

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsNode(s []data.Node, id string) bool {
	for _, n := range s {
		if n.ID() == id {
			return true
		}
	}
	return false
}

func containsEdge(s []data.Edge, id string) bool {
	for _, e := range s {
		if e.ID() == id {
			return true
		}
	}
	return false
}

func containsNodeUpdate(s []NodeUpdate, id string) bool {
	for _, u := range s {
		if u.ID == id {
			return true
		}
	}
	return false
}

func containsEdgeUpdate(s []EdgeUpdate, id string) bool {
	for _, u := range s {
		if u.ID == id {
			return true
		}
	}
	return false
}

func TestDiffAddedRemovedUpdated(t *testing.T) {
	g := newTestGraph()

	g.AddNode("a", map[string]string{"v": "1"}, 1)
	g.AddNode("b", nil, 1)

	g.UpdateNode("a", map[string]string{"v": "2"}, 5)
	g.AddNode("c", nil, 6)
	g.DelNode("b", 7)

	d := g.Diff(2, 8)

	if !containsNode(d.NodesAdded, "c") {
		t.Error("Expected c to be reported as added:", d.NodesAdded)
	}
	if !contains(d.NodesRemoved, "b") {
		t.Error("Expected b to be reported as removed:", d.NodesRemoved)
	}
	if !containsNodeUpdate(d.NodesUpdated, "a") {
		t.Error("Expected a to be reported as updated:", d.NodesUpdated)
	}
	for _, u := range d.NodesUpdated {
		if u.ID == "a" && (u.Before.Attrs()["v"] != "1" || u.After.Attrs()["v"] != "2") {
			t.Error("Expected before/after attrs on the update pair, got:", u.Before.Attrs(), u.After.Attrs())
		}
	}
}

func TestDiffEdges(t *testing.T) {
	g := newTestGraph()

	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 1)
	g.AddEdge("ab", "a", "b", map[string]string{"w": "1"}, 2)

	g.UpdateEdge("ab", map[string]string{"w": "2"}, 5)
	g.AddEdge("ba", "b", "a", nil, 7)

	d := g.Diff(1, 8)

	if !containsEdge(d.EdgesAdded, "ab") {
		t.Error("Expected ab to be reported as added:", d.EdgesAdded)
	}
	if !containsEdge(d.EdgesAdded, "ba") {
		t.Error("Expected ba to be reported as added:", d.EdgesAdded)
	}

	d = g.Diff(3, 6)

	if !containsEdgeUpdate(d.EdgesUpdated, "ab") {
		t.Error("Expected ab to be reported as updated:", d.EdgesUpdated)
	}
}

func TestDiffEmptyWhenNoChange(t *testing.T) {
	g := newTestGraph()
	g.AddNode("a", nil, 1)

	d := g.Diff(5, 10)

	if len(d.NodesAdded)+len(d.NodesRemoved)+len(d.NodesUpdated) != 0 {
		t.Error("Expected empty diff between two identical-state timestamps:", d)
	}
}

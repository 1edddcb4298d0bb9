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

import "testing"

func TestSnapshotBeforeAfterEdgeAdd(t *testing.T) {
	g := newTestGraph()

	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 1)
	g.AddEdge("ab", "a", "b", nil, 10)

	before := NewSnapshot(g, 5)
	after := NewSnapshot(g, 10)

	if _, ok := before.Edges()["ab"]; ok {
		t.Error("Edge should not exist in snapshot before it was added")
	}
	if _, ok := after.Edges()["ab"]; !ok {
		t.Error("Edge should exist in snapshot at its creation timestamp")
	}
}

func TestSnapshotCascadeDelete(t *testing.T) {
	g := newTestGraph()

	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 1)
	g.AddEdge("ab", "a", "b", nil, 2)
	g.DelNode("a", 5)

	beforeDelete := NewSnapshot(g, 3)
	afterDelete := NewSnapshot(g, 5)

	if _, ok := beforeDelete.Nodes()["a"]; !ok {
		t.Error("Node a should still exist before its deletion timestamp")
	}
	if _, ok := beforeDelete.Edges()["ab"]; !ok {
		t.Error("Edge ab should still exist before node a's deletion timestamp")
	}

	if _, ok := afterDelete.Nodes()["a"]; ok {
		t.Error("Node a should be gone at/after its deletion timestamp")
	}
	if _, ok := afterDelete.Edges()["ab"]; ok {
		t.Error("Edge ab should have been cascade-deleted")
	}
}

func TestSnapshotUsesCheckpointBase(t *testing.T) {
	g := newTestGraph()
	g.checkpointInterval = 2

	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 2) // checkpoint taken here, EventIndex 2
	g.AddNode("c", nil, 3)

	if g.checkpoints.len() == 0 {
		t.Fatal("Expected a checkpoint to have been taken")
	}

	snap := NewSnapshot(g, 3)
	if len(snap.Nodes()) != 3 {
		t.Error("Expected 3 nodes in snapshot, got:", len(snap.Nodes()))
	}

	snapMid := NewSnapshot(g, 2)
	if len(snapMid.Nodes()) != 2 {
		t.Error("Expected 2 nodes in mid snapshot, got:", len(snapMid.Nodes()))
	}
}

func TestSnapshotAtNegativeTimestamp(t *testing.T) {
	g := newTestGraph()
	g.AddNode("a", nil, 1)

	snap := NewSnapshot(g, -1)
	if len(snap.Nodes()) != 0 {
		t.Error("Expected empty snapshot before any event's timestamp")
	}
}

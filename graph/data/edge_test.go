/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import "testing"

func TestEdge(t *testing.T) {
	e := NewEdge("e1", "n1", "n2", 10, map[string]string{"w": "5"})

	if e.ID() != "e1" || e.From() != "n1" || e.To() != "n2" || e.CreatedAt() != 10 {
		t.Error("Unexpected edge fields:", e)
		return
	}

	if v, ok := e.Attr("w"); !ok || v != "5" {
		t.Error("Unexpected attr:", v, ok)
	}

	clone := e.Clone()
	clone.SetAttr("w", "6")

	if v, _ := e.Attr("w"); v != "5" {
		t.Error("Mutating a clone should not affect the original:", v)
	}

	if e.String() == "" {
		t.Error("String representation should not be empty")
	}
}

func TestEdgesEqual(t *testing.T) {
	a := NewEdge("e1", "n1", "n2", 10, map[string]string{"w": "5"})
	b := NewEdge("e2", "n1", "n2", 99, map[string]string{"w": "5"})
	c := NewEdge("e3", "n1", "n3", 10, map[string]string{"w": "5"})

	if !EdgesEqual(a, b) {
		t.Error("Edges with same endpoints/attrs but different id/timestamp should be equal")
	}

	if EdgesEqual(a, c) {
		t.Error("Edges with different endpoints should not be equal")
	}
}

/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package algo

import "testing"

func componentContaining(components [][]string, id string) []string {
	for _, c := range components {
		for _, n := range c {
			if n == id {
				return c
			}
		}
	}
	return nil
}

func TestWeaklyConnectedComponents(t *testing.T) {
	g := newTestGraph()
	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 1)
	g.AddNode("c", nil, 1)
	g.AddNode("isolated", nil, 1)
	g.AddEdge("ba", "b", "a", nil, 1) // directed b->a, but weak components ignore direction
	g.AddEdge("bc", "b", "c", nil, 1)

	comps := WeaklyConnectedComponents(g)
	if len(comps) != 2 {
		t.Fatalf("Expected 2 weak components, got %d: %v", len(comps), comps)
	}

	main := componentContaining(comps, "a")
	if len(main) != 3 {
		t.Error("Expected a, b, c in the same weak component, got:", main)
	}

	iso := componentContaining(comps, "isolated")
	if len(iso) != 1 {
		t.Error("Expected isolated to form its own component, got:", iso)
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	g := newTestGraph()
	g.AddNode("a", nil, 1)
	g.AddNode("b", nil, 1)
	g.AddNode("c", nil, 1)
	g.AddNode("d", nil, 1)

	g.AddEdge("ab", "a", "b", nil, 1)
	g.AddEdge("bc", "b", "c", nil, 1)
	g.AddEdge("ca", "c", "a", nil, 1) // a->b->c->a cycle
	g.AddEdge("cd", "c", "d", nil, 1) // d is downstream only

	comps := StronglyConnectedComponents(g)

	cycleComp := componentContaining(comps, "a")
	if len(cycleComp) != 3 {
		t.Error("Expected a, b, c in one SCC, got:", cycleComp)
	}

	dComp := componentContaining(comps, "d")
	if len(dComp) != 1 {
		t.Error("Expected d in its own singleton SCC, got:", dComp)
	}
}

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

/*
WeaklyConnectedComponents groups nodes into components reachable from
one another when edges are treated as undirected (BFS over both
outgoing and incoming adjacency). Each node appears in exactly one
component; isolated nodes form their own singleton component.
*/
func WeaklyConnectedComponents(g GraphView) [][]string {
	visited := make(map[string]bool)
	var components [][]string

	for id := range g.Nodes() {
		if visited[id] {
			continue
		}

		var comp []string
		queue := []string{id}
		visited[id] = true

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)

			for _, v := range neighborsUndirected(g, u) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}

		components = append(components, comp)
	}

	return components
}

/*
StronglyConnectedComponents returns one list of node ids per strongly
connected component, computed with Kosaraju's two-pass algorithm: a
DFS finish-order pass over the graph, then a second DFS pass over the
reversed graph processing nodes in reverse finish order.
*/
func StronglyConnectedComponents(g GraphView) [][]string {
	visited := make(map[string]bool)
	var finishOrder []string

	var visit func(u string)
	visit = func(u string) {
		visited[u] = true
		for _, v := range neighborsOut(g, u) {
			if !visited[v] {
				visit(v)
			}
		}
		finishOrder = append(finishOrder, u)
	}

	for id := range g.Nodes() {
		if !visited[id] {
			visit(id)
		}
	}

	reverseAdj := make(map[string][]string)
	for id, edgeIDs := range g.Outgoing() {
		for _, eid := range edgeIDs {
			if e, ok := g.Edges()[eid]; ok {
				reverseAdj[e.To()] = append(reverseAdj[e.To()], id)
			}
		}
	}

	assigned := make(map[string]bool)
	var components [][]string

	var collect func(u string, comp *[]string)
	collect = func(u string, comp *[]string) {
		assigned[u] = true
		*comp = append(*comp, u)
		for _, v := range reverseAdj[u] {
			if !assigned[v] {
				collect(v, comp)
			}
		}
	}

	for i := len(finishOrder) - 1; i >= 0; i-- {
		id := finishOrder[i]
		if assigned[id] {
			continue
		}
		var comp []string
		collect(id, &comp)
		components = append(components, comp)
	}

	return components
}

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
IsReachable returns true iff target is reachable from start by
following outgoing edges, or start == target and start exists as a
node. A missing start node returns false.
*/
func IsReachable(g GraphView, start, target string) bool {
	if start == target {
		_, ok := g.Nodes()[start]
		return ok
	}

	if _, ok := g.Nodes()[start]; !ok {
		return false
	}

	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range neighborsOut(g, u) {
			if v == target {
				return true
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}

/*
IsReachableAt is equivalent to IsReachable(NewSnapshot(g, t), ...); it
takes a pre-built view rather than a *graph.Graph so this package does
not need to import graph.
*/
func IsReachableAt(snapshotAtT GraphView, start, target string) bool {
	return IsReachable(snapshotAtT, start, target)
}

/*
timeState is a BFS visitation key: a node reached with a given minimum
"last edge timestamp" lower bound for time-respecting traversal.
*/
type timeState struct {
	node   string
	lastTs int64
}

/*
IsTimeRespectingReachable returns true iff there is a path from start
to target whose successive edges' CreatedAt values form a
non-decreasing sequence. start == target is reachable iff the node
exists, with no edges required.
*/
func IsTimeRespectingReachable(g GraphView, start, target string) bool {
	if start == target {
		_, ok := g.Nodes()[start]
		return ok
	}

	if _, ok := g.Nodes()[start]; !ok {
		return false
	}

	const negInf = int64(-1) << 62

	visited := map[timeState]bool{}
	initial := timeState{node: start, lastTs: negInf}
	visited[initial] = true
	queue := []timeState{initial}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, eid := range g.Outgoing()[cur.node] {
			e, ok := g.Edges()[eid]
			if !ok || e.CreatedAt() < cur.lastTs {
				continue
			}

			if e.To() == target {
				return true
			}

			next := timeState{node: e.To(), lastTs: e.CreatedAt()}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

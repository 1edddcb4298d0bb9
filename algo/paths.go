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

import (
	"container/heap"
	"strconv"
)

/*
ShortestPath returns the unweighted BFS shortest path from start to
target as a list of node ids, start through target inclusive, or nil
if no path exists. start == target returns []string{start} if the
node exists, else nil. Ties are broken by the insertion order of each
node's outgoing adjacency list.
*/
func ShortestPath(g GraphView, start, target string) []string {
	if start == target {
		if _, ok := g.Nodes()[start]; ok {
			return []string{start}
		}
		return nil
	}

	if _, ok := g.Nodes()[start]; !ok {
		return nil
	}

	prev := map[string]string{start: ""}
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range neighborsOut(g, u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			prev[v] = u
			if v == target {
				return reconstructPath(prev, start, target)
			}
			queue = append(queue, v)
		}
	}

	return nil
}

func reconstructPath(prev map[string]string, start, target string) []string {
	var path []string
	for n := target; ; n = prev[n] {
		path = append(path, n)
		if n == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type dijkstraItem struct {
	node string
	dist float64
}

type dijkstraQueue []dijkstraItem

func (q dijkstraQueue) Len() int           { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q dijkstraQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *dijkstraQueue) Push(x interface{}) { *q = append(*q, x.(dijkstraItem)) }
func (q *dijkstraQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

/*
Dijkstra returns the weighted shortest path from start to target,
where each edge's weight is parsed as a float64 from
attributes[weightKey]. Edges whose attribute is missing or
unparseable are skipped entirely. Parallel edges between the same pair
of nodes contribute their minimum weight. Returns nil if unreachable
or either endpoint is missing; start == target returns []string{start}
if start exists.
*/
func Dijkstra(g GraphView, start, target, weightKey string) []string {
	if _, ok := g.Nodes()[start]; !ok {
		return nil
	}
	if _, ok := g.Nodes()[target]; !ok {
		return nil
	}
	if start == target {
		return []string{start}
	}

	bestEdgeWeight := minOutgoingWeights(g, weightKey)

	dist := map[string]float64{start: 0}
	prev := map[string]string{}
	done := map[string]bool{}

	pq := &dijkstraQueue{{node: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(dijkstraItem)
		if done[cur.node] {
			continue
		}
		done[cur.node] = true

		if cur.node == target {
			return reconstructPath(prev, start, target)
		}

		for to, w := range bestEdgeWeight[cur.node] {
			nd := cur.dist + w
			if existing, ok := dist[to]; !ok || nd < existing {
				dist[to] = nd
				prev[to] = cur.node
				heap.Push(pq, dijkstraItem{node: to, dist: nd})
			}
		}
	}

	return nil
}

/*
minOutgoingWeights precomputes, per source node, the minimum weight
among all parsed parallel edges to each destination.
*/
func minOutgoingWeights(g GraphView, weightKey string) map[string]map[string]float64 {
	weights := make(map[string]map[string]float64)

	for from, edgeIDs := range g.Outgoing() {
		for _, eid := range edgeIDs {
			e, ok := g.Edges()[eid]
			if !ok {
				continue
			}
			raw, ok := e.Attr(weightKey)
			if !ok {
				continue
			}
			w, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Debug("dijkstra: skipping edge ", eid, " with unparseable weight ", raw)
				continue
			}

			if weights[from] == nil {
				weights[from] = make(map[string]float64)
			}
			to := e.To()
			if existing, ok := weights[from][to]; !ok || w < existing {
				weights[from][to] = w
			}
		}
	}

	return weights
}

/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package repo

import (
	"github.com/krotik/chronograph/graph"
	"github.com/krotik/chronograph/idgen"
	"github.com/krotik/chronograph/internal/chronolog"
)

var log = chronolog.Get("chronograph.repo")

/*
Repository is the versioning layer over a working Graph: it groups the
graph's event log into Commits, tracks named Branches pointing at
commits, and moves a HEAD pointer between them via Checkout and Merge.
*/
type Repository struct {
	workingGraph *graph.Graph

	commits  map[string]Commit
	branches map[string]string

	head       string
	headCommit string

	lastCommittedEventIndex int

	idgen idgen.Generator
}

/*
Init creates a new Repository with a single root commit (no parents,
no events) checked out on rootBranch.
*/
func Init(rootBranch string) *Repository {
	return InitWithIDGenerator(rootBranch, idgen.NewUUIDGenerator())
}

/*
InitWithIDGenerator is Init with an injectable commit id generator,
used by tests that need deterministic commit ids.
*/
func InitWithIDGenerator(rootBranch string, gen idgen.Generator) *Repository {
	rootID := gen.NextID()

	r := &Repository{
		workingGraph: graph.New(),
		commits:      make(map[string]Commit),
		branches:     make(map[string]string),
		idgen:        gen,
	}

	r.commits[rootID] = newCommit(rootID, nil, nil, "")
	r.branches[rootBranch] = rootID
	r.head = rootBranch
	r.headCommit = rootID
	r.lastCommittedEventIndex = 0

	return r
}

/*
Graph returns the repository's working graph for read-only use (e.g.
passing to algo or taking a Snapshot/Diff of it).
*/
func (r *Repository) Graph() *graph.Graph {
	return r.workingGraph
}

/*
HeadCommit returns the commit id HEAD currently points to.
*/
func (r *Repository) HeadCommit() string { return r.headCommit }

/*
HeadBranch returns the name of the branch HEAD currently points to.
*/
func (r *Repository) HeadBranch() string { return r.head }

// --- working-graph mutators, forwarded straight to the working graph -------

func (r *Repository) AddNode(id string, attrs map[string]string, ts int64) {
	r.workingGraph.AddNode(id, attrs, ts)
}

func (r *Repository) DelNode(id string, ts int64) {
	r.workingGraph.DelNode(id, ts)
}

func (r *Repository) UpdateNode(id string, attrs map[string]string, ts int64) {
	r.workingGraph.UpdateNode(id, attrs, ts)
}

func (r *Repository) AddEdge(id, from, to string, attrs map[string]string, ts int64) {
	r.workingGraph.AddEdge(id, from, to, attrs, ts)
}

func (r *Repository) DelEdge(id string, ts int64) {
	r.workingGraph.DelEdge(id, ts)
}

func (r *Repository) UpdateEdge(id string, attrs map[string]string, ts int64) {
	r.workingGraph.UpdateEdge(id, attrs, ts)
}

/*
Commit slices the events appended to the working graph since the last
commit into a new Commit whose sole parent is the current HEAD commit,
and advances HEAD and the current branch to it. If nothing changed
since the last commit, it returns the current HEAD commit id without
creating an empty commit.
*/
func (r *Repository) Commit(message string) string {
	eventLog := r.workingGraph.EventLog()
	total := len(eventLog)

	if total <= r.lastCommittedEventIndex {
		return r.headCommit
	}

	delta := append([]graph.Event(nil), eventLog[r.lastCommittedEventIndex:total]...)

	newID := r.idgen.NextID()
	r.commits[newID] = newCommit(newID, []string{r.headCommit}, delta, message)

	r.branches[r.head] = newID
	r.headCommit = newID
	r.lastCommittedEventIndex = total

	log.Info("committed ", len(delta), " event(s) as ", newID, " on branch ", r.head)

	return newID
}

/*
Branch points a new (or existing) branch name at the current HEAD
commit. It does not switch HEAD. Re-using an existing branch name
overwrites its target; see the design decision in DESIGN.md.
*/
func (r *Repository) Branch(name string) {
	r.branches[name] = r.headCommit
}

/*
Checkout switches HEAD to the named branch and reconstructs the
working graph to match its tip commit: fast-forward when the current
commit is an ancestor of the target (only the missing commits are
replayed), full rebuild otherwise (the working graph is cleared and
the target's whole ancestor chain is replayed from scratch).
*/
func (r *Repository) Checkout(name string) error {
	newCommitID, ok := r.branches[name]
	if !ok {
		return &RepoError{Err: ErrUnknownBranch, Detail: name}
	}

	oldCommitID := r.headCommit
	r.head = name
	r.headCommit = newCommitID

	log.Info("checking out branch ", name, " (", oldCommitID, " -> ", newCommitID, ")")

	if newCommitID == oldCommitID {
		r.lastCommittedEventIndex = len(r.workingGraph.EventLog())
		return nil
	}

	oldChain := ancestorChain(r.commits, oldCommitID)
	newChain := ancestorChain(r.commits, newCommitID)

	isPrefix := len(oldChain) <= len(newChain)
	if isPrefix {
		for i, c := range oldChain {
			if newChain[i] != c {
				isPrefix = false
				break
			}
		}
	}

	if isPrefix {
		log.Debug("checkout fast-forwarding through ", len(newChain)-indexOf(newChain, oldCommitID)-1, " commit(s)")
		idx := indexOf(newChain, oldCommitID)
		for _, cid := range newChain[idx+1:] {
			r.replayCommit(cid)
		}
	} else {
		log.Debug("checkout full rebuild over ", len(newChain), " commit(s)")
		r.workingGraph.ClearGraph()
		for _, cid := range newChain {
			r.replayCommit(cid)
		}
	}

	r.lastCommittedEventIndex = len(r.workingGraph.EventLog())
	return nil
}

func (r *Repository) replayCommit(cid string) {
	for _, ev := range r.commits[cid].Events {
		r.workingGraph.AppendEvent(ev)
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

/*
ListBranches returns every known branch name, in no particular order.
*/
func (r *Repository) ListBranches() []string {
	names := make([]string, 0, len(r.branches))
	for n := range r.branches {
		names = append(names, n)
	}
	return names
}

/*
ListCommits returns the named branch's ancestor chain, root first, tip
last.
*/
func (r *Repository) ListCommits(name string) ([]Commit, error) {
	tip, ok := r.branches[name]
	if !ok {
		return nil, &RepoError{Err: ErrUnknownBranch, Detail: name}
	}

	chain := ancestorChain(r.commits, tip)
	out := make([]Commit, len(chain))
	for i, cid := range chain {
		out[i] = r.commits[cid]
	}
	return out, nil
}

/*
CommitGraph returns the full commit DAG: every commit id, its parents,
and its children (the inverse of the parent relation).
*/
func (r *Repository) CommitGraph() CommitGraph {
	g := CommitGraph{
		CommitIDs: make([]string, 0, len(r.commits)),
		Parents:   make(map[string][]string, len(r.commits)),
		Children:  make(map[string][]string, len(r.commits)),
	}

	for cid, cm := range r.commits {
		g.CommitIDs = append(g.CommitIDs, cid)
		g.Parents[cid] = append([]string(nil), cm.Parents...)
	}
	for _, cid := range g.CommitIDs {
		if _, ok := g.Children[cid]; !ok {
			g.Children[cid] = nil
		}
	}
	for cid, cm := range r.commits {
		for _, pid := range cm.Parents {
			g.Children[pid] = append(g.Children[pid], cid)
		}
	}

	return g
}

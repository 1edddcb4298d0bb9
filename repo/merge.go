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
	"github.com/krotik/chronograph/graph/data"
)

/*
MergePolicy controls how Merge auto-resolves a conflict between the
working branch (A, "ours") and the merged-in branch (B, "theirs").
*/
type MergePolicy string

/*
Merge policies.
*/
const (
	OURS            MergePolicy = "OURS"
	THEIRS          MergePolicy = "THEIRS"
	ATTRIBUTE_UNION MergePolicy = "ATTRIBUTE_UNION"
	INTERACTIVE     MergePolicy = "INTERACTIVE"
)

/*
ConflictKind classifies why two sides' changes to the same entity
cannot both be applied cleanly.
*/
type ConflictKind string

/*
Conflict kinds.
*/
const (
	AddAdd       ConflictKind = "ADD_ADD"
	DelUpdate    ConflictKind = "DEL_UPDATE"
	UpdateUpdate ConflictKind = "UPDATE_UPDATE"
)

/*
Conflict describes one entity that both sides of a three-way merge
changed in a way that cannot be reconciled without a policy decision.
*/
type Conflict struct {
	Kind       ConflictKind
	EntityID   string
	OurEvent   graph.Event
	TheirEvent graph.Event
}

/*
MergeResult is the outcome of Repository.Merge: the id of the
resulting commit (HEAD's own commit for the trivial case, B's tip for
fast-forward, or a new two-parent merge commit for a true three-way
merge) and every conflict that was detected, whether or not it was
auto-resolved.
*/
type MergeResult struct {
	MergeCommitID string
	Conflicts     []Conflict
}

/*
Merge merges branchName into the current HEAD branch under policy.

Three cases, in order: trivial (HEAD already is branchName's tip),
fast-forward (HEAD is an ancestor of branchName's tip, so the working
graph is simply advanced through the missing commits), and three-way
merge (a common ancestor is found, the other side's delta since that
ancestor is tentatively applied to the working graph one event at a
time, and each entity both sides touched is checked for conflict and
resolved per policy).
*/
func (r *Repository) Merge(branchName string, policy MergePolicy) (MergeResult, error) {
	B, ok := r.branches[branchName]
	if !ok {
		return MergeResult{}, &RepoError{Err: ErrUnknownBranch, Detail: branchName}
	}
	A := r.headCommit

	if A == B {
		return MergeResult{MergeCommitID: A}, nil
	}

	setA := ancestorSet(r.commits, A)
	setB := ancestorSet(r.commits, B)

	if setB[A] {
		return r.fastForwardMerge(B)
	}

	return r.threeWayMerge(A, B, setA, setB, policy)
}

func (r *Repository) fastForwardMerge(B string) (MergeResult, error) {
	path := firstParentPath(r.commits, B, r.headCommit)
	for _, cid := range path {
		r.replayCommit(cid)
	}

	r.branches[r.head] = B
	r.headCommit = B
	r.lastCommittedEventIndex = len(r.workingGraph.EventLog())

	log.Info("fast-forward merge of ", B, " onto ", r.head, " through ", len(path), " commit(s)")

	return MergeResult{MergeCommitID: B}, nil
}

func (r *Repository) threeWayMerge(A, B string, setA, setB map[string]bool, policy MergePolicy) (MergeResult, error) {
	ancB := ancestorChain(r.commits, B)

	CA := ""
	for i := len(ancB) - 1; i >= 0; i-- {
		if setA[ancB[i]] {
			CA = ancB[i]
			break
		}
	}
	if CA == "" {
		return MergeResult{}, &RepoError{Err: ErrNoCommonAncestor, Detail: B}
	}

	ourDelta := eventsAlongPath(r.commits, firstParentPath(r.commits, A, CA))
	theirDelta := eventsAlongPath(r.commits, firstParentPath(r.commits, B, CA))

	ourLast := lastActionByEntity(ourDelta)

	var conflicts []Conflict
	var mergedEvents []graph.Event

	for _, their := range theirDelta {
		our, touched := ourLast[their.EntityID]

		if !touched {
			r.workingGraph.AppendEvent(their)
			mergedEvents = append(mergedEvents, their)
			continue
		}

		conflict, kind := classifyConflict(our, their)
		if !conflict {
			r.workingGraph.AppendEvent(their)
			mergedEvents = append(mergedEvents, their)
			continue
		}

		c := Conflict{Kind: kind, EntityID: their.EntityID, OurEvent: our, TheirEvent: their}
		conflicts = append(conflicts, c)
		log.Warning(kind, " conflict on ", their.EntityID, " resolved by policy ", policy)

		resolved, applied := resolveConflict(kind, our, their, policy)
		if applied {
			r.workingGraph.AppendEvent(resolved)
			mergedEvents = append(mergedEvents, resolved)
		}
	}

	mergeID := r.idgen.NextID()
	r.commits[mergeID] = newCommit(mergeID, []string{A, B}, mergedEvents, "")

	r.branches[r.head] = mergeID
	r.headCommit = mergeID
	r.lastCommittedEventIndex = len(r.workingGraph.EventLog())

	log.Info("three-way merge of ", B, " into ", r.head, " as ", mergeID, " with ", len(conflicts), " conflict(s)")

	return MergeResult{MergeCommitID: mergeID, Conflicts: conflicts}, nil
}

func eventsAlongPath(commits map[string]Commit, path []string) []graph.Event {
	var events []graph.Event
	for _, cid := range path {
		events = append(events, commits[cid].Events...)
	}
	return events
}

/*
lastActionByEntity reduces a delta down to, per entity id, the last
event in the delta that touched it - the state that side's changes
leave the entity in after the whole delta is applied.
*/
func lastActionByEntity(delta []graph.Event) map[string]graph.Event {
	last := make(map[string]graph.Event, len(delta))
	for _, ev := range delta {
		last[ev.EntityID] = ev
	}
	return last
}

func isAdd(k graph.Kind) bool    { return k == graph.AddNode || k == graph.AddEdge }
func isDel(k graph.Kind) bool    { return k == graph.DelNode || k == graph.DelEdge }
func isUpdate(k graph.Kind) bool { return k == graph.UpdateNode || k == graph.UpdateEdge }

/*
classifyConflict decides whether our and their last actions on the
same entity conflict, and if so under which taxonomy kind. Identical
adds, redundant deletes (both sides deleted) and non-overlapping or
identical updates are not conflicts.
*/
func classifyConflict(our, their graph.Event) (bool, ConflictKind) {
	switch {
	case isAdd(our.Kind) && isAdd(their.Kind):
		if our.From == their.From && our.To == their.To && data.AttrsEqual(our.Payload, their.Payload) {
			return false, ""
		}
		return true, AddAdd

	case isDel(our.Kind) && isDel(their.Kind):
		return false, ""

	case (isDel(our.Kind) && isUpdate(their.Kind)) || (isUpdate(our.Kind) && isDel(their.Kind)):
		return true, DelUpdate

	case isUpdate(our.Kind) && isUpdate(their.Kind):
		if overlappingDifferingKeys(our.Payload, their.Payload) {
			return true, UpdateUpdate
		}
		return false, ""
	}

	// One side added after the other deleted-and-recreated it, or similar
	// shapes the taxonomy does not name explicitly; treat as no conflict
	// and let theirs apply, mirroring "deletions of entities no longer
	// present are not conflicts".
	return false, ""
}

func overlappingDifferingKeys(a, b map[string]string) bool {
	for k, v := range a {
		if bv, ok := b[k]; ok && bv != v {
			return true
		}
	}
	return false
}

/*
resolveConflict applies policy to a detected conflict. It returns the
event to append to the working graph (when applied is true) and
whether anything should be applied at all.
*/
func resolveConflict(kind ConflictKind, our, their graph.Event, policy MergePolicy) (graph.Event, bool) {
	switch policy {
	case OURS:
		return graph.Event{}, false

	case THEIRS:
		return their, true

	case ATTRIBUTE_UNION:
		if kind != UpdateUpdate {
			return their, true
		}
		union := data.CloneAttrs(our.Payload)
		data.MergeAttrs(union, their.Payload)
		ev := their
		ev.Payload = union
		return ev, true

	case INTERACTIVE:
		return graph.Event{}, false
	}

	return graph.Event{}, false
}

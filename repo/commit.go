/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package repo implements the Git-style versioning layer on top of
package graph: commits that group deltas of events, branches as named
commit pointers, and checkout/merge operations that reconstruct or
fast-forward the working graph by replaying commit chains.
*/
package repo

import (
	"devt.de/krotik/common/errorutil"

	"github.com/krotik/chronograph/graph"
)

/*
Commit is an immutable group of events committed together. Parents
holds zero parents (the root commit), one parent (a normal commit) or
two parents (a three-way merge commit); any other length is a bug in
this package.
*/
type Commit struct {
	ID      string
	Parents []string
	Events  []graph.Event
	Message string
}

func newCommit(id string, parents []string, events []graph.Event, message string) Commit {
	errorutil.AssertTrue(len(parents) <= 2, "a commit has at most two parents")
	return Commit{ID: id, Parents: append([]string(nil), parents...), Events: events, Message: message}
}

/*
CommitGraph is a snapshot of the full commit DAG: every known commit
id, each commit's parents (copied straight from the Commit), and each
commit's children (the parent relation inverted). Every commit id has
an entry in Children, possibly empty.
*/
type CommitGraph struct {
	CommitIDs []string
	Parents   map[string][]string
	Children  map[string][]string
}

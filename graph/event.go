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
Package graph contains the event-sourced graph core: the append-only
Event log, the materialized Graph state derived from it, periodic
Checkpoints, and the Snapshot / Diff read views built on top.

Event log

Every mutation is first turned into an Event and appended to the
Graph's event log; the log is the source of truth. Current state is a
cache the Graph keeps up to date as a convenience - Snapshot rebuilds
an equivalent cache for any past timestamp by replaying the log.

Event kinds

An Event carries one of six kinds (ADD_NODE, DEL_NODE, UPDATE_NODE,
ADD_EDGE, DEL_EDGE, UPDATE_EDGE). Mutators and the replay path
(ApplyEvent) dispatch on the kind with a switch statement rather than
modelling events as a flat record with a grab-bag of optional fields.
*/
package graph

import "fmt"

/*
Kind identifies the six mutation shapes an Event can carry.
*/
type Kind string

/*
Event kinds.
*/
const (
	AddNode    Kind = "ADD_NODE"
	DelNode    Kind = "DEL_NODE"
	UpdateNode Kind = "UPDATE_NODE"
	AddEdge    Kind = "ADD_EDGE"
	DelEdge    Kind = "DEL_EDGE"
	UpdateEdge Kind = "UPDATE_EDGE"
)

/*
Event is an immutable record of a single mutation. From/To are only
meaningful for ADD_EDGE/DEL_EDGE; Payload carries the attribute
key/values for ADD_NODE/UPDATE_NODE/ADD_EDGE/UPDATE_EDGE (empty for
DEL_NODE/DEL_EDGE).

Event ids are opaque and only required to be unique; Timestamp is
caller-supplied and not required to be monotonic across calls - see
the ordering note on Graph for why event log order and timestamp order
can diverge.
*/
type Event struct {
	ID        string
	Timestamp int64
	Kind      Kind
	EntityID  string
	From      string
	To        string
	Payload   map[string]string
}

/*
String returns a human-readable representation of this event.
*/
func (e Event) String() string {
	if e.Kind == AddEdge || e.Kind == DelEdge {
		return fmt.Sprintf("%v[%v] %v %v->%v @%v", e.Kind, e.ID, e.EntityID, e.From, e.To, e.Timestamp)
	}
	return fmt.Sprintf("%v[%v] %v @%v", e.Kind, e.ID, e.EntityID, e.Timestamp)
}

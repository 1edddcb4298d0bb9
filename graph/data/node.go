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
Package data models the nodes and edges which make up a ChronoGraph.
Attributes are always text; numeric interpretation (e.g. edge weights
for Dijkstra) is left to consumers in package algo.

Node and edge values returned from a Graph or Snapshot are owned by
that Graph or Snapshot. Callers that need a value to outlive mutations
to its source should Clone it first.
*/
package data

import (
	"bytes"
	"fmt"
	"sort"
)

/*
Node models a single vertex in a graph.
*/
type Node interface {

	/*
	   ID returns the unique id of this node.
	*/
	ID() string

	/*
		Attrs returns all attributes of this node. The returned map is
		owned by the node; callers must not modify it.
	*/
	Attrs() map[string]string

	/*
		Attr returns a single attribute value and whether it was present.
	*/
	Attr(key string) (string, bool)

	/*
		SetAttr sets a single attribute, overwriting any previous value.
	*/
	SetAttr(key, val string)

	/*
		Clone returns a deep copy of this node.
	*/
	Clone() Node

	/*
	   String returns a string representation of this node.
	*/
	String() string
}

/*
node is the default Node implementation.
*/
type node struct {
	id    string
	attrs map[string]string
}

/*
NewNode creates a new Node with the given id and a copy of the given
attribute map.
*/
func NewNode(id string, attrs map[string]string) Node {
	return &node{id: id, attrs: CloneAttrs(attrs)}
}

func (n *node) ID() string {
	return n.id
}

func (n *node) Attrs() map[string]string {
	return n.attrs
}

func (n *node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *node) SetAttr(key, val string) {
	n.attrs[key] = val
}

func (n *node) Clone() Node {
	return &node{id: n.id, attrs: CloneAttrs(n.attrs)}
}

func (n *node) String() string {
	return dataToString("Node", n.id, n.attrs)
}

/*
CloneAttrs returns a shallow copy of an attribute map. A nil map clones
to an empty, non-nil map so nodes and edges never expose a nil
attribute set.
*/
func CloneAttrs(a map[string]string) map[string]string {
	c := make(map[string]string, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

/*
MergeAttrs merges src into dst in place, per-key overwrite, untouched
keys retained. dst must not be nil.
*/
func MergeAttrs(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

/*
AttrsEqual returns true if two attribute maps have the same keys and
values.
*/
func AttrsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

/*
dataToString renders a sorted, human-readable attribute dump.
*/
func dataToString(kind, id string, attrs map[string]string) string {
	var buf bytes.Buffer

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteString(fmt.Sprintf("%v: %v\n", kind, id))
	for _, k := range keys {
		buf.WriteString(fmt.Sprintf("    %v : %v\n", k, attrs[k]))
	}

	return buf.String()
}

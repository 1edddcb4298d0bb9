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

func TestNode(t *testing.T) {
	n := NewNode("n1", map[string]string{"name": "Alice"})

	if res := n.ID(); res != "n1" {
		t.Error("Unexpected id:", res)
		return
	}

	if v, ok := n.Attr("name"); !ok || v != "Alice" {
		t.Error("Unexpected attr:", v, ok)
		return
	}

	if _, ok := n.Attr("missing"); ok {
		t.Error("Missing attribute should not be found")
		return
	}

	n.SetAttr("age", "30")

	if v, _ := n.Attr("age"); v != "30" {
		t.Error("Unexpected attr after SetAttr:", v)
		return
	}

	clone := n.Clone()
	clone.SetAttr("name", "Bob")

	if v, _ := n.Attr("name"); v != "Alice" {
		t.Error("Mutating a clone should not affect the original:", v)
		return
	}

	if res := n.String(); res == "" {
		t.Error("String representation should not be empty")
	}
}

func TestNodeFromNilAttrs(t *testing.T) {
	n := NewNode("n1", nil)

	if res := n.Attrs(); res == nil {
		t.Error("Attrs() should never return nil")
	}
}

func TestAttrsEqual(t *testing.T) {
	a := map[string]string{"x": "1", "y": "2"}
	b := map[string]string{"y": "2", "x": "1"}
	c := map[string]string{"x": "1"}

	if !AttrsEqual(a, b) {
		t.Error("Equal maps with differing insertion order should be equal")
	}

	if AttrsEqual(a, c) {
		t.Error("Maps of different size should not be equal")
	}

	if AttrsEqual(a, map[string]string{"x": "1", "y": "3"}) {
		t.Error("Maps with a differing value should not be equal")
	}
}

func TestMergeAttrs(t *testing.T) {
	dst := map[string]string{"a": "1", "b": "2"}
	MergeAttrs(dst, map[string]string{"b": "3", "c": "4"})

	want := map[string]string{"a": "1", "b": "3", "c": "4"}

	if !AttrsEqual(dst, want) {
		t.Error("Unexpected merge result:", dst)
	}
}

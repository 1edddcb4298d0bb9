/*
 * ChronoGraph
 *
 * Copyright 2026 ChronoGraph authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import "testing"

func TestDefaults(t *testing.T) {
	Reset()

	if res := Int(CheckpointInterval); res != 5000 {
		t.Error("Unexpected default checkpoint interval:", res)
		return
	}

	if res := Str(DefaultMergePolicy); res != "OURS" {
		t.Error("Unexpected default merge policy:", res)
		return
	}
}

func TestSetAndReset(t *testing.T) {
	Reset()

	Set(CheckpointInterval, 100)

	if res := Int(CheckpointInterval); res != 100 {
		t.Error("Unexpected checkpoint interval after Set:", res)
		return
	}

	Reset()

	if res := Int(CheckpointInterval); res != 5000 {
		t.Error("Reset should restore the default:", res)
	}
}

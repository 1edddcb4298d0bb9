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
Package idgen provides id generators for events and commits.

The reference implementation this engine was distilled from used a
single process-wide pseudo-random generator for every id; that makes
tests non-deterministic and introduces shared mutable state between
otherwise independent Graphs. This package instead exposes a small
Generator interface which callers inject per Graph or per Repository:
production code gets random, collision-resistant ids; tests get a
predictable sequence.
*/
package idgen

import (
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"devt.de/krotik/common/cryptutil"
)

/*
Generator produces unique opaque ids. Implementations must be safe for
concurrent use by a single goroutine at a time (the engine itself is
single-threaded - see the concurrency model) but may be shared across
multiple Graph or Repository instances.
*/
type Generator interface {

	/*
		NextID returns a new unique id.
	*/
	NextID() string
}

/*
uuidGenerator generates random version 4 UUIDs using the same
primitive the rest of the ambient stack uses for random ids.
*/
type uuidGenerator struct{}

/*
NewUUIDGenerator returns the default, production Generator. Every
call produces a fresh, randomly generated id; collisions are not
checked for since spec requires only uniqueness, not any particular
format.
*/
func NewUUIDGenerator() Generator {
	return &uuidGenerator{}
}

func (g *uuidGenerator) NextID() string {
	u := cryptutil.GenerateUUID()
	return hex.EncodeToString(u[:])
}

/*
sequentialGenerator produces ids of the form "<prefix><n>" for an
increasing counter n, starting at 1. Used by tests which need
reproducible, human-readable ids.
*/
type sequentialGenerator struct {
	prefix  string
	counter uint64
}

/*
NewSequential returns a deterministic Generator for tests. The counter
is advanced atomically.
*/
func NewSequential(prefix string) Generator {
	return &sequentialGenerator{prefix: prefix}
}

func (g *sequentialGenerator) NextID() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s%d", g.prefix, n)
}

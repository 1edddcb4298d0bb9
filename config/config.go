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
Package config holds the runtime-tunable knobs of the ChronoGraph
engine: the checkpoint interval and retention bound, and a default
merge policy setting. There is no on-disk
configuration file - the engine has no persistence layer - but the
key/value accessor shape mirrors EliasDB's own config package so
embedding code has one familiar place to read and override defaults.
*/
package config

import "fmt"

/*
Config holds the current configuration. It starts as a copy of
DefaultConfig and can be mutated directly or through Set.
*/
var Config = copyDefaults()

// Configuration keys
const (
	/*
		CheckpointInterval is the number of events between automatic
		Graph checkpoints (spec: K, default 5000).
	*/
	CheckpointInterval = "CheckpointInterval"

	/*
		CheckpointRetention is the maximum number of checkpoints a Graph
		retains; older checkpoints are evicted first-in-first-out. 0
		means unbounded.
	*/
	CheckpointRetention = "CheckpointRetention"

	/*
		DefaultMergePolicy holds the name of a merge policy. Repository.Merge
		always takes its policy as an argument and does not read this key.
	*/
	DefaultMergePolicy = "DefaultMergePolicy"
)

/*
DefaultConfig holds the engine's built-in defaults.
*/
var DefaultConfig = map[string]interface{}{
	CheckpointInterval:  5000,
	CheckpointRetention: 0,
	DefaultMergePolicy:  "OURS",
}

func copyDefaults() map[string]interface{} {
	c := make(map[string]interface{}, len(DefaultConfig))
	for k, v := range DefaultConfig {
		c[k] = v
	}
	return c
}

/*
Reset restores Config to DefaultConfig. Mainly useful for tests that
mutate Config.
*/
func Reset() {
	Config = copyDefaults()
}

/*
Set overrides a single configuration value.
*/
func Set(key string, val interface{}) {
	Config[key] = val
}

/*
Int returns a configuration value as an int.
*/
func Int(key string) int {
	switch v := Config[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

/*
Str returns a configuration value as its string representation.
*/
func Str(key string) string {
	return fmt.Sprintf("%v", Config[key])
}

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
Package chronolog provides the scoped leveled loggers used throughout
ChronoGraph. It is a thin wrapper around logutil.GetLogger so each
package (graph, repo, algo) gets one logger for its own scope, the way
EliasDB's packages each call logutil.GetLogger with their own scope
string.
*/
package chronolog

import "devt.de/krotik/common/logutil"

/*
Logger is the interface used by ChronoGraph packages. It is satisfied
by logutil.Logger.
*/
type Logger = logutil.Logger

/*
Get returns the scoped logger for a ChronoGraph package. Scope names
are dot-separated, e.g. "chronograph.graph", "chronograph.repo".
*/
func Get(scope string) Logger {
	return logutil.GetLogger(scope)
}

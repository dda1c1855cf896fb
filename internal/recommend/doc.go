// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package recommend implements the hybrid movie recommendation engine.

The engine combines two scoring passes over the loaded catalog:

 1. Collaborative pass: users similar to the target (Jaccard similarity
    over rating-graph neighborhoods) contribute similarity * rating for
    each movie they watched that the target has not.
 2. Content pass: every unwatched catalog movie contributes its rating
    scaled by a genre-affinity bonus (full bonus when the genre matches
    one the target has watched, a reduced bonus otherwise).

Scores accumulate additively, are stable-sorted descending, and the list
is truncated to the configured maximum. A movie the target has already
watched never appears in the output. Tie order between equal scores is
not part of the contract.

The package also provides the login session state machine used by the
interactive surface. A session is either logged out or logged in as one
user; recording watches and requesting recommendations require a login
and fail with ErrNoActiveUser otherwise.

Engine state is guarded by a single coarse RWMutex. The scoring passes
themselves are sequential; there is no per-request concurrency to tune.

Lookup misses follow a graceful policy: asking for neighbors of an
unknown node or similar users of an unknown target yields empty results.
Errors are reserved for contract violations (unknown user on login,
unknown movie on watch, operations without a login).
*/
package recommend

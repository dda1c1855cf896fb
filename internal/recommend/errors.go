// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import "errors"

var (
	// ErrNoActiveUser is returned by session operations that require a login.
	ErrNoActiveUser = errors.New("no active user")

	// ErrUserNotFound is returned when a user ID does not resolve to a
	// registered user.
	ErrUserNotFound = errors.New("user not found")

	// ErrMovieNotFound is returned when a title is not in the catalog.
	ErrMovieNotFound = errors.New("movie not found")
)

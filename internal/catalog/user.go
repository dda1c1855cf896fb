// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import "sort"

// User is an account identified by a non-negative integer ID with a set of
// watched movies. The watched set is keyed by movie identity, so re-watching
// the same title is absorbed.
type User struct {
	ID      int
	watched map[MovieKey]*Movie
}

// NewUser returns a user with an empty watched set.
func NewUser(id int) *User {
	return &User{ID: id, watched: make(map[MovieKey]*Movie)}
}

// Watch records the movie as watched. Watching an already-watched movie is
// a no-op.
func (u *User) Watch(m *Movie) {
	u.watched[m.Key()] = m
}

// HasWatched reports whether the movie identified by key is in the watched set.
func (u *User) HasWatched(key MovieKey) bool {
	_, ok := u.watched[key]
	return ok
}

// WatchedCount returns the size of the watched set.
func (u *User) WatchedCount() int {
	return len(u.watched)
}

// Watched returns the watched movies sorted by title then year.
func (u *User) Watched() []*Movie {
	out := make([]*Movie, 0, len(u.watched))
	for _, m := range u.watched {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// WatchedGenres returns the case-folded genre set of the watched movies.
func (u *User) WatchedGenres() map[string]struct{} {
	genres := make(map[string]struct{}, len(u.watched))
	for _, m := range u.watched {
		genres[m.GenreFold()] = struct{}{}
	}
	return genres
}

// Directory is an in-memory user registry keyed by integer ID.
type Directory struct {
	users map[int]*User
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{users: make(map[int]*User)}
}

// Get looks up a user by ID. A miss returns (nil, false).
func (d *Directory) Get(id int) (*User, bool) {
	u, ok := d.users[id]
	return u, ok
}

// GetOrCreate returns the user with the given ID, creating it if absent.
func (d *Directory) GetOrCreate(id int) *User {
	if u, ok := d.users[id]; ok {
		return u
	}
	u := NewUser(id)
	d.users[id] = u
	return u
}

// Create allocates the next free ID and registers a new user under it.
func (d *Directory) Create() *User {
	return d.GetOrCreate(d.NextID())
}

// NextID returns one greater than the current maximum ID, or 0 when the
// directory is empty.
func (d *Directory) NextID() int {
	if len(d.users) == 0 {
		return 0
	}
	max := -1
	for id := range d.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Len returns the number of registered users.
func (d *Directory) Len() int {
	return len(d.users)
}

// IDs returns all user IDs in ascending order.
func (d *Directory) IDs() []int {
	ids := make([]int, 0, len(d.users))
	for id := range d.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

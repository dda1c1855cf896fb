// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/catalog"
)

// State is the session login state.
type State int

const (
	// StateLoggedOut is the initial state; no user is active.
	StateLoggedOut State = iota
	// StateLoggedIn means exactly one user is active.
	StateLoggedIn
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// LoginNew is the login argument that allocates a fresh user account.
const LoginNew = "new"

// Session is the login state machine over an engine. It tracks at most one
// active user; watch recording and recommendation requests require a login
// and fail with ErrNoActiveUser otherwise.
//
// A session is not safe for concurrent use. The engine behind it is.
type Session struct {
	id     string
	engine *Engine
	logger zerolog.Logger

	state  State
	active *catalog.User
}

// NewSession starts a logged-out session against the engine. Each session
// carries a UUID for log correlation.
func (e *Engine) NewSession() *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		engine: e,
		logger: e.logger.With().Str("session_id", id).Logger(),
		state:  StateLoggedOut,
	}
}

// ID returns the session correlation ID.
func (s *Session) ID() string {
	return s.id
}

// State returns the current login state.
func (s *Session) State() State {
	return s.state
}

// ActiveUser returns the logged-in user, if any.
func (s *Session) ActiveUser() (*catalog.User, bool) {
	if s.state != StateLoggedIn {
		return nil, false
	}
	return s.active, true
}

// Login resolves the argument to a user and activates it. The literal
// "new" allocates the next free ID. A numeric argument must name a
// registered user; anything else fails with ErrUserNotFound and leaves
// the session state untouched.
func (s *Session) Login(arg string) (*catalog.User, error) {
	arg = strings.TrimSpace(arg)

	if strings.EqualFold(arg, LoginNew) {
		u := s.engine.CreateUser()
		s.activate(u)
		return u, nil
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("login %q: %w", arg, ErrUserNotFound)
	}
	u, ok := s.engine.LookupUser(id)
	if !ok {
		return nil, fmt.Errorf("login %q: %w", arg, ErrUserNotFound)
	}
	s.activate(u)
	return u, nil
}

func (s *Session) activate(u *catalog.User) {
	s.state = StateLoggedIn
	s.active = u
	s.logger.Debug().Int("user_id", u.ID).Msg("logged in")
}

// Logout clears the active user. Logging out of a logged-out session is a
// no-op; the operation always succeeds.
func (s *Session) Logout() {
	if s.state == StateLoggedIn {
		s.logger.Debug().Int("user_id", s.active.ID).Msg("logged out")
	}
	s.state = StateLoggedOut
	s.active = nil
}

// RecordWatched adds the titled movie to the active user's watched set.
func (s *Session) RecordWatched(title string) error {
	if s.state != StateLoggedIn {
		return fmt.Errorf("record watched: %w", ErrNoActiveUser)
	}
	return s.engine.RecordWatched(s.active.ID, title)
}

// Recommendations produces the hybrid recommendation list for the active
// user.
func (s *Session) Recommendations() ([]Recommendation, error) {
	if s.state != StateLoggedIn {
		return nil, fmt.Errorf("recommendations: %w", ErrNoActiveUser)
	}
	return s.engine.Recommend(s.active.ID)
}

// SimilarUsers ranks users by similarity to the active user.
func (s *Session) SimilarUsers(topN int) ([]SimilarUser, error) {
	if s.state != StateLoggedIn {
		return nil, fmt.Errorf("similar users: %w", ErrNoActiveUser)
	}
	return s.engine.SimilarUsers(s.active.ID, topN), nil
}

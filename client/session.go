package client

import (
	"context"
	"errors"
	"sync"
)

// AuthState is the session lifecycle.
type AuthState int

const (
	StateSignedOut AuthState = iota
	StateLoading
	StateSignedIn
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSignedIn:
		return "signed-in"
	default:
		return "signed-out"
	}
}

// AuthEvent is delivered to subscribers on every transition. User and
// Profile are consistent with each other: a sign-out never leaves a stale
// profile beside a nil user.
type AuthEvent struct {
	State   AuthState
	User    *User
	Profile *Profile
}

// Notification is a non-fatal message for the UI, the toast analog.
type Notification struct {
	Title string
	Error error
}

// Session owns the process-wide auth state: current user, current profile
// and the transitions between signed-out, loading and signed-in. Views
// subscribe rather than polling ambient globals.
type Session struct {
	client *Client

	mu      sync.Mutex
	state   AuthState
	user    *User
	profile *Profile
	subs    map[int]func(AuthEvent)
	nextSub int

	notify func(Notification)
}

func NewSession(c *Client, notify func(Notification)) *Session {
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Session{
		client: c,
		state:  StateLoading,
		subs:   make(map[int]func(AuthEvent)),
		notify: notify,
	}
}

// Snapshot returns the current state triple under one lock acquisition.
func (s *Session) Snapshot() AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AuthEvent{State: s.state, User: s.user, Profile: s.profile}
}

// OnChange registers fn for future transitions and returns an unsubscribe
// function. Transitions that happen after registration are never missed.
func (s *Session) OnChange(fn func(AuthEvent)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) transition(state AuthState, user *User, profile *Profile) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.profile = profile
	event := AuthEvent{State: state, User: user, Profile: profile}
	subs := make([]func(AuthEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}

// Start resolves the initial session. A profile fetch failure here is
// advisory: the user still becomes available, and the UI gets a
// notification instead of a dead screen.
func (s *Session) Start(ctx context.Context) error {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			s.transition(StateSignedOut, nil, nil)
			return nil
		}
		s.transition(StateSignedOut, nil, nil)
		return err
	}

	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		s.notify(Notification{Title: "Failed to load profile", Error: err})
		profile = nil
	}

	s.transition(StateSignedIn, user, profile)
	return nil
}

// SignIn authenticates and schedules the profile load. Profile failure on
// this reactive path stays quiet; the sign-in itself has succeeded.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	s.transition(StateLoading, nil, nil)

	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.transition(StateSignedOut, nil, nil)
		return err
	}

	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		profile = nil
	}

	s.transition(StateSignedIn, user, profile)
	return nil
}

// SignOut clears user, session and profile in one transition, so no
// observer ever sees a stale profile beside a nil user.
func (s *Session) SignOut(ctx context.Context) error {
	s.transition(StateLoading, nil, nil)

	err := s.client.Logout(ctx)
	s.transition(StateSignedOut, nil, nil)
	if err != nil {
		s.notify(Notification{Title: "Error signing out", Error: err})
		return err
	}

	s.notify(Notification{Title: "Signed out successfully"})
	return nil
}

// RefreshProfile re-fetches the profile for the current user. No-op when
// signed out.
func (s *Session) RefreshProfile(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	state := s.state
	s.mu.Unlock()

	if state != StateSignedIn || user == nil {
		return nil
	}

	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		s.notify(Notification{Title: "Error refreshing profile", Error: err})
		return err
	}

	s.transition(StateSignedIn, user, profile)
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend serves the handful of endpoints the session touches.
type fakeBackend struct {
	mux *http.ServeMux

	loginOK          bool
	profileFail      bool
	profileAbsent    bool // 200 with a JSON null body, the pre-upsert rendering
	profileEmptyBody bool // 200 with headers only
	listCalls        int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: http.NewServeMux(), loginOK: true}

	b.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		if !b.loginOK {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "token-abc",
			"refresh_token": "refresh-abc",
			"user":          map[string]string{"id": "u1", "email": "jo@example.com", "role": "employee"},
		})
	})

	b.mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "logout successful"})
	})

	b.mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "jo@example.com", "role": "employee"})
	})

	b.mux.HandleFunc("GET /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case b.profileFail:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
		case b.profileAbsent:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("null\n"))
		case b.profileEmptyBody:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
		default:
			first := "Jo"
			json.NewEncoder(w).Encode(profileWire{ID: "u1", FirstName: &first})
		}
	})

	b.mux.HandleFunc("GET /objectives", func(w http.ResponseWriter, r *http.Request) {
		b.listCalls++
		json.NewEncoder(w).Encode([]objectiveWire{{ID: "o1", Title: "First objective", Status: "On Track"}})
	})

	return b
}

func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestSessionStartSignedOut(t *testing.T) {
	c := newTestClient(t, newFakeBackend())
	session := NewSession(c, nil)

	require.NoError(t, session.Start(context.Background()))

	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedOut, snapshot.State)
	assert.Nil(t, snapshot.User)
	assert.Nil(t, snapshot.Profile)
}

func TestSessionSignInLoadsUserAndProfile(t *testing.T) {
	c := newTestClient(t, newFakeBackend())
	session := NewSession(c, nil)

	var events []AuthState
	session.OnChange(func(e AuthEvent) { events = append(events, e.State) })

	require.NoError(t, session.SignIn(context.Background(), "jo@example.com", "secret"))

	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedIn, snapshot.State)
	require.NotNil(t, snapshot.User)
	assert.Equal(t, "jo@example.com", snapshot.User.Email)
	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, "Jo", *snapshot.Profile.FirstName)

	assert.Equal(t, []AuthState{StateLoading, StateSignedIn}, events)
}

func TestSessionSignInFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.loginOK = false
	c := newTestClient(t, backend)
	session := NewSession(c, nil)

	err := session.SignIn(context.Background(), "jo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, StateSignedOut, session.Snapshot().State)
}

func TestSessionSignInWithoutProfile(t *testing.T) {
	backend := newFakeBackend()
	backend.profileFail = true
	c := newTestClient(t, backend)
	session := NewSession(c, nil)

	// A broken profile fetch must not block the sign-in itself.
	require.NoError(t, session.SignIn(context.Background(), "jo@example.com", "secret"))

	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedIn, snapshot.State)
	assert.NotNil(t, snapshot.User)
	assert.Nil(t, snapshot.Profile)
}

func TestGetProfileAbsent(t *testing.T) {
	t.Run("NullBody", func(t *testing.T) {
		backend := newFakeBackend()
		backend.profileAbsent = true
		c := newTestClient(t, backend)
		c.SetToken("token-abc")

		p, err := c.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		backend := newFakeBackend()
		backend.profileEmptyBody = true
		c := newTestClient(t, backend)
		c.SetToken("token-abc")

		p, err := c.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestSessionStartWithAbsentProfile(t *testing.T) {
	backend := newFakeBackend()
	backend.profileAbsent = true
	c := newTestClient(t, backend)
	c.SetToken("token-abc")

	var notifications []Notification
	session := NewSession(c, func(n Notification) { notifications = append(notifications, n) })

	require.NoError(t, session.Start(context.Background()))

	// A fresh account has no profile row yet; that is absence, not an error,
	// so no notification fires.
	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedIn, snapshot.State)
	require.NotNil(t, snapshot.User)
	assert.Nil(t, snapshot.Profile)
	assert.Empty(t, notifications)
}

func TestSessionSignInWithAbsentProfile(t *testing.T) {
	backend := newFakeBackend()
	backend.profileAbsent = true
	c := newTestClient(t, backend)
	session := NewSession(c, nil)

	require.NoError(t, session.SignIn(context.Background(), "jo@example.com", "secret"))

	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedIn, snapshot.State)
	assert.Nil(t, snapshot.Profile)
}

func TestSessionSignOutClearsEverythingAtomically(t *testing.T) {
	c := newTestClient(t, newFakeBackend())
	session := NewSession(c, nil)
	require.NoError(t, session.SignIn(context.Background(), "jo@example.com", "secret"))

	// Every observed event must keep user and profile consistent: no event
	// may carry a profile without a user.
	session.OnChange(func(e AuthEvent) {
		if e.User == nil {
			assert.Nil(t, e.Profile)
		}
	})

	require.NoError(t, session.SignOut(context.Background()))

	snapshot := session.Snapshot()
	assert.Equal(t, StateSignedOut, snapshot.State)
	assert.Nil(t, snapshot.User)
	assert.Nil(t, snapshot.Profile)
	assert.Empty(t, c.Token())
}

func TestSessionUnsubscribe(t *testing.T) {
	c := newTestClient(t, newFakeBackend())
	session := NewSession(c, nil)

	calls := 0
	unsubscribe := session.OnChange(func(AuthEvent) { calls++ })
	unsubscribe()

	require.NoError(t, session.SignIn(context.Background(), "jo@example.com", "secret"))
	assert.Equal(t, 0, calls)
}

func TestListObjectivesUsesCache(t *testing.T) {
	backend := newFakeBackend()
	c := newTestClient(t, backend)
	c.SetToken("token-abc")
	ctx := context.Background()

	_, err := c.ListObjectives(ctx, ObjectiveFilters{})
	require.NoError(t, err)
	_, err = c.ListObjectives(ctx, ObjectiveFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.listCalls)

	// A different filter set is a different key.
	_, err = c.ListObjectives(ctx, ObjectiveFilters{Status: "At Risk"})
	require.NoError(t, err)
	assert.Equal(t, 2, backend.listCalls)

	// Invalidation forces the next identical read to refetch.
	c.Cache().Invalidate("objectives:")
	_, err = c.ListObjectives(ctx, ObjectiveFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, backend.listCalls)
}

// Package clientstate implements the client-side state container: two
// reducer-managed slices (auth and profile) behind a dispatching store with
// subscriber callbacks and pluggable token persistence.
package clientstate

import (
	"sync"

	"devlink/internal/models"
)

// ActionType tags a dispatched action.
type ActionType string

const (
	LoadedUser       ActionType = "LOADED_USER"
	RegisterSuccess  ActionType = "REGISTER_SUCCESS"
	RegisterFail     ActionType = "REGISTER_FAIL"
	LoginSuccess     ActionType = "LOGIN_SUCCESS"
	LoginFail        ActionType = "LOGIN_FAIL"
	AuthError        ActionType = "AUTH_ERROR"
	Logout           ActionType = "LOGOUT"
	ProfileLoaded    ActionType = "PROFILE_LOADED"
	ProfilesLoaded   ActionType = "PROFILES_LOADED"
	ProfileLoadError ActionType = "PROFILE_LOAD_ERROR"
	ClearProfile     ActionType = "CLEAR_PROFILE"
)

// Action carries an action type and its payload fields. Only the fields the
// action type reads are consulted.
type Action struct {
	Type     ActionType
	Token    string
	User     *models.User
	Profile  *models.Profile
	Profiles []models.Profile
	Errors   []string
}

// AuthState is the session slice.
type AuthState struct {
	Token           string
	User            *models.User
	IsAuthenticated bool
	Loading         bool
}

// ProfileState is the profile slice.
type ProfileState struct {
	Profile  *models.Profile
	Profiles []models.Profile
	Loading  bool
	Errors   []string
}

// State is the full container state.
type State struct {
	Auth    AuthState
	Profile ProfileState
}

// reduceAuth computes the next auth slice. Pure.
func reduceAuth(s AuthState, a Action) AuthState {
	switch a.Type {
	case LoadedUser:
		s.User = a.User
		s.IsAuthenticated = true
		s.Loading = false
	case RegisterSuccess, LoginSuccess:
		s.Token = a.Token
		s.User = a.User
		s.IsAuthenticated = true
		s.Loading = false
	case RegisterFail, LoginFail, AuthError, Logout:
		s.Token = ""
		s.User = nil
		s.IsAuthenticated = false
		s.Loading = false
	}
	return s
}

// reduceProfile computes the next profile slice. Pure. A session ending for
// any reason clears the slice the same way an explicit ClearProfile does.
func reduceProfile(s ProfileState, a Action) ProfileState {
	switch a.Type {
	case ProfileLoaded:
		s.Profile = a.Profile
		s.Loading = false
	case ProfilesLoaded:
		s.Profiles = a.Profiles
		s.Loading = false
	case ProfileLoadError:
		s.Errors = a.Errors
		s.Profile = nil
		s.Loading = false
	case ClearProfile, Logout, AuthError:
		s.Profile = nil
		s.Loading = true
		s.Errors = nil
	}
	return s
}

// TokenStorage persists the session token between program runs.
type TokenStorage interface {
	Load() string
	Store(token string)
	Clear()
}

// MemoryTokenStorage is a TokenStorage kept in memory. Safe for concurrent
// use.
type MemoryTokenStorage struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenStorage) Load() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryTokenStorage) Store(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryTokenStorage) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

// Store dispatches actions through the reducers and notifies subscribers of
// every state change.
type Store struct {
	mu          sync.RWMutex
	state       State
	storage     TokenStorage
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore creates a store with the initial state both slices start in: a
// token restored from storage and both slices loading.
func NewStore(storage TokenStorage) *Store {
	if storage == nil {
		storage = &MemoryTokenStorage{}
	}
	return &Store{
		state: State{
			Auth:    AuthState{Token: storage.Load(), Loading: true},
			Profile: ProfileState{Loading: true},
		},
		storage:     storage,
		subscribers: make(map[int]func(State)),
	}
}

// Dispatch runs the action through both reducers, persists or clears the
// stored token for session transitions, and notifies subscribers with the
// new state.
func (st *Store) Dispatch(a Action) {
	st.mu.Lock()
	st.state.Auth = reduceAuth(st.state.Auth, a)
	st.state.Profile = reduceProfile(st.state.Profile, a)

	switch a.Type {
	case RegisterSuccess, LoginSuccess:
		st.storage.Store(a.Token)
	case RegisterFail, LoginFail, AuthError, Logout:
		st.storage.Clear()
	}

	state := st.state
	subs := make([]func(State), 0, len(st.subscribers))
	for _, fn := range st.subscribers {
		subs = append(subs, fn)
	}
	st.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may read the store.
	for _, fn := range subs {
		fn(state)
	}
}

// Subscribe registers a callback invoked after every dispatch. The returned
// function removes the subscription.
func (st *Store) Subscribe(fn func(State)) func() {
	st.mu.Lock()
	id := st.nextSubID
	st.nextSubID++
	st.subscribers[id] = fn
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.subscribers, id)
		st.mu.Unlock()
	}
}

// State returns a snapshot of the current state.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

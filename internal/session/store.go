// Package session owns the single source of truth for "who is logged in"
// and serializes every way that truth can change.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

// State of the session. Unknown lasts only until the first Restore
// resolves; afterwards the store is always Anonymous or Authenticated.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of the session handed to readers and
// subscribers. User is set iff State is StateAuthenticated. Err holds the
// last human-readable login/register failure, empty otherwise.
type Snapshot struct {
	State State
	User  *matchhub.User
	Err   string
}

// Gateway is the subset of the API client the store drives.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*matchhub.User, error)
}

// Store owns the authentication state machine. Its mutating operations
// (Restore, Login, Register, Logout) are mutually exclusive: callers
// queue on an internal lock, so a logout can never race a pending login
// and leave a persisted credential that does not match memory.
type Store struct {
	gw     Gateway
	keeper Keeper
	logger *zap.Logger

	mu       sync.Mutex
	state    State
	user     *matchhub.User
	lastErr  string
	restored bool
	subs     []func(Snapshot)
}

func New(gw Gateway, keeper Keeper, logger *zap.Logger) *Store {
	return &Store{
		gw:     gw,
		keeper: keeper,
		logger: logger,
		state:  StateUnknown,
	}
}

// Snapshot returns the current session view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to run synchronously on every state transition.
// Callbacks must not call back into the store.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Restore resolves the session from the persisted credential, once per
// process. With no credential it goes straight to anonymous without any
// network call. A credential the backend rejects is discarded silently: a
// stale token degrades to anonymous, never to a displayed error. Repeat
// calls return the already-resolved state.
func (s *Store) Restore(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return s.state
	}
	s.restored = true

	token := s.keeper.Token()
	if token == "" {
		s.transition(StateAnonymous, nil, "")
		return s.state
	}

	user, err := s.gw.CurrentUser(ctx)
	if err != nil {
		s.logger.Debug("discarding stored credential", zap.Error(err))
		if err := s.keeper.Clear(); err != nil {
			s.logger.Warn("clearing stored credential", zap.Error(err))
		}
		s.transition(StateAnonymous, nil, "")
		return s.state
	}

	s.transition(StateAuthenticated, user, "")
	return s.state
}

// Login authenticates, persists the issued credential and resolves the
// user. It reports success so the caller can decide what to do next; on
// failure the prior state is preserved and the reason is recorded for
// display. There is no retry: the caller may simply call Login again.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	return s.authenticate(ctx, email, password, s.gw.Login, "Login failed")
}

// Register mirrors Login using the registration endpoint.
func (s *Store) Register(ctx context.Context, email, password string) bool {
	return s.authenticate(ctx, email, password, s.gw.Register, "Registration failed")
}

func (s *Store) authenticate(ctx context.Context, email, password string, call func(context.Context, string, string) (string, error), fallback string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := call(ctx, email, password)
	if err != nil {
		s.fail(matchhub.UserMessage(err, fallback), err)
		return false
	}

	if err := s.keeper.Save(token); err != nil {
		s.fail(fallback, err)
		return false
	}

	user, err := s.gw.CurrentUser(ctx)
	if err != nil {
		// The credential is persisted only while the whole attempt
		// succeeded. Roll it back so state and storage stay in sync.
		if clearErr := s.keeper.Clear(); clearErr != nil {
			s.logger.Warn("clearing stored credential", zap.Error(clearErr))
		}
		s.fail(matchhub.UserMessage(err, fallback), err)
		return false
	}

	s.transition(StateAuthenticated, user, "")
	return true
}

// Logout discards the credential and returns to anonymous. It makes no
// network call and cannot fail.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.keeper.Clear(); err != nil {
		s.logger.Warn("clearing stored credential", zap.Error(err))
	}
	s.transition(StateAnonymous, nil, "")
}

// Err returns the last recorded login/register failure message.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) fail(msg string, err error) {
	s.logger.Debug("authentication failed", zap.Error(err))
	s.lastErr = msg
	s.notify()
}

func (s *Store) transition(state State, user *matchhub.User, errMsg string) {
	s.state = state
	s.user = user
	s.lastErr = errMsg
	s.notify()
}

func (s *Store) notify() {
	snap := s.snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{State: s.state, User: s.user, Err: s.lastErr}
}

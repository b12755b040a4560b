package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

var _ Gateway = (*matchhub.Client)(nil)

type stubGateway struct {
	loginToken    string
	loginErr      error
	registerToken string
	registerErr   error
	user          *matchhub.User
	userErr       error

	loginCalls    int
	registerCalls int
	userCalls     int
}

func (g *stubGateway) Login(context.Context, string, string) (string, error) {
	g.loginCalls++
	return g.loginToken, g.loginErr
}

func (g *stubGateway) Register(context.Context, string, string) (string, error) {
	g.registerCalls++
	return g.registerToken, g.registerErr
}

func (g *stubGateway) CurrentUser(context.Context) (*matchhub.User, error) {
	g.userCalls++
	return g.user, g.userErr
}

func (g *stubGateway) networkCalls() int {
	return g.loginCalls + g.registerCalls + g.userCalls
}

func newTestStore(gw Gateway, keeper Keeper) *Store {
	return New(gw, keeper, zap.NewNop())
}

func TestRestoreWithoutCredential(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{}
	store := newTestStore(gw, &MemoryKeeper{})

	state := store.Restore(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Zero(t, gw.networkCalls(), "restore with no credential must not touch the network")
}

func TestRestoreWithValidCredential(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{user: &matchhub.User{ID: "u1", Email: "a@b.c"}}
	keeper := &MemoryKeeper{}
	require.NoError(t, keeper.Save("stored-token"))

	store := newTestStore(gw, keeper)

	state := store.Restore(context.Background())

	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, "a@b.c", store.Snapshot().User.Email)
	assert.Equal(t, "stored-token", keeper.Token())
}

func TestRestoreWithExpiredCredential(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{userErr: &matchhub.Error{Kind: matchhub.KindAuthRejected, Status: 401}}
	keeper := &MemoryKeeper{}
	require.NoError(t, keeper.Save("stale-token"))

	store := newTestStore(gw, keeper)

	state := store.Restore(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, keeper.Token(), "stale credential must be discarded")
	assert.Empty(t, store.Err(), "silent downgrade: no error recorded")
}

func TestRestoreRunsOnce(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{user: &matchhub.User{ID: "u1"}}
	keeper := &MemoryKeeper{}
	require.NoError(t, keeper.Save("tok"))

	store := newTestStore(gw, keeper)

	store.Restore(context.Background())
	store.Restore(context.Background())

	assert.Equal(t, 1, gw.userCalls, "restore must not be retried")
}

func TestLoginThenLogout(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{
		loginToken: "fresh",
		user:       &matchhub.User{ID: "u1", Email: "a@b.c"},
	}
	keeper := &MemoryKeeper{}
	store := newTestStore(gw, keeper)

	ok := store.Login(context.Background(), "a@b.c", "secret")

	require.True(t, ok)
	assert.Equal(t, "fresh", keeper.Token())
	snap := store.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, "a@b.c", snap.User.Email)

	calls := gw.networkCalls()
	store.Logout()

	assert.Empty(t, keeper.Token())
	assert.Equal(t, StateAnonymous, store.Snapshot().State)
	assert.Equal(t, calls, gw.networkCalls(), "logout must make zero network calls")
}

func TestLoginFailurePreservesStateAndRecordsReason(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{loginErr: &matchhub.Error{Kind: matchhub.KindAuthRejected, Status: 401, Message: "Invalid credentials"}}
	keeper := &MemoryKeeper{}
	store := newTestStore(gw, keeper)
	store.Restore(context.Background())

	ok := store.Login(context.Background(), "a@b.c", "wrong")

	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, store.Snapshot().State)
	assert.Empty(t, keeper.Token())
	assert.Equal(t, "Invalid credentials", store.Err())
}

func TestLoginFallbackMessage(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{loginErr: errors.New("connection refused")}
	store := newTestStore(gw, &MemoryKeeper{})

	require.False(t, store.Login(context.Background(), "a@b.c", "pw"))
	assert.Equal(t, "Login failed", store.Err())
}

func TestLoginRollsBackCredentialWhenUserResolutionFails(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{
		loginToken: "fresh",
		userErr:    &matchhub.Error{Kind: matchhub.KindServer, Status: 500},
	}
	keeper := &MemoryKeeper{}
	store := newTestStore(gw, keeper)

	ok := store.Login(context.Background(), "a@b.c", "secret")

	assert.False(t, ok)
	assert.Empty(t, keeper.Token(), "credential persisted only for a fully successful attempt")
	assert.NotEqual(t, StateAuthenticated, store.Snapshot().State)
}

func TestRegisterMirrorsLogin(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{
		registerToken: "fresh",
		user:          &matchhub.User{ID: "u2", Email: "new@b.c"},
	}
	keeper := &MemoryKeeper{}
	store := newTestStore(gw, keeper)

	require.True(t, store.Register(context.Background(), "new@b.c", "secret"))
	assert.Equal(t, 1, gw.registerCalls)
	assert.Zero(t, gw.loginCalls)
	assert.Equal(t, "fresh", keeper.Token())
	assert.Equal(t, StateAuthenticated, store.Snapshot().State)
}

func TestSubscribeSeesTransitions(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{loginToken: "tok", user: &matchhub.User{ID: "u1"}}
	store := newTestStore(gw, &MemoryKeeper{})

	var states []State
	store.Subscribe(func(snap Snapshot) {
		states = append(states, snap.State)
	})

	store.Restore(context.Background())
	store.Login(context.Background(), "a@b.c", "pw")
	store.Logout()

	assert.Equal(t, []State{StateAnonymous, StateAuthenticated, StateAnonymous}, states)
}

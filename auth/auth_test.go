package auth

import (
	"os"
	"path/filepath"
	"testing"

	"inkwell-cli/shared"
	"inkwell-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApi struct {
	types.ApiClient

	signInFn func(email, password string) (*shared.SessionResponse, *shared.ApiError)
	signUpFn func(username, email, password string) (*shared.SessionResponse, *shared.ApiError)
	getMeFn  func() (*shared.User, *shared.ApiError)

	getMeCalls int
}

func (f *fakeApi) SignIn(email, password string) (*shared.SessionResponse, *shared.ApiError) {
	return f.signInFn(email, password)
}

func (f *fakeApi) SignUp(username, email, password string) (*shared.SessionResponse, *shared.ApiError) {
	return f.signUpFn(username, email, password)
}

func (f *fakeApi) GetMe() (*shared.User, *shared.ApiError) {
	f.getMeCalls++
	return f.getMeFn()
}

func testUser() *shared.User {
	return &shared.User{Id: "u1", Username: "ann", Email: "ann@example.com", Role: shared.RoleUser}
}

func newTestStore(t *testing.T, client types.ApiClient) (*Store, string) {
	t.Helper()
	authPath := filepath.Join(t.TempDir(), "auth.json")
	return NewStore(client, authPath), authPath
}

func TestSignInSuccess(t *testing.T) {
	client := &fakeApi{
		signInFn: func(email, password string) (*shared.SessionResponse, *shared.ApiError) {
			assert.Equal(t, "ann@example.com", email)
			return &shared.SessionResponse{Token: "tok-1", User: testUser()}, nil
		},
	}
	store, authPath := newTestStore(t, client)

	apiErr := store.SignIn("ann@example.com", "pw")
	require.Nil(t, apiErr)

	sess := store.Session()
	assert.Equal(t, StatusAuthenticated, sess.Status)
	assert.Equal(t, "tok-1", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "u1", sess.User.Id)

	// only the token is persisted
	bytes, err := os.ReadFile(authPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tok-1"}`, string(bytes))
}

func TestSignInRejectedThenRetry(t *testing.T) {
	attempts := 0
	client := &fakeApi{
		signInFn: func(email, password string) (*shared.SessionResponse, *shared.ApiError) {
			attempts++
			if attempts == 1 {
				return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 400, Msg: "Invalid credentials"}
			}
			return &shared.SessionResponse{Token: "tok-2", User: testUser()}, nil
		},
	}
	store, _ := newTestStore(t, client)

	apiErr := store.SignIn("ann@example.com", "wrong")
	require.NotNil(t, apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Msg)
	assert.Equal(t, StatusAuthFailed, store.Session().Status)

	// the store stays usable for another attempt
	require.Nil(t, store.SignIn("ann@example.com", "right"))
	assert.Equal(t, StatusAuthenticated, store.Session().Status)
}

func TestSignUpWithoutTokenStaysUnauthenticated(t *testing.T) {
	client := &fakeApi{
		signUpFn: func(username, email, password string) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{User: testUser()}, nil
		},
	}
	store, authPath := newTestStore(t, client)

	authed, apiErr := store.SignUp("ann", "ann@example.com", "pw")
	require.Nil(t, apiErr)
	assert.False(t, authed)
	assert.Equal(t, StatusUnauthenticated, store.Session().Status)

	_, err := os.Stat(authPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSignUpWithTokenAuthenticates(t *testing.T) {
	client := &fakeApi{
		signUpFn: func(username, email, password string) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "tok-3", User: testUser()}, nil
		},
	}
	store, _ := newTestStore(t, client)

	authed, apiErr := store.SignUp("ann", "ann@example.com", "pw")
	require.Nil(t, apiErr)
	assert.True(t, authed)
	assert.Equal(t, StatusAuthenticated, store.Session().Status)
}

func TestSignOutIsSynchronous(t *testing.T) {
	client := &fakeApi{
		signInFn: func(email, password string) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "tok-1", User: testUser()}, nil
		},
	}
	store, authPath := newTestStore(t, client)
	require.Nil(t, store.SignIn("ann@example.com", "pw"))

	require.NoError(t, store.SignOut())

	sess := store.Session()
	assert.Equal(t, StatusUnauthenticated, sess.Status)
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.User)

	_, err := os.Stat(authPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRestoreWithValidToken(t *testing.T) {
	client := &fakeApi{
		getMeFn: func() (*shared.User, *shared.ApiError) {
			return testUser(), nil
		},
	}
	store, authPath := newTestStore(t, client)
	require.NoError(t, os.WriteFile(authPath, []byte(`{"token":"tok-1"}`), 0600))

	store.Restore()

	sess := store.Session()
	assert.Equal(t, StatusAuthenticated, sess.Status)
	assert.Equal(t, "tok-1", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "ann", sess.User.Username)
	assert.Equal(t, 1, client.getMeCalls)
}

func TestRestoreWithInvalidTokenClearsAndDoesNotRetry(t *testing.T) {
	client := &fakeApi{
		getMeFn: func() (*shared.User, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeInvalidToken, Status: 401, Msg: "jwt expired"}
		},
	}
	store, authPath := newTestStore(t, client)
	require.NoError(t, os.WriteFile(authPath, []byte(`{"token":"stale"}`), 0600))

	store.Restore()

	assert.Equal(t, StatusUnauthenticated, store.Session().Status)
	_, err := os.Stat(authPath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 1, client.getMeCalls)

	// a second restore finds no token and never goes to the network
	store.Restore()
	assert.Equal(t, 1, client.getMeCalls)
	assert.Equal(t, StatusUnauthenticated, store.Session().Status)
}

func TestRestoreWithoutTokenIsNoop(t *testing.T) {
	client := &fakeApi{
		getMeFn: func() (*shared.User, *shared.ApiError) {
			return testUser(), nil
		},
	}
	store, _ := newTestStore(t, client)

	store.Restore()

	assert.Equal(t, StatusUnauthenticated, store.Session().Status)
	assert.Zero(t, client.getMeCalls)
}

func TestSubscribeObservesOrderedAtomicTransitions(t *testing.T) {
	client := &fakeApi{
		signInFn: func(email, password string) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "tok-1", User: testUser()}, nil
		},
	}
	store, _ := newTestStore(t, client)

	ch, cancel := store.Subscribe()
	defer cancel()

	require.Nil(t, store.SignIn("ann@example.com", "pw"))
	require.NoError(t, store.SignOut())

	var seen []Session
	for len(seen) < 3 {
		seen = append(seen, <-ch)
	}

	assert.Equal(t, StatusAuthenticating, seen[0].Status)
	assert.Equal(t, StatusAuthenticated, seen[1].Status)
	assert.Equal(t, StatusUnauthenticated, seen[2].Status)

	// no torn snapshots: authenticated implies token and identity together,
	// anything else implies no identity is visible
	for _, sess := range seen {
		if sess.Status == StatusAuthenticated {
			assert.NotEmpty(t, sess.Token)
			assert.NotNil(t, sess.User)
		} else if sess.Status == StatusUnauthenticated {
			assert.Nil(t, sess.User)
		}
	}
}

func TestInvalidateDropsSession(t *testing.T) {
	client := &fakeApi{
		signInFn: func(email, password string) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "tok-1", User: testUser()}, nil
		},
	}
	store, authPath := newTestStore(t, client)
	require.Nil(t, store.SignIn("ann@example.com", "pw"))

	store.Invalidate()

	assert.Equal(t, StatusUnauthenticated, store.Session().Status)
	_, err := os.Stat(authPath)
	assert.True(t, os.IsNotExist(err))
}

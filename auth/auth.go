package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"inkwell-cli/shared"
	"inkwell-cli/types"
)

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticating  Status = "authenticating"
	StatusAuthenticated   Status = "authenticated"
	StatusAuthFailed      Status = "auth_failed"
)

// Session is an immutable snapshot of the auth state. Invariant: the status
// is StatusAuthenticated exactly when both Token and User are set; snapshots
// are swapped atomically so observers never see a half-applied transition.
type Session struct {
	Status Status
	Token  string
	User   *shared.User
}

func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

func (s Session) IsAdmin() bool {
	return s.Status == StatusAuthenticated && s.User.IsAdmin()
}

// credentials is the only state that survives a restart. The identity is
// always re-derived from /auth/me so a role change on the server can't leave
// a stale role on this machine.
type credentials struct {
	Token string `json:"token"`
}

// Store owns the session lifecycle: sign-in/sign-up/sign-out, restoring a
// persisted token on startup, and broadcasting transitions to subscribers.
type Store struct {
	mu       sync.RWMutex
	session  Session
	subs     map[int]chan Session
	nextSub  int
	client   types.ApiClient
	authPath string
}

func NewStore(client types.ApiClient, authPath string) *Store {
	return &Store{
		session:  Session{Status: StatusUnauthenticated},
		subs:     map[int]chan Session{},
		client:   client,
		authPath: authPath,
	}
}

// Session returns the current snapshot.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Subscribe returns a channel that receives every subsequent session snapshot
// in transition order, and a cancel func. The channel is buffered so a slow
// reader can't block a transition indefinitely, but snapshots are never
// dropped within the buffer window.
func (s *Store) Subscribe() (<-chan Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Session, 16)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

func (s *Store) transition(next Session) {
	s.mu.Lock()
	s.session = next
	subs := make([]chan Session, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- next:
		default:
		}
	}
}

// Restore re-establishes a session from the persisted token, if any. The
// identity is always re-fetched; a rejected token is discarded so a second
// Restore is a no-op rather than a retry loop.
func (s *Store) Restore() {
	if s.Session().Authenticated() {
		return
	}

	creds, err := s.readCredentials()
	if err != nil || creds.Token == "" {
		return
	}

	s.transition(Session{Status: StatusAuthenticating, Token: creds.Token})

	user, apiErr := s.client.GetMe()
	if apiErr != nil {
		s.clearCredentials()
		s.transition(Session{Status: StatusUnauthenticated})
		return
	}

	s.transition(Session{Status: StatusAuthenticated, Token: creds.Token, User: user})
}

// SignIn exchanges credentials for a token and identity. On rejection the
// store lands in StatusAuthFailed with the server's message and stays usable
// for a retry.
func (s *Store) SignIn(email, password string) *shared.ApiError {
	s.transition(Session{Status: StatusAuthenticating})

	res, apiErr := s.client.SignIn(email, password)
	if apiErr != nil {
		s.transition(Session{Status: StatusAuthFailed})
		return apiErr
	}

	return s.establish(res)
}

// SignUp registers a new account. Whether the session ends up authenticated
// depends on the service: registration may return a token (auto sign-in) or
// just the user record, in which case the caller routes to sign-in. The bool
// reports whether the session is now authenticated.
func (s *Store) SignUp(username, email, password string) (bool, *shared.ApiError) {
	s.transition(Session{Status: StatusAuthenticating})

	res, apiErr := s.client.SignUp(username, email, password)
	if apiErr != nil {
		s.transition(Session{Status: StatusAuthFailed})
		return false, apiErr
	}

	if res.Token == "" {
		s.transition(Session{Status: StatusUnauthenticated})
		return false, nil
	}

	return true, s.establish(res)
}

func (s *Store) establish(res *shared.SessionResponse) *shared.ApiError {
	if res.User == nil {
		s.transition(Session{Status: StatusAuthFailed})
		return &shared.ApiError{
			Type: shared.ApiErrorTypeOther,
			Msg:  "service returned a session without a user record",
		}
	}

	if err := s.writeCredentials(credentials{Token: res.Token}); err != nil {
		s.transition(Session{Status: StatusAuthFailed})
		return &shared.ApiError{
			Type: shared.ApiErrorTypeOther,
			Msg:  fmt.Sprintf("error persisting credentials: %v", err),
		}
	}

	s.transition(Session{Status: StatusAuthenticated, Token: res.Token, User: res.User})
	return nil
}

// SignOut clears the token and identity synchronously. No server round trip;
// no consumer can observe a stale identity once this returns.
func (s *Store) SignOut() error {
	err := s.clearCredentials()
	s.transition(Session{Status: StatusUnauthenticated})
	return err
}

// Invalidate drops the session after the service rejected the token
// mid-flight (401). Wired as the api package's on-unauthorized hook.
func (s *Store) Invalidate() {
	s.clearCredentials()
	s.transition(Session{Status: StatusUnauthenticated})
}

func (s *Store) readCredentials() (credentials, error) {
	var creds credentials

	bytes, err := os.ReadFile(s.authPath)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, fmt.Errorf("error reading auth.json: %v", err)
	}

	if err := json.Unmarshal(bytes, &creds); err != nil {
		return creds, fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	return creds, nil
}

func (s *Store) writeCredentials(creds credentials) error {
	bytes, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("error marshalling credentials: %v", err)
	}

	if err := os.WriteFile(s.authPath, bytes, 0600); err != nil {
		return fmt.Errorf("error writing auth.json: %v", err)
	}

	return nil
}

func (s *Store) clearCredentials() error {
	err := os.Remove(s.authPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth.json: %v", err)
	}
	return nil
}

// Current is the process-wide store, set once in main before any command
// runs. Commands and the api transport read through it; tests construct
// their own stores.
var Current *Store

func SetCurrent(s *Store) {
	Current = s
}

// SetAuthHeader attaches the bearer token to an outgoing request when a
// session is active.
func SetAuthHeader(req *http.Request) {
	if Current == nil {
		return
	}
	sess := Current.Session()
	if sess.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
}

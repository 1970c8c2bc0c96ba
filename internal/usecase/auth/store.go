// Package auth owns the process-wide session: the current identity,
// its loading state, and the login/logout transitions. One instance
// exists per process and every screen reads it.
package auth

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/nav"
	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

// Backend is the slice of the API client the session store uses.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Signup(ctx context.Context, in api.SignupInput) error
	Profile(ctx context.Context) (*session.Identity, error)
}

// CredentialStore is the persisted token+identity slot.
type CredentialStore interface {
	SaveCredentials(token string, id session.Identity) error
	LoadCredentials() (string, *session.Identity, error)
	Clear() error
}

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordShort    = errors.New("password must be at least 6 characters")
	ErrNameRequired     = errors.New("all fields are required")
)

var reEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Store struct {
	mu       sync.Mutex
	backend  Backend
	creds    CredentialStore
	navigate func(nav.Screen)

	state session.State
	user  *session.Identity
}

// NewStore starts in the Unknown state; Init resolves it.
func NewStore(backend Backend, creds CredentialStore, navigate func(nav.Screen)) *Store {
	if navigate == nil {
		navigate = func(nav.Screen) {}
	}
	return &Store{backend: backend, creds: creds, navigate: navigate, state: session.StateUnknown}
}

func (s *Store) State() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current identity, nil unless Authenticated.
func (s *Store) User() *session.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Init performs the one-time Unknown→Authenticated|Anonymous transition
// by reading the persisted token and verifying it against the whoami
// endpoint. Any failure lands on Anonymous with the slot cleared.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	if s.state != session.StateUnknown {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	token, _, err := s.creds.LoadCredentials()
	if err != nil || token == "" {
		s.become(session.StateAnonymous, nil)
		return
	}

	user, err := s.backend.Profile(ctx)
	if err != nil {
		log.Printf("auth: startup check failed: %v", err)
		if clearErr := s.creds.Clear(); clearErr != nil {
			log.Printf("auth: clearing stale credentials: %v", clearErr)
		}
		s.become(session.StateAnonymous, nil)
		return
	}
	s.become(session.StateAuthenticated, user)
}

// Login validates locally, authenticates, persists the token+identity
// and transitions to Authenticated. The returned identity tells the
// caller which home screen to go to.
func (s *Store) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.creds.SaveCredentials(res.Token, res.User); err != nil {
		return nil, err
	}
	user := res.User
	s.become(session.StateAuthenticated, &user)
	return &user, nil
}

// Signup creates an account and leaves the session untouched; the user
// signs in afterwards.
func (s *Store) Signup(ctx context.Context, name, email, password string, role session.Role) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrNameRequired
	}
	if !reEmail.MatchString(email) {
		return ErrEmailInvalid
	}
	if len(password) < 6 {
		return ErrPasswordShort
	}
	if role == "" {
		role = session.RoleUser
	}
	return s.backend.Signup(ctx, api.SignupInput{Name: name, Email: email, Password: password, Role: role})
}

// Logout clears the persisted slot, becomes Anonymous and navigates to
// the login screen.
func (s *Store) Logout() {
	if err := s.creds.Clear(); err != nil {
		log.Printf("auth: clearing credentials on logout: %v", err)
	}
	s.become(session.StateAnonymous, nil)
	s.navigate(nav.ScreenLogin)
}

// HandleUnauthorized is wired as the HTTP pipeline's 401 hook. The
// pipeline has already cleared the persisted token; this flips the
// in-memory state and forces navigation to login.
func (s *Store) HandleUnauthorized() {
	s.become(session.StateAnonymous, nil)
	s.navigate(nav.ScreenLogin)
}

func (s *Store) become(state session.State, user *session.Identity) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

func checkEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !reEmail.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 6 {
		return ErrPasswordShort
	}
	return nil
}

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/nav"
	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

// ----- test doubles -----

type mockBackend struct {
	LoginFn   func(ctx context.Context, email, password string) (*api.LoginResult, error)
	SignupFn  func(ctx context.Context, in api.SignupInput) error
	ProfileFn func(ctx context.Context) (*session.Identity, error)
}

func (m *mockBackend) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBackend) Signup(ctx context.Context, in api.SignupInput) error {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, in)
	}
	return errors.New("not implemented")
}

func (m *mockBackend) Profile(ctx context.Context) (*session.Identity, error) {
	if m.ProfileFn != nil {
		return m.ProfileFn(ctx)
	}
	return nil, errors.New("not implemented")
}

// mockCreds is an in-memory credential slot.
type mockCreds struct {
	token    string
	identity *session.Identity
	loadErr  error
	cleared  int
}

func (m *mockCreds) SaveCredentials(token string, id session.Identity) error {
	m.token, m.identity = token, &id
	return nil
}

func (m *mockCreds) LoadCredentials() (string, *session.Identity, error) {
	if m.loadErr != nil {
		return "", nil, m.loadErr
	}
	return m.token, m.identity, nil
}

func (m *mockCreds) Clear() error {
	m.cleared++
	m.token, m.identity = "", nil
	return nil
}

// ----- tests -----

func TestInit_NoTokenBecomesAnonymous(t *testing.T) {
	s := NewStore(&mockBackend{}, &mockCreds{}, nil)
	if s.State() != session.StateUnknown {
		t.Fatalf("state=%s before init", s.State())
	}
	s.Init(context.Background())
	if s.State() != session.StateAnonymous {
		t.Fatalf("state=%s", s.State())
	}
	if s.User() != nil {
		t.Fatal("user must be nil")
	}
}

func TestInit_ValidTokenBecomesAuthenticated(t *testing.T) {
	creds := &mockCreds{token: "tok-1"}
	backend := &mockBackend{
		ProfileFn: func(ctx context.Context) (*session.Identity, error) {
			return &session.Identity{ID: "u1", Name: "Asha", Email: "a@b.com", Role: session.RoleUser}, nil
		},
	}
	s := NewStore(backend, creds, nil)
	s.Init(context.Background())
	if s.State() != session.StateAuthenticated {
		t.Fatalf("state=%s", s.State())
	}
	if u := s.User(); u == nil || u.ID != "u1" {
		t.Fatalf("user=%+v", s.User())
	}
}

func TestInit_StaleTokenClearsAndBecomesAnonymous(t *testing.T) {
	creds := &mockCreds{token: "expired"}
	backend := &mockBackend{
		ProfileFn: func(ctx context.Context) (*session.Identity, error) {
			return nil, &api.Error{Status: 401, Message: "token expired"}
		},
	}
	s := NewStore(backend, creds, nil)
	s.Init(context.Background())
	if s.State() != session.StateAnonymous {
		t.Fatalf("state=%s", s.State())
	}
	if creds.cleared == 0 {
		t.Fatal("stale credentials must be cleared")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	calls := 0
	creds := &mockCreds{token: "tok"}
	backend := &mockBackend{
		ProfileFn: func(ctx context.Context) (*session.Identity, error) {
			calls++
			return &session.Identity{ID: "u1"}, nil
		},
	}
	s := NewStore(backend, creds, nil)
	s.Init(context.Background())
	s.Init(context.Background())
	if calls != 1 {
		t.Fatalf("profile calls=%d", calls)
	}
}

func TestLogin_Success(t *testing.T) {
	creds := &mockCreds{}
	backend := &mockBackend{
		LoginFn: func(ctx context.Context, email, password string) (*api.LoginResult, error) {
			if email != "a@b.com" || password != "secret1" {
				return nil, errors.New("wrong credentials passed through")
			}
			return &api.LoginResult{
				Token: "T",
				User:  session.Identity{ID: "u1", Name: "Asha", Email: email, Role: session.RoleAdmin},
			}, nil
		},
	}
	s := NewStore(backend, creds, nil)

	u, err := s.Login(context.Background(), " a@b.com ", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.State() != session.StateAuthenticated {
		t.Fatalf("state=%s", s.State())
	}
	if creds.token != "T" {
		t.Fatalf("persisted token=%q", creds.token)
	}
	if u.Role != session.RoleAdmin {
		t.Fatalf("role=%q, caller needs it to pick the home screen", u.Role)
	}
	if nav.RoleHome(u.Role) != nav.ScreenAdminDashboard {
		t.Fatal("admin must land on the dashboard")
	}
}

func TestLogin_LocalValidation(t *testing.T) {
	s := NewStore(&mockBackend{
		LoginFn: func(ctx context.Context, email, password string) (*api.LoginResult, error) {
			t.Fatal("backend must not be called on local validation failure")
			return nil, nil
		},
	}, &mockCreds{}, nil)

	cases := []struct {
		email, password string
		want            error
	}{
		{"", "secret1", ErrEmailRequired},
		{"not-an-email", "secret1", ErrEmailInvalid},
		{"a@b.com", "", ErrPasswordRequired},
		{"a@b.com", "12345", ErrPasswordShort},
	}
	for _, tc := range cases {
		_, err := s.Login(context.Background(), tc.email, tc.password)
		if !errors.Is(err, tc.want) {
			t.Fatalf("email=%q password=%q err=%v, want %v", tc.email, tc.password, err, tc.want)
		}
	}
}

func TestLogin_BackendErrorLeavesSessionAlone(t *testing.T) {
	creds := &mockCreds{}
	s := NewStore(&mockBackend{
		LoginFn: func(ctx context.Context, email, password string) (*api.LoginResult, error) {
			return nil, &api.Error{Status: 401, Message: "Invalid credentials"}
		},
	}, creds, nil)
	s.Init(context.Background())

	_, err := s.Login(context.Background(), "a@b.com", "secret1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if s.State() != session.StateAnonymous {
		t.Fatalf("state=%s", s.State())
	}
	if creds.token != "" {
		t.Fatal("nothing must be persisted on failure")
	}
}

func TestSignup_Validation(t *testing.T) {
	s := NewStore(&mockBackend{}, &mockCreds{}, nil)
	ctx := context.Background()

	if err := s.Signup(ctx, "", "a@b.com", "secret1", ""); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("err=%v", err)
	}
	if err := s.Signup(ctx, "Asha", "bad", "secret1", ""); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("err=%v", err)
	}
	if err := s.Signup(ctx, "Asha", "a@b.com", "12345", ""); !errors.Is(err, ErrPasswordShort) {
		t.Fatalf("err=%v", err)
	}
}

func TestSignup_DefaultsRoleToUser(t *testing.T) {
	var got api.SignupInput
	s := NewStore(&mockBackend{
		SignupFn: func(ctx context.Context, in api.SignupInput) error {
			got = in
			return nil
		},
	}, &mockCreds{}, nil)

	if err := s.Signup(context.Background(), "Asha", "a@b.com", "secret1", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if got.Role != session.RoleUser {
		t.Fatalf("role=%q", got.Role)
	}
	// Signup never signs the user in.
	if s.State() != session.StateUnknown {
		t.Fatalf("state=%s", s.State())
	}
}

func TestLogout_ClearsAndNavigatesToLogin(t *testing.T) {
	creds := &mockCreds{token: "tok"}
	var navigated nav.Screen
	s := NewStore(&mockBackend{
		ProfileFn: func(ctx context.Context) (*session.Identity, error) {
			return &session.Identity{ID: "u1"}, nil
		},
	}, creds, func(sc nav.Screen) { navigated = sc })
	s.Init(context.Background())

	s.Logout()
	if s.State() != session.StateAnonymous {
		t.Fatalf("state=%s", s.State())
	}
	if creds.token != "" {
		t.Fatal("token must be cleared")
	}
	if navigated != nav.ScreenLogin {
		t.Fatalf("navigated=%q", navigated)
	}
}

func TestHandleUnauthorized_ForcesLogin(t *testing.T) {
	var navigated nav.Screen
	s := NewStore(&mockBackend{
		ProfileFn: func(ctx context.Context) (*session.Identity, error) {
			return &session.Identity{ID: "u1"}, nil
		},
	}, &mockCreds{token: "tok"}, func(sc nav.Screen) { navigated = sc })
	s.Init(context.Background())

	s.HandleUnauthorized()
	if s.State() != session.StateAnonymous {
		t.Fatalf("state=%s", s.State())
	}
	if s.User() != nil {
		t.Fatal("identity must be dropped")
	}
	if navigated != nav.ScreenLogin {
		t.Fatalf("navigated=%q", navigated)
	}
}

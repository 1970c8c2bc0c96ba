package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

type LoginResult struct {
	Token string
	User  session.Identity
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var id session.Identity
	if err := json.Unmarshal(env.User, &id); err != nil {
		return nil, fmt.Errorf("decode login user: %w", err)
	}
	if env.Token == "" {
		return nil, &Error{Status: http.StatusOK, Message: "login response carried no token"}
	}
	return &LoginResult{Token: env.Token, User: id}, nil
}

type SignupInput struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     session.Role `json:"role"`
}

func (c *Client) Signup(ctx context.Context, in SignupInput) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/signup", in)
	return err
}

type CreateAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// CreateAdmin provisions another admin account; the backend enforces
// that only admins may call it.
func (c *Client) CreateAdmin(ctx context.Context, in CreateAdminInput) error {
	in.Role = string(session.RoleAdmin)
	_, err := c.do(ctx, http.MethodPost, "/auth/create-admin", in)
	return err
}

// Profile is the whoami call backing the startup session check.
func (c *Client) Profile(ctx context.Context) (*session.Identity, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	var id session.Identity
	if err := json.Unmarshal(env.User, &id); err != nil {
		return nil, fmt.Errorf("decode profile user: %w", err)
	}
	return &id, nil
}

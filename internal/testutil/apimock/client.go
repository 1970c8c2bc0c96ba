// Package apimock is a function-backed stand-in for the API client.
// Only wire the methods a test needs; the rest answer "not implemented".
package apimock

import (
	"context"
	"errors"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

var errNotImplemented = errors.New("not implemented")

type Client struct {
	LoginFn             func(ctx context.Context, email, password string) (*api.LoginResult, error)
	SignupFn            func(ctx context.Context, in api.SignupInput) error
	CreateAdminFn       func(ctx context.Context, in api.CreateAdminInput) error
	ProfileFn           func(ctx context.Context) (*session.Identity, error)
	LoanTypesFn         func(ctx context.Context) ([]loan.Type, error)
	SubmitApplicationFn func(ctx context.Context, payload any) (*loan.Record, error)
	MyLoansFn           func(ctx context.Context) ([]loan.Record, error)
	AdminStatsFn        func(ctx context.Context) (*loan.Stats, error)
	AdminAllLoansFn     func(ctx context.Context) ([]loan.Record, error)
	AdminRecentUsersFn  func(ctx context.Context) ([]loan.RecentUser, error)
	AdminUpdateStatusFn func(ctx context.Context, loanID string, status loan.Status) error
	AdminDeleteLoanFn   func(ctx context.Context, loanID string) error
	AdminLoanByIDFn     func(ctx context.Context, loanID string) (*loan.Record, error)
	DocumentURLFn       func(loanID, docType string) string
}

func (m *Client) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, errNotImplemented
}

func (m *Client) Signup(ctx context.Context, in api.SignupInput) error {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, in)
	}
	return errNotImplemented
}

func (m *Client) CreateAdmin(ctx context.Context, in api.CreateAdminInput) error {
	if m.CreateAdminFn != nil {
		return m.CreateAdminFn(ctx, in)
	}
	return errNotImplemented
}

func (m *Client) Profile(ctx context.Context) (*session.Identity, error) {
	if m.ProfileFn != nil {
		return m.ProfileFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) LoanTypes(ctx context.Context) ([]loan.Type, error) {
	if m.LoanTypesFn != nil {
		return m.LoanTypesFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) SubmitApplication(ctx context.Context, payload any) (*loan.Record, error) {
	if m.SubmitApplicationFn != nil {
		return m.SubmitApplicationFn(ctx, payload)
	}
	return nil, errNotImplemented
}

func (m *Client) MyLoans(ctx context.Context) ([]loan.Record, error) {
	if m.MyLoansFn != nil {
		return m.MyLoansFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) AdminStats(ctx context.Context) (*loan.Stats, error) {
	if m.AdminStatsFn != nil {
		return m.AdminStatsFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) AdminAllLoans(ctx context.Context) ([]loan.Record, error) {
	if m.AdminAllLoansFn != nil {
		return m.AdminAllLoansFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) AdminRecentUsers(ctx context.Context) ([]loan.RecentUser, error) {
	if m.AdminRecentUsersFn != nil {
		return m.AdminRecentUsersFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *Client) AdminUpdateStatus(ctx context.Context, loanID string, status loan.Status) error {
	if m.AdminUpdateStatusFn != nil {
		return m.AdminUpdateStatusFn(ctx, loanID, status)
	}
	return errNotImplemented
}

func (m *Client) AdminDeleteLoan(ctx context.Context, loanID string) error {
	if m.AdminDeleteLoanFn != nil {
		return m.AdminDeleteLoanFn(ctx, loanID)
	}
	return errNotImplemented
}

func (m *Client) AdminLoanByID(ctx context.Context, loanID string) (*loan.Record, error) {
	if m.AdminLoanByIDFn != nil {
		return m.AdminLoanByIDFn(ctx, loanID)
	}
	return nil, errNotImplemented
}

func (m *Client) DocumentURL(loanID, docType string) string {
	if m.DocumentURLFn != nil {
		return m.DocumentURLFn(loanID, docType)
	}
	return ""
}

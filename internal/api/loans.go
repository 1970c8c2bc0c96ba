package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

func (c *Client) LoanTypes(ctx context.Context) ([]loan.Type, error) {
	env, err := c.do(ctx, http.MethodGet, "/loans/types", nil)
	if err != nil {
		return nil, err
	}
	var types []loan.Type
	if err := json.Unmarshal(env.payload(env.LoanTypes), &types); err != nil {
		return nil, fmt.Errorf("decode loan types: %w", err)
	}
	return types, nil
}

// SubmitApplication posts a completed application payload. The payload
// is assembled by the form engine; this layer only moves it.
func (c *Client) SubmitApplication(ctx context.Context, payload any) (*loan.Record, error) {
	env, err := c.do(ctx, http.MethodPost, "/loans", payload)
	if err != nil {
		return nil, err
	}
	var rec loan.Record
	if raw := env.payload(env.Loan); len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode submitted loan: %w", err)
		}
	}
	return &rec, nil
}

func (c *Client) MyLoans(ctx context.Context) ([]loan.Record, error) {
	return c.loanList(ctx, "/loans/my-loans")
}

func (c *Client) AdminAllLoans(ctx context.Context) ([]loan.Record, error) {
	return c.loanList(ctx, "/loans/admin/all-loans")
}

func (c *Client) loanList(ctx context.Context, path string) ([]loan.Record, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var list []loan.Record
	if raw := env.payload(env.Loans); len(raw) > 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode loans: %w", err)
		}
	}
	return list, nil
}

func (c *Client) AdminStats(ctx context.Context) (*loan.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/loans/admin/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats loan.Stats
	if err := json.Unmarshal(env.payload(), &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

func (c *Client) AdminRecentUsers(ctx context.Context) ([]loan.RecentUser, error) {
	env, err := c.do(ctx, http.MethodGet, "/loans/admin/recent-users", nil)
	if err != nil {
		return nil, err
	}
	var users []loan.RecentUser
	if raw := env.payload(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &users); err != nil {
			return nil, fmt.Errorf("decode recent users: %w", err)
		}
	}
	return users, nil
}

func (c *Client) AdminUpdateStatus(ctx context.Context, loanID string, status loan.Status) error {
	_, err := c.do(ctx, http.MethodPut, "/loans/admin/update-status", map[string]any{
		"loanId": loanID,
		"status": status,
	})
	return err
}

func (c *Client) AdminDeleteLoan(ctx context.Context, loanID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/loans/admin/loan/"+url.PathEscape(loanID), nil)
	return err
}

func (c *Client) AdminLoanByID(ctx context.Context, loanID string) (*loan.Record, error) {
	env, err := c.do(ctx, http.MethodGet, "/loans/admin/loan/"+url.PathEscape(loanID), nil)
	if err != nil {
		return nil, err
	}
	var rec loan.Record
	if err := json.Unmarshal(env.payload(env.Loan), &rec); err != nil {
		return nil, fmt.Errorf("decode loan %s: %w", loanID, err)
	}
	return &rec, nil
}

// DocumentURL builds the browser-openable link for a proof document.
// docType is identityProof, addressProof or incomeProof.
func (c *Client) DocumentURL(loanID, docType string) string {
	return c.base + "/loans/admin/loan/" + url.PathEscape(loanID) + "/document/" + url.PathEscape(docType)
}

// Package profile is the signed-in user's dashboard: identity, loan
// history and the derived headline numbers.
package profile

import (
	"context"
	"errors"

	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
	"github.com/ajcoder580/loanapp-client/internal/domain/session"
)

// Backend is the slice of the API client this view needs.
type Backend interface {
	Profile(ctx context.Context) (*session.Identity, error)
	MyLoans(ctx context.Context) ([]loan.Record, error)
}

// ErrWrongRole means the profile endpoint answered with a non-user
// role; the gate should have sent this session elsewhere.
var ErrWrongRole = errors.New("unauthorized access")

// Stats are derived from the loan list client-side, unlike the admin
// aggregates which the server computes.
type Stats struct {
	TotalLoans    int
	ApprovedLoans int
	PendingLoans  int
	TotalAmount   float64
}

type View struct {
	backend Backend

	user    *session.Identity
	loans   []loan.Record
	stats   Stats
	loanErr string
}

func NewView(b Backend) *View { return &View{backend: b} }

// Load fetches the profile and the loan list. A profile failure is
// fatal to the view (the caller navigates away); a loan list failure
// degrades to an inline error with an empty collection.
func (v *View) Load(ctx context.Context) error {
	user, err := v.backend.Profile(ctx)
	if err != nil {
		return err
	}
	if user.Role != session.RoleUser {
		return ErrWrongRole
	}
	v.user = user

	loans, err := v.backend.MyLoans(ctx)
	if err != nil {
		v.loanErr = "Failed to load your loan applications"
		v.loans = nil
		v.stats = Stats{}
		return nil
	}
	v.loanErr = ""
	v.loans = loans
	v.stats = deriveStats(loans)
	return nil
}

func (v *View) User() *session.Identity { return v.user }
func (v *View) Loans() []loan.Record    { return v.loans }
func (v *View) Stats() Stats            { return v.stats }

// LoanError is the inline message when the list fetch failed, empty
// otherwise.
func (v *View) LoanError() string { return v.loanErr }

func deriveStats(loans []loan.Record) Stats {
	s := Stats{TotalLoans: len(loans)}
	for _, l := range loans {
		switch l.Status {
		case loan.StatusApproved:
			s.ApprovedLoans++
			s.TotalAmount += l.LoanAmount
		case loan.StatusPending:
			s.PendingLoans++
		}
	}
	return s
}

// Package admin is the review side: dashboard aggregates, the full
// application list, recent users, and the approve/reject/delete
// actions with their stats refetch.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

// Backend is the slice of the API client the admin screens use.
type Backend interface {
	AdminStats(ctx context.Context) (*loan.Stats, error)
	AdminAllLoans(ctx context.Context) ([]loan.Record, error)
	AdminRecentUsers(ctx context.Context) ([]loan.RecentUser, error)
	AdminUpdateStatus(ctx context.Context, loanID string, status loan.Status) error
	AdminDeleteLoan(ctx context.Context, loanID string) error
	AdminLoanByID(ctx context.Context, loanID string) (*loan.Record, error)
	CreateAdmin(ctx context.Context, in api.CreateAdminInput) error
	DocumentURL(loanID, docType string) string
}

// ErrBusy gates duplicate submissions while a mutating call is
// outstanding, the way the buttons disable in a browser.
var ErrBusy = errors.New("another update is still in progress")

var ErrBadStatus = errors.New("unknown loan status")

// Notice is a transient success/error message. It is checked against a
// clock instead of cleared by a timer, so views stay deterministic.
type Notice struct {
	Text    string
	IsError bool
	At      time.Time
}

func (n Notice) activeAt(now time.Time, ttl time.Duration) bool {
	return n.Text != "" && now.Sub(n.At) < ttl
}

type Dashboard struct {
	backend   Backend
	noticeTTL time.Duration
	now       func() time.Time

	stats loan.Stats
	loans []loan.Record
	users []loan.RecentUser

	statsErr string
	loansErr string
	usersErr string

	notice   Notice
	updating bool
}

// NewDashboard wires the view. now may be nil for the wall clock.
func NewDashboard(b Backend, noticeTTL time.Duration, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	return &Dashboard{backend: b, noticeTTL: noticeTTL, now: now}
}

// Load issues the three mount fetches. They are independent: each
// failure is recorded inline and leaves that section empty, and no
// ordering is assumed between them.
func (d *Dashboard) Load(ctx context.Context) {
	if stats, err := d.backend.AdminStats(ctx); err != nil {
		d.statsErr = api.UserMessage(err)
		d.stats = loan.Stats{}
	} else {
		d.statsErr = ""
		d.stats = *stats
	}

	if loans, err := d.backend.AdminAllLoans(ctx); err != nil {
		d.loansErr = api.UserMessage(err)
		d.loans = nil
	} else {
		d.loansErr = ""
		d.loans = loans
	}

	if users, err := d.backend.AdminRecentUsers(ctx); err != nil {
		d.usersErr = api.UserMessage(err)
		d.users = nil
	} else {
		d.usersErr = ""
		d.users = users
	}
}

func (d *Dashboard) Stats() loan.Stats        { return d.stats }
func (d *Dashboard) Loans() []loan.Record     { return d.loans }
func (d *Dashboard) Users() []loan.RecentUser { return d.users }
func (d *Dashboard) StatsError() string       { return d.statsErr }
func (d *Dashboard) LoansError() string       { return d.loansErr }
func (d *Dashboard) UsersError() string       { return d.usersErr }
func (d *Dashboard) Updating() bool           { return d.updating }

// ActiveNotice returns the transient message if it has not yet aged
// out, plus whether it is an error.
func (d *Dashboard) ActiveNotice() (string, bool) {
	if !d.notice.activeAt(d.now(), d.noticeTTL) {
		return "", false
	}
	return d.notice.Text, d.notice.IsError
}

// UpdateStatus requests a transition and, only after the server
// confirms, patches the matching list entry. Other entries are never
// touched; aggregates are refetched, not adjusted.
func (d *Dashboard) UpdateStatus(ctx context.Context, loanID string, status loan.Status) error {
	if d.updating {
		return ErrBusy
	}
	if !status.Valid() {
		return ErrBadStatus
	}
	d.updating = true
	defer func() { d.updating = false }()

	if err := d.backend.AdminUpdateStatus(ctx, loanID, status); err != nil {
		d.setNotice(fmt.Sprintf("Failed to update loan status: %s", api.UserMessage(err)), true)
		return err
	}

	for i := range d.loans {
		if d.loans[i].LoanID == loanID {
			d.loans[i].Status = status
			break
		}
	}
	d.setNotice(fmt.Sprintf("Loan #%s has been %s successfully.", loanID, strings.ToLower(string(status))), false)
	d.refreshStats(ctx)
	return nil
}

// Delete asks for confirmation first; without it no request is issued
// and the list is untouched.
func (d *Dashboard) Delete(ctx context.Context, loanID string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}
	if d.updating {
		return ErrBusy
	}
	d.updating = true
	defer func() { d.updating = false }()

	if err := d.backend.AdminDeleteLoan(ctx, loanID); err != nil {
		d.setNotice(fmt.Sprintf("Failed to delete loan application: %s", api.UserMessage(err)), true)
		return err
	}

	kept := d.loans[:0]
	for _, l := range d.loans {
		if l.LoanID != loanID {
			kept = append(kept, l)
		}
	}
	d.loans = kept
	d.setNotice(fmt.Sprintf("Loan application #%s has been deleted successfully.", loanID), false)
	d.refreshStats(ctx)
	return nil
}

// refreshStats refetches the aggregates after a mutation. A refresh
// failure keeps the stale numbers and is only logged.
func (d *Dashboard) refreshStats(ctx context.Context) {
	stats, err := d.backend.AdminStats(ctx)
	if err != nil {
		log.Printf("admin: refreshing stats: %v", err)
		return
	}
	d.stats = *stats
}

func (d *Dashboard) setNotice(text string, isErr bool) {
	d.notice = Notice{Text: text, IsError: isErr, At: d.now()}
}

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateAdminInput is the create-admin form with its confirm field.
type CreateAdminInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
}

func (in *CreateAdminInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(in.Email) == "":
		return errors.New("email is required")
	case !reEmail.MatchString(in.Email):
		return errors.New("email is invalid")
	case in.Password == "":
		return errors.New("password is required")
	case len(in.Password) < 6:
		return errors.New("password must be at least 6 characters")
	case in.Password != in.ConfirmPassword:
		return errors.New("passwords do not match")
	case strings.TrimSpace(in.Phone) == "":
		return errors.New("phone number is required")
	case strings.TrimSpace(in.Address) == "":
		return errors.New("address is required")
	}
	return nil
}

// CreateAdmin provisions another admin after local validation.
func (d *Dashboard) CreateAdmin(ctx context.Context, in CreateAdminInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	return d.backend.CreateAdmin(ctx, api.CreateAdminInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	})
}

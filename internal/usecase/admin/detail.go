package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/ajcoder580/loanapp-client/internal/api"
	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

// Detail is the single-application review screen.
type Detail struct {
	backend   Backend
	noticeTTL time.Duration
	now       func() time.Time

	rec      *loan.Record
	notice   Notice
	updating bool
}

func NewDetail(b Backend, noticeTTL time.Duration, now func() time.Time) *Detail {
	if now == nil {
		now = time.Now
	}
	return &Detail{backend: b, noticeTTL: noticeTTL, now: now}
}

func (d *Detail) Load(ctx context.Context, loanID string) error {
	rec, err := d.backend.AdminLoanByID(ctx, loanID)
	if err != nil {
		return err
	}
	d.rec = rec
	return nil
}

func (d *Detail) Record() *loan.Record { return d.rec }
func (d *Detail) Updating() bool       { return d.updating }

func (d *Detail) ActiveNotice() (string, bool) {
	if !d.notice.activeAt(d.now(), d.noticeTTL) {
		return "", false
	}
	return d.notice.Text, d.notice.IsError
}

// UpdateStatus requests a transition for the held record and patches it
// locally once the server confirms. Requesting the current status is a
// no-op, matching the disabled button.
func (d *Detail) UpdateStatus(ctx context.Context, status loan.Status) error {
	if d.rec == nil {
		return fmt.Errorf("no loan loaded")
	}
	if d.updating {
		return ErrBusy
	}
	if !status.Valid() {
		return ErrBadStatus
	}
	if d.rec.Status == status {
		return nil
	}
	d.updating = true
	defer func() { d.updating = false }()

	if err := d.backend.AdminUpdateStatus(ctx, d.rec.LoanID, status); err != nil {
		d.notice = Notice{Text: "Failed to update loan status. " + api.UserMessage(err), IsError: true, At: d.now()}
		return err
	}
	d.rec.Status = status
	d.notice = Notice{
		Text: fmt.Sprintf("Loan application status updated to %s successfully!", status),
		At:   d.now(),
	}
	return nil
}

// DocumentURL builds the link for one of the attached proofs:
// identityProof, addressProof or incomeProof.
func (d *Detail) DocumentURL(docType string) string {
	if d.rec == nil {
		return ""
	}
	return d.backend.DocumentURL(d.rec.LoanID, docType)
}

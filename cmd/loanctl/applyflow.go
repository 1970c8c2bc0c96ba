package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ajcoder580/loanapp-client/internal/adapter/store"
	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
	"github.com/ajcoder580/loanapp-client/internal/usecase/apply"
)

var stepTitles = [apply.TotalSteps + 1]string{
	"",
	"Basic Loan Information",
	"Financial Information",
	"Applicant Information",
	"Employment Information",
	"Residence Information",
	"Bank Details",
}

// cmdApply walks the six-step form. Each step prompts only its own
// fields; advancing validates that step and a failure keeps the cursor
// where it is. The draft autosaves between steps so a quit can resume.
func (a *app) cmdApply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	typeID := fs.Int("type", 1, "loan product id (see loanctl types)")
	resume := fs.Bool("resume", false, "resume the last saved draft")
	_ = fs.Parse(args)

	user := a.sessions.User()
	if user == nil {
		return errors.New("not signed in")
	}

	var form *apply.Form
	draftID := uuid.NewString()

	if *resume {
		saved, err := a.store.LatestDraft(user.Email)
		if err != nil {
			return err
		}
		if saved == nil {
			fmt.Println("No saved draft, starting fresh")
		} else {
			form, err = apply.Restore(saved.Step, saved.Payload)
			if err != nil {
				return err
			}
			draftID = saved.ID
			fmt.Printf("Resuming draft from %s\n", saved.UpdatedAt.Local().Format("02 Jan 2006 15:04"))
		}
	}
	if form == nil {
		t := loan.TypeByID(*typeID)
		form = apply.NewForm(t)
		fmt.Printf("Applying for: %s (%.2f%% interest, up to %.0f)\n", t.Name, t.InterestRate, t.MaxAmount)
	}

	for {
		fmt.Printf("\n— Step %d of %d: %s —\n", form.Step(), apply.TotalSteps, stepTitles[form.Step()])
		a.collectStep(form)

		action := a.prompt("[n]ext  [b]ack  [q]uit and save: ")
		switch action {
		case "b", "back":
			form.Retreat()
			a.autosave(form, draftID, user.Email)
			continue
		case "q", "quit":
			a.autosave(form, draftID, user.Email)
			fmt.Println("Draft saved; resume with: loanctl apply -resume")
			return nil
		}

		atFinal := form.Step() == apply.TotalSteps
		if err := form.Advance(); err != nil {
			// Transient notice; the step does not move.
			fmt.Println("!", err)
			continue
		}
		a.autosave(form, draftID, user.Email)
		if !atFinal {
			continue
		}

		if !a.confirm("Submit this application?") {
			fmt.Println("Draft saved; resume with: loanctl apply -resume")
			return nil
		}
		return a.submit(ctx, form, draftID, user.ID)
	}
}

func (a *app) submit(ctx context.Context, form *apply.Form, draftID, userID string) error {
	sub, err := form.BuildSubmission(userID, time.Now())
	if err != nil {
		fmt.Println("!", err)
		return nil
	}
	if _, err := a.client.SubmitApplication(ctx, sub); err != nil {
		return err
	}
	if err := a.store.DeleteDraft(draftID); err != nil {
		fmt.Println("warning: could not remove saved draft:", err)
	}
	fmt.Println("Loan application submitted successfully!")
	fmt.Println("Track it with: loanctl profile")
	return nil
}

func (a *app) autosave(form *apply.Form, draftID, owner string) {
	step, payload, err := form.Snapshot()
	if err != nil {
		fmt.Println("warning: could not snapshot draft:", err)
		return
	}
	if err := a.store.SaveDraft(store.Draft{ID: draftID, OwnerEmail: owner, Step: step, Payload: payload}); err != nil {
		fmt.Println("warning: could not save draft:", err)
	}
}

// collectStep prompts for the current step's fields. Blank input keeps
// whatever the draft already holds, so re-running a step after a
// validation failure only needs the offending field.
func (a *app) collectStep(f *apply.Form) {
	d := f.Draft()
	switch f.Step() {
	case 1:
		f.UpdateTerms(apply.BasicTerms{
			LoanAmount: a.promptFloat("Loan amount (1,000 - 10,000,000)", d.LoanAmount),
			LoanTerm:   a.promptInt("Loan term in months (6 - 600)", d.LoanTerm),
			Purpose:    a.promptText("Purpose of loan (min 10 characters)", d.Purpose),
		})
	case 2:
		f.UpdateFinancials(apply.Financials{
			MonthlyIncome:        a.promptFloat("Monthly income (min 10,000)", d.MonthlyIncome),
			AnnualIncome:         a.promptFloat("Annual income (min 120,000)", d.AnnualIncome),
			OtherIncome:          a.promptFloat("Other income", d.OtherIncome),
			TotalMonthlyExpenses: a.promptFloat("Total monthly expenses", d.TotalMonthlyExpenses),
			ExistingLoans:        a.promptText("Existing loans (Yes/No)", d.ExistingLoans),
			ExistingEMI:          a.promptFloat("Existing EMI", d.ExistingEMI),
			CreditScore:          a.promptInt("Credit score (300 - 900)", d.CreditScore),
			RepaymentCapacity:    a.promptFloat("Repayment capacity", d.RepaymentCapacity),
		})
	case 3:
		f.UpdateApplicant(apply.ApplicantDetails{
			FirstName:     a.promptText("First name", d.Applicant.FirstName),
			MiddleName:    a.promptText("Middle name", d.Applicant.MiddleName),
			LastName:      a.promptText("Last name", d.Applicant.LastName),
			DateOfBirth:   a.promptText("Date of birth (YYYY-MM-DD)", d.Applicant.DateOfBirth),
			Gender:        a.promptText("Gender", d.Applicant.Gender),
			MaritalStatus: a.promptText("Marital status", d.Applicant.MaritalStatus),
			Phone:         a.promptText("Phone (10 digits)", d.Applicant.Phone),
			Email:         a.promptText("Email", d.Applicant.Email),
			Education:     a.promptText("Education", d.Applicant.Education),
			Dependents:    intOr(a.promptInt("Dependents", intPtr(d.Applicant.Dependents)), 0),
		})
	case 4:
		f.UpdateEmployment(
			a.promptText("Employment type", d.EmploymentType),
			apply.EmploymentDetails{
				EmployerName:           a.promptText("Employer name", d.Employment.EmployerName),
				Position:               a.promptText("Position", d.Employment.Position),
				YearsAtCurrentEmployer: a.promptInt("Years at current employer", d.Employment.YearsAtCurrentEmployer),
				MonthlySalary:          a.promptFloat("Monthly salary", d.Employment.MonthlySalary),
				Sector:                 a.promptText("Sector", d.Employment.Sector),
			})
	case 5:
		f.UpdateResidence(
			a.promptText("Residential status", d.ResidentialStatus),
			apply.ResidentialAddress{
				AddressLine1: a.promptText("Address line 1", d.Address.AddressLine1),
				AddressLine2: a.promptText("Address line 2", d.Address.AddressLine2),
				City:         a.promptText("City", d.Address.City),
				State:        a.promptText("State", d.Address.State),
				PostalCode:   a.promptText("Postal code (6 digits)", d.Address.PostalCode),
			},
			a.promptInt("Years at current address", d.YearsAtCurrentAddress),
		)
	case 6:
		f.UpdateBank(apply.BankDetails{
			AccountNumber:     a.promptText("Account number (9-18 digits)", d.Bank.AccountNumber),
			AccountType:       a.promptText("Account type", d.Bank.AccountType),
			BankName:          a.promptText("Bank name", d.Bank.BankName),
			IFSCCode:          a.promptText("IFSC code (e.g. HDFC0001234)", d.Bank.IFSCCode),
			AccountHolderName: a.promptText("Account holder name", d.Bank.AccountHolderName),
		})
		if a.confirm("Add a co-applicant?") {
			f.SetCoApplicant(true, apply.CoApplicantDetails{
				FullName:      a.promptText("Co-applicant full name", d.CoApplicantIn.FullName),
				Relationship:  a.promptText("Relationship", d.CoApplicantIn.Relationship),
				MonthlyIncome: a.promptFloat("Co-applicant monthly income", d.CoApplicantIn.MonthlyIncome),
			})
		} else {
			f.SetCoApplicant(false, d.CoApplicantIn)
		}
	}
}

func (a *app) promptText(label, current string) string {
	suffix := ": "
	if current != "" {
		suffix = fmt.Sprintf(" [%s]: ", current)
	}
	if v := a.prompt(label + suffix); v != "" {
		return v
	}
	return current
}

func (a *app) promptFloat(label string, current *float64) *float64 {
	suffix := ": "
	if current != nil {
		suffix = fmt.Sprintf(" [%g]: ", *current)
	}
	for {
		v := a.prompt(label + suffix)
		if v == "" {
			return current
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Println("! must be a number")
			continue
		}
		return &f
	}
}

func (a *app) promptInt(label string, current *int) *int {
	suffix := ": "
	if current != nil {
		suffix = fmt.Sprintf(" [%d]: ", *current)
	}
	for {
		v := a.prompt(label + suffix)
		if v == "" {
			return current
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("! must be a whole number")
			continue
		}
		return &n
	}
}

func intPtr(n int) *int { return &n }

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

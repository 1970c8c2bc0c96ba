package apply

import (
	"encoding/json"
	"fmt"

	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

const TotalSteps = 6

// Form holds the draft and the step cursor. It is not safe for
// concurrent use; one form belongs to one apply flow.
type Form struct {
	step  int
	draft Draft
	val   *stepValidator
}

func NewForm(t loan.Type) *Form {
	return &Form{step: 1, draft: NewDraft(t), val: newStepValidator()}
}

func (f *Form) Step() int    { return f.step }
func (f *Form) Draft() Draft { return f.draft }

// Typed per-step updates. None of them validate eagerly; validation
// runs when the user tries to advance.

type BasicTerms struct {
	LoanAmount *float64
	LoanTerm   *int
	Purpose    string
}

func (f *Form) UpdateTerms(in BasicTerms) {
	f.draft.LoanAmount = in.LoanAmount
	f.draft.LoanTerm = in.LoanTerm
	f.draft.Purpose = in.Purpose
}

type Financials struct {
	MonthlyIncome        *float64
	AnnualIncome         *float64
	OtherIncome          *float64
	TotalMonthlyExpenses *float64
	ExistingLoans        string
	ExistingEMI          *float64
	CreditScore          *int
	RepaymentCapacity    *float64
}

func (f *Form) UpdateFinancials(in Financials) {
	f.draft.MonthlyIncome = in.MonthlyIncome
	f.draft.AnnualIncome = in.AnnualIncome
	f.draft.OtherIncome = in.OtherIncome
	f.draft.TotalMonthlyExpenses = in.TotalMonthlyExpenses
	if in.ExistingLoans != "" {
		f.draft.ExistingLoans = in.ExistingLoans
	}
	f.draft.ExistingEMI = in.ExistingEMI
	f.draft.CreditScore = in.CreditScore
	f.draft.RepaymentCapacity = in.RepaymentCapacity
}

func (f *Form) UpdateApplicant(in ApplicantDetails) {
	if in.Gender == "" {
		in.Gender = f.draft.Applicant.Gender
	}
	if in.MaritalStatus == "" {
		in.MaritalStatus = f.draft.Applicant.MaritalStatus
	}
	if in.Education == "" {
		in.Education = f.draft.Applicant.Education
	}
	f.draft.Applicant = in
}

func (f *Form) UpdateEmployment(employmentType string, in EmploymentDetails) {
	if employmentType != "" {
		f.draft.EmploymentType = employmentType
	}
	if in.Sector == "" {
		in.Sector = f.draft.Employment.Sector
	}
	f.draft.Employment = in
}

func (f *Form) UpdateResidence(status string, addr ResidentialAddress, yearsAtAddress *int) {
	if status != "" {
		f.draft.ResidentialStatus = status
	}
	f.draft.Address = addr
	f.draft.YearsAtCurrentAddress = yearsAtAddress
}

func (f *Form) UpdateBank(in BankDetails) {
	if in.AccountType == "" {
		in.AccountType = f.draft.Bank.AccountType
	}
	f.draft.Bank = in
}

// SetCoApplicant toggles the co-applicant. Enabling keeps the entered
// relationship, defaulting to Spouse; disabling leaves the default
// sub-object in place for submission.
func (f *Form) SetCoApplicant(enabled bool, details CoApplicantDetails) {
	f.draft.CoApplicant = enabled
	if details.Relationship == "" {
		details.Relationship = "Spouse"
	}
	f.draft.CoApplicantIn = details
}

// ValidateStep evaluates only the fields the step owns; first failing
// rule wins.
func (f *Form) ValidateStep(step int) error {
	if verr := f.val.validateStep(step, &f.draft); verr != nil {
		return verr
	}
	return nil
}

// Advance moves forward only when the current step validates; on
// failure the step stays put and the validation message is the error.
func (f *Form) Advance() error {
	if err := f.ValidateStep(f.step); err != nil {
		return err
	}
	if f.step < TotalSteps {
		f.step++
	}
	return nil
}

// Retreat never validates; going backward is always allowed above 1.
func (f *Form) Retreat() {
	if f.step > 1 {
		f.step--
	}
}

// Snapshot serializes the form for draft autosave.
func (f *Form) Snapshot() (step int, payload json.RawMessage, err error) {
	b, err := json.Marshal(f.draft)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal draft: %w", err)
	}
	return f.step, b, nil
}

// Restore rebuilds a form from an autosaved snapshot.
func Restore(step int, payload json.RawMessage) (*Form, error) {
	var d Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	if step < 1 || step > TotalSteps {
		step = 1
	}
	return &Form{step: step, draft: d, val: newStepValidator()}, nil
}

package apply

import (
	"testing"

	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

// validDraft fills every field all six steps check, so tests can break
// exactly one thing at a time.
func validDraft() Draft {
	d := NewDraft(loan.TypeByID(1))
	d.LoanAmount = f64(250_000)
	d.LoanTerm = i(24)
	d.Purpose = "Home renovation and repairs"

	d.MonthlyIncome = f64(60_000)
	d.AnnualIncome = f64(720_000)
	d.CreditScore = i(750)
	d.RepaymentCapacity = f64(25_000)

	d.Applicant.FirstName = "Asha"
	d.Applicant.LastName = "Verma"
	d.Applicant.Email = "asha@example.com"
	d.Applicant.Phone = "9876543210"
	d.Applicant.DateOfBirth = "1990-04-12"

	d.Employment.EmployerName = "Acme Corp"
	d.Employment.Position = "Engineer"
	d.Employment.YearsAtCurrentEmployer = i(4)
	d.Employment.MonthlySalary = f64(60_000)

	d.Address.AddressLine1 = "12 MG Road"
	d.Address.City = "Pune"
	d.Address.State = "Maharashtra"
	d.Address.PostalCode = "411001"
	d.YearsAtCurrentAddress = i(3)

	d.Bank.AccountNumber = "123456789012"
	d.Bank.BankName = "HDFC Bank"
	d.Bank.IFSCCode = "HDFC0001234"
	d.Bank.AccountHolderName = "Asha Verma"
	return d
}

func validateDraft(t *testing.T, d Draft, step int) *ValidationError {
	t.Helper()
	return newStepValidator().validateStep(step, &d)
}

func TestValidateStep_AllStepsPassOnCompleteDraft(t *testing.T) {
	d := validDraft()
	for step := 1; step <= TotalSteps; step++ {
		if verr := validateDraft(t, d, step); verr != nil {
			t.Fatalf("step %d: %v", step, verr)
		}
	}
}

func TestValidateStep_LoanAmountBounds(t *testing.T) {
	cases := []struct {
		amount float64
		ok     bool
	}{
		{999, false},
		{1000, true},
		{10_000_000, true},
		{10_000_001, false},
	}
	for _, tc := range cases {
		d := validDraft()
		d.LoanAmount = f64(tc.amount)
		verr := validateDraft(t, d, 1)
		if tc.ok && verr != nil {
			t.Fatalf("amount=%v: unexpected %v", tc.amount, verr)
		}
		if !tc.ok {
			if verr == nil {
				t.Fatalf("amount=%v: expected a failure", tc.amount)
			}
			if verr.Message != "Loan amount must be between 1,000 and 10,000,000" {
				t.Fatalf("amount=%v: message=%q", tc.amount, verr.Message)
			}
		}
	}
}

func TestValidateStep_MissingAmountReportsAmountMessage(t *testing.T) {
	d := validDraft()
	d.LoanAmount = nil
	verr := validateDraft(t, d, 1)
	if verr == nil || verr.Field != "LoanAmount" {
		t.Fatalf("verr=%v", verr)
	}
}

func TestValidateStep_LoanTermBounds(t *testing.T) {
	for _, tc := range []struct {
		term int
		ok   bool
	}{{5, false}, {6, true}, {600, true}, {601, false}} {
		d := validDraft()
		d.LoanTerm = i(tc.term)
		verr := validateDraft(t, d, 1)
		if (verr == nil) != tc.ok {
			t.Fatalf("term=%d ok=%v verr=%v", tc.term, tc.ok, verr)
		}
	}
}

func TestValidateStep_ShortPurpose(t *testing.T) {
	d := validDraft()
	d.Purpose = "too short"
	verr := validateDraft(t, d, 1)
	if verr == nil || verr.Message != "Please provide a valid purpose of at least 10 characters" {
		t.Fatalf("verr=%v", verr)
	}
}

func TestValidateStep_FirstFailureWins(t *testing.T) {
	// Break everything in step 1; only the earliest field is reported.
	d := validDraft()
	d.LoanAmount = f64(1)
	d.LoanTerm = i(1)
	d.Purpose = ""
	verr := validateDraft(t, d, 1)
	if verr == nil {
		t.Fatal("expected a failure")
	}
	if verr.Field != "LoanAmount" {
		t.Fatalf("field=%q, want the first declared field", verr.Field)
	}
}

func TestValidateStep_Financials(t *testing.T) {
	d := validDraft()
	d.MonthlyIncome = f64(9_999)
	if verr := validateDraft(t, d, 2); verr == nil || verr.Message != "Monthly income must be at least 10,000" {
		t.Fatalf("verr=%v", verr)
	}

	d = validDraft()
	d.CreditScore = i(901)
	if verr := validateDraft(t, d, 2); verr == nil || verr.Message != "Credit score must be between 300 and 900" {
		t.Fatalf("verr=%v", verr)
	}
}

func TestValidateStep_ApplicantChecks(t *testing.T) {
	d := validDraft()
	d.Applicant.Email = "not-an-email"
	if verr := validateDraft(t, d, 3); verr == nil || verr.Message != "Valid email address is required" {
		t.Fatalf("verr=%v", verr)
	}

	d = validDraft()
	d.Applicant.Phone = "12345"
	if verr := validateDraft(t, d, 3); verr == nil || verr.Message != "Valid 10-digit phone number is required" {
		t.Fatalf("verr=%v", verr)
	}

	d = validDraft()
	d.Applicant.FirstName = "A"
	if verr := validateDraft(t, d, 3); verr == nil || verr.Field != "FirstName" {
		t.Fatalf("verr=%v", verr)
	}
}

func TestValidateStep_EmploymentRequiresTenure(t *testing.T) {
	d := validDraft()
	d.Employment.YearsAtCurrentEmployer = nil
	verr := validateDraft(t, d, 4)
	if verr == nil || verr.Message != "Years at current employer is required and must be a number" {
		t.Fatalf("verr=%v", verr)
	}
}

func TestValidateStep_PostalCode(t *testing.T) {
	for _, tc := range []struct {
		pin string
		ok  bool
	}{{"411001", true}, {"41100", false}, {"4110011", false}, {"41100a", false}} {
		d := validDraft()
		d.Address.PostalCode = tc.pin
		verr := validateDraft(t, d, 5)
		if (verr == nil) != tc.ok {
			t.Fatalf("pin=%q ok=%v verr=%v", tc.pin, tc.ok, verr)
		}
	}
}

func TestValidateStep_BankChecks(t *testing.T) {
	for _, tc := range []struct {
		account string
		ok      bool
	}{{"123456789", true}, {"123456789012345678", true}, {"12345678", false}, {"1234567890123456789", false}, {"12345678a", false}} {
		d := validDraft()
		d.Bank.AccountNumber = tc.account
		verr := validateDraft(t, d, 6)
		if (verr == nil) != tc.ok {
			t.Fatalf("account=%q ok=%v verr=%v", tc.account, tc.ok, verr)
		}
	}

	for _, tc := range []struct {
		ifsc string
		ok   bool
	}{{"HDFC0001234", true}, {"hdfc0001234", false}, {"HDFC1001234", false}, {"HDF00012345", false}} {
		d := validDraft()
		d.Bank.IFSCCode = tc.ifsc
		verr := validateDraft(t, d, 6)
		if (verr == nil) != tc.ok {
			t.Fatalf("ifsc=%q ok=%v verr=%v", tc.ifsc, tc.ok, verr)
		}
	}
}

func TestValidateStep_OutOfRangeStepIsNoop(t *testing.T) {
	d := Draft{}
	if verr := validateDraft(t, d, 0); verr != nil {
		t.Fatalf("verr=%v", verr)
	}
	if verr := validateDraft(t, d, 7); verr != nil {
		t.Fatalf("verr=%v", verr)
	}
}

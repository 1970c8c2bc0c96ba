package apply

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the single message surfaced for the first
// failing rule of a step. Checks are ordered; later failures in the
// same step are not reported.
type ValidationError struct {
	Step    int
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	rePhone10 = regexp.MustCompile(`^[0-9]{10}$`)
	rePIN6    = regexp.MustCompile(`^[0-9]{6}$`)
	reAccount = regexp.MustCompile(`^[0-9]{9,18}$`)
	reIFSC    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

type stepValidator struct{ v *validator.Validate }

func newStepValidator() *stepValidator {
	v := validator.New()

	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return rePhone10.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pin6", func(fl validator.FieldLevel) bool {
		return rePIN6.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("account", func(fl validator.FieldLevel) bool {
		return reAccount.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return reIFSC.MatchString(fl.Field().String())
	})

	return &stepValidator{v: v}
}

// Per-step views: struct field order is check order, so the first
// validator error is the message the form surfaces.

type step1View struct {
	LoanAmount *float64 `validate:"required,gte=1000,lte=10000000"`
	LoanTerm   *int     `validate:"required,gte=6,lte=600"`
	Purpose    string   `validate:"required,min=10"`
}

type step2View struct {
	MonthlyIncome *float64 `validate:"required,gte=10000"`
	AnnualIncome  *float64 `validate:"required,gte=120000"`
	CreditScore   *int     `validate:"required,gte=300,lte=900"`
}

type step3View struct {
	FirstName   string `validate:"required,min=2"`
	LastName    string `validate:"required,min=2"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required,phone10"`
	DateOfBirth string `validate:"required"`
}

type step4View struct {
	EmployerName           string `validate:"required"`
	Position               string `validate:"required"`
	YearsAtCurrentEmployer *int   `validate:"required,gte=0"`
}

type step5View struct {
	AddressLine1          string `validate:"required"`
	City                  string `validate:"required"`
	State                 string `validate:"required"`
	PostalCode            string `validate:"required,pin6"`
	YearsAtCurrentAddress *int   `validate:"required,gte=0"`
}

type step6View struct {
	AccountNumber     string `validate:"required,account"`
	BankName          string `validate:"required"`
	IFSCCode          string `validate:"required,ifsc"`
	AccountHolderName string `validate:"required"`
}

// One message per field, whichever of its rules broke. Mirrors what the
// form shows alongside each step.
var fieldMessages = map[string]string{
	"LoanAmount":             "Loan amount must be between 1,000 and 10,000,000",
	"LoanTerm":               "Loan term must be between 6 and 600 months",
	"Purpose":                "Please provide a valid purpose of at least 10 characters",
	"MonthlyIncome":          "Monthly income must be at least 10,000",
	"AnnualIncome":           "Annual income must be at least 120,000",
	"CreditScore":            "Credit score must be between 300 and 900",
	"FirstName":              "First name is required and must be at least 2 characters",
	"LastName":               "Last name is required and must be at least 2 characters",
	"Email":                  "Valid email address is required",
	"Phone":                  "Valid 10-digit phone number is required",
	"DateOfBirth":            "Date of birth is required",
	"EmployerName":           "Employer name is required",
	"Position":               "Position is required",
	"YearsAtCurrentEmployer": "Years at current employer is required and must be a number",
	"AddressLine1":           "Address line 1 is required",
	"City":                   "City is required",
	"State":                  "State is required",
	"PostalCode":             "Valid 6-digit postal code is required",
	"YearsAtCurrentAddress":  "Years at current address is required and must be a number",
	"AccountNumber":          "Valid account number between 9-18 digits is required",
	"BankName":               "Bank name is required",
	"IFSCCode":               "Valid IFSC code is required (e.g., HDFC0001234)",
	"AccountHolderName":      "Account holder name is required",
}

// validateStep checks only the fields the given step owns and returns
// the first failure, or nil.
func (sv *stepValidator) validateStep(step int, d *Draft) *ValidationError {
	var view any
	switch step {
	case 1:
		view = step1View{LoanAmount: d.LoanAmount, LoanTerm: d.LoanTerm, Purpose: d.Purpose}
	case 2:
		view = step2View{MonthlyIncome: d.MonthlyIncome, AnnualIncome: d.AnnualIncome, CreditScore: d.CreditScore}
	case 3:
		view = step3View{
			FirstName:   d.Applicant.FirstName,
			LastName:    d.Applicant.LastName,
			Email:       d.Applicant.Email,
			Phone:       d.Applicant.Phone,
			DateOfBirth: d.Applicant.DateOfBirth,
		}
	case 4:
		view = step4View{
			EmployerName:           d.Employment.EmployerName,
			Position:               d.Employment.Position,
			YearsAtCurrentEmployer: d.Employment.YearsAtCurrentEmployer,
		}
	case 5:
		view = step5View{
			AddressLine1:          d.Address.AddressLine1,
			City:                  d.Address.City,
			State:                 d.Address.State,
			PostalCode:            d.Address.PostalCode,
			YearsAtCurrentAddress: d.YearsAtCurrentAddress,
		}
	case 6:
		view = step6View{
			AccountNumber:     d.Bank.AccountNumber,
			BankName:          d.Bank.BankName,
			IFSCCode:          d.Bank.IFSCCode,
			AccountHolderName: d.Bank.AccountHolderName,
		}
	default:
		return nil
	}

	err := sv.v.Struct(view)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return &ValidationError{Step: step, Message: err.Error()}
	}
	first := ve[0]
	msg, ok := fieldMessages[first.Field()]
	if !ok {
		msg = fmt.Sprintf("%s failed %s validation", first.Field(), first.Tag())
	}
	return &ValidationError{Step: step, Field: first.Field(), Message: msg}
}

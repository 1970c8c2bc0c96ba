// Package apply is the multi-step loan application engine: a typed
// draft accumulated across six ordered steps, per-step validation, and
// the deterministic mapping into the backend's submission shape.
package apply

import "github.com/ajcoder580/loanapp-client/internal/domain/loan"

// Draft is the in-progress application. Required numerics are pointers
// so "never entered" is distinguishable from zero; fields the backend
// mandates but the form never collects are filled in at submission
// time, not here.
type Draft struct {
	// Step 1: basic terms. Type, rate and fee come from the chosen
	// product and are read-only on the form.
	LoanType      string   `json:"loanType"`
	LoanPurpose   string   `json:"loanPurpose"`
	InterestRate  float64  `json:"interestRate"`
	ProcessingFee float64  `json:"processingFee"`
	LoanAmount    *float64 `json:"loanAmount"`
	LoanTerm      *int     `json:"loanTerm"`
	Purpose       string   `json:"purpose"`

	// Step 2: financials.
	MonthlyIncome        *float64 `json:"monthlyIncome"`
	AnnualIncome         *float64 `json:"annualIncome"`
	OtherIncome          *float64 `json:"otherIncome"`
	TotalMonthlyExpenses *float64 `json:"totalMonthlyExpenses"`
	ExistingLoans        string   `json:"existingLoans"`
	ExistingEMI          *float64 `json:"existingEMI"`
	CreditScore          *int     `json:"creditScore"`
	RepaymentCapacity    *float64 `json:"repaymentCapacity"`

	// Step 3: applicant identity.
	Applicant ApplicantDetails `json:"applicantDetails"`

	// Step 4: employment.
	EmploymentType string            `json:"employmentType"`
	Employment     EmploymentDetails `json:"employmentDetails"`

	// Step 5: residence.
	ResidentialStatus     string             `json:"residentialStatus"`
	Address               ResidentialAddress `json:"residentialAddress"`
	YearsAtCurrentAddress *int               `json:"yearsAtCurrentAddress"`

	// Step 6: bank and co-applicant.
	Bank          BankDetails        `json:"bankDetails"`
	CoApplicant   bool               `json:"coApplicant"`
	CoApplicantIn CoApplicantDetails `json:"coApplicantDetails"`
}

type ApplicantDetails struct {
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Education     string `json:"education"`
	Dependents    int    `json:"dependents"`
}

type EmploymentDetails struct {
	EmployerName           string   `json:"employerName"`
	Position               string   `json:"position"`
	YearsAtCurrentEmployer *int     `json:"yearsAtCurrentEmployer"`
	MonthlySalary          *float64 `json:"monthlySalary"`
	Sector                 string   `json:"sector"`
}

type ResidentialAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
}

type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	AccountType       string `json:"accountType"`
	BankName          string `json:"bankName"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
}

type CoApplicantDetails struct {
	FullName      string   `json:"fullName"`
	Relationship  string   `json:"relationship"`
	MonthlyIncome *float64 `json:"monthlyIncome"`
}

// NewDraft seeds a draft for the chosen product with the same defaults
// the form presents.
func NewDraft(t loan.Type) Draft {
	term := 12
	return Draft{
		LoanType:      t.Name,
		LoanPurpose:   "Personal Expenses",
		InterestRate:  t.InterestRate,
		ProcessingFee: t.ProcessingFee,
		LoanTerm:      &term,
		ExistingLoans: "No",
		Applicant: ApplicantDetails{
			Gender:        "Male",
			MaritalStatus: "Single",
			Education:     "Bachelor's",
		},
		EmploymentType: "Salaried",
		Employment: EmploymentDetails{
			Sector: "Information Technology",
		},
		ResidentialStatus: "Owned",
		Bank: BankDetails{
			AccountType: "Savings",
		},
		CoApplicantIn: CoApplicantDetails{
			Relationship: "Spouse",
		},
	}
}

package apply

import (
	"strings"
	"time"

	"github.com/ajcoder580/loanapp-client/internal/domain/loan"
)

// Backend-imposed ranges the client satisfies proactively. These mirror
// the server schema's constraints, not any client-side policy.
const (
	minAnnualIncome      = 120_000
	maxAnnualIncome      = 120_000_000
	minRepaymentCapacity = 1000
)

// Submission is the exact shape POST /loans expects. Fields the form
// never collects carry the fixed defaults the schema mandates.
type Submission struct {
	LoanAmount    float64 `json:"loanAmount"`
	LoanTerm      int     `json:"loanTerm"`
	LoanTenure    int     `json:"loanTenure"`
	Purpose       string  `json:"purpose"`
	LoanType      string  `json:"loanType"`
	LoanPurpose   string  `json:"loanPurpose"`
	InterestRate  float64 `json:"interestRate"`
	ProcessingFee float64 `json:"processingFee"`

	MonthlyIncome        float64 `json:"monthlyIncome"`
	AnnualIncome         float64 `json:"annualIncome"`
	OtherIncome          float64 `json:"otherIncome"`
	TotalMonthlyExpenses float64 `json:"totalMonthlyExpenses"`
	ExistingLoans        string  `json:"existingLoans"`
	ExistingEMI          float64 `json:"existingEMI"`
	CreditScore          int     `json:"creditScore"`
	RepaymentCapacity    float64 `json:"repaymentCapacity"`

	ApplicantDetails SubmissionApplicant `json:"applicantDetails"`

	EmploymentType    string               `json:"employmentType"`
	EmploymentDetails SubmissionEmployment `json:"employmentDetails"`

	ResidentialStatus      string            `json:"residentialStatus"`
	ResidentialAddress     SubmissionAddress `json:"residentialAddress"`
	YearsAtCurrentAddress  int               `json:"yearsAtCurrentAddress"`
	MonthsAtCurrentAddress int               `json:"monthsAtCurrentAddress"`
	PreviousAddresses      []string          `json:"previousAddresses"`

	BankDetails SubmissionBank `json:"bankDetails"`

	CoApplicant        bool                  `json:"coApplicant"`
	CoApplicantDetails SubmissionCoApplicant `json:"coApplicantDetails"`

	IdentityInformation SubmissionIdentity  `json:"identityInformation"`
	ProcessingInfo      ProcessingInfo      `json:"processingInfo"`
	StatusHistory       []loan.StatusChange `json:"statusHistory"`
	References          []string            `json:"references"`
	HousingLoanDetails  HousingLoanDetails  `json:"housingLoanDetails"`

	UserID          string      `json:"userId"`
	ApplicationDate string      `json:"applicationDate"`
	Status          loan.Status `json:"status"`
}

type SubmissionApplicant struct {
	FirstName              string `json:"firstName"`
	MiddleName             string `json:"middleName"`
	LastName               string `json:"lastName"`
	DateOfBirth            string `json:"dateOfBirth"`
	Gender                 string `json:"gender"`
	MaritalStatus          string `json:"maritalStatus"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	Education              string `json:"education"`
	Dependents             int    `json:"dependents"`
	Children               int    `json:"children"`
	FamilyMembers          int    `json:"familyMembers"`
	Nationality            string `json:"nationality"`
	PreferredContactMethod string `json:"preferredContactMethod"`
	ContactTime            string `json:"contactTime"`
	TaxResidencyStatus     string `json:"taxResidencyStatus"`
	TaxFilingStatus        string `json:"taxFilingStatus"`
}

type SubmissionEmployment struct {
	EmployerName           string          `json:"employerName"`
	Position               string          `json:"position"`
	YearsAtCurrentEmployer int             `json:"yearsAtCurrentEmployer"`
	EmploymentStatus       string          `json:"employmentStatus"`
	MonthlySalary          float64         `json:"monthlySalary"`
	Sector                 string          `json:"sector"`
	Bonuses                float64         `json:"bonuses"`
	OtherCompensation      float64         `json:"otherCompensation"`
	EmployerAddress        EmployerAddress `json:"employerAddress"`
}

type EmployerAddress struct {
	Country string `json:"country"`
}

type SubmissionAddress struct {
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	City             string `json:"city"`
	State            string `json:"state"`
	PostalCode       string `json:"postalCode"`
	Country          string `json:"country"`
	AddressType      string `json:"addressType"`
	IsBillingAddress bool   `json:"isBillingAddress"`
	IsMailingAddress bool   `json:"isMailingAddress"`
}

type SubmissionBank struct {
	AccountNumber           string `json:"accountNumber"`
	AccountType             string `json:"accountType"`
	BankName                string `json:"bankName"`
	IFSCCode                string `json:"ifscCode"`
	AccountHolderName      string `json:"accountHolderName"`
	InternetBankingEnabled bool   `json:"internetBankingEnabled"`
}

type SubmissionCoApplicant struct {
	FullName      string  `json:"fullName"`
	Relationship  string  `json:"relationship"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

type SubmissionIdentity struct {
	IDType            string   `json:"idType"`
	IDNumber          string   `json:"idNumber"`
	OtherBankAccounts []string `json:"otherBankAccounts"`
}

type ProcessingInfo struct {
	InternalNotes     []string `json:"internalNotes"`
	VerificationCalls []string `json:"verificationCalls"`
}

type HousingLoanDetails struct {
	ExistingLoan bool `json:"existingLoan"`
}

// BuildSubmission re-validates the current step (a direct submit must
// not bypass the gate), then maps the draft into the backend shape:
// numeric coercion, fixed default sub-objects, and clamping of the two
// range-constrained fields.
func (f *Form) BuildSubmission(userID string, now time.Time) (*Submission, error) {
	if err := f.ValidateStep(f.step); err != nil {
		return nil, err
	}
	d := &f.draft

	annual := deref(d.AnnualIncome)
	if annual == 0 {
		annual = deref(d.MonthlyIncome) * 12
	}
	annual = clamp(annual, minAnnualIncome, maxAnnualIncome)

	repayment := deref(d.RepaymentCapacity)
	if repayment < minRepaymentCapacity {
		repayment = minRepaymentCapacity
	}

	years := derefInt(d.Employment.YearsAtCurrentEmployer)
	if years < 0 {
		years = 0
	}

	relationship := d.CoApplicantIn.Relationship
	if relationship == "" {
		relationship = "Spouse"
	}

	sub := &Submission{
		LoanAmount:    deref(d.LoanAmount),
		LoanTerm:      derefInt(d.LoanTerm),
		LoanTenure:    derefInt(d.LoanTerm),
		Purpose:       strings.TrimSpace(d.Purpose),
		LoanType:      d.LoanType,
		LoanPurpose:   d.LoanPurpose,
		InterestRate:  d.InterestRate,
		ProcessingFee: d.ProcessingFee,

		MonthlyIncome:        deref(d.MonthlyIncome),
		AnnualIncome:         annual,
		OtherIncome:          deref(d.OtherIncome),
		TotalMonthlyExpenses: deref(d.TotalMonthlyExpenses),
		ExistingLoans:        d.ExistingLoans,
		ExistingEMI:          deref(d.ExistingEMI),
		CreditScore:          derefInt(d.CreditScore),
		RepaymentCapacity:    repayment,

		ApplicantDetails: SubmissionApplicant{
			FirstName:              d.Applicant.FirstName,
			MiddleName:             d.Applicant.MiddleName,
			LastName:               d.Applicant.LastName,
			DateOfBirth:            d.Applicant.DateOfBirth,
			Gender:                 d.Applicant.Gender,
			MaritalStatus:          d.Applicant.MaritalStatus,
			Phone:                  d.Applicant.Phone,
			Email:                  d.Applicant.Email,
			Education:              d.Applicant.Education,
			Dependents:             d.Applicant.Dependents,
			Children:               0,
			FamilyMembers:          1,
			Nationality:            "Indian",
			PreferredContactMethod: "Phone",
			ContactTime:            "Anytime",
			TaxResidencyStatus:     "Resident",
			TaxFilingStatus:        "Regular",
		},

		EmploymentType: d.EmploymentType,
		EmploymentDetails: SubmissionEmployment{
			EmployerName:           d.Employment.EmployerName,
			Position:               d.Employment.Position,
			YearsAtCurrentEmployer: years,
			EmploymentStatus:       "Permanent",
			MonthlySalary:          deref(d.Employment.MonthlySalary),
			Sector:                 d.Employment.Sector,
			EmployerAddress:        EmployerAddress{Country: "India"},
		},

		ResidentialStatus: d.ResidentialStatus,
		ResidentialAddress: SubmissionAddress{
			AddressLine1:     d.Address.AddressLine1,
			AddressLine2:     d.Address.AddressLine2,
			City:             d.Address.City,
			State:            d.Address.State,
			PostalCode:       d.Address.PostalCode,
			Country:          "India",
			AddressType:      "Residential",
			IsBillingAddress: true,
			IsMailingAddress: true,
		},
		YearsAtCurrentAddress: derefInt(d.YearsAtCurrentAddress),
		PreviousAddresses:     []string{},

		BankDetails: SubmissionBank{
			AccountNumber:     d.Bank.AccountNumber,
			AccountType:       d.Bank.AccountType,
			BankName:          d.Bank.BankName,
			IFSCCode:          d.Bank.IFSCCode,
			AccountHolderName: d.Bank.AccountHolderName,
		},

		CoApplicant: d.CoApplicant,
		CoApplicantDetails: SubmissionCoApplicant{
			FullName:      d.CoApplicantIn.FullName,
			Relationship:  relationship,
			MonthlyIncome: deref(d.CoApplicantIn.MonthlyIncome),
		},

		IdentityInformation: SubmissionIdentity{
			IDType:            "Aadhar Card",
			IDNumber:          "000000000000",
			OtherBankAccounts: []string{},
		},
		ProcessingInfo:     ProcessingInfo{InternalNotes: []string{}, VerificationCalls: []string{}},
		StatusHistory:      []loan.StatusChange{},
		References:         []string{},
		HousingLoanDetails: HousingLoanDetails{},

		UserID:          userID,
		ApplicationDate: now.UTC().Format(time.RFC3339),
		Status:          loan.StatusPending,
	}
	return sub, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

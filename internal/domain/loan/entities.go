package loan

import "time"

type Status string

const (
	StatusPending     Status = "Pending"
	StatusUnderReview Status = "Under Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
)

// Statuses an admin may request, in the order the detail screen offers them.
var AdminStatuses = []Status{StatusApproved, StatusRejected, StatusUnderReview, StatusPending}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Record is a server-owned loan application as the client reads it.
// The lifecycle lives entirely on the backend; the client only renders
// records and requests status transitions.
type Record struct {
	LoanID          string          `json:"loanId"`
	UserID          string          `json:"userId"`
	UserName        string          `json:"userName"`
	LoanType        string          `json:"loanType"`
	LoanAmount      float64         `json:"loanAmount"`
	LoanTerm        int             `json:"loanTerm"`
	InterestRate    float64         `json:"interestRate"`
	Purpose         string          `json:"purpose"`
	EmploymentType  string          `json:"employmentType"`
	MonthlyIncome   float64         `json:"monthlyIncome"`
	Status          Status          `json:"status"`
	ApplicationDate time.Time       `json:"applicationDate"`
	ApprovalDate    *time.Time      `json:"approvalDate,omitempty"`
	StatusHistory   []StatusChange  `json:"statusHistory,omitempty"`
	Documents       *DocumentBundle `json:"documents,omitempty"`
}

type StatusChange struct {
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy,omitempty"`
	Comments  string    `json:"comments,omitempty"`
}

// DocumentBundle lists the proof documents attached to an application.
type DocumentBundle struct {
	IdentityProof *Document `json:"identityProof,omitempty"`
	AddressProof  *Document `json:"addressProof,omitempty"`
	IncomeProof   *Document `json:"incomeProof,omitempty"`
}

type Document struct {
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}

// Stats are the admin dashboard aggregates. They are recomputed by
// refetching after any mutating action, never adjusted incrementally.
type Stats struct {
	TotalLoans    int     `json:"totalLoans"`
	PendingLoans  int     `json:"pendingLoans"`
	ApprovedLoans int     `json:"approvedLoans"`
	RejectedLoans int     `json:"rejectedLoans"`
	TotalAmount   float64 `json:"totalAmount"`
}

// RecentUser is an entry from the admin recent-users listing.
type RecentUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

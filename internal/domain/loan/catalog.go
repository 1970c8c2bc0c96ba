package loan

// Type describes one of the fixed loan products on offer. The backend
// exposes the same catalog at GET /loans/types; this copy lets the apply
// flow keep working when that endpoint is unreachable.
type Type struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	InterestRate  float64 `json:"interestRate"`
	MaxAmount     float64 `json:"maxAmount"`
	Tenure        string  `json:"tenure"`
	ProcessingFee float64 `json:"processingFee"`
	Description   string  `json:"description"`
}

var catalog = []Type{
	{ID: 1, Name: "Personal Loan", InterestRate: 10.5, MaxAmount: 1000000, Tenure: "12-60 months", ProcessingFee: 1.5, Description: "For personal expenses like travel, wedding, etc."},
	{ID: 2, Name: "Home Loan", InterestRate: 8.5, MaxAmount: 10000000, Tenure: "60-360 months", ProcessingFee: 0.75, Description: "For purchasing or renovating residential property"},
	{ID: 3, Name: "Education Loan", InterestRate: 9.0, MaxAmount: 2000000, Tenure: "12-84 months", ProcessingFee: 0.75, Description: "For higher education expenses in India or abroad"},
	{ID: 4, Name: "Vehicle Loan", InterestRate: 9.5, MaxAmount: 3000000, Tenure: "12-84 months", ProcessingFee: 1.5, Description: "For purchasing new or used vehicles"},
	{ID: 5, Name: "Business Loan", InterestRate: 12.0, MaxAmount: 5000000, Tenure: "12-60 months", ProcessingFee: 2.0, Description: "For business expansion, working capital or equipment"},
	{ID: 6, Name: "Gold Loan", InterestRate: 7.5, MaxAmount: 2000000, Tenure: "6-36 months", ProcessingFee: 0.75, Description: "Loan against gold jewelry or coins"},
	{ID: 7, Name: "Loan Against Property", InterestRate: 9.0, MaxAmount: 20000000, Tenure: "60-180 months", ProcessingFee: 0.75, Description: "Loan against residential or commercial property"},
}

// Catalog returns the fixed product list.
func Catalog() []Type {
	out := make([]Type, len(catalog))
	copy(out, catalog)
	return out
}

// TypeByID looks up a product; unknown ids fall back to the first product.
func TypeByID(id int) Type {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return catalog[0]
}

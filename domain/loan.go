package domain

// LoanInput holds the three values a calculation starts from.
type LoanInput struct {
	Principal         float64
	AnnualRatePercent float64
	TenureYears       float64
}

type ScheduleRow struct {
	Month                   int     `json:"month"`
	EMI                     float64 `json:"emi"`
	Principal               float64 `json:"principal"`
	Interest                float64 `json:"interest"`
	RemainingBalance        float64 `json:"remaining_balance"`
	CumulativeInterestPaid  float64 `json:"total_interest_paid"`
	CumulativePrincipalPaid float64 `json:"total_principal_paid"`
}

// EmiResult is the outcome of a successful calculation. Principal is the
// input echoed back unrounded.
type EmiResult struct {
	EMI           float64       `json:"emi"`
	TotalAmount   float64       `json:"total_amount"`
	TotalInterest float64       `json:"total_interest"`
	Principal     float64       `json:"principal"`
	TenureMonths  int           `json:"tenure_months"`
	Schedule      []ScheduleRow `json:"emi_schedule"`
}

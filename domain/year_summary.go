package domain

type YearSummary struct {
	Year            int     `json:"year"`
	TotalEMI        float64 `json:"total_emi"`
	TotalPrincipal  float64 `json:"total_principal"`
	TotalInterest   float64 `json:"total_interest"`
	StartingBalance float64 `json:"starting_balance"`
	EndingBalance   float64 `json:"ending_balance"`
	Months          int     `json:"months"`
}

package domain

import "encoding/json"

// LoanRequest is the request body as received. Values are kept raw so that
// absent fields, numbers and numeric strings can be told apart.
type LoanRequest struct {
	Principal   json.RawMessage `json:"principal"`
	AnnualRate  json.RawMessage `json:"annual_rate"`
	TenureYears json.RawMessage `json:"tenure_years"`
}

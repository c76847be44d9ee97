package service

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"emi-calculator/domain"
)

// ParseLoanInput converts a raw request into a LoanInput. Absent fields
// are zero and fail validation later as non-positive values.
func ParseLoanInput(req domain.LoanRequest) (domain.LoanInput, error) {
	principal, err := parseNumber("principal", req.Principal)
	if err != nil {
		return domain.LoanInput{}, err
	}
	rate, err := parseNumber("annual_rate", req.AnnualRate)
	if err != nil {
		return domain.LoanInput{}, err
	}
	tenure, err := parseNumber("tenure_years", req.TenureYears)
	if err != nil {
		return domain.LoanInput{}, err
	}

	return domain.LoanInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenureYears:       tenure,
	}, nil
}

func parseNumber(field string, raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, newError(NotNumeric, "%s: %v", field, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, newError(NotNumeric, "%s: %v", field, err)
		}
		return v, nil
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case 'n', '[', '{':
		return 0, newError(Unexpected, "%s: unsupported value %s", field, raw)
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, newError(Unexpected, "%s: %v", field, err)
	}
	return v, nil
}

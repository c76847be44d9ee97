package service

import (
	"encoding/json"
	"errors"
	"testing"

	"emi-calculator/domain"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{``, 0, nil},
		{`100000`, 100000, nil},
		{`7.5`, 7.5, nil},
		{`-3`, -3, nil},
		{`"250000"`, 250000, nil},
		{`" 12.5 "`, 12.5, nil},
		{`true`, 1, nil},
		{`false`, 0, nil},
		{`"abc"`, 0, ErrNotNumeric},
		{`""`, 0, ErrNotNumeric},
		{`null`, 0, ErrUnexpected},
		{`[1]`, 0, ErrUnexpected},
		{`{"a":1}`, 0, ErrUnexpected},
	}

	for _, tt := range tests {
		got, err := parseNumber("principal", json.RawMessage(tt.raw))
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseNumber(%s): expected %v, got %v", tt.raw, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNumber(%s): unexpected error %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseNumber(%s) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseLoanInput(t *testing.T) {
	var req domain.LoanRequest
	if err := json.Unmarshal([]byte(`{"principal": "100000", "annual_rate": 10}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	input, err := ParseLoanInput(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.LoanInput{Principal: 100000, AnnualRatePercent: 10, TenureYears: 0}
	if input != want {
		t.Errorf("got %+v, want %+v", input, want)
	}

	// a missing field is a zero, which validation refuses
	if err := Validate(input); !errors.Is(err, ErrNonPositiveValue) {
		t.Errorf("expected non-positive error, got %v", err)
	}
}

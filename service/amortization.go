package service

import (
	"math"
	"strconv"

	"emi-calculator/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places. Rounding is done
// on the exact binary value with ties to even, so 2.675 (stored just below
// 2.675) becomes 2.67 and 0.125 becomes 0.12.
func roundTo2Decimals(value float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

// TenureMonths converts a tenure in years to whole months. Fractional
// months are truncated, never rounded: 1.55 years is 18 months.
func TenureMonths(tenureYears float64) int {
	return int(tenureYears * MonthsPerYear)
}

// MonthlyRate converts an annual percentage rate to a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// Installment is the annuity payment amortizing principal over months at
// the given monthly rate.
func Installment(principal, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1)
}

// Validate checks that every field is a number greater than zero. A
// non-positive field wins over a NaN one, since NaN never compares as <= 0.
// The input is not modified.
func Validate(input domain.LoanInput) error {
	if input.Principal <= 0 || input.AnnualRatePercent <= 0 || input.TenureYears <= 0 {
		return newError(NonPositiveValue, "principal=%v annual_rate=%v tenure_years=%v",
			input.Principal, input.AnnualRatePercent, input.TenureYears)
	}
	for _, v := range []float64{input.Principal, input.AnnualRatePercent, input.TenureYears} {
		if math.IsNaN(v) {
			return newError(NotNumeric, "value is NaN")
		}
	}
	return nil
}

// Compute builds the EMI and the full amortization schedule. It expects
// validated input with at least one month of tenure.
//
// Rows are rounded to 2 decimals when emitted; the running balance and
// totals carried to the next month stay unrounded.
func Compute(input domain.LoanInput) domain.EmiResult {
	monthlyRate := MonthlyRate(input.AnnualRatePercent)
	tenureMonths := TenureMonths(input.TenureYears)

	emi := Installment(input.Principal, monthlyRate, tenureMonths)
	totalAmount := emi * float64(tenureMonths)
	totalInterest := totalAmount - input.Principal

	schedule := make([]domain.ScheduleRow, 0, max(tenureMonths, 0))
	remaining := input.Principal
	interestPaid := 0.0
	principalPaid := 0.0

	for month := 1; month <= tenureMonths; month++ {
		interestPayment := remaining * monthlyRate
		principalPayment := emi - interestPayment
		remaining -= principalPayment

		// floating point drift can overshoot on the last month
		if remaining < 0 {
			principalPayment += remaining
			remaining = 0
		}

		interestPaid += interestPayment
		principalPaid += principalPayment

		schedule = append(schedule, domain.ScheduleRow{
			Month:                   month,
			EMI:                     roundTo2Decimals(emi),
			Principal:               roundTo2Decimals(principalPayment),
			Interest:                roundTo2Decimals(interestPayment),
			RemainingBalance:        roundTo2Decimals(remaining),
			CumulativeInterestPaid:  roundTo2Decimals(interestPaid),
			CumulativePrincipalPaid: roundTo2Decimals(principalPaid),
		})
	}

	return domain.EmiResult{
		EMI:           roundTo2Decimals(emi),
		TotalAmount:   roundTo2Decimals(totalAmount),
		TotalInterest: roundTo2Decimals(totalInterest),
		Principal:     input.Principal,
		TenureMonths:  tenureMonths,
		Schedule:      schedule,
	}
}

// Calculate validates input, rejects values the schedule cannot be built
// from, and computes the result. maxMonths <= 0 selects
// DefaultMaxTenureMonths.
func Calculate(input domain.LoanInput, maxMonths int) (domain.EmiResult, error) {
	if err := Validate(input); err != nil {
		return domain.EmiResult{}, err
	}
	if maxMonths <= 0 {
		maxMonths = DefaultMaxTenureMonths
	}

	for _, v := range []float64{input.Principal, input.AnnualRatePercent, input.TenureYears} {
		if math.IsInf(v, 0) {
			return domain.EmiResult{}, newError(Unexpected, "value is infinite")
		}
	}
	if input.TenureYears*MonthsPerYear >= float64(maxMonths)+1 {
		return domain.EmiResult{}, newError(Unexpected,
			"tenure of %v years exceeds %d months", input.TenureYears, maxMonths)
	}

	months := TenureMonths(input.TenureYears)
	if months == 0 {
		return domain.EmiResult{}, newError(Unexpected,
			"tenure of %v years is shorter than one month", input.TenureYears)
	}

	emi := Installment(input.Principal, MonthlyRate(input.AnnualRatePercent), months)
	if math.IsNaN(emi) || math.IsInf(emi, 0) || math.IsInf(emi*float64(months), 0) {
		return domain.EmiResult{}, newError(Unexpected, "installment overflow for %+v", input)
	}

	return Compute(input), nil
}

package service

import "emi-calculator/domain"

// YearlySummary groups schedule rows into loan years. Month 1..12 is year
// 1, month 13..24 year 2, and so on. Sums are over the rounded row values.
func YearlySummary(schedule []domain.ScheduleRow) []domain.YearSummary {
	years := []domain.YearSummary{}

	for _, row := range schedule {
		year := (row.Month + MonthsPerYear - 1) / MonthsPerYear
		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, domain.YearSummary{
				Year:            year,
				StartingBalance: roundTo2Decimals(row.RemainingBalance + row.Principal),
			})
		}

		y := &years[len(years)-1]
		y.TotalEMI += row.EMI
		y.TotalPrincipal += row.Principal
		y.TotalInterest += row.Interest
		y.EndingBalance = row.RemainingBalance
		y.Months++
	}

	for i := range years {
		years[i].TotalEMI = roundTo2Decimals(years[i].TotalEMI)
		years[i].TotalPrincipal = roundTo2Decimals(years[i].TotalPrincipal)
		years[i].TotalInterest = roundTo2Decimals(years[i].TotalInterest)
	}

	return years
}

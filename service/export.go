package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"emi-calculator/domain"
)

var scheduleCSVHeader = []string{
	"Month", "EMI Amount", "Principal", "Interest", "Remaining Balance", "Total Interest Paid",
}

func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteScheduleCSV writes the amortization schedule of result as CSV.
func WriteScheduleCSV(w io.Writer, result domain.EmiResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(scheduleCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range result.Schedule {
		record := []string{
			strconv.Itoa(row.Month),
			fixed2(row.EMI),
			fixed2(row.Principal),
			fixed2(row.Interest),
			fixed2(row.RemainingBalance),
			fixed2(row.CumulativeInterestPaid),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.Month, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ScheduleFilename names the CSV download for result.
func ScheduleFilename(result domain.EmiResult) string {
	principal := strconv.FormatFloat(result.Principal, 'f', -1, 64)
	return fmt.Sprintf("EMI_Schedule_%s_%dmonths.csv", principal, result.TenureMonths)
}

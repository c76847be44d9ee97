package service

const (
	// DefaultMaxTenureMonths bounds the schedule length (100 years).
	DefaultMaxTenureMonths = 1200
	MonthsPerYear          = 12
)

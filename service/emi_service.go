package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"emi-calculator/domain"
	"emi-calculator/metrics"
	"emi-calculator/repository"
)

type EmiService struct {
	cache           repository.CacheRepository
	metrics         *metrics.Metrics
	maxTenureMonths int
}

// NewEmiService creates an EmiService. cache may be nil to disable result
// caching.
func NewEmiService(
	cache repository.CacheRepository,
	m *metrics.Metrics,
	maxTenureMonths int,
) *EmiService {
	return &EmiService{cache: cache, metrics: m, maxTenureMonths: maxTenureMonths}
}

func cacheKey(input domain.LoanInput) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("emi:v1:%s:%s:%s", f(input.Principal), f(input.AnnualRatePercent), f(input.TenureYears))
}

// CalculateEMI computes the EMI and schedule for input. The returned error
// is always a *ValidationError.
func (s *EmiService) CalculateEMI(
	ctx context.Context,
	input domain.LoanInput,
) (domain.EmiResult, error) {
	start := time.Now()
	key := cacheKey(input)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.EmiResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				s.observeCache(true)
				s.observe("success", start)
				return result, nil
			}
			slog.Warn("Discarding unreadable cache entry", "key", key)
		}
		s.observeCache(false)
	}

	result, err := Calculate(input, s.maxTenureMonths)
	if err != nil {
		s.observe(KindOf(err).String(), start)
		return domain.EmiResult{}, err
	}
	s.observe("success", start)

	if s.cache != nil {
		// a failed write only costs a recomputation next time
		if data, err := json.Marshal(result); err != nil {
			slog.Warn("Failed to encode result for cache", "key", key, "error", err)
		} else if err := s.cache.Set(ctx, key, string(data)); err != nil {
			slog.Warn("Failed to cache result", "key", key, "error", err)
		}
	}

	return result, nil
}

func (s *EmiService) observe(outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCalculation(outcome, time.Since(start))
	}
}

func (s *EmiService) observeCache(hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveCacheLookup(hit)
	}
}

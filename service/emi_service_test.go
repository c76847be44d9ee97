package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"emi-calculator/domain"
	"emi-calculator/metrics"
	"emi-calculator/repository"
)

type failingCache struct {
	SetCalled bool
}

func (f *failingCache) Get(context.Context, string) (string, bool) { return "", false }

func (f *failingCache) Set(context.Context, string, string) error {
	f.SetCalled = true
	return errors.New("cache down")
}

type corruptCache struct{}

func (corruptCache) Get(context.Context, string) (string, bool) { return "{not json", true }
func (corruptCache) Set(context.Context, string, string) error  { return nil }

func TestCalculateEMI_CachesResult(t *testing.T) {
	cache := repository.NewMemoryCache(100, 0)
	m := metrics.New()
	service := NewEmiService(cache, m, 0)
	ctx := context.Background()

	input := domain.LoanInput{Principal: 100000, AnnualRatePercent: 10, TenureYears: 1}

	first, err := service.CalculateEMI(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.CalculateEMI(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs from computed result")
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cache entry, got %d", cache.Len())
	}
	if got := testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")); got != 1 {
		t.Errorf("expected 1 cache hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.Calculations.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 successful calculations, got %v", got)
	}
}

func TestCalculateEMI_InvalidNotCached(t *testing.T) {
	cache := repository.NewMemoryCache(100, 0)
	m := metrics.New()
	service := NewEmiService(cache, m, 0)

	_, err := service.CalculateEMI(context.Background(), domain.LoanInput{Principal: 0, AnnualRatePercent: 10, TenureYears: 1})
	if !errors.Is(err, ErrNonPositiveValue) {
		t.Fatalf("expected non-positive error, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("invalid input should not be cached")
	}
	if got := testutil.ToFloat64(m.Calculations.WithLabelValues("non_positive_value")); got != 1 {
		t.Errorf("expected failure to be counted, got %v", got)
	}
}

func TestCalculateEMI_CacheFailureIgnored(t *testing.T) {
	cache := &failingCache{}
	service := NewEmiService(cache, nil, 0)

	result, err := service.CalculateEMI(context.Background(), domain.LoanInput{Principal: 1200, AnnualRatePercent: 12, TenureYears: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EMI != 106.62 {
		t.Errorf("expected emi 106.62, got %v", result.EMI)
	}
	if !cache.SetCalled {
		t.Errorf("expected cache Set to be called")
	}
}

func TestCalculateEMI_CorruptEntryRecomputed(t *testing.T) {
	service := NewEmiService(corruptCache{}, nil, 0)

	result, err := service.CalculateEMI(context.Background(), domain.LoanInput{Principal: 100000, AnnualRatePercent: 10, TenureYears: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Schedule) != 12 {
		t.Errorf("expected a fresh 12-month schedule, got %d rows", len(result.Schedule))
	}
}

func TestCalculateEMI_NoCache(t *testing.T) {
	service := NewEmiService(nil, nil, 24)

	if _, err := service.CalculateEMI(context.Background(), domain.LoanInput{Principal: 1000, AnnualRatePercent: 5, TenureYears: 3}); !errors.Is(err, ErrUnexpected) {
		t.Errorf("expected tenure above limit to fail, got %v", err)
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loan-cashflow/domain"
	"loan-cashflow/repository"

	"github.com/cespare/xxhash/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultCacheTTL is used when the service is built with a non-positive TTL.
const DefaultCacheTTL = 30 * time.Minute

type CashFlowService struct {
	applications repository.ApplicationRepository
	cache        repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCashFlowService creates a CashFlowService. Only seeded analyses are cached,
// since an unseeded request is expected to draw new trends.
func NewCashFlowService(
	applications repository.ApplicationRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *CashFlowService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &CashFlowService{
		applications: applications,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// Analyze derives the analysis for input. A nil seed draws a fresh one.
func (s *CashFlowService) Analyze(
	ctx context.Context,
	input domain.LoanApplicationInput,
	seed *uint64,
) (domain.CashFlowAnalysis, error) {

	if seed == nil {
		return GenerateCashFlowAnalysis(input, NewSeededSource(NewSeed()))
	}

	key, err := analysisCacheKey(input, *seed)
	if err != nil {
		return domain.CashFlowAnalysis{}, fmt.Errorf("failed to build cache key: %w", err)
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var analysis domain.CashFlowAnalysis
		if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
			log.WithFields(log.Fields{"key": key}).Debug("cash flow analysis served from cache")
			return analysis, nil
		}
		log.WithFields(log.Fields{"key": key}).Warn("discarding unreadable cached analysis")
	}

	analysis, err := GenerateCashFlowAnalysis(input, NewSeededSource(*seed))
	if err != nil {
		return domain.CashFlowAnalysis{}, err
	}

	// Cachear el resultado (no crítico si falla)
	payload, err := json.Marshal(analysis)
	if err == nil {
		err = s.cache.Set(ctx, key, string(payload), s.cacheTTL)
	}
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"key": key}).Warn("failed to cache cash flow analysis")
	}

	return analysis, nil
}

// AnalyzeApplication runs Analyze for an application held by the fixture provider.
func (s *CashFlowService) AnalyzeApplication(
	ctx context.Context,
	id string,
	seed *uint64,
) (domain.CashFlowAnalysis, error) {
	application, err := s.applications.Get(id)
	if err != nil {
		return domain.CashFlowAnalysis{}, fmt.Errorf("failed to load application %s: %w", id, err)
	}

	analysis, err := s.Analyze(ctx, application.Input, seed)
	if err != nil {
		return domain.CashFlowAnalysis{}, fmt.Errorf("failed to analyze application %s: %w", id, err)
	}

	log.WithFields(log.Fields{
		"application_id":   id,
		"cash_flow_health": analysis.CashFlowHealth,
		"funding_source":   analysis.RecommendedFundingSource,
	}).Info("cash flow analysis generated")

	return analysis, nil
}

// ListApplications returns every application known to the fixture provider.
func (s *CashFlowService) ListApplications() []domain.LoanApplication {
	return s.applications.List()
}

func analysisCacheKey(input domain.LoanApplicationInput, seed uint64) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("cashflow:%016x:%d", xxhash.Sum64(payload), seed), nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"loan-cashflow/domain"
	"loan-cashflow/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCashFlowService(cache repository.CacheRepository) *CashFlowService {
	applications := repository.NewApplicationRepositoryMemory(repository.SampleApplications()...)
	return NewCashFlowService(applications, cache, 0)
}

func TestCashFlowService_Analyze_CacheMissStoresResult(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)
	seed := uint64(42)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", false)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), DefaultCacheTTL).
		Return(nil)

	analysis, err := service.Analyze(context.Background(), individualInput(domain.RiskTierLow), &seed)
	require.NoError(t, err)

	expected, err := GenerateCashFlowAnalysis(individualInput(domain.RiskTierLow), NewSeededSource(seed))
	require.NoError(t, err)
	assert.Equal(t, expected, analysis)

	mockCache.AssertExpectations(t)
	stored := mockCache.Calls[1].Arguments.String(2)
	var cached domain.CashFlowAnalysis
	require.NoError(t, json.Unmarshal([]byte(stored), &cached))
	assert.Equal(t, analysis, cached)
}

func TestCashFlowService_Analyze_CacheHit(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)
	seed := uint64(7)

	expected, err := GenerateCashFlowAnalysis(individualInput(domain.RiskTierMedium), NewSeededSource(seed))
	require.NoError(t, err)
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(string(payload), true)

	analysis, err := service.Analyze(context.Background(), individualInput(domain.RiskTierMedium), &seed)
	require.NoError(t, err)

	assert.Equal(t, expected, analysis)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlowService_Analyze_UnreadableCacheEntryIsRecomputed(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)
	seed := uint64(3)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("{not json", true)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	analysis, err := service.Analyze(context.Background(), individualInput(domain.RiskTierHigh), &seed)
	require.NoError(t, err)

	assert.Equal(t, domain.CashFlowHealthWeak, analysis.CashFlowHealth)
	mockCache.AssertExpectations(t)
}

func TestCashFlowService_Analyze_WithoutSeedSkipsCache(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)

	analysis, err := service.Analyze(context.Background(), individualInput(domain.RiskTierLow), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CashFlowHealthStrong, analysis.CashFlowHealth)
	mockCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlowService_Analyze_CacheErrorIsNotFatal(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)
	seed := uint64(11)

	mockCache.On("Get", mock.Anything, mock.Anything).Return("", false)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	analysis, err := service.Analyze(context.Background(), individualInput(domain.RiskTierLow), &seed)

	require.NoError(t, err)
	assert.Equal(t, domain.FundingSourceRabobank, analysis.RecommendedFundingSource)
}

func TestCashFlowService_Analyze_InvalidInputIsNotCached(t *testing.T) {
	mockCache := new(MockCacheRepository)
	service := newTestCashFlowService(mockCache)
	seed := uint64(1)

	mockCache.On("Get", mock.Anything, mock.Anything).Return("", false)

	_, err := service.Analyze(context.Background(), individualInput("Unknown"), &seed)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlowService_Analyze_CustomTTL(t *testing.T) {
	mockCache := new(MockCacheRepository)
	applications := repository.NewApplicationRepositoryMemory()
	service := NewCashFlowService(applications, mockCache, 5*time.Minute)
	seed := uint64(9)

	mockCache.On("Get", mock.Anything, mock.Anything).Return("", false)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, 5*time.Minute).Return(nil)

	_, err := service.Analyze(context.Background(), individualInput(domain.RiskTierLow), &seed)

	require.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestCashFlowService_AnalyzeApplication(t *testing.T) {
	service := newTestCashFlowService(repository.NewMemoryCache())
	seed := uint64(5)
	id := repository.ApplicationID("LA-2024-001")

	analysis, err := service.AnalyzeApplication(context.Background(), id, &seed)
	require.NoError(t, err)

	assert.Equal(t, domain.CashFlowHealthStrong, analysis.CashFlowHealth)
	assert.Equal(t, 150000.0, analysis.HistoricalData.Revenue)

	again, err := service.AnalyzeApplication(context.Background(), id, &seed)
	require.NoError(t, err)
	assert.Equal(t, analysis, again)
}

func TestCashFlowService_AnalyzeApplication_NotFound(t *testing.T) {
	service := newTestCashFlowService(repository.NewMemoryCache())

	_, err := service.AnalyzeApplication(context.Background(), "missing", nil)

	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestCashFlowService_ListApplications(t *testing.T) {
	service := newTestCashFlowService(repository.NewMemoryCache())

	applications := service.ListApplications()

	require.Len(t, applications, 6)
	assert.Equal(t, "LA-2024-006", applications[0].Reference)
}

func TestAnalysisCacheKey(t *testing.T) {
	input := individualInput(domain.RiskTierLow)

	first, err := analysisCacheKey(input, 1)
	require.NoError(t, err)
	second, err := analysisCacheKey(input, 1)
	require.NoError(t, err)
	otherSeed, err := analysisCacheKey(input, 2)
	require.NoError(t, err)

	input.Amount++
	otherInput, err := analysisCacheKey(input, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, otherSeed)
	assert.NotEqual(t, first, otherInput)
	assert.Regexp(t, `^cashflow:[0-9a-f]{16}:1$`, first)
}

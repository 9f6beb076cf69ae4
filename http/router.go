package http

import "net/http"

// NewRouter registers every route behind the rate limiter and the request logger.
func NewRouter(
	loanHandler *LoanHandler,
	cashFlowHandler *CashFlowHandler,
	limiter *RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/loan/calculate", limited(loanHandler.CalculateLoan))
	mux.Handle("/cashflow/analyze", limited(cashFlowHandler.Analyze))
	mux.Handle("/applications", limited(cashFlowHandler.ListApplications))
	mux.Handle("/applications/{id}/cashflow", limited(cashFlowHandler.AnalyzeApplication))
	mux.HandleFunc("/health", Health)

	return LoggingMiddleware(mux)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"loan-cashflow/domain"
	"loan-cashflow/repository"
	"loan-cashflow/service"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

type analyzeRequest struct {
	Application *domain.LoanApplicationInput `json:"application" validate:"required"`
	Seed        *uint64                      `json:"seed,omitempty"`
}

type CashFlowHandler struct {
	service *service.CashFlowService
}

func NewCashFlowHandler(service *service.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{service: service}
}

// Analyze handles POST /cashflow/analyze.
func (h *CashFlowHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Debug("error decoding analyze request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "application is required", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), *req.Application, req.Seed)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// ListApplications handles GET /applications.
func (h *CashFlowHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.service.ListApplications())
}

// AnalyzeApplication handles GET /applications/{id}/cashflow.
func (h *CashFlowHandler) AnalyzeApplication(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var seed *uint64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "seed must be a non-negative integer", http.StatusBadRequest)
			return
		}
		seed = &parsed
	}

	analysis, err := h.service.AnalyzeApplication(r.Context(), r.PathValue("id"), seed)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	default:
		log.WithError(err).Error("cash flow analysis failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

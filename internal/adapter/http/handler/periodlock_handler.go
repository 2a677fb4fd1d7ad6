package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/infrastructure/metrics"
	"github.com/nordbok/bokforing/internal/usecase"
)

// PeriodLockHandler handles period lock HTTP requests.
type PeriodLockHandler struct {
	lockUC  *usecase.PeriodLockUseCase
	metrics *metrics.Metrics
}

// NewPeriodLockHandler creates a new PeriodLockHandler.
func NewPeriodLockHandler(lockUC *usecase.PeriodLockUseCase, m *metrics.Metrics) *PeriodLockHandler {
	return &PeriodLockHandler{lockUC: lockUC, metrics: m}
}

// Create locks a period.
func (h *PeriodLockHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	var req dto.LockPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	lock, err := h.lockUC.LockPeriod(r.Context(), req.ToUseCaseInput(companyID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to lock period", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.PeriodsLocked.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.PeriodLockFromDomain(lock))
}

// List lists a company's period locks.
func (h *PeriodLockHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	locks, err := h.lockUC.ListPeriodLocks(r.Context(), companyID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list period locks", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodLocksFromDomain(locks))
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/usecase"
)

// ReportHandler handles journal and ledger report requests.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Journal returns one line per voucher, drafts included.
func (h *ReportHandler) Journal(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	fromDate, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	toDate, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	lines, err := h.reportUC.JournalList(r.Context(), usecase.JournalListInput{
		CompanyID: companyID,
		FromDate:  fromDate,
		ToDate:    toDate,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build journal", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromDomain(lines))
}

// Ledger returns a single account's movements with running balance.
func (h *ReportHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account_id parameter", "")
		return
	}

	fromDate, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	toDate, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	lines, err := h.reportUC.LedgerForAccount(r.Context(), usecase.LedgerInput{
		CompanyID: companyID,
		AccountID: accountID,
		FromDate:  fromDate,
		ToDate:    toDate,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build ledger", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(lines))
}

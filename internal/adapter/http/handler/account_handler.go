package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/usecase"
)

// AccountHandler handles chart-of-accounts HTTP requests.
type AccountHandler struct {
	accountUC *usecase.AccountUseCase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Upsert creates or updates an account.
func (h *AccountHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	var req dto.UpsertAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.UpsertAccount(r.Context(), req.ToUseCaseInput(companyID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to upsert account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists a company's accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	accounts, err := h.accountUC.ListAccounts(r.Context(), companyID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list accounts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

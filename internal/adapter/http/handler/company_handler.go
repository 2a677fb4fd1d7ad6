package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/usecase"
)

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	companyUC *usecase.CompanyUseCase
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyUC *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC}
}

// Create creates a new company with its default voucher series.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing company name", "")
		return
	}

	company, err := h.companyUC.CreateCompany(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create company", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.CompanyFromDomain(company))
}

// List lists all companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyUC.ListCompanies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list companies", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CompaniesFromDomain(companies))
}

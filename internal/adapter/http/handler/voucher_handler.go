package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/infrastructure/metrics"
	"github.com/nordbok/bokforing/internal/usecase"
)

// VoucherHandler handles voucher lifecycle HTTP requests.
type VoucherHandler struct {
	voucherUC *usecase.VoucherUseCase
	metrics   *metrics.Metrics
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC *usecase.VoucherUseCase, m *metrics.Metrics) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC, metrics: m}
}

// Create creates a new draft voucher.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	var req dto.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.CreateVoucher(r.Context(), req.ToUseCaseInput(companyID))
	if err != nil {
		h.countError(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to create voucher", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.VouchersCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// Get retrieves a voucher by ID.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get voucher", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// List lists a company's vouchers, drafts included, optionally bounded
// by from/to date query parameters.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
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

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), usecase.ListVouchersInput{
		CompanyID: companyID,
		FromDate:  fromDate,
		ToDate:    toDate,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list vouchers", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.VouchersFromDomain(vouchers))
}

// Post finalizes a draft voucher.
func (h *VoucherHandler) Post(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	var req dto.PostVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.PostVoucher(r.Context(), id, req.Actor)
	if err != nil {
		h.countError(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to post voucher", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.VouchersPosted.Inc()
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Correct creates a reversing correction voucher for a posted voucher.
func (h *VoucherHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	var req dto.CreateCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.CreateCorrection(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		h.countError(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to create correction", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.CorrectionsCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// ListSeries lists a company's voucher series.
func (h *VoucherHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	series, err := h.voucherUC.ListSeries(r.Context(), companyID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list series", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SeriesListFromDomain(series))
}

func (h *VoucherHandler) countError(err error) {
	if h.metrics == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrPeriodLocked):
		h.metrics.LockedRejects.Inc()
		h.metrics.VoucherErrors.WithLabelValues("period_locked").Inc()
	case errors.Is(err, domain.ErrVoucherUnbalanced):
		h.metrics.VoucherErrors.WithLabelValues("unbalanced").Inc()
	case errors.Is(err, domain.ErrAlreadyPosted):
		h.metrics.VoucherErrors.WithLabelValues("already_posted").Inc()
	case errors.Is(err, domain.ErrNotPosted):
		h.metrics.VoucherErrors.WithLabelValues("not_posted").Inc()
	default:
		h.metrics.VoucherErrors.WithLabelValues("other").Inc()
	}
}

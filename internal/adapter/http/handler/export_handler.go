package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/nordbok/bokforing/internal/adapter/http/dto"
	"github.com/nordbok/bokforing/internal/infrastructure/metrics"
	"github.com/nordbok/bokforing/internal/usecase"
)

// ExportHandler handles CSV and SIE export requests.
type ExportHandler struct {
	exportUC  *usecase.ExportUseCase
	exportDir string
	metrics   *metrics.Metrics
}

// NewExportHandler creates a new ExportHandler. exportDir is used when
// a request does not name a target path.
func NewExportHandler(exportUC *usecase.ExportUseCase, exportDir string, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, exportDir: exportDir, metrics: m}
}

// ExportCSV writes the company's vouchers and rows as CSV files.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", h.exportUC.ExportCSV)
}

// ExportSIE writes the company's posted vouchers as an SIE type 4 file.
func (h *ExportHandler) ExportSIE(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "sie", h.exportUC.ExportSIE)
}

func (h *ExportHandler) export(w http.ResponseWriter, r *http.Request, format string, run func(ctx context.Context, companyID, targetPath string) (string, error)) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		writeError(w, http.StatusBadRequest, "missing company ID", "")
		return
	}

	var req dto.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	target := req.Path
	if target == "" {
		target = filepath.Join(h.exportDir, companyID)
	}

	written, err := run(r.Context(), companyID, target)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "export failed", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.ExportsGenerated.WithLabelValues(format).Inc()
	}

	writeJSON(w, http.StatusOK, &dto.ExportResponse{
		Message: fmt.Sprintf("exported to %s", written),
	})
}

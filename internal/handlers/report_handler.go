package handlers

import (
	"fmt"
	"net/http"

	"collections-backend/internal/services"
	"collections-backend/internal/timeutil"
	"collections-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// BlockedCustomersPDF streams the current dashboard view as a PDF
// worksheet. Accepts the same filter query parameters as the
// dashboard list.
func (h *ReportHandler) BlockedCustomersPDF(w http.ResponseWriter, r *http.Request) {
	product, err := parseProductFilter(r.URL.Query().Get("product"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "product must be 'all', '1' or '2'")
		return
	}

	data, err := h.Service.GeneratePDF(r.Context(), product, r.URL.Query().Get("city"), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("blocked-customers-%s.pdf", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// BlockedCustomersCSV streams the same view as CSV.
func (h *ReportHandler) BlockedCustomersCSV(w http.ResponseWriter, r *http.Request) {
	product, err := parseProductFilter(r.URL.Query().Get("product"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "product must be 'all', '1' or '2'")
		return
	}

	data, err := h.Service.GenerateCSV(r.Context(), product, r.URL.Query().Get("city"), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("blocked-customers-%s.csv", timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

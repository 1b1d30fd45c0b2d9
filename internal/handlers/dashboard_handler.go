package handlers

import (
	"net/http"
	"strconv"

	"collections-backend/internal/services"
	"collections-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// List serves the filtered dashboard view. Query parameters:
// product (all|1|2), city (substring), q (name search).
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	product, err := parseProductFilter(r.URL.Query().Get("product"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "product must be 'all', '1' or '2'")
		return
	}
	city := r.URL.Query().Get("city")
	if city == "all" {
		city = ""
	}
	search := r.URL.Query().Get("q")

	entries, err := h.Service.VisibleCustomers(r.Context(), product, city, search)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(entries),
		"customers": entries,
	})
}

func parseProductFilter(raw string) (int, error) {
	if raw == "" || raw == "all" {
		return services.ProductAll, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || (n != 1 && n != 2) {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

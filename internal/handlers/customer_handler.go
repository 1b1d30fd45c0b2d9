package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"collections-backend/internal/middleware"
	"collections-backend/internal/services"
	"collections-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	Customers *services.CustomerService
	Actions   *services.ActionService
	Dashboard *services.DashboardService
}

func NewCustomerHandler(customers *services.CustomerService, actions *services.ActionService, dashboard *services.DashboardService) *CustomerHandler {
	return &CustomerHandler{
		Customers: customers,
		Actions:   actions,
		Dashboard: dashboard,
	}
}

// Notes returns the customer's comment history.
func (h *CustomerHandler) Notes(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFrom(w, r)
	if !ok {
		return
	}

	notes, err := h.Customers.History(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, notes)
}

// InactiveSince returns the derived "inactive since" label. A failed
// change-log fetch degrades to resolved=false instead of an error so
// the rest of the customer view keeps working.
func (h *CustomerHandler) InactiveSince(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFrom(w, r)
	if !ok {
		return
	}

	label, err := h.Customers.InactiveSince(r.Context(), customerID)
	if err != nil {
		log.Printf("[Inactivity] customer %d: %v", customerID, err)
		utils.JSON(w, http.StatusOK, map[string]interface{}{"resolved": false})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"resolved":       true,
		"inactive_since": label,
	})
}

// PostComment appends a plain comment to the customer's history.
func (h *CustomerHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFrom(w, r)
	if !ok {
		return
	}
	admin, ok := middleware.GetAdminFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Comment == "" {
		utils.Error(w, http.StatusBadRequest, "comment is required")
		return
	}

	if err := h.Actions.PostComment(r.Context(), customerID, admin, req.Comment, services.TitleComment); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// RecordPromise records a payment promise.
func (h *CustomerHandler) RecordPromise(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFrom(w, r)
	if !ok {
		return
	}
	admin, ok := middleware.GetAdminFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		Amount string `json:"amount"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Actions.RecordPromise(r.Context(), customerID, admin, req.Amount, req.Date); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// ScheduleCollection books a device collection task. The customer is
// resolved from the upstream list so the task carries its current
// name, address and GPS.
func (h *CustomerHandler) ScheduleCollection(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFrom(w, r)
	if !ok {
		return
	}
	admin, ok := middleware.GetAdminFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Dashboard.FindCustomer(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customer == nil {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}

	if err := h.Actions.ScheduleCollection(r.Context(), customer, admin, req.Date); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func customerIDFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid customer id")
		return 0, false
	}
	return id, true
}

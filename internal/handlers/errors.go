package handlers

import (
	"errors"
	"log"
	"net/http"

	"collections-backend/internal/portal"
	"collections-backend/internal/services"
	"collections-backend/pkg/utils"
)

// writeServiceError maps the service error taxonomy onto HTTP
// responses: validation → 400, upstream read failure → generic 502
// banner, rejected write → 502 with the portal's own detail, anything
// else → logged generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *services.ValidationError
	var transport *portal.TransportError
	var submit *portal.SubmitError

	switch {
	case errors.As(err, &validation):
		utils.Error(w, http.StatusBadRequest, validation.Msg)
	case errors.As(err, &submit):
		utils.Error(w, http.StatusBadGateway, submit.Body)
	case errors.As(err, &transport):
		log.Printf("[Portal] %v", err)
		utils.Error(w, http.StatusBadGateway, "Failed to fetch API data")
	default:
		log.Printf("[Handler] unexpected error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

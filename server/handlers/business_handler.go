package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	services "openhours-server/service"
)

const SLUG_PATH_ARG = "slug"

// BusinessHandler serves business status and hours over HTTP.
type BusinessHandler struct {
	businessService *services.BusinessService
}

func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// GetBusinessStatus handles GET /v1/business/{slug}/status
func (h *BusinessHandler) GetBusinessStatus(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return // error already written
	}
	writeJSON(w, report)
}

// GetBusinessHours handles GET /v1/business/{slug}/hours
func (h *BusinessHandler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]interface{}{
		"name":  report.Name,
		"hours": report.Hours,
	})
}

func (h *BusinessHandler) loadReport(w http.ResponseWriter, r *http.Request) (*services.BusinessStatusReport, bool) {
	slug := mux.Vars(r)[SLUG_PATH_ARG]

	report, err := h.businessService.GetBusinessReport(slug, time.Now())
	if err != nil {
		log.Println("Error building business report:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	if report == nil {
		http.Error(w, "Unknown business "+slug, http.StatusNotFound)
		return nil, false
	}
	return report, true
}

// Ping handles GET /ping
func (h *BusinessHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

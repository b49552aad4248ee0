package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"asb-server/config"
	"asb-server/dao/memory"
	"asb-server/models"
	"asb-server/service"
)

const (
	VENUE_NAME_PATH_ARG = "venue_name"
	DATE_QUERY_ARG      = "date"
)

// VenueHandler serves the venue catalog and the availability simulation.
type VenueHandler struct {
	venueDao            *memory.MemoryVenueDAO
	availabilityService *service.AvailabilityService
}

func NewVenueHandler(venueDao *memory.MemoryVenueDAO, availabilityService *service.AvailabilityService) *VenueHandler {
	return &VenueHandler{venueDao: venueDao, availabilityService: availabilityService}
}

// Health handles GET /
func (h *VenueHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:       "online",
		Service:      config.SERVICE_NAME,
		Version:      config.SERVICE_VERSION,
		City:         config.SERVICE_CITY,
		VenuesLoaded: h.venueDao.Count(),
	})
}

// GetAllVenues handles GET /venues
func (h *VenueHandler) GetAllVenues(w http.ResponseWriter, r *http.Request) {
	if h.venueDao.Count() == 0 {
		http.Error(w, "Venue data not available", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.venueDao.GetAllVenues())
}

// GetAvailability handles GET /availability/{venue_name}?date=YYYY-MM-DD
func (h *VenueHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	venueName := mux.Vars(r)[VENUE_NAME_PATH_ARG]
	date := r.URL.Query().Get(DATE_QUERY_ARG)

	resp, err := h.availabilityService.GetAvailability(venueName, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			http.Error(w, "Venue '"+venueName+"' not found", http.StatusNotFound)
		case errors.Is(err, service.ErrDataUnavailable):
			http.Error(w, "Venue data not available", http.StatusInternalServerError)
		default:
			log.Error().Err(err).Msg("availability lookup failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}

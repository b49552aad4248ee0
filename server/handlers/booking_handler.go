package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"asb-server/models"
	"asb-server/service"
)

// BookingHandler serves the simulated booking endpoints.
type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid booking request body", http.StatusBadRequest)
		return
	}

	if req.Venue == "" || req.Date == "" || req.Time == "" || req.UserName == "" || req.Phone == "" {
		http.Error(w, "Missing required booking fields", http.StatusBadRequest)
		return
	}

	resp, err := h.bookingService.CreateBooking(req)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			http.Error(w, "Venue not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Msg("booking failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// WhatsAppConnect handles POST /whatsapp/connect (simulation only).
func (h *BookingHandler) WhatsAppConnect(w http.ResponseWriter, r *http.Request) {
	log.Info().Msg("WhatsApp connect clicked, returning simulated success")
	writeJSON(w, http.StatusOK, models.WhatsAppConnectResponse{
		Status:    "success",
		Message:   "WhatsApp integration simulated successfully",
		Connected: true,
	})
}

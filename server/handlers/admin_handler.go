package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"asb-server/dao/memory"
	"asb-server/models"
	"asb-server/util"
)

// AdminHandler serves the demo dashboard endpoints.
type AdminHandler struct {
	adminState *memory.AdminState
}

func NewAdminHandler(adminState *memory.AdminState) *AdminHandler {
	return &AdminHandler{adminState: adminState}
}

// GetMetrics handles GET /admin/metrics
func (h *AdminHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	var override *string
	if v := h.adminState.TimeOverride(); v != "" {
		override = &v
	}

	writeJSON(w, http.StatusOK, models.AdminMetrics{
		MonthlyRevenueJOD:      4500,
		TotalBookingsThisMonth: 186,
		AverageBookingValueJOD: 24.2,
		ActiveInquiries:        12,
		ConversionRatePercent:  38,
		TopVenueThisMonth:      "Trax Padel",
		PeakBookingTime:        "8:00 PM – 10:00 PM",
		ReturningUsersPercent:  42,
		SystemTimeOverride:     override,
	})
}

// UpdateSettings handles POST /admin/settings
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.AdminSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid settings body", http.StatusBadRequest)
		return
	}

	if settings.SystemTimeOverride != nil {
		h.adminState.SetTimeOverride(*settings.SystemTimeOverride)
		log.Info().Str("system_time_override", h.adminState.TimeOverride()).Msg("admin updated system time")
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"settings": settings,
	})
}

// GetMetricsChart handles GET /admin/metrics/chart
func (h *AdminHandler) GetMetricsChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklyBookingsChart(w); err != nil {
		log.Error().Err(err).Msg("error rendering bookings chart")
	}
}

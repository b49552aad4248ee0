package models

// AdminMetrics is the static demo dashboard payload.
type AdminMetrics struct {
	MonthlyRevenueJOD      float64 `json:"monthly_revenue_jod"`
	TotalBookingsThisMonth int     `json:"total_bookings_this_month"`
	AverageBookingValueJOD float64 `json:"average_booking_value_jod"`
	ActiveInquiries        int     `json:"active_inquiries"`
	ConversionRatePercent  int     `json:"conversion_rate_percent"`
	TopVenueThisMonth      string  `json:"top_venue_this_month"`
	PeakBookingTime        string  `json:"peak_booking_time"`
	ReturningUsersPercent  int     `json:"returning_users_percent"`
	SystemTimeOverride     *string `json:"system_time_override"`
}

// AdminSettings is the POST /admin/settings payload. A nil override leaves
// the current value untouched; the literal "Auto" clears it.
type AdminSettings struct {
	SystemTimeOverride *string `json:"system_time_override,omitempty"`
}

// HealthResponse is the GET / payload.
type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Version      string `json:"version"`
	City         string `json:"city"`
	VenuesLoaded int    `json:"venues_loaded"`
}

// WhatsAppConnectResponse is the simulated POST /whatsapp/connect reply.
type WhatsAppConnectResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Connected bool   `json:"connected"`
}

package models

// TimeSlot is one hourly booking opportunity for a venue on a given date.
type TimeSlot struct {
	Time      string  `json:"time"`
	Available bool    `json:"available"`
	PriceJOD  float64 `json:"priceJOD"`
}

// AvailabilityResponse matches GET /availability/{venue_name}.
type AvailabilityResponse struct {
	Venue string     `json:"venue"`
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

package models

import "asb-server/models/venue"

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	Message   string `json:"message"`
	TimeOfDay string `json:"timeOfDay,omitempty"`
	Location  string `json:"location,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// BookingContext carries the venue/date/price the agent last checked
// availability for, so the frontend can prefill the booking form.
type BookingContext struct {
	Venue    string  `json:"venue"`
	Date     string  `json:"date"`
	PriceJOD float64 `json:"price"`
}

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	BotMessage       string          `json:"botMessage"`
	Venues           []venue.Venue   `json:"venues"`
	FilterApplied    string          `json:"filterApplied"`
	BookingContext   *BookingContext `json:"booking_context,omitempty"`
	SuggestedDate    string          `json:"suggestedDate,omitempty"`
	BookingConfirmed bool            `json:"bookingConfirmed"`
	Slots            []TimeSlot      `json:"slots,omitempty"`
}

package models

// BookingRequest is the POST /booking payload.
type BookingRequest struct {
	Venue    string `json:"venue"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	UserName string `json:"userName"`
	Phone    string `json:"phone"`
}

// BookingResponse confirms a simulated booking. Nothing is persisted.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

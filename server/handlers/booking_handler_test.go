package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"asb-server/dao/memory"
	"asb-server/models"
	"asb-server/models/venue"
	"asb-server/service"
)

func newBookingHandler() *BookingHandler {
	venueDao := memory.NewMemoryVenueDAO([]venue.Venue{
		{Name: "Trax Padel", Location: "Abdoun", Type: "Padel", PriceJOD: 25, IsIndoor: true},
	})
	return NewBookingHandler(service.NewBookingService(venueDao))
}

func TestCreateBooking(t *testing.T) {
	handler := newBookingHandler()

	tests := []struct {
		name       string
		body       string
		statusCode int
	}{
		{
			name:       "Valid Booking",
			body:       `{"venue": "Trax Padel", "date": "2025-02-10", "time": "18:00", "userName": "Omar", "phone": "+962790000000"}`,
			statusCode: http.StatusOK,
		},
		{
			name:       "Invalid JSON",
			body:       `{"venue": `,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Missing Fields",
			body:       `{"venue": "Trax Padel", "date": "2025-02-10"}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Unknown Venue",
			body:       `{"venue": "Ghost Arena", "date": "2025-02-10", "time": "18:00", "userName": "Omar", "phone": "+962790000000"}`,
			statusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/booking", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			handler.CreateBooking(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d (body: %s)", test.statusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestCreateBooking_ResponseShape(t *testing.T) {
	handler := newBookingHandler()
	body := `{"venue": "Trax Padel", "date": "2025-02-10", "time": "18:00", "userName": "Omar", "phone": "+962790000000"}`
	req := httptest.NewRequest("POST", "/booking", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.CreateBooking(rr, req)

	var resp models.BookingResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if !strings.HasPrefix(resp.BookingID, "BK") {
		t.Errorf("Expected booking id with BK prefix, got %q", resp.BookingID)
	}
	if !strings.Contains(resp.Message, resp.BookingID) {
		t.Errorf("Expected message to mention the booking id, got %q", resp.Message)
	}
}

func TestWhatsAppConnect(t *testing.T) {
	handler := newBookingHandler()
	req := httptest.NewRequest("POST", "/whatsapp/connect", nil)
	rr := httptest.NewRecorder()

	handler.WhatsAppConnect(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var resp models.WhatsAppConnectResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Connected {
		t.Error("Expected connected=true")
	}
	if resp.Status != "success" {
		t.Errorf("Expected status 'success', got %q", resp.Status)
	}
}

package service

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"asb-server/config"
	"asb-server/dao/memory"
	"asb-server/models"
)

// BookingService simulates booking creation. It validates the venue, logs a
// confirmation record and returns a generated identifier. No booking is
// persisted and no slot collision check is performed.
type BookingService struct {
	venueDao *memory.MemoryVenueDAO
}

// NewBookingService constructs a BookingService.
func NewBookingService(venueDao *memory.MemoryVenueDAO) *BookingService {
	return &BookingService{venueDao: venueDao}
}

// CreateBooking records the booking and returns its identifier.
func (s *BookingService) CreateBooking(req models.BookingRequest) (*models.BookingResponse, error) {
	if _, ok := s.venueDao.GetVenueByName(req.Venue); !ok {
		return nil, errors.Wrapf(ErrVenueNotFound, "venue %q", req.Venue)
	}

	bookingID := fmt.Sprintf("%s%d", config.BOOKING_ID_PREFIX,
		config.BOOKING_ID_MIN+rand.Intn(config.BOOKING_ID_MAX-config.BOOKING_ID_MIN+1))

	log.Info().
		Str("booking_id", bookingID).
		Str("venue", req.Venue).
		Str("date", req.Date).
		Str("time", req.Time).
		Str("customer", req.UserName).
		Str("phone", req.Phone).
		Msg("new booking received")

	return &models.BookingResponse{
		Success:   true,
		BookingID: bookingID,
		Message: fmt.Sprintf("Booking confirmed! Your booking ID is %s. We'll send you a confirmation via WhatsApp.",
			bookingID),
	}, nil
}

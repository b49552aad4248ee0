package service

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"asb-server/config"
	"asb-server/dao/memory"
	"asb-server/models"
)

// AvailabilityService fabricates deterministic demo availability. Each call
// uses its own generator seeded from venue name + date, so repeated calls
// are bit-identical and no shared seed state exists.
type AvailabilityService struct {
	venueDao *memory.MemoryVenueDAO
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(venueDao *memory.MemoryVenueDAO) *AvailabilityService {
	return &AvailabilityService{venueDao: venueDao}
}

// GetAvailability returns one slot per hour from SLOT_START_HOUR up to
// SLOT_END_HOUR (exclusive) for the venue on the given date. An empty date
// defaults to today. Unknown venues yield ErrVenueNotFound.
func (s *AvailabilityService) GetAvailability(venueName, date string) (*models.AvailabilityResponse, error) {
	if s.venueDao.Count() == 0 {
		return nil, ErrDataUnavailable
	}

	v, ok := s.venueDao.GetVenueByName(venueName)
	if !ok {
		return nil, errors.Wrapf(ErrVenueNotFound, "venue %q", venueName)
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	// Seed from the caller-supplied name + date so the same request always
	// produces the same slots.
	h := fnv.New64a()
	h.Write([]byte(venueName + date))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	slots := make([]models.TimeSlot, 0, config.SLOT_END_HOUR-config.SLOT_START_HOUR)
	for hour := config.SLOT_START_HOUR; hour < config.SLOT_END_HOUR; hour++ {
		slots = append(slots, models.TimeSlot{
			Time:      fmt.Sprintf("%02d:00", hour),
			Available: rng.Float64() > config.SLOT_UNAVAILABLE_RATE,
			PriceJOD:  v.PriceJOD,
		})
	}

	return &models.AvailabilityResponse{
		Venue: v.Name,
		Date:  date,
		Slots: slots,
	}, nil
}

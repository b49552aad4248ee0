package memory

import (
	"strings"

	"github.com/rs/zerolog/log"

	"asb-server/models/venue"
	"asb-server/util"
)

// defaultVenues is the embedded demo catalog used when venues.json is
// missing or corrupt.
var defaultVenues = []venue.Venue{
	{Name: "Trax Padel", Location: "Abdoun", Type: "Padel", PriceJOD: 25.0, IsIndoor: true},
	{Name: "Fitness First Sports", Location: "Sweifieh", Type: "Soccer", PriceJOD: 30.0, IsIndoor: false},
	{Name: "Jordan Sports City", Location: "Shmeisani", Type: "Soccer", PriceJOD: 15.0, IsIndoor: false},
	{Name: "Elite Padel Club", Location: "Abdoun", Type: "Padel", PriceJOD: 35.0, IsIndoor: true},
}

// MemoryVenueDAO serves the fixed venue catalog loaded at startup.
// Venues are immutable after load; callers always receive copies.
type MemoryVenueDAO struct {
	venues []venue.Venue
}

// NewMemoryVenueDAO initializes a MemoryVenueDAO with the given venues.
func NewMemoryVenueDAO(venues []venue.Venue) *MemoryVenueDAO {
	return &MemoryVenueDAO{venues: venues}
}

// LoadMemoryVenueDAO reads the venues file, falling back to the embedded
// demo catalog on a missing or unreadable file. Loading never fails.
func LoadMemoryVenueDAO(filePath string) *MemoryVenueDAO {
	file, err := util.ReadVenuesFileFromJSON(filePath)
	if err != nil {
		log.Warn().Err(err).Str("path", filePath).Msg("venues file unavailable, using fallback demo data")
		return NewMemoryVenueDAO(defaultVenues)
	}
	log.Info().Int("venues", len(file.Venues)).Str("path", filePath).Msg("loaded venue catalog")
	return NewMemoryVenueDAO(file.Venues)
}

// GetAllVenues returns a copy of the catalog.
func (dao *MemoryVenueDAO) GetAllVenues() []venue.Venue {
	out := make([]venue.Venue, len(dao.venues))
	copy(out, dao.venues)
	return out
}

// GetVenueByName looks up a venue case-insensitively.
func (dao *MemoryVenueDAO) GetVenueByName(name string) (venue.Venue, bool) {
	for _, v := range dao.venues {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return venue.Venue{}, false
}

// Count reports the catalog size.
func (dao *MemoryVenueDAO) Count() int {
	return len(dao.venues)
}

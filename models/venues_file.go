package models

import "asb-server/models/venue"

// VenuesFile matches the on-disk venues.json layout.
type VenuesFile struct {
	Venues []venue.Venue `json:"venues"`
}

package venue

import "fmt"

// Venue represents a bookable sports facility in Amman.
// AILabel is only set transiently on filtered copies, never on stored venues.
type Venue struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	PriceJOD float64 `json:"priceJOD"`
	IsIndoor bool    `json:"isIndoor"`
	AILabel  string  `json:"aiLabel,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(name=%s, location=%s, type=%s, price=%.1f JOD)",
		v.Name, v.Location, v.Type, v.PriceJOD)
}

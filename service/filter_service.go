package service

import (
	"fmt"
	"sort"
	"strings"

	"asb-server/config"
	"asb-server/models/venue"
)

const AI_RECOMMENDED_LABEL = "AI Recommended"

// timePhrases maps a time-of-day value to the phrase used in bot messages.
var timePhrases = map[string]string{
	"Morning":   "this morning",
	"Noon":      "at noon",
	"Afternoon": "this afternoon",
	"Evening":   "this evening",
	"Night":     "tonight",
}

// FilterService applies the keyword-based recommendation rules. All methods
// are pure: they operate on copies and never mutate the caller's venues.
type FilterService struct{}

// NewFilterService constructs a FilterService.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// ApplySportFilter keeps venues matching the sport mentioned in the query.
// A query without a known sport keyword leaves the list unchanged.
func (fs *FilterService) ApplySportFilter(venues []venue.Venue, queryText string) []venue.Venue {
	q := strings.ToLower(queryText)
	switch {
	case strings.Contains(q, "padel"):
		return keepVenues(venues, func(v venue.Venue) bool {
			return strings.EqualFold(v.Type, "Padel")
		})
	case strings.Contains(q, "soccer") || strings.Contains(q, "football"):
		return keepVenues(venues, func(v venue.Venue) bool {
			return strings.EqualFold(v.Type, "Soccer")
		})
	}
	return copyVenues(venues)
}

// ApplyPriceRule keeps venues under the budget threshold when the query
// carries budget keywords.
func (fs *FilterService) ApplyPriceRule(venues []venue.Venue, queryText string) []venue.Venue {
	if !hasBudgetKeyword(queryText) {
		return copyVenues(venues)
	}
	return keepVenues(venues, func(v venue.Venue) bool {
		return v.PriceJOD < config.BUDGET_PRICE_THRESHOLD_JOD
	})
}

// ApplyLocationFilter keeps venues whose location contains the given one,
// case-insensitively. An empty location leaves the list unchanged.
func (fs *FilterService) ApplyLocationFilter(venues []venue.Venue, location string) []venue.Venue {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return copyVenues(venues)
	}
	return keepVenues(venues, func(v venue.Venue) bool {
		return strings.Contains(strings.ToLower(v.Location), loc)
	})
}

// ApplyTimeRule reorders venues by time suitability:
// Noon/Afternoon prefer indoor (cooler), Morning prefers outdoor (fresh
// air), every other time band keeps the incoming order. The sort is stable
// and breaks ties by price.
func (fs *FilterService) ApplyTimeRule(venues []venue.Venue, timeOfDay string) []venue.Venue {
	out := copyVenues(venues)

	var preferIndoor bool
	switch timeOfDay {
	case "Noon", "Afternoon":
		preferIndoor = true
	case "Morning":
		preferIndoor = false
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := timeRank(out[i], preferIndoor), timeRank(out[j], preferIndoor)
		if ri != rj {
			return ri < rj
		}
		return out[i].PriceJOD < out[j].PriceJOD
	})
	return out
}

// LabelAIPick marks the first venue as the top recommendation. Exactly one
// venue ends up labeled; the input list is never mutated.
func (fs *FilterService) LabelAIPick(venues []venue.Venue) []venue.Venue {
	out := copyVenues(venues)
	for i := range out {
		if i == 0 {
			out[i].AILabel = AI_RECOMMENDED_LABEL
		} else {
			out[i].AILabel = ""
		}
	}
	return out
}

// GenerateBotMessage produces the canned reply for the fallback path,
// keyed on the query keywords and the top venue's attributes.
func (fs *FilterService) GenerateBotMessage(venues []venue.Venue, queryText string, timeOfDay string) string {
	if len(venues) == 0 {
		return "I couldn't find any venues matching your criteria. Try adjusting your preferences!"
	}

	top := venues[0]
	q := strings.ToLower(queryText)

	timePhrase, ok := timePhrases[timeOfDay]
	if !ok {
		timePhrase = "today"
	}

	if (strings.Contains(q, "soccer") || strings.Contains(q, "football")) && !top.IsIndoor {
		return fmt.Sprintf("Great choice! The weather is perfect for outdoor soccer %s. I recommend %s in %s.",
			timePhrase, top.Name, top.Location)
	}

	if hasBudgetKeyword(queryText) {
		return fmt.Sprintf("I found the best budget option for you! %s is only %v JOD. Great value!",
			top.Name, top.PriceJOD)
	}

	if top.IsIndoor {
		return fmt.Sprintf("Perfect! %s has air-conditioned indoor courts. You'll stay cool while playing!",
			top.Name)
	}

	plural := ""
	if len(venues) > 1 {
		plural = "s"
	}
	return fmt.Sprintf("I found %d great option%s for you! %s in %s is my top pick at %v JOD.",
		len(venues), plural, top.Name, top.Location, top.PriceJOD)
}

// BuildFilterDescription summarizes which filters a query activates,
// e.g. "sport: Padel + price: budget + location: Abdoun".
func (fs *FilterService) BuildFilterDescription(queryText string, location string) string {
	var filters []string
	q := strings.ToLower(queryText)

	if strings.Contains(q, "padel") {
		filters = append(filters, "sport: Padel")
	} else if strings.Contains(q, "soccer") || strings.Contains(q, "football") {
		filters = append(filters, "sport: Soccer")
	}

	if hasBudgetKeyword(queryText) {
		filters = append(filters, "price: budget")
	}

	if location != "" {
		filters = append(filters, "location: "+location)
	}

	if len(filters) == 0 {
		return "general"
	}
	return strings.Join(filters, " + ")
}

// Recommend runs the full pipeline: sport, price, location, time rule,
// then labels the top pick.
func (fs *FilterService) Recommend(venues []venue.Venue, queryText, location, timeOfDay string) []venue.Venue {
	out := fs.ApplySportFilter(venues, queryText)
	out = fs.ApplyPriceRule(out, queryText)
	out = fs.ApplyLocationFilter(out, location)
	out = fs.ApplyTimeRule(out, timeOfDay)
	return fs.LabelAIPick(out)
}

func hasBudgetKeyword(queryText string) bool {
	q := strings.ToLower(queryText)
	return strings.Contains(q, "cheap") || strings.Contains(q, "budget") || strings.Contains(q, "affordable")
}

func timeRank(v venue.Venue, preferIndoor bool) int {
	if v.IsIndoor == preferIndoor {
		return 0
	}
	return 1
}

func copyVenues(venues []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)
	return out
}

func keepVenues(venues []venue.Venue, keep func(venue.Venue) bool) []venue.Venue {
	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

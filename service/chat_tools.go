package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"asb-server/api/openai"
	"asb-server/models"
	"asb-server/models/venue"
)

// Closed set of tool names the orchestrator dispatches on. An unrecognized
// name produces an explicit error payload instead of being silently ignored.
const (
	TOOL_GET_VENUES       = "get_venues"
	TOOL_GET_AVAILABILITY = "get_availability"
	TOOL_CREATE_BOOKING   = "create_booking"
)

// agentTools declares the callable tools sent to the model on round one.
func agentTools() []openai.Tool {
	return []openai.Tool{
		{
			Type: "function",
			Function: openai.ToolFunction{
				Name:        TOOL_GET_VENUES,
				Description: "List sports venues in Amman with optional filters for location, sport type, and price.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"location":  map[string]interface{}{"type": "string", "description": "Area in Amman (e.g. Abdoun, Sweifieh)"},
						"type":      map[string]interface{}{"type": "string", "description": "Sport type (e.g. Padel, Soccer)"},
						"max_price": map[string]interface{}{"type": "number", "description": "Maximum price in JOD"},
						"query":     map[string]interface{}{"type": "string", "description": "General search query"},
						"date":      map[string]interface{}{"type": "string", "description": "The date the user is interested in (YYYY-MM-DD)"},
					},
				},
			},
		},
		{
			Type: "function",
			Function: openai.ToolFunction{
				Name:        TOOL_GET_AVAILABILITY,
				Description: "Check available time slots for a specific venue on a given date.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"venue_name": map[string]interface{}{"type": "string", "description": "The exact name of the venue"},
						"date":       map[string]interface{}{"type": "string", "description": "Date in YYYY-MM-DD format"},
					},
					"required": []string{"venue_name"},
				},
			},
		},
		{
			Type: "function",
			Function: openai.ToolFunction{
				Name:        TOOL_CREATE_BOOKING,
				Description: "Book a sports venue at a specific time. Requires venue name, date, time, customer name, and phone.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"venue":     map[string]interface{}{"type": "string", "description": "Name of the venue"},
						"date":      map[string]interface{}{"type": "string", "description": "Date in YYYY-MM-DD format"},
						"time":      map[string]interface{}{"type": "string", "description": "Time in HH:00 format"},
						"user_name": map[string]interface{}{"type": "string", "description": "Customer name"},
						"phone":     map[string]interface{}{"type": "string", "description": "Customer phone number"},
					},
					"required": []string{"venue", "date", "time", "user_name", "phone"},
				},
			},
		},
	}
}

type getVenuesArgs struct {
	Query    string  `json:"query"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	MaxPrice float64 `json:"max_price"`
	Date     string  `json:"date"`
}

type getAvailabilityArgs struct {
	VenueName string `json:"venue_name"`
	Date      string `json:"date"`
}

type createBookingArgs struct {
	Venue    string `json:"venue"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	UserName string `json:"user_name"`
	Phone    string `json:"phone"`
}

// toolOutcome collects what the tool round discovered, to be surfaced in
// the ChatResponse alongside the model's final text.
type toolOutcome struct {
	venues           []venue.Venue
	slots            []models.TimeSlot
	bookingContext   *models.BookingContext
	bookingConfirmed bool
	suggestedDate    string
}

// executeToolCall runs one tool call and returns the JSON payload to feed
// back to the model.
func (s *ChatService) executeToolCall(tc openai.ToolCall, out *toolOutcome) string {
	name := tc.Function.Name
	log.Info().Str("tool", name).Str("args", tc.Function.Arguments).Msg("AI calling tool")

	switch name {
	case TOOL_GET_VENUES:
		var args getVenuesArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return toolError(fmt.Sprintf("invalid arguments for %s: %v", name, err))
		}
		recordDate(args.Date, out)
		found := s.searchVenues(args)
		out.venues = found
		return marshalToolResult(found)

	case TOOL_GET_AVAILABILITY:
		var args getAvailabilityArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return toolError(fmt.Sprintf("invalid arguments for %s: %v", name, err))
		}
		recordDate(args.Date, out)
		resp, err := s.availabilityService.GetAvailability(args.VenueName, args.Date)
		if err != nil {
			// Surface the failure to the model as data, not as an error.
			return toolError(err.Error())
		}
		out.slots = resp.Slots
		ctx := &models.BookingContext{Venue: args.VenueName, Date: resp.Date, PriceJOD: 25}
		if v, ok := s.venueDao.GetVenueByName(args.VenueName); ok {
			ctx.PriceJOD = v.PriceJOD
		}
		out.bookingContext = ctx
		return marshalToolResult(resp)

	case TOOL_CREATE_BOOKING:
		var args createBookingArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return toolError(fmt.Sprintf("invalid arguments for %s: %v", name, err))
		}
		recordDate(args.Date, out)
		resp, err := s.bookingService.CreateBooking(models.BookingRequest{
			Venue:    args.Venue,
			Date:     args.Date,
			Time:     args.Time,
			UserName: args.UserName,
			Phone:    args.Phone,
		})
		if err != nil {
			return toolError(err.Error())
		}
		if resp.Success {
			out.bookingConfirmed = true
		}
		return marshalToolResult(resp)

	default:
		log.Error().Str("tool", name).Msg("model requested an unknown tool")
		return toolError("unknown tool: " + name)
	}
}

// searchVenues applies the structured tool filters, then the keyword rules
// for any free-text query.
func (s *ChatService) searchVenues(args getVenuesArgs) []venue.Venue {
	venues := s.venueDao.GetAllVenues()

	if args.Type != "" {
		venues = keepVenues(venues, func(v venue.Venue) bool {
			return strings.Contains(strings.ToLower(v.Type), strings.ToLower(args.Type))
		})
	}
	if args.Location != "" {
		venues = keepVenues(venues, func(v venue.Venue) bool {
			return strings.Contains(strings.ToLower(v.Location), strings.ToLower(args.Location))
		})
	}
	if args.MaxPrice > 0 {
		venues = keepVenues(venues, func(v venue.Venue) bool {
			return v.PriceJOD <= args.MaxPrice
		})
	}
	if args.Query != "" {
		venues = s.filterService.ApplySportFilter(venues, args.Query)
		venues = s.filterService.ApplyPriceRule(venues, args.Query)
	}
	return venues
}

func recordDate(date string, out *toolOutcome) {
	if date != "" {
		out.suggestedDate = date
	}
}

func marshalToolResult(result interface{}) string {
	data, err := json.Marshal(result)
	if err != nil {
		return toolError("failed to encode tool result: " + err.Error())
	}
	return string(data)
}

func toolError(msg string) string {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return string(data)
}

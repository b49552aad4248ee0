package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"asb-server/api/openai"
	"asb-server/dao/memory"
	"asb-server/models"
	"asb-server/models/venue"
)

const AGENT_FILTER_APPLIED = "OpenAI Agent (with Memory)"
const DEFAULT_SESSION_ID = "default"
const DEFAULT_TIME_OF_DAY = "Afternoon"

// ChatService orchestrates one chat turn: it either delegates to the
// external model with the tool declarations (two rounds: tool calls, then a
// natural-language summary) or falls back to the static filter pipeline.
// Model failures never reach the caller.
type ChatService struct {
	venueDao            *memory.MemoryVenueDAO
	sessionDao          *memory.SessionDAO
	adminState          *memory.AdminState
	filterService       *FilterService
	availabilityService *AvailabilityService
	bookingService      *BookingService
	openaiAPI           openai.OpenAIAPI
	model               string
}

// NewChatService constructs a ChatService. A nil openaiAPI means no
// credential is configured and every turn takes the fallback path.
func NewChatService(
	venueDao *memory.MemoryVenueDAO,
	sessionDao *memory.SessionDAO,
	adminState *memory.AdminState,
	filterService *FilterService,
	availabilityService *AvailabilityService,
	bookingService *BookingService,
	openaiAPI openai.OpenAIAPI,
	model string,
) *ChatService {
	return &ChatService{
		venueDao:            venueDao,
		sessionDao:          sessionDao,
		adminState:          adminState,
		filterService:       filterService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		openaiAPI:           openaiAPI,
		model:               model,
	}
}

// Chat handles one inbound message.
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if s.openaiAPI == nil {
		return s.staticChatFallback(req)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = DEFAULT_SESSION_ID
	}

	s.sessionDao.InitIfAbsent(sessionID, s.systemMessage(req))
	s.sessionDao.Append(sessionID, openai.ChatMessage{Role: openai.RoleUser, Content: req.Message})

	// Round 1: full history plus tool declarations.
	first, err := s.openaiAPI.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model:      s.model,
		Messages:   s.sessionDao.History(sessionID),
		Tools:      agentTools(),
		ToolChoice: "auto",
	})
	if err != nil || len(first.Choices) == 0 || first.Choices[0].Message == nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("agent round 1 failed, using static fallback")
		return s.staticChatFallback(req)
	}

	msg := first.Choices[0].Message
	var out toolOutcome
	var botText string

	if len(msg.ToolCalls) > 0 {
		s.sessionDao.Append(sessionID, *msg)
		for _, tc := range msg.ToolCalls {
			content := s.executeToolCall(tc, &out)
			s.sessionDao.Append(sessionID, openai.ChatMessage{
				Role:       openai.RoleTool,
				Content:    content,
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}

		// Round 2: resend the augmented history, without tools, for the
		// user-visible summary.
		second, err := s.openaiAPI.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: s.sessionDao.History(sessionID),
		})
		if err != nil || len(second.Choices) == 0 || second.Choices[0].Message == nil {
			log.Warn().Err(err).Str("session", sessionID).Msg("agent round 2 failed, using static fallback")
			return s.staticChatFallback(req)
		}
		final := second.Choices[0].Message
		botText = final.Content
		s.sessionDao.Append(sessionID, *final)
	} else {
		botText = msg.Content
		s.sessionDao.Append(sessionID, *msg)
	}

	venues := out.venues
	if venues == nil {
		venues = []venue.Venue{}
	}

	return &models.ChatResponse{
		BotMessage:       botText,
		Venues:           venues,
		FilterApplied:    AGENT_FILTER_APPLIED,
		SuggestedDate:    out.suggestedDate,
		BookingConfirmed: out.bookingConfirmed,
		BookingContext:   out.bookingContext,
		Slots:            out.slots,
	}, nil
}

// staticChatFallback is the deterministic non-AI path: the filter pipeline
// applied directly, with the raw query echoed as the applied filter.
func (s *ChatService) staticChatFallback(req models.ChatRequest) (*models.ChatResponse, error) {
	if s.venueDao.Count() == 0 {
		return nil, ErrDataUnavailable
	}

	effectiveTime := s.effectiveTimeOfDay(req)
	venues := s.filterService.Recommend(s.venueDao.GetAllVenues(), req.Message, req.Location, effectiveTime)
	botMessage := s.filterService.GenerateBotMessage(venues, req.Message, effectiveTime)

	return &models.ChatResponse{
		BotMessage:    botMessage,
		Venues:        venues,
		FilterApplied: req.Message,
	}, nil
}

// effectiveTimeOfDay resolves the admin override, then the request hint.
func (s *ChatService) effectiveTimeOfDay(req models.ChatRequest) string {
	if override := s.adminState.TimeOverride(); override != "" {
		return override
	}
	if req.TimeOfDay != "" {
		return req.TimeOfDay
	}
	return DEFAULT_TIME_OF_DAY
}

// systemMessage seeds a session with the booking assistant instructions.
func (s *ChatService) systemMessage(req models.ChatRequest) openai.ChatMessage {
	now := time.Now()
	return openai.ChatMessage{
		Role: openai.RoleSystem,
		Content: fmt.Sprintf(
			"You are an AI Sports Booking Assistant for Amman, Jordan. Today is %s. "+
				"You help users find sports venues, check availability, and book slots. "+
				"If a user mentions 'tomorrow', 'next Friday', etc., calculate the exact date relative to %s. "+
				"Always pass the 'date' parameter to tools whenever a date is mentioned or implied. "+
				"CRITICAL: To actually finalize a booking, you MUST call the 'create_booking' tool. "+
				"Never tell the user a booking is confirmed unless that tool has returned success. "+
				"Current system time context: %s. "+
				"Be friendly and concise.",
			now.Format("Monday, 2006-01-02"),
			now.Format("2006-01-02"),
			s.effectiveTimeOfDay(req),
		),
	}
}

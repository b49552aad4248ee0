package di

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"asb-server/api/openai"
	"asb-server/config"
	"asb-server/dao/memory"
	"asb-server/server"
	"asb-server/server/handlers"
	"asb-server/service"
)

// Container holds all application dependencies.
type Container struct {
	VenueDao            *memory.MemoryVenueDAO
	SessionDao          *memory.SessionDAO
	AdminState          *memory.AdminState
	OpenAIAPI           openai.OpenAIAPI
	FilterService       *service.FilterService
	AvailabilityService *service.AvailabilityService
	BookingService      *service.BookingService
	ChatService         *service.ChatService
	VenueHandler        *handlers.VenueHandler
	ChatHandler         *handlers.ChatHandler
	BookingHandler      *handlers.BookingHandler
	AdminHandler        *handlers.AdminHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	HttpServer          *server.SportsBookingHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Info().Str("port", cfg.Port).Msg("initializing container")

	// Process-wide state: venue catalog, session histories, admin override.
	venueDao := memory.LoadMemoryVenueDAO(cfg.VenuesPath)
	sessionDao := memory.NewSessionDAO(config.MAX_CHAT_HISTORY)
	adminState := memory.NewAdminState()

	// The agent path only exists when a credential is configured; chat
	// degrades to the static filter pipeline otherwise.
	var openaiAPI openai.OpenAIAPI
	if cfg.OpenAIAPIKey != "" {
		openaiAPI = openai.NewOpenAIApiClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey,
			cfg.OpenAITimeout, config.OPENAI_RETRY_COUNT)
		log.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI agent enabled")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, chat uses static filtering only")
	}

	filterService := service.NewFilterService()
	availabilityService := service.NewAvailabilityService(venueDao)
	bookingService := service.NewBookingService(venueDao)
	chatService := service.NewChatService(venueDao, sessionDao, adminState,
		filterService, availabilityService, bookingService, openaiAPI, cfg.OpenAIModel)

	venueHandler := handlers.NewVenueHandler(venueDao, availabilityService)
	chatHandler := handlers.NewChatHandler(chatService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(adminState)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, chatHandler, bookingHandler, adminHandler, muxRouter)
	httpServer := server.NewSportsBookingHttpServer(router, muxRouter, cfg.Port)

	return &Container{
		VenueDao:            venueDao,
		SessionDao:          sessionDao,
		AdminState:          adminState,
		OpenAIAPI:           openaiAPI,
		FilterService:       filterService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		ChatService:         chatService,
		VenueHandler:        venueHandler,
		ChatHandler:         chatHandler,
		BookingHandler:      bookingHandler,
		AdminHandler:        adminHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		HttpServer:          httpServer,
	}
}

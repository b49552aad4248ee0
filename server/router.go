package server

import (
	"github.com/gorilla/mux"

	"asb-server/server/handlers"
)

type Router struct {
	venueHandler   *handlers.VenueHandler
	chatHandler    *handlers.ChatHandler
	bookingHandler *handlers.BookingHandler
	adminHandler   *handlers.AdminHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	chatHandler *handlers.ChatHandler,
	bookingHandler *handlers.BookingHandler,
	adminHandler *handlers.AdminHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:   venueHandler,
		chatHandler:    chatHandler,
		bookingHandler: bookingHandler,
		adminHandler:   adminHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestLoggingMiddleware)

	r.router.HandleFunc("/", r.venueHandler.Health).Methods("GET")
	r.router.HandleFunc("/venues", r.venueHandler.GetAllVenues).Methods("GET")

	// expects ?date={YYYY-MM-DD}, defaults to today
	r.router.HandleFunc("/availability/{venue_name}", r.venueHandler.GetAvailability).Methods("GET")

	r.router.HandleFunc("/chat", r.chatHandler.Chat).Methods("POST")
	r.router.HandleFunc("/booking", r.bookingHandler.CreateBooking).Methods("POST")
	r.router.HandleFunc("/whatsapp/connect", r.bookingHandler.WhatsAppConnect).Methods("POST")

	r.router.HandleFunc("/admin/metrics", r.adminHandler.GetMetrics).Methods("GET")
	r.router.HandleFunc("/admin/metrics/chart", r.adminHandler.GetMetricsChart).Methods("GET")
	r.router.HandleFunc("/admin/settings", r.adminHandler.UpdateSettings).Methods("POST")
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"asb-server/models"
	"asb-server/service"
)

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid chat request body", http.StatusBadRequest)
		return
	}

	resp, err := h.chatService.Chat(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDataUnavailable) {
			http.Error(w, "Venue data not available", http.StatusInternalServerError)
			return
		}
		log.Error().Err(err).Msg("chat turn failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

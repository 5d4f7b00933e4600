package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat API on the given router.
func RegisterRoutes(r chi.Router, pipeline *Pipeline) {
	r.Post("/api/chat", handleChat(pipeline))
	r.Get("/api/chat/ws", handleWebSocket(pipeline))
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

func handleChat(pipeline *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
		}

		envelope, err := pipeline.Process(r.Context(), req.Message, req.ConversationID)
		if err != nil {
			writePipelineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelope)
	}
}

// writePipelineError maps pipeline failures to transport responses. The
// body is a generic failure; no partial answer is fabricated.
func writePipelineError(w http.ResponseWriter, err error) {
	log.Printf("chat: pipeline error: %v", err)

	switch {
	case errors.Is(err, ErrEmptyMessage):
		http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
	case errors.Is(err, ErrClassification), errors.Is(err, ErrGeneration):
		http.Error(w, `{"error":"Failed to process message"}`, http.StatusBadGateway)
	default:
		http.Error(w, `{"error":"Failed to process message"}`, http.StatusInternalServerError)
	}
}

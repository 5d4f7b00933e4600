package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsError is the outgoing frame for per-message failures. Successful
// messages receive the regular Envelope.
type wsError struct {
	Type           string `json:"type"`
	Error          string `json:"error"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// handleWebSocket runs the chat pipeline over a WebSocket connection.
// Frames use the same request/envelope shapes as the REST endpoint.
func handleWebSocket(pipeline *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			var req chatRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, "", "invalid message format")
				continue
			}
			if req.Message == "" {
				sendWSError(conn, req.ConversationID, "message is required")
				continue
			}

			envelope, err := pipeline.Process(r.Context(), req.Message, req.ConversationID)
			if err != nil {
				log.Printf("chat: pipeline error: %v", err)
				sendWSError(conn, req.ConversationID, "Failed to process message")
				continue
			}

			if err := conn.WriteJSON(envelope); err != nil {
				log.Printf("chat: websocket write: %v", err)
				return
			}
		}
	}
}

func sendWSError(conn *websocket.Conn, conversationID, message string) {
	frame := wsError{
		Type:           "error",
		Error:          message,
		ConversationID: conversationID,
	}
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("chat: websocket write error: %v", err)
	}
}

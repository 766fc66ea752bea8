package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatService "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
	"github.com/dakotaradigan/resume-site/backend/pkg/utils"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WebSocketHandler drives a widget over a single WebSocket connection.
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a WebSocket handler.
func NewWebSocketHandler(chatSvc *chatService.Service) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes registers the WebSocket route.
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/sessions/{sessionID}/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// wsConn serialises writes; gorilla allows one concurrent writer.
type wsConn struct {
	conn      *websocket.Conn
	sessionID string
	mu        sync.Mutex
}

func (c *wsConn) send(msgType string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	msg := outgoingMessage{
		Type:      msgType,
		SessionID: c.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("[websocket] write %s failed session=%s: %v", msgType, c.sessionID, err)
	}
}

func (c *wsConn) sendError(message string) {
	c.send("error", map[string]string{"message": message})
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	widget, err := h.chatSvc.Widget(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, StatusFor(err), err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[websocket] new connection for session: %s", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	client := &wsConn{conn: conn, sessionID: sessionID}

	// Subscribe before the snapshot so no event falls between the two.
	events, unsubscribe := widget.Subscribe(32)
	defer unsubscribe()

	client.send("snapshot", map[string]any{
		"state":       widget.State(),
		"transcript":  widget.Transcript(),
		"suggestions": widget.Suggestions(),
	})

	go h.forwardEvents(ctx, client, events)
	go h.pingLoop(ctx, conn)

	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		h.handleMessage(client, widget, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *wsConn, widget *chatService.Widget, msg *inboundMessage) {
	var payload textPayload
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			client.sendError("invalid " + msg.Type + " payload")
			return
		}
	}

	var err error
	switch msg.Type {
	case "submit":
		_, err = widget.Submit(payload.Text)
	case "suggestion":
		_, err = widget.SelectSuggestion(payload.Text)
	default:
		client.sendError("unsupported message type: " + msg.Type)
		return
	}

	if err != nil {
		client.sendError(err.Error())
	}
}

// forwardEvents relays widget events until the feed closes or ctx ends.
func (h *WebSocketHandler) forwardEvents(ctx context.Context, client *wsConn, events <-chan chatService.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				client.mu.Lock()
				client.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(wsWriteTimeout))
				client.mu.Unlock()
				return
			}
			client.send(string(ev.Type), ev)
		}
	}
}

func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}

package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/dakotaradigan/resume-site/backend/internal/model/chat"
	chatservice "github.com/dakotaradigan/resume-site/backend/internal/service/chat"
)

type testFrame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func setupWebSocket(t *testing.T) (*httptest.Server, *chatservice.Service) {
	t.Helper()
	chatSvc := chatservice.NewService(chatservice.NewPlaceholderResponder(time.Millisecond), chatservice.Config{})

	r := chi.NewRouter()
	NewWebSocketHandler(chatSvc).RegisterWebSocketRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/" + sessionID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) testFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame testFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

func readUntil(t *testing.T, conn *websocket.Conn, match func(testFrame) bool) testFrame {
	t.Helper()
	for i := 0; i < 10; i++ {
		if frame := readFrame(t, conn); match(frame) {
			return frame
		}
	}
	t.Fatal("expected frame never arrived")
	return testFrame{}
}

func TestWebSocketSubmitRoundTrip(t *testing.T) {
	srv, svc := setupWebSocket(t)
	session, _ := svc.CreateSession(context.Background())
	conn := dial(t, srv, session.ID)

	snapshot := readFrame(t, conn)
	if snapshot.Type != "snapshot" || snapshot.SessionID != session.ID {
		t.Fatalf("expected snapshot frame, got %+v", snapshot)
	}

	if err := conn.WriteJSON(map[string]any{"type": "submit", "data": map[string]string{"text": "Tell me about your experience"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	frame := readUntil(t, conn, func(f testFrame) bool {
		if f.Type != string(chatservice.EventMessage) {
			return false
		}
		var ev chatservice.Event
		if err := json.Unmarshal(f.Data, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		return ev.Message != nil && ev.Message.Role == chat.RoleAssistant
	})

	var ev chatservice.Event
	json.Unmarshal(frame.Data, &ev)
	if !strings.Contains(ev.Message.Content, "Tell me about your experience") {
		t.Fatalf("unexpected reply: %s", ev.Message.Content)
	}
}

func TestWebSocketReportsRejections(t *testing.T) {
	srv, svc := setupWebSocket(t)
	session, _ := svc.CreateSession(context.Background())
	conn := dial(t, srv, session.ID)
	readFrame(t, conn)

	conn.WriteJSON(map[string]any{"type": "submit", "data": map[string]string{"text": " "}})
	frame := readFrame(t, conn)
	if frame.Type != "error" || !strings.Contains(string(frame.Data), chatservice.ErrEmptyInput.Error()) {
		t.Fatalf("expected empty input error, got %+v", frame)
	}

	conn.WriteJSON(map[string]any{"type": "shout"})
	frame = readFrame(t, conn)
	if frame.Type != "error" || !strings.Contains(string(frame.Data), "unsupported message type") {
		t.Fatalf("expected unsupported type error, got %+v", frame)
	}

	conn.WriteJSON(map[string]any{"type": "suggestion", "data": map[string]string{"text": "nope"}})
	frame = readFrame(t, conn)
	if frame.Type != "error" || !strings.Contains(string(frame.Data), chatservice.ErrUnknownSuggestion.Error()) {
		t.Fatalf("expected unknown suggestion error, got %+v", frame)
	}
}

func TestWebSocketClosedSessionSendsClosed(t *testing.T) {
	srv, svc := setupWebSocket(t)
	session, _ := svc.CreateSession(context.Background())
	conn := dial(t, srv, session.ID)
	readFrame(t, conn)

	if err := svc.CloseSession(context.Background(), session.ID); err != nil {
		t.Fatalf("CloseSession err: %v", err)
	}

	frame := readFrame(t, conn)
	if frame.Type != string(chatservice.EventClosed) {
		t.Fatalf("expected closed frame, got %+v", frame)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	srv, _ := setupWebSocket(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/missing/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
}

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/jonathan/portfolio-terminal/internal/terminal"
)

// wsMessage is the envelope for every websocket frame in both directions.
// Clients send "input" and "ping"; the server sends "transcript", "close",
// "pong" and "error".
type wsMessage struct {
	Type       string               `json:"type"`
	Content    string               `json:"content,omitempty"`
	Transcript *terminal.Transcript `json:"transcript,omitempty"`
	Effect     *terminal.Effect     `json:"effect,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func transcriptMessage(t terminal.Transcript, effect *terminal.Effect) wsMessage {
	return wsMessage{Type: "transcript", Transcript: &t, Effect: effect}
}

// handleTerminalWS runs one terminal session over a websocket. The session
// lives exactly as long as the connection.
func (s *Server) handleTerminalWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.AllowedOrigins,
	})
	if err != nil {
		s.logger.Error("failed to accept websocket", "error", err, "remote", r.RemoteAddr)
		return
	}
	defer ws.CloseNow() //nolint:errcheck

	ctx := r.Context()
	session := terminal.NewSession(s.interp)
	s.logger.Info("websocket terminal opened", "remote", r.RemoteAddr)

	if err := wsjson.Write(ctx, ws, transcriptMessage(session.Transcript(), nil)); err != nil {
		s.logger.Debug("failed to send initial transcript", "error", err)
		return
	}

	for {
		var msg wsMessage
		if err := wsjson.Read(ctx, ws, &msg); err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				s.logger.Warn("websocket read error", "error", err)
			}
			return
		}

		switch msg.Type {
		case "input":
			effect, err := session.Submit(msg.Content)
			if err != nil {
				return
			}
			if err := wsjson.Write(ctx, ws, transcriptMessage(session.Transcript(), &effect)); err != nil {
				s.logger.Debug("failed to send transcript", "error", err)
				return
			}
			if effect == terminal.EffectClose {
				if err := wsjson.Write(ctx, ws, wsMessage{Type: "close"}); err != nil {
					s.logger.Debug("failed to send close", "error", err)
				}
				s.logger.Info("websocket terminal closed", "remote", r.RemoteAddr)
				ws.Close(websocket.StatusNormalClosure, "session ended") //nolint:errcheck
				return
			}
		case "ping":
			if err := wsjson.Write(ctx, ws, wsMessage{Type: "pong"}); err != nil {
				return
			}
		default:
			if err := wsjson.Write(ctx, ws, wsMessage{Type: "error", Error: "unknown message type: " + msg.Type}); err != nil {
				return
			}
		}
	}
}

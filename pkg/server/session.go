package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

// Session is one live-update connection: a component controller wired
// to a per-connection state Dictionary, streaming merge patches out and
// accepting state writes in.
type Session struct {
	id     string
	conn   *websocket.Conn
	config *Config
	logger *slog.Logger

	state *reactive.Dictionary
	el    *component.El

	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newSession(id string, conn *websocket.Conn, cfg *Config, logger *slog.Logger) *Session {
	return &Session{
		id:     id,
		conn:   conn,
		config: cfg,
		logger: logger.With("session", id),
		send:   make(chan []byte, cfg.SendBuffer),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the session's state dictionary.
func (s *Session) State() *reactive.Dictionary { return s.state }

// Close tears down the connection and the component controller.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.el != nil {
			s.el.Destroy()
		}
		s.conn.Close()
		s.logger.Info("session closed")
	})
}

// sendPatches queues a patch frame; a session too slow to drain its
// send buffer is dropped rather than blocking propagation.
func (s *Session) sendPatches(patches []vdom.Patch) {
	data, err := EncodeFrame(&Frame{Type: FramePatches, Patches: patches})
	if err != nil {
		s.logger.Error("patch frame encode failed", "error", err)
		return
	}
	select {
	case s.send <- data:
	case <-s.done:
	default:
		s.logger.Warn("send buffer full, dropping session")
		s.Close()
	}
}

func (s *Session) sendError(message string) {
	data, err := EncodeFrame(&Frame{Type: FrameError, Message: message})
	if err != nil {
		return
	}
	select {
	case s.send <- data:
	case <-s.done:
	default:
	}
}

// readLoop consumes frames until the connection dies. Event frames
// write the session state, which drives re-render and patch delivery.
func (s *Session) readLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.PongTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.config.PongTimeout))
		return nil
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("bad frame", "error", err)
			s.sendError("invalid frame")
			continue
		}

		switch frame.Type {
		case FrameEvent:
			s.logger.Debug("state write", "key", frame.Event.Key)
			s.state.Set(frame.Event.Key, frame.Event.Value)
		default:
			s.logger.Warn("unexpected frame from client", "type", frame.Type)
		}
	}
}

// writeLoop drains the send queue and keeps the connection alive with
// pings.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.PingInterval)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Error("write error", "error", err)
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

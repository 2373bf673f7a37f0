// Package server hosts live components over HTTP: the index route
// serves the initial server-rendered HTML, and a WebSocket route
// streams merge patches to the client while accepting state writes
// back. Each connection gets its own state Dictionary and component
// controller, so sessions are isolated.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/dom"
	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/render"
)

// AppFunc builds the component and its construction options for one
// session. The state dictionary is the session's writable surface:
// inbound socket events land there, and components reference it.
type AppFunc func(state *reactive.Dictionary) (component.Component, component.Options)

// Config configures the server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// InitialState seeds every session's state dictionary.
	InitialState map[string]any

	// Observers are attached to every session's controller.
	Observers []component.Observer

	// Logger is the structured logger. Defaults to slog.Default.
	Logger *slog.Logger

	// SendBuffer is the per-session outbound queue length.
	SendBuffer int

	// MaxMessageSize caps inbound socket messages in bytes.
	MaxMessageSize int64

	// PingInterval, PongTimeout and WriteTimeout tune keepalive.
	PingInterval time.Duration
	PongTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c *Config) fillDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.SendBuffer == 0 {
		c.SendBuffer = 64
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = 64 << 10
	}
	if c.PingInterval == 0 {
		c.PingInterval = 30 * time.Second
	}
	if c.PongTimeout == 0 {
		c.PongTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
}

// Server hosts one live component application.
type Server struct {
	config   Config
	app      AppFunc
	logger   *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader
	renderer *render.Renderer

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a server for app.
func New(app AppFunc, config Config) *Server {
	config.fillDefaults()

	s := &Server{
		config:   config,
		app:      app,
		logger:   config.Logger,
		renderer: render.New(render.Config{}),
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleLive)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r
	return s
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.router)
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// buildController assembles the per-session mount shell and controller.
func (s *Server) buildController(state *reactive.Dictionary, opts []component.Option) (*component.El, *dom.Element, error) {
	registry := dom.NewRegistry()
	root := dom.NewElement("div", "root")
	registry.Add(root)

	comp, compOpts := s.app(state)

	elOpts := append([]component.Option{
		component.WithLogger(s.logger),
		component.WithMerger(component.TreeMerger()),
	}, opts...)
	for _, o := range s.config.Observers {
		elOpts = append(elOpts, component.WithObserver(o))
	}

	el, err := component.New(comp, registry, "#root", compOpts, elOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("server: build controller: %w", err)
	}
	return el, root, nil
}

// handleIndex serves the initial server-rendered page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := reactive.NewDictionary(s.config.InitialState)
	el, root, err := s.buildController(state, nil)
	if err != nil {
		s.logger.Error("index render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	defer el.Destroy()

	html, err := s.renderer.ToString(root.FirstChild())
	if err != nil {
		s.logger.Error("serialize failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><body><div id=\"root\">%s</div></body></html>\n", html)
}

// handleLive upgrades to a WebSocket and runs the session loops.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	sess := newSession(newSessionID(), conn, &s.config, s.logger)
	sess.state = reactive.NewDictionary(s.config.InitialState)

	el, _, err := s.buildController(sess.state, []component.Option{
		component.WithPatchSink(sess.sendPatches),
	})
	if err != nil {
		s.logger.Error("session setup failed", "error", err)
		conn.Close()
		return
	}
	sess.el = el

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.logger.Info("session started", "session", sess.id)

	go sess.writeLoop()
	sess.readLoop()

	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
}

func newSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("s-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

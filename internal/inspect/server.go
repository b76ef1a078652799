// Package inspect serves live scheduler statistics over HTTP and websocket.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	scene "github.com/grindlemire/go-scene"
)

const (
	pingInterval = 30 * time.Second
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
)

// Sample is one page's stats at the end of a tick.
type Sample struct {
	Page  string      `json:"page"`
	Time  time.Time   `json:"time"`
	Stats scene.Stats `json:"stats"`
}

// Message is the envelope written to websocket clients.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// write serializes writes; a websocket connection allows one writer at a time.
func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}

// Server broadcasts published samples to every connected client.
type Server struct {
	addr       string
	server     *http.Server
	listener   net.Listener
	upgrader   websocket.Upgrader
	clients    map[*client]bool
	clientsMu  sync.RWMutex
	maxClients int
	samples    chan Sample
	stop       chan struct{}
	stopOnce   sync.Once
	startOnce  sync.Once
	latest     map[string]Sample
	mu         sync.RWMutex
	logger     *slog.Logger
}

// NewServer creates a server that will listen on addr, for example
// "127.0.0.1:7070". Only same-host origins may open a websocket.
func NewServer(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin:     sameHost,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients:    make(map[*client]bool),
		maxClients: 32,
		samples:    make(chan Sample, 256),
		stop:       make(chan struct{}),
		latest:     make(map[string]Sample),
		logger:     logger,
	}
}

func sameHost(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// Handler returns the HTTP routes and starts broadcasting.
func (s *Server) Handler() http.Handler {
	s.startOnce.Do(func() { go s.broadcast() })

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("inspect listen: %w", err)
	}
	s.listener = l
	s.server = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("inspect server stopped", "error", err)
		}
	}()
	s.logger.Info("inspector listening", "addr", l.Addr().String())
	return nil
}

// Addr returns the bound address once Start succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop closes every client and shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Publish hands a sample to the broadcaster. It never blocks; samples are
// dropped while the buffer is full.
func (s *Server) Publish(page string, st scene.Stats) {
	select {
	case s.samples <- Sample{Page: page, Time: time.Now(), Stats: st}:
	default:
	}
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Latest returns the last sample of every page, ordered by page name.
func (s *Server) Latest() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Sample, 0, len(s.latest))
	for _, sample := range s.latest {
		out = append(out, sample)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Page < out[j].Page })
	return out
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Message{Type: "stats", Data: s.Latest()})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.ClientCount() >= s.maxClients {
		http.Error(w, "Maximum clients reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	c := &client{conn: conn}
	s.clientsMu.Lock()
	s.clients[c] = true
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, c)
		s.clientsMu.Unlock()
	}()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// Reading is what notices a client going away.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					s.logger.Debug("websocket read error", "error", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			return
		case <-s.stop:
			c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (s *Server) broadcast() {
	for {
		select {
		case sample := <-s.samples:
			s.mu.Lock()
			s.latest[sample.Page] = sample
			s.mu.Unlock()
			s.broadcastMessage(Message{Type: "sample", Data: sample})
		case <-s.stop:
			return
		}
	}
}

func (s *Server) broadcastMessage(msg Message) {
	s.clientsMu.RLock()
	if len(s.clients) == 0 {
		s.clientsMu.RUnlock()
		return
	}
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.clientsMu.RUnlock()

	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("marshal inspect message", "error", err)
		return
	}

	var failed []*client
	for _, c := range clients {
		if err := c.write(websocket.TextMessage, data); err != nil {
			c.conn.Close()
			failed = append(failed, c)
		}
	}
	if len(failed) > 0 {
		s.clientsMu.Lock()
		for _, c := range failed {
			delete(s.clients, c)
		}
		s.clientsMu.Unlock()
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>scene inspector</title></head>
<body>
<pre id="out">waiting for frames...</pre>
<script>
const latest = {};
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type !== "sample") return;
  latest[msg.data.page] = msg.data.stats;
  document.getElementById("out").textContent = JSON.stringify(latest, null, 2);
};
</script>
</body>
</html>
`

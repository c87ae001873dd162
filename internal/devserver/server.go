// Package devserver serves a component gallery over HTTP with live
// reload: static files from the project directory, a reload script
// injected into HTML responses, and a websocket endpoint that broadcasts
// reload messages when the watcher reports changes.
package devserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/loomui/loom/pkg/styling"

	// Registers the built-in component stylesheet.
	_ "github.com/loomui/loom/pkg/components"
)

// ReloadPath is the websocket endpoint the injected script connects to.
const ReloadPath = "/__loom_reload"

// StylesPath serves every stylesheet registered with pkg/styling.
const StylesPath = "/__loom_styles.css"

const reloadScript = `<script>(function(){
var proto = location.protocol === "https:" ? "wss://" : "ws://";
var ws = new WebSocket(proto + location.host + "` + ReloadPath + `");
ws.onmessage = function(ev){
  var msg = JSON.parse(ev.data);
  if (msg.type === "RELOAD") location.reload();
};
})();</script>`

// Server is the gallery dev server.
type Server struct {
	dir      string
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool

	httpServer *http.Server
}

// New builds a server rooted at dir. A nil logger discards output.
func New(dir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		dir:    dir,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the server's HTTP handler: the reload endpoint plus the
// static gallery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(ReloadPath, s.handleReloadSocket)
	mux.HandleFunc(StylesPath, s.handleStyles)
	mux.HandleFunc("/", s.handleStatic)
	return mux
}

// ListenAndServe blocks until ctx is canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, host string, port int) error {
	addr := net.JoinHostPort(host, fmt.Sprint(port))
	s.httpServer = &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() { errc <- s.httpServer.ListenAndServe() }()
	s.logger.Info("dev server listening", "addr", "http://"+addr)

	select {
	case <-ctx.Done():
		s.closeClients()
		return s.httpServer.Shutdown(context.Background())
	case err := <-errc:
		return err
	}
}

// NotifyReload broadcasts a reload message to every connected client.
func (s *Server) NotifyReload(reason string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return
	}
	s.logger.Info("reloading clients", "clients", len(s.clients), "reason", reason)
	msg := map[string]any{"type": "RELOAD", "reason": reason}
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Warn("reload send failed", "err", err)
		}
	}
}

// ClientCount returns the number of connected reload clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read failed", "err", err)
			}
			return
		}
		if msg["type"] == "HELLO" {
			conn.WriteJSON(map[string]any{"type": "ACK"})
		}
	}
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, styling.AllCSS())
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))
	info, err := os.Stat(name)
	if err == nil && info.IsDir() {
		name = filepath.Join(name, "index.html")
	}

	if strings.HasSuffix(name, ".html") {
		body, err := os.ReadFile(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(injectReload(body))
		return
	}
	http.ServeFile(w, r, name)
}

// injectReload splices the reload script ahead of </body>, or appends it
// when the page has no body close tag.
func injectReload(body []byte) []byte {
	if i := bytes.LastIndex(body, []byte("</body>")); i >= 0 {
		out := make([]byte, 0, len(body)+len(reloadScript))
		out = append(out, body[:i]...)
		out = append(out, reloadScript...)
		out = append(out, body[i:]...)
		return out
	}
	return append(body, reloadScript...)
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]bool)
}

package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/view"
)

// SessionParam is the query parameter carrying the gallery token.
const SessionParam = "session"

const maxMessageSize = 4096

// helloMessage is sent once, right after the client claims its gallery.
type helloMessage struct {
	Session  string            `json:"session"`
	State    string            `json:"state"`
	Bindings []gallery.Binding `json:"bindings"`
}

// updateMessage answers every client event.
type updateMessage struct {
	Ops          []view.Op `json:"ops"`
	State        string    `json:"state"`
	Index        int       `json:"index"`
	LightboxOpen bool      `json:"lightboxOpen"`
	Handled      bool      `json:"handled"`
	Error        string    `json:"error,omitempty"`
}

// Handler upgrades gallery clients and runs their sessions.
type Handler struct {
	registry *Registry
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHandler creates a websocket handler over registry. Unless
// allowAllOrigins is set, only same-origin clients may connect.
func NewHandler(registry *Registry, allowAllOrigins bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{registry: registry, logger: logger, conns: make(map[*websocket.Conn]struct{})}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(SessionParam)
	g, ok := h.registry.Claim(token)
	if !ok {
		http.Error(w, "gallery session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.String("session", token), zap.Error(err))
		return
	}
	h.track(conn, true)
	defer func() {
		h.track(conn, false)
		conn.Close()
	}()

	h.run(conn, token, g)
}

// Close ends every open session. Hijacked websocket connections are not
// closed by http.Server.Shutdown, so the server calls this on shutdown.
func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
	}
}

// Active reports the number of open sessions.
func (h *Handler) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Handler) track(conn *websocket.Conn, open bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if open {
		h.conns[conn] = struct{}{}
	} else {
		delete(h.conns, conn)
	}
}

// run drives one claimed gallery until the client goes away.
func (h *Handler) run(conn *websocket.Conn, token string, g *gallery.Gallery) {
	log := h.logger.With(zap.String("session", token))
	conn.SetReadLimit(maxMessageSize)

	rec := view.NewRecorder()
	g.Attach(rec)

	bindings := g.Bindings()
	if bindings == nil {
		bindings = []gallery.Binding{}
	}
	hello := helloMessage{Session: token, State: g.State().String(), Bindings: bindings}
	if err := conn.WriteJSON(hello); err != nil {
		log.Warn("websocket write", zap.Error(err))
		return
	}
	log.Debug("gallery session started", zap.Int("images", g.Len()))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			log.Debug("gallery session ended")
			return
		}

		var ev gallery.Event
		resp := updateMessage{}
		if err := json.Unmarshal(msg, &ev); err != nil {
			resp.Error = "invalid event"
		} else {
			resp.Handled = g.Dispatch(ev)
		}
		resp.Ops = rec.Flush()
		if resp.Ops == nil {
			resp.Ops = []view.Op{}
		}
		resp.State = g.State().String()
		resp.Index = g.ActiveIndex()
		resp.LightboxOpen = g.LightboxOpen()

		if err := conn.WriteJSON(resp); err != nil {
			log.Warn("websocket write", zap.Error(err))
			return
		}
	}
}

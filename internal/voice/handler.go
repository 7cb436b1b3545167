package voice

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

const writeWait = 10 * time.Second

// Frame is every server to client websocket message.
type Frame struct {
	Type       string                 `json:"type"`
	ID         uint64                 `json:"id,omitempty"`
	At         float64                `json:"at,omitempty"`
	SampleRate int                    `json:"sampleRate,omitempty"`
	Data       []byte                 `json:"data,omitempty"`
	Status     Status                 `json:"status,omitempty"`
	Mode       companion.BehaviorMode `json:"mode,omitempty"`
	Text       *string                `json:"text,omitempty"`
	Levels     []float64              `json:"levels,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// control is a client to server text frame.
type control struct {
	Type string `json:"type"`
	ID   uint64 `json:"id"`
}

// client writes frames to one websocket. It is the session's Observer and the player's Sink.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(f)
}

func (c *client) Play(id uint64, at time.Duration, pcm []byte) error {
	return c.write(Frame{Type: "audio", ID: id, At: at.Seconds(), SampleRate: OutputSampleRate, Data: pcm})
}

func (c *client) Stop(id uint64) error {
	return c.write(Frame{Type: "stop", ID: id})
}

func (c *client) OnStatus(s Status) { _ = c.write(Frame{Type: "status", Status: s}) }

func (c *client) OnMode(m companion.BehaviorMode) { _ = c.write(Frame{Type: "mode", Mode: m}) }

func (c *client) OnTranscript(t string) { _ = c.write(Frame{Type: "transcript", Text: &t}) }

func (c *client) OnLevels(l []float64) { _ = c.write(Frame{Type: "levels", Levels: l}) }

type Handler struct {
	dialer   Dialer
	modes    companion.ModeStore
	upgrader websocket.Upgrader
}

func NewHandler(dialer Dialer, modes companion.ModeStore, allowedOrigins []string) *Handler {
	return &Handler{
		dialer: dialer,
		modes:  modes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  BlockSize * 4,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Connect upgrades to a websocket and runs a voice session over it. Binary frames carry
// float32 LE mic blocks; text frames carry start, stop and ended controls.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer ws.Close()

	c := &client{conn: ws}
	sess := NewSession(claims.UserID, h.dialer, h.modes, c, NewPlayer(NewClock(), c))
	defer sess.Stop()

	start := func() {
		if err := sess.Start(r.Context()); err != nil && !errors.Is(err, ErrAlreadyStarted) {
			_ = c.write(Frame{Type: "error", Error: "could not start voice session"})
		}
	}
	start()

	for {
		mt, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("Voice websocket closed unexpectedly")
			}
			return
		}

		switch mt {
		case websocket.BinaryMessage:
			sess.PushCapture(DecodeFloat32LE(data))
		case websocket.TextMessage:
			var ctl control
			if err := json.Unmarshal(data, &ctl); err != nil {
				continue
			}
			switch ctl.Type {
			case "start":
				start()
			case "stop":
				sess.Stop()
			case "ended":
				sess.Player().Ended(ctl.ID)
			}
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/ws", h.Connect)
	return r
}

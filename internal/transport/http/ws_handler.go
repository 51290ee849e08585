package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/domain"
)

// defaultWriteWait bounds a single websocket write. A client that stops reading
// fails the write instead of stalling the controller behind the renderer.
const defaultWriteWait = 10 * time.Second

type WSHandler struct {
	service   *app.QuizService
	upgrader  websocket.Upgrader
	logger    *zap.Logger
	writeWait time.Duration
}

func NewWSHandler(service *app.QuizService, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		service:   service,
		logger:    logger,
		writeWait: defaultWriteWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Index  *int   `json:"index"`
	Option string `json:"option"`
}

// ServeWS upgrades HTTP requests to websockets and binds each connection to one quiz controller.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	catalogID := r.URL.Query().Get("catalog")
	logger := h.logger.With(zap.String("session", sessionID))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage, 16)
	done := make(chan struct{})
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		if err := writePump(conn, send, done, h.writeWait); err != nil {
			logger.Debug("ws write error", zap.Error(err))
			_ = conn.Close()
		}
	}()
	defer func() {
		close(done)
		<-writerDone
	}()

	renderer := &wsRenderer{send: send, done: writerDone}
	renderer.emit("session", sessionPayload{SessionID: sessionID})

	controller, err := h.service.Open(r.Context(), sessionID, catalogID, renderer)
	if err != nil {
		logger.Error("open quiz session", zap.Error(err))
		renderer.emit("error", errorPayload{Message: err.Error(), Code: errorCode(err)})
		return
	}
	defer h.service.Close(sessionID, controller)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(controller, inbound); err != nil {
			logger.Debug("quiz action rejected", zap.String("type", inbound.Type), zap.Error(err))
			renderer.emit("error", errorPayload{Message: err.Error(), Code: errorCode(err)})
			continue
		}
		renderer.emit("state", controller.Snapshot())
		if err := h.service.Touch(r.Context(), sessionID); err != nil {
			logger.Debug("refresh session marker", zap.Error(err))
		}
	}
}

type jsonWriter interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v any) error
}

// writePump writes queued messages until done is closed, then flushes what is
// already queued, e.g. a final error. Every write gets its own deadline.
func writePump(conn jsonWriter, send <-chan outboundMessage, done <-chan struct{}, writeWait time.Duration) error {
	write := func(msg outboundMessage) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return conn.WriteJSON(msg)
	}
	for {
		select {
		case msg := <-send:
			if err := write(msg); err != nil {
				return err
			}
		case <-done:
			for {
				select {
				case msg := <-send:
					if err := write(msg); err != nil {
						return err
					}
				default:
					return nil
				}
			}
		}
	}
}

func (h *WSHandler) dispatch(controller *app.Controller, inbound inboundMessage) error {
	switch inbound.Type {
	case "start":
		return controller.Start()
	case "restart":
		return controller.Restart()
	case "advance":
		return controller.Advance()
	case "state":
		return nil
	case "select":
		var payload selectPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		if payload.Index != nil {
			return controller.SelectIndex(*payload.Index)
		}
		return controller.SelectOption(payload.Option)
	default:
		return errUnsupportedType
	}
}

var (
	errInvalidPayload  = errors.New("invalid select payload")
	errUnsupportedType = errors.New("unsupported message type")
)

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrSessionClosed):
		return "session_closed"
	case errors.Is(err, domain.ErrOptionNotFound):
		return "option_not_found"
	case errors.Is(err, domain.ErrEmptyCatalog), errors.Is(err, domain.ErrMalformedQuestion):
		return "bad_catalog"
	case errors.Is(err, domain.ErrCatalogNotFound):
		return "catalog_not_found"
	case errors.Is(err, errInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, errUnsupportedType):
		return "unsupported_type"
	default:
		return "internal"
	}
}

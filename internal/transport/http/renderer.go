package http

import (
	"organelle-quiz/internal/domain"
)

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type screenPayload struct {
	Screen domain.Screen `json:"screen"`
}

type lockPayload struct {
	CorrectIndex  int `json:"correctIndex"`
	SelectedIndex int `json:"selectedIndex"`
}

type pulsePayload struct {
	Kind domain.Pulse `json:"kind"`
}

type advancePayload struct {
	Visible bool `json:"visible"`
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
}

type errorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// wsRenderer turns renderer calls into outbound websocket messages.
// Messages are queued for the connection writer; once the writer has stopped they are dropped.
type wsRenderer struct {
	send chan<- outboundMessage
	done <-chan struct{}
}

func (r *wsRenderer) emit(typ string, payload any) {
	select {
	case r.send <- outboundMessage{Type: typ, Payload: payload}:
	case <-r.done:
	}
}

func (r *wsRenderer) ShowScreen(screen domain.Screen) {
	r.emit("screen", screenPayload{Screen: screen})
}

func (r *wsRenderer) RenderQuestion(view domain.QuestionView) {
	r.emit("question", view)
}

func (r *wsRenderer) LockOptions(correctIndex, selectedIndex int) {
	r.emit("lock", lockPayload{CorrectIndex: correctIndex, SelectedIndex: selectedIndex})
}

func (r *wsRenderer) Pulse(kind domain.Pulse) {
	r.emit("pulse", pulsePayload{Kind: kind})
}

func (r *wsRenderer) SetAdvanceVisible(visible bool) {
	r.emit("advance", advancePayload{Visible: visible})
}

func (r *wsRenderer) ShowResults(results domain.Results) {
	r.emit("results", results)
}

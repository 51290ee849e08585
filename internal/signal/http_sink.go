package signal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

// Paths are the fixed LED board endpoints for each signal.
var Paths = map[domain.Signal]string{
	domain.SignalCorrect:        "/acertou",
	domain.SignalIncorrect:      "/errou",
	domain.SignalResetIndicator: "/apagar-led",
}

// HTTPSink notifies the LED board with plain GET requests.
type HTTPSink struct {
	*dispatcher
	baseURL string
	client  *http.Client
}

func NewHTTPSink(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSink {
	s := &HTTPSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
	s.dispatcher = newDispatcher(s.deliver, timeout, logger)
	return s
}

func (s *HTTPSink) deliver(ctx context.Context, signal domain.Signal) error {
	path, ok := Paths[signal]
	if !ok {
		return fmt.Errorf("unknown signal %q", signal)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

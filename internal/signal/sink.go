package signal

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"organelle-quiz/internal/app"
)

// Sink is a closable app.SignalSink.
type Sink interface {
	app.SignalSink
	Close()
}

// Options selects and configures a sink.
type Options struct {
	Driver   string // http, amqp or none
	BaseURL  string
	Timeout  time.Duration
	AMQPURL  string
	Exchange string
}

// New builds the sink named by opts.Driver.
func New(opts Options, logger *zap.Logger) (Sink, error) {
	switch opts.Driver {
	case "", "none":
		return NewNopSink(logger), nil
	case "http":
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("signal driver http: base url not configured")
		}
		return NewHTTPSink(opts.BaseURL, opts.Timeout, logger), nil
	case "amqp":
		if opts.AMQPURL == "" {
			return nil, fmt.Errorf("signal driver amqp: url not configured")
		}
		exchange := opts.Exchange
		if exchange == "" {
			exchange = "quiz.signals"
		}
		sink, err := NewAMQPSink(opts.AMQPURL, exchange, opts.Timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("signal driver amqp: %w", err)
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown signal driver %q", opts.Driver)
	}
}

package signal

import (
	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

// NopSink drops every signal; used when no LED board is attached.
type NopSink struct {
	logger *zap.Logger
}

func NewNopSink(logger *zap.Logger) *NopSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopSink{logger: logger}
}

func (s *NopSink) Notify(signal domain.Signal) {
	s.logger.Debug("signal", zap.String("signal", string(signal)))
}

func (s *NopSink) Close() {}

package signal

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

type signalEvent struct {
	Signal domain.Signal `json:"signal"`
	At     time.Time     `json:"at"`
}

// AMQPSink publishes signals to a topic exchange; the signal name is the routing key.
// A bridge process on the board's network relays them to the LEDs.
type AMQPSink struct {
	*dispatcher
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	now      func() time.Time
}

func NewAMQPSink(url, exchange string, timeout time.Duration, logger *zap.Logger) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	s := &AMQPSink{conn: conn, channel: ch, exchange: exchange, now: time.Now}
	s.dispatcher = newDispatcher(s.deliver, timeout, logger)
	return s, nil
}

func (s *AMQPSink) deliver(ctx context.Context, signal domain.Signal) error {
	body, err := encodeEvent(signal, s.now())
	if err != nil {
		return err
	}
	return s.channel.PublishWithContext(ctx,
		s.exchange,
		string(signal), // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func encodeEvent(signal domain.Signal, at time.Time) ([]byte, error) {
	return json.Marshal(signalEvent{Signal: signal, At: at.UTC()})
}

// Close drains queued signals and closes the broker connection.
func (s *AMQPSink) Close() {
	s.dispatcher.Close()
	if s.channel != nil {
		_ = s.channel.Close()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

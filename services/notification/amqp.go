package notification

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSink publica el payload en una cola durable de RabbitMQ.
// Abre una conexión por mensaje; el volumen es de unas pocas
// publicaciones por reserva.
type AMQPSink struct {
	url   string
	queue string
}

func NewAMQPSink(url, queue string) *AMQPSink {
	return &AMQPSink{url: url, queue: queue}
}

func (s *AMQPSink) Name() string { return "amqp" }

func (s *AMQPSink) Send(ctx context.Context, p Payload) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(p.Status),
		Body:         body,
	})
}

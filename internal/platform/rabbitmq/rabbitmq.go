package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// New dials the broker and proves the connection by opening and closing a
// channel. Queue declaration is left to publishers and consumers.
func New(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	if err := ch.Close(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("close rabbitmq channel failed: %w", err)
	}

	return conn, nil
}

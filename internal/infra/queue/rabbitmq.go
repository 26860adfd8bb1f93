package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.seguimientos"
	QueueName    = "q.notificaciones"
	DLQName      = "q.notificaciones.dlq"
	DLXName      = "ex.dlx" // Dead Letter Exchange
	RoutingKey   = "k.seguimiento"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falla al conectar con RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("falla al abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(DLQName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(DLQName, RoutingKey, DLXName, false, nil)
	if err != nil {
		return err
	}

	// Los Nack van a parar a la DLQ en vez de perderse.
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": RoutingKey,
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(QueueName, true, false, false, false, args)
	if err != nil {
		return err
	}

	return ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil)
}

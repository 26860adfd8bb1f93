package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// SeguimientoEvent es el mensaje que se publica después de persistir un
// seguimiento. Lleva los datos del registro desnormalizados para que el
// worker no tenga que volver a la base.
type SeguimientoEvent struct {
	EventID    string `json:"event_id"`
	IDSeg      int    `json:"id_seg"`
	IDReg      int    `json:"id_reg"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Motivo     string `json:"motivo"`
	Notas      string `json:"notas"`
	Estado     string `json:"estado"`
	IDUsuario  int    `json:"id_usuario"`
	NombreLead string `json:"nombre_lead"`
	CelLead    string `json:"cel_lead"`
	CursoLead  string `json:"curso_lead"`
}

type ProducerInterface interface {
	PublishSeguimiento(ctx context.Context, event SeguimientoEvent) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishSeguimiento(ctx context.Context, event SeguimientoEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error al serializar evento: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falla al publicar en RabbitMQ: %w", err)
	}

	return nil
}

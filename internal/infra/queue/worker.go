package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/infra/http/middleware"
)

// WhatsAppNotifier envía el mensaje de seguimiento al celular del lead.
type WhatsAppNotifier interface {
	SendSeguimiento(ctx context.Context, event SeguimientoEvent) error
}

// MailNotifier avisa por correo a coordinación de una cancelación.
type MailNotifier interface {
	SendCancelacion(event SeguimientoEvent) error
}

type Worker struct {
	Channel  *amqp.Channel
	WhatsApp WhatsAppNotifier
	Mail     MailNotifier
	Log      *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, wa WhatsAppNotifier, mail MailNotifier, log *zap.SugaredLogger) *Worker {
	return &Worker{
		Channel:  ch,
		WhatsApp: wa,
		Mail:     mail,
		Log:      log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual es más seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatalw("falla al registrar consumidor RabbitMQ", "error", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event SeguimientoEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				w.Log.Errorw("mensaje malformado, va a la DLQ", "error", err)
				// Mensaje podrido: se rechaza sin requeue para no trabar la cola.
				d.Nack(false, false)
				continue
			}

			w.Log.Infow("procesando seguimiento",
				"event_id", event.EventID, "id_seg", event.IDSeg, "motivo", event.Motivo)

			if err := w.processEvent(context.Background(), event); err != nil {
				w.Log.Errorw("error en la notificación", "event_id", event.EventID, "error", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	w.Log.Infow("worker esperando mensajes", "queue", queueName)
	<-forever
}

// processEvent enruta por motivo: el envío de WhatsApp va al celular del
// lead; una cancelación dispara el correo a coordinación. El resto de
// los motivos solo queda registrado.
func (w *Worker) processEvent(ctx context.Context, event SeguimientoEvent) error {
	switch entity.Motivo(event.Motivo) {
	case entity.MotivoEnvioWhatsApp:
		if err := w.WhatsApp.SendSeguimiento(ctx, event); err != nil {
			middleware.RecordIntegrationError("whatsapp")
			return err
		}
		middleware.RecordNotificacion("whatsapp")
		return nil

	case entity.MotivoCancelacion:
		if err := w.Mail.SendCancelacion(event); err != nil {
			middleware.RecordIntegrationError("smtp")
			return err
		}
		middleware.RecordNotificacion("email")
		return nil

	default:
		return nil
	}
}

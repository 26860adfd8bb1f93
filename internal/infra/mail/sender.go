package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/academia-crm/backend/internal/infra/queue"
)

var cancelacionTmpl = template.Must(template.New("cancelacion").Parse(`
<h2>Cancelación de registro</h2>
<p>El lead <b>{{.NombreLead}}</b> canceló su registro.</p>
<p>Fecha del seguimiento: {{.Fecha}} {{.Hora}}</p>
{{if .Notas}}<p>Notas: {{.Notas}}</p>{{end}}
`))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendCancelacion avisa a coordinación que un lead canceló su registro.
func (s *EmailSender) SendCancelacion(event queue.SeguimientoEvent) error {
	data := CancelacionEmailData{
		NombreLead: event.NombreLead,
		Fecha:      event.Fecha,
		Hora:       event.Hora,
		Notas:      event.Notas,
	}

	var body bytes.Buffer
	if err := cancelacionTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("error al procesar plantilla: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Cancelación de registro: %s", event.NombreLead))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo SMTP: %w", err)
	}

	return nil
}

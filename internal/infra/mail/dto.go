package mail

type CancelacionEmailData struct {
	NombreLead string
	Fecha      string
	Hora       string
	Notas      string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // correo de coordinación
}

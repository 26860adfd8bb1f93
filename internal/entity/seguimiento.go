package entity

import (
	"context"
	"time"
)

// Motivo es el conjunto cerrado de motivos de contacto. Los valores
// coinciden con el ENUM de Postgres (sensibles a mayúsculas y tildes).
type Motivo string

const (
	MotivoPrimeraLlamada Motivo = "1RA LLAMADA"
	MotivoSegundaLlamada Motivo = "2DA LLAMADA"
	MotivoTerceraLlamada Motivo = "3RA LLAMADA"
	MotivoEnvioWhatsApp  Motivo = "ENVIO DE WHATSAPP"
	MotivoCancelacion    Motivo = "CANCELACIÓN DE REGISTRO"
)

func (m Motivo) Valid() bool {
	switch m {
	case MotivoPrimeraLlamada, MotivoSegundaLlamada, MotivoTerceraLlamada,
		MotivoEnvioWhatsApp, MotivoCancelacion:
		return true
	}
	return false
}

// Estado es la etapa de vida de un seguimiento.
type Estado string

const (
	EstadoEnSeguimiento Estado = "EN SEGUIMIENTO"
	EstadoCerrado       Estado = "CERRADO"
	EstadoPendiente     Estado = "PENDIENTE"
	EstadoFinalizado    Estado = "FINALIZADO"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoEnSeguimiento, EstadoCerrado, EstadoPendiente, EstadoFinalizado:
		return true
	}
	return false
}

// Entidad: Seguimiento (un evento de contacto contra un registro).
// MedioReg solo viene poblado en el listado con JOIN a registros; es un
// valor desnormalizado de solo lectura para la vista.
type Seguimiento struct {
	IDSeg     int       `json:"id_seg"`
	IDReg     int       `json:"id_reg"`
	Fecha     string    `json:"fecha"`
	Hora      string    `json:"hora"`
	Motivo    Motivo    `json:"motivo"`
	Notas     string    `json:"notas"`
	Estado    Estado    `json:"estado"`
	IDUsuario int       `json:"id_usuario"`
	MedioReg  string    `json:"medio_reg,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SeguimientoRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Seguimiento, error)
	// FindAllConRegistro trae cada seguimiento con el medio_reg de su
	// registro, ordenado por fecha y hora descendente.
	FindAllConRegistro(ctx context.Context) ([]Seguimiento, error)
	FindByRegistro(ctx context.Context, idReg int) ([]Seguimiento, error)
	Create(ctx context.Context, s *Seguimiento) error
	// Delete no distingue entre borrar un id existente y uno ausente.
	Delete(ctx context.Context, id int) error
}

package entity

import (
	"context"
	"time"
)

type Docente struct {
	IDDocentes    int       `json:"id_docentes"`
	NombreDoc     string    `json:"nombre_doc"`
	ApellidoDoc   string    `json:"apellido_doc"`
	AsignaturaDoc string    `json:"asignatura_doc"`
	SalonDoc      string    `json:"salon_doc"`
	PagoDoc       float64   `json:"pago_doc"`
	EmailDoc      string    `json:"email_doc"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DocenteRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Docente, error)
	FindByID(ctx context.Context, id int) (*Docente, error)
	Create(ctx context.Context, d *Docente) error
	Update(ctx context.Context, d *Docente) error
	Delete(ctx context.Context, id int) error
}

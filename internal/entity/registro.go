package entity

import (
	"context"
	"time"
)

// Entidad: Registro (lead captado desde un medio de adquisición)
type Registro struct {
	IDReg          int       `json:"id_reg"`
	NombreReg      string    `json:"nombre_reg"`
	ApellidoReg    string    `json:"apellido_reg"`
	CelReg         string    `json:"cel_reg"`
	MedioReg       string    `json:"medio_reg"`
	FechaReg       string    `json:"fecha_reg"`
	CursoReg       string    `json:"curso_reg"`
	NumInteresados int       `json:"num_interesados"`
	TipLead        string    `json:"tip_lead"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegistroRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Registro, error)
	FindByID(ctx context.Context, id int) (*Registro, error)
	// FindByCelular devuelve (nil, nil) cuando no hay coincidencia. El
	// celular se trata como clave de búsqueda externa, no única a nivel
	// de tipo.
	FindByCelular(ctx context.Context, celular string) (*Registro, error)
	Create(ctx context.Context, r *Registro) error
	Update(ctx context.Context, r *Registro) error
	Delete(ctx context.Context, id int) error
}

package entity

import (
	"context"
	"time"
)

type Estudiante struct {
	IDEstudiante int       `json:"id_estudiante"`
	NombreEst    string    `json:"nombre_est"`
	ApellidoEst  string    `json:"apellido_est"`
	SalonEst     string    `json:"salon_est"`
	IDDocentes   int       `json:"id_docentes"`
	IDReg        int       `json:"id_reg"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EstudianteRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Estudiante, error)
	FindByID(ctx context.Context, id int) (*Estudiante, error)
	Create(ctx context.Context, e *Estudiante) error
	Update(ctx context.Context, e *Estudiante) error
	Delete(ctx context.Context, id int) error
}

package entity

import (
	"context"
	"time"
)

type Pago struct {
	IDPago    int       `json:"id_pago"`
	IDDocente int       `json:"id_docente"`
	Monto     float64   `json:"monto"`
	FechaPago string    `json:"fecha_pago"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PagoRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Pago, error)
	FindByID(ctx context.Context, id int) (*Pago, error)
	Create(ctx context.Context, p *Pago) error
	Update(ctx context.Context, p *Pago) error
	Delete(ctx context.Context, id int) error
}

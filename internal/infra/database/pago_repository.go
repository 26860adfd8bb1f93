package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type PagoRepository struct {
	DB *sql.DB
}

func NewPagoRepository(db *sql.DB) *PagoRepository {
	return &PagoRepository{DB: db}
}

func (r *PagoRepository) FindAll(ctx context.Context) ([]entity.Pago, error) {
	query := `
		SELECT id_pago, id_docente, monto, fecha_pago::text, estado,
		       created_at, updated_at
		FROM pagos
		ORDER BY id_pago ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pagos := []entity.Pago{}
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(
			&p.IDPago, &p.IDDocente, &p.Monto, &p.FechaPago, &p.Estado,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}

func (r *PagoRepository) FindByID(ctx context.Context, id int) (*entity.Pago, error) {
	query := `
		SELECT id_pago, id_docente, monto, fecha_pago::text, estado,
		       created_at, updated_at
		FROM pagos WHERE id_pago = $1`

	var p entity.Pago
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.IDPago, &p.IDDocente, &p.Monto, &p.FechaPago, &p.Estado,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PagoRepository) Create(ctx context.Context, p *entity.Pago) error {
	query := `
		INSERT INTO pagos (id_docente, monto, fecha_pago, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id_pago, fecha_pago::text, created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		p.IDDocente, p.Monto, p.FechaPago, p.Estado,
	).Scan(&p.IDPago, &p.FechaPago, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PagoRepository) Update(ctx context.Context, p *entity.Pago) error {
	query := `
		UPDATE pagos
		SET id_docente = $1,
		    monto      = $2,
		    fecha_pago = $3,
		    estado     = $4,
		    updated_at = now()
		WHERE id_pago = $5
		RETURNING fecha_pago::text, created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		p.IDDocente, p.Monto, p.FechaPago, p.Estado, p.IDPago,
	).Scan(&p.FechaPago, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PagoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM pagos WHERE id_pago = $1`, id)
	return err
}

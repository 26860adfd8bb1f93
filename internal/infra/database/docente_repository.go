package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type DocenteRepository struct {
	DB *sql.DB
}

func NewDocenteRepository(db *sql.DB) *DocenteRepository {
	return &DocenteRepository{DB: db}
}

func (r *DocenteRepository) FindAll(ctx context.Context) ([]entity.Docente, error) {
	query := `
		SELECT id_docentes, nombre_doc, apellido_doc, asignatura_doc,
		       salon_doc, pago_doc, email_doc, created_at, updated_at
		FROM docentes
		ORDER BY id_docentes ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docentes := []entity.Docente{}
	for rows.Next() {
		var d entity.Docente
		if err := rows.Scan(
			&d.IDDocentes, &d.NombreDoc, &d.ApellidoDoc, &d.AsignaturaDoc,
			&d.SalonDoc, &d.PagoDoc, &d.EmailDoc, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		docentes = append(docentes, d)
	}
	return docentes, rows.Err()
}

func (r *DocenteRepository) FindByID(ctx context.Context, id int) (*entity.Docente, error) {
	query := `
		SELECT id_docentes, nombre_doc, apellido_doc, asignatura_doc,
		       salon_doc, pago_doc, email_doc, created_at, updated_at
		FROM docentes WHERE id_docentes = $1`

	var d entity.Docente
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.IDDocentes, &d.NombreDoc, &d.ApellidoDoc, &d.AsignaturaDoc,
		&d.SalonDoc, &d.PagoDoc, &d.EmailDoc, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DocenteRepository) Create(ctx context.Context, d *entity.Docente) error {
	query := `
		INSERT INTO docentes
			(nombre_doc, apellido_doc, asignatura_doc, salon_doc, pago_doc, email_doc)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_docentes, created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		d.NombreDoc, d.ApellidoDoc, d.AsignaturaDoc, d.SalonDoc, d.PagoDoc, d.EmailDoc,
	).Scan(&d.IDDocentes, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DocenteRepository) Update(ctx context.Context, d *entity.Docente) error {
	query := `
		UPDATE docentes
		SET nombre_doc     = $1,
		    apellido_doc   = $2,
		    asignatura_doc = $3,
		    salon_doc      = $4,
		    pago_doc       = $5,
		    email_doc      = $6,
		    updated_at     = now()
		WHERE id_docentes = $7
		RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		d.NombreDoc, d.ApellidoDoc, d.AsignaturaDoc, d.SalonDoc,
		d.PagoDoc, d.EmailDoc, d.IDDocentes,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *DocenteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM docentes WHERE id_docentes = $1`, id)
	return err
}

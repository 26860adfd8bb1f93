package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type EstudianteRepository struct {
	DB *sql.DB
}

func NewEstudianteRepository(db *sql.DB) *EstudianteRepository {
	return &EstudianteRepository{DB: db}
}

func (r *EstudianteRepository) FindAll(ctx context.Context) ([]entity.Estudiante, error) {
	query := `
		SELECT id_estudiante, nombre_est, apellido_est, salon_est,
		       COALESCE(id_docentes, 0), COALESCE(id_reg, 0),
		       created_at, updated_at
		FROM estudiantes
		ORDER BY id_estudiante ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estudiantes := []entity.Estudiante{}
	for rows.Next() {
		var e entity.Estudiante
		if err := rows.Scan(
			&e.IDEstudiante, &e.NombreEst, &e.ApellidoEst, &e.SalonEst,
			&e.IDDocentes, &e.IDReg, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		estudiantes = append(estudiantes, e)
	}
	return estudiantes, rows.Err()
}

func (r *EstudianteRepository) FindByID(ctx context.Context, id int) (*entity.Estudiante, error) {
	query := `
		SELECT id_estudiante, nombre_est, apellido_est, salon_est,
		       COALESCE(id_docentes, 0), COALESCE(id_reg, 0),
		       created_at, updated_at
		FROM estudiantes WHERE id_estudiante = $1`

	var e entity.Estudiante
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.IDEstudiante, &e.NombreEst, &e.ApellidoEst, &e.SalonEst,
		&e.IDDocentes, &e.IDReg, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EstudianteRepository) Create(ctx context.Context, e *entity.Estudiante) error {
	query := `
		INSERT INTO estudiantes (nombre_est, apellido_est, salon_est, id_docentes, id_reg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_estudiante, created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		e.NombreEst, e.ApellidoEst, e.SalonEst, nullInt(e.IDDocentes), nullInt(e.IDReg),
	).Scan(&e.IDEstudiante, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EstudianteRepository) Update(ctx context.Context, e *entity.Estudiante) error {
	query := `
		UPDATE estudiantes
		SET nombre_est   = $1,
		    apellido_est = $2,
		    salon_est    = $3,
		    id_docentes  = $4,
		    id_reg       = $5,
		    updated_at   = now()
		WHERE id_estudiante = $6
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		e.NombreEst, e.ApellidoEst, e.SalonEst, nullInt(e.IDDocentes), nullInt(e.IDReg), e.IDEstudiante,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return err
}

func (r *EstudianteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM estudiantes WHERE id_estudiante = $1`, id)
	return err
}

func nullInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

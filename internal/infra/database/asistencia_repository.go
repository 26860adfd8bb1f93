package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type AsistenciaRepository struct {
	DB *sql.DB
}

func NewAsistenciaRepository(db *sql.DB) *AsistenciaRepository {
	return &AsistenciaRepository{DB: db}
}

// FindAllDetalle arma la vista de asistencias con el nombre completo del
// estudiante y de su docente, de la más reciente a la más antigua.
func (r *AsistenciaRepository) FindAllDetalle(ctx context.Context) ([]entity.AsistenciaDetalle, error) {
	query := `
		SELECT
			a.id_asistencia,
			a.fecha::text,
			a.estado,
			e.id_estudiante,
			CONCAT(e.nombre_est, ' ', e.apellido_est) AS estudiante,
			e.salon_est AS salon,
			CONCAT(d.nombre_doc, ' ', d.apellido_doc) AS docente
		FROM asistencias a
		INNER JOIN estudiantes e ON a.id_estudiante = e.id_estudiante
		LEFT JOIN docentes d ON e.id_docentes = d.id_docentes
		ORDER BY a.id_asistencia DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	asistencias := []entity.AsistenciaDetalle{}
	for rows.Next() {
		var a entity.AsistenciaDetalle
		if err := rows.Scan(
			&a.IDAsistencia, &a.Fecha, &a.Estado, &a.IDEstudiante,
			&a.Estudiante, &a.Salon, &a.Docente,
		); err != nil {
			return nil, err
		}
		asistencias = append(asistencias, a)
	}
	return asistencias, rows.Err()
}

func (r *AsistenciaRepository) FindByID(ctx context.Context, id int) (*entity.Asistencia, error) {
	query := `
		SELECT id_asistencia, id_estudiante, fecha::text, estado
		FROM asistencias WHERE id_asistencia = $1`

	var a entity.Asistencia
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&a.IDAsistencia, &a.IDEstudiante, &a.Fecha, &a.Estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AsistenciaRepository) Create(ctx context.Context, a *entity.Asistencia) error {
	query := `
		INSERT INTO asistencias (id_estudiante, fecha, estado)
		VALUES ($1, $2, $3)
		RETURNING id_asistencia, fecha::text`

	return r.DB.QueryRowContext(ctx, query, a.IDEstudiante, a.Fecha, a.Estado).
		Scan(&a.IDAsistencia, &a.Fecha)
}

func (r *AsistenciaRepository) Update(ctx context.Context, a *entity.Asistencia) error {
	query := `
		UPDATE asistencias
		SET id_estudiante = $1,
		    fecha         = $2,
		    estado        = $3
		WHERE id_asistencia = $4
		RETURNING fecha::text`

	return r.DB.QueryRowContext(ctx, query,
		a.IDEstudiante, a.Fecha, a.Estado, a.IDAsistencia,
	).Scan(&a.Fecha)
}

func (r *AsistenciaRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM asistencias WHERE id_asistencia = $1`, id)
	return err
}

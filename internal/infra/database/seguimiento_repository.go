package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type SeguimientoRepository struct {
	DB *sql.DB
}

func NewSeguimientoRepository(db *sql.DB) *SeguimientoRepository {
	return &SeguimientoRepository{DB: db}
}

func (r *SeguimientoRepository) FindAll(ctx context.Context) ([]entity.Seguimiento, error) {
	query := `
		SELECT id_seg, id_reg, fecha::text, hora::text, motivo,
		       COALESCE(notas, ''), estado, id_usuario, created_at
		FROM seguimientos
		ORDER BY id_seg ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSeguimientos(rows, false)
}

// FindAllConRegistro trae el medio_reg del registro dueño, del más
// reciente al más antiguo.
func (r *SeguimientoRepository) FindAllConRegistro(ctx context.Context) ([]entity.Seguimiento, error) {
	query := `
		SELECT s.id_seg, s.id_reg, s.fecha::text, s.hora::text, s.motivo,
		       COALESCE(s.notas, ''), s.estado, s.id_usuario, s.created_at,
		       r.medio_reg
		FROM seguimientos s
		JOIN registros r ON s.id_reg = r.id_reg
		ORDER BY s.fecha DESC, s.hora DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSeguimientos(rows, true)
}

func (r *SeguimientoRepository) FindByRegistro(ctx context.Context, idReg int) ([]entity.Seguimiento, error) {
	query := `
		SELECT id_seg, id_reg, fecha::text, hora::text, motivo,
		       COALESCE(notas, ''), estado, id_usuario, created_at
		FROM seguimientos
		WHERE id_reg = $1
		ORDER BY fecha DESC, hora DESC`

	rows, err := r.DB.QueryContext(ctx, query, idReg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSeguimientos(rows, false)
}

func (r *SeguimientoRepository) Create(ctx context.Context, s *entity.Seguimiento) error {
	query := `
		INSERT INTO seguimientos (id_reg, fecha, hora, motivo, notas, estado, id_usuario)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_seg, fecha::text, hora::text, created_at`

	return r.DB.QueryRowContext(ctx, query,
		s.IDReg,
		s.Fecha,
		s.Hora,
		s.Motivo,
		nullString(s.Notas),
		s.Estado,
		s.IDUsuario,
	).Scan(&s.IDSeg, &s.Fecha, &s.Hora, &s.CreatedAt)
}

// Delete no verifica existencia: borrar un id ausente se comporta igual
// que borrar uno existente.
func (r *SeguimientoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM seguimientos WHERE id_seg = $1`, id)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func collectSeguimientos(rows *sql.Rows, conMedio bool) ([]entity.Seguimiento, error) {
	seguimientos := []entity.Seguimiento{}
	for rows.Next() {
		var s entity.Seguimiento
		dest := []any{
			&s.IDSeg, &s.IDReg, &s.Fecha, &s.Hora, &s.Motivo,
			&s.Notas, &s.Estado, &s.IDUsuario, &s.CreatedAt,
		}
		if conMedio {
			dest = append(dest, &s.MedioReg)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		seguimientos = append(seguimientos, s)
	}
	return seguimientos, rows.Err()
}

package database

import (
	"context"
	"database/sql"

	"github.com/academia-crm/backend/internal/entity"
)

type RegistroRepository struct {
	DB *sql.DB
}

func NewRegistroRepository(db *sql.DB) *RegistroRepository {
	return &RegistroRepository{DB: db}
}

const registroColumns = `
	id_reg, nombre_reg, apellido_reg, cel_reg, medio_reg,
	fecha_reg::text, curso_reg, num_interesados, tip_lead,
	created_at, updated_at`

func scanRegistro(row interface{ Scan(...any) error }, r *entity.Registro) error {
	return row.Scan(
		&r.IDReg,
		&r.NombreReg,
		&r.ApellidoReg,
		&r.CelReg,
		&r.MedioReg,
		&r.FechaReg,
		&r.CursoReg,
		&r.NumInteresados,
		&r.TipLead,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func (r *RegistroRepository) FindAll(ctx context.Context) ([]entity.Registro, error) {
	query := `SELECT ` + registroColumns + ` FROM registros ORDER BY id_reg ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registros := []entity.Registro{}
	for rows.Next() {
		var reg entity.Registro
		if err := scanRegistro(rows, &reg); err != nil {
			return nil, err
		}
		registros = append(registros, reg)
	}
	return registros, rows.Err()
}

func (r *RegistroRepository) FindByID(ctx context.Context, id int) (*entity.Registro, error) {
	query := `SELECT ` + registroColumns + ` FROM registros WHERE id_reg = $1`

	var reg entity.Registro
	err := scanRegistro(r.DB.QueryRowContext(ctx, query, id), &reg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrRegistroNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// FindByCelular devuelve (nil, nil) cuando no hay coincidencia: ausencia
// no es un error en la búsqueda por celular.
func (r *RegistroRepository) FindByCelular(ctx context.Context, celular string) (*entity.Registro, error) {
	query := `SELECT ` + registroColumns + ` FROM registros WHERE cel_reg = $1`

	var reg entity.Registro
	err := scanRegistro(r.DB.QueryRowContext(ctx, query, celular), &reg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistroRepository) Create(ctx context.Context, reg *entity.Registro) error {
	query := `
		INSERT INTO registros
			(nombre_reg, apellido_reg, cel_reg, medio_reg, fecha_reg,
			 curso_reg, num_interesados, tip_lead, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING id_reg, fecha_reg::text, created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		reg.NombreReg,
		reg.ApellidoReg,
		reg.CelReg,
		reg.MedioReg,
		reg.FechaReg,
		reg.CursoReg,
		reg.NumInteresados,
		reg.TipLead,
	).Scan(&reg.IDReg, &reg.FechaReg, &reg.CreatedAt, &reg.UpdatedAt)
}

// Update reemplaza todos los campos mutables del registro.
func (r *RegistroRepository) Update(ctx context.Context, reg *entity.Registro) error {
	query := `
		UPDATE registros SET
			nombre_reg      = $1,
			apellido_reg    = $2,
			cel_reg         = $3,
			medio_reg       = $4,
			fecha_reg       = $5,
			curso_reg       = $6,
			num_interesados = $7,
			tip_lead        = $8,
			updated_at      = now()
		WHERE id_reg = $9
		RETURNING fecha_reg::text, created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		reg.NombreReg,
		reg.ApellidoReg,
		reg.CelReg,
		reg.MedioReg,
		reg.FechaReg,
		reg.CursoReg,
		reg.NumInteresados,
		reg.TipLead,
		reg.IDReg,
	).Scan(&reg.FechaReg, &reg.CreatedAt, &reg.UpdatedAt)

	if err == sql.ErrNoRows {
		return entity.ErrRegistroNotFound
	}
	return err
}

// Delete no toca los seguimientos del registro: quedan huérfanos a
// propósito (ver DESIGN.md).
func (r *RegistroRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM registros WHERE id_reg = $1`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrRegistroNotFound
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/academia-crm/backend/internal/entity"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const uniqueViolation = "23505"

type UsuarioRepository struct {
	DB *sql.DB
}

func NewUsuarioRepository(db *sql.DB) *UsuarioRepository {
	return &UsuarioRepository{DB: db}
}

func (r *UsuarioRepository) FindAll(ctx context.Context) ([]entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, email, contrasena, created_at, updated_at
		FROM usuarios
		ORDER BY id_usuario ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := []entity.Usuario{}
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.IDUsuario, &u.Nombre, &u.Email, &u.Contrasena, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id int) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, email, contrasena, created_at, updated_at
		FROM usuarios WHERE id_usuario = $1`

	var u entity.Usuario
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&u.IDUsuario, &u.Nombre, &u.Email, &u.Contrasena, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrUsuarioNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, email, contrasena, created_at, updated_at
		FROM usuarios WHERE email = $1`

	var u entity.Usuario
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&u.IDUsuario, &u.Nombre, &u.Email, &u.Contrasena, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrUsuarioNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, email, contrasena)
		VALUES ($1, $2, $3)
		RETURNING id_usuario, created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query, u.Nombre, u.Email, u.Contrasena).
		Scan(&u.IDUsuario, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UsuarioRepository) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nombre = $1, email = $2, contrasena = $3, updated_at = now()
		WHERE id_usuario = $4
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query, u.Nombre, u.Email, u.Contrasena, u.IDUsuario).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return entity.ErrUsuarioNotFound
	}
	return err
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	return err
}

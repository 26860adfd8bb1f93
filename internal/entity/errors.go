package entity

import "errors"

var (
	ErrRegistroNotFound    = errors.New("registro no encontrado")
	ErrSeguimientoNotFound = errors.New("seguimiento no encontrado")
	ErrUsuarioNotFound     = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("ya existe un usuario con ese email")
)

package usecase

// ValidationError es un rechazo de entrada antes de tocar la base. El
// mensaje es el que ve el cliente en el payload {"error": ...}.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

var (
	ErrCamposObligatorios = &ValidationError{Message: "Faltan campos obligatorios"}
	ErrMotivoNoValido     = &ValidationError{Message: "Motivo no válido"}
	ErrEstadoNoValido     = &ValidationError{Message: "Estado no válido"}
	ErrFaltanCredenciales = &ValidationError{Message: "Faltan credenciales"}
)

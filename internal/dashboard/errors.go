package dashboard

import "errors"

// ErrSinLeadSeleccionado: se intentó crear un seguimiento sin haber
// resuelto antes un lead por celular.
var ErrSinLeadSeleccionado = errors.New("no hay un lead seleccionado")

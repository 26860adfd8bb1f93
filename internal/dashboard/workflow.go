package dashboard

import (
	"context"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/usecase"
)

// State es el estado de la vista de seguimientos del tablero.
type State string

const (
	// StateIdle muestra el listado general de seguimientos.
	StateIdle State = "idle"
	// StateSearching tiene una búsqueda por celular en vuelo.
	StateSearching State = "searching"
	// StateLeadSelected tiene un lead resuelto, con su historial cargado
	// y el formulario de creación habilitado.
	StateLeadSelected State = "lead-selected"
	// StateBrowsingLeads muestra la tabla completa de registros;
	// excluyente con StateLeadSelected.
	StateBrowsingLeads State = "browsing-leads"
)

// Workflow concentra el estado de la vista en un solo objeto: cada fetch
// reemplaza el snapshot anterior por completo y la lista mostrada
// siempre es la confirmada por el servidor (no hay append optimista).
type Workflow struct {
	client *Client

	state        State
	alert        string
	lead         *entity.Registro
	seguimientos []entity.Seguimiento
	registros    []entity.Registro
}

func NewWorkflow(client *Client) *Workflow {
	return &Workflow{
		client: client,
		state:  StateIdle,
	}
}

func (w *Workflow) State() State                       { return w.state }
func (w *Workflow) Alert() string                      { return w.alert }
func (w *Workflow) Lead() *entity.Registro             { return w.lead }
func (w *Workflow) Seguimientos() []entity.Seguimiento { return w.seguimientos }
func (w *Workflow) Registros() []entity.Registro       { return w.registros }

// CargarSeguimientos vuelve al listado general (estado idle) con el
// snapshot fresco del JOIN con registros.
func (w *Workflow) CargarSeguimientos(ctx context.Context) error {
	seguimientos, err := w.client.SeguimientosConRegistro(ctx)
	if err != nil {
		return err
	}

	w.state = StateIdle
	w.alert = ""
	w.lead = nil
	w.seguimientos = seguimientos
	return nil
}

// BuscarPorCelular resuelve el lead y después su historial. Sin
// coincidencia queda en idle con la alerta visible, nunca pasa a
// lead-selected.
func (w *Workflow) BuscarPorCelular(ctx context.Context, celular string) error {
	w.state = StateSearching
	w.alert = ""

	lead, err := w.client.BuscarPorCelular(ctx, celular)
	if err != nil {
		w.state = StateIdle
		return err
	}
	if lead == nil {
		w.state = StateIdle
		w.alert = "No se encontró ningún registro con ese celular"
		return nil
	}

	// La búsqueda debe completarse antes de pedir el historial.
	seguimientos, err := w.client.SeguimientosPorRegistro(ctx, lead.IDReg)
	if err != nil {
		w.state = StateIdle
		return err
	}

	w.state = StateLeadSelected
	w.lead = lead
	w.seguimientos = seguimientos
	return nil
}

// CrearSeguimiento solo aplica con un lead seleccionado. Tras crear, se
// vuelve a pedir el historial completo al servidor.
func (w *Workflow) CrearSeguimiento(ctx context.Context, input usecase.CreateSeguimientoInput) error {
	if w.state != StateLeadSelected {
		return ErrSinLeadSeleccionado
	}

	input.IDReg = w.lead.IDReg
	if _, err := w.client.CrearSeguimiento(ctx, input); err != nil {
		return err
	}

	seguimientos, err := w.client.SeguimientosPorRegistro(ctx, w.lead.IDReg)
	if err != nil {
		return err
	}
	w.seguimientos = seguimientos
	return nil
}

// VerRegistros cambia a la tabla completa de leads, soltando el lead
// seleccionado.
func (w *Workflow) VerRegistros(ctx context.Context) error {
	registros, err := w.client.Registros(ctx)
	if err != nil {
		return err
	}

	w.state = StateBrowsingLeads
	w.lead = nil
	w.registros = registros
	return nil
}

// PaginaSeguimientos es un recorte en memoria de la lista ya traída: la
// paginación no vuelve al servidor.
func (w *Workflow) PaginaSeguimientos(page, size int) []entity.Seguimiento {
	return paginate(w.seguimientos, page, size)
}

func (w *Workflow) PaginaRegistros(page, size int) []entity.Registro {
	return paginate(w.registros, page, size)
}

func paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

package entity

import "context"

type Asistencia struct {
	IDAsistencia int    `json:"id_asistencia"`
	IDEstudiante int    `json:"id_estudiante"`
	Fecha        string `json:"fecha"`
	Estado       string `json:"estado"`
}

// AsistenciaDetalle es la fila del listado con JOIN a estudiantes y
// docentes: nombres ya concatenados para la vista.
type AsistenciaDetalle struct {
	IDAsistencia int    `json:"id_asistencia"`
	Fecha        string `json:"fecha"`
	Estado       string `json:"estado"`
	IDEstudiante int    `json:"id_estudiante"`
	Estudiante   string `json:"estudiante"`
	Salon        string `json:"salon"`
	Docente      string `json:"docente"`
}

type AsistenciaRepositoryInterface interface {
	FindAllDetalle(ctx context.Context) ([]AsistenciaDetalle, error)
	FindByID(ctx context.Context, id int) (*Asistencia, error)
	Create(ctx context.Context, a *Asistencia) error
	Update(ctx context.Context, a *Asistencia) error
	Delete(ctx context.Context, id int) error
}

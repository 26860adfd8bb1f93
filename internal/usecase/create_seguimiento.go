package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/infra/http/middleware"
	"github.com/academia-crm/backend/internal/infra/queue"
)

type CreateSeguimientoInput struct {
	IDReg     int    `json:"id_reg"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	Motivo    string `json:"motivo"`
	Notas     string `json:"notas"`
	Estado    string `json:"estado"`
	IDUsuario int    `json:"id_usuario"`
}

type CreateSeguimientoUseCase struct {
	Repo         entity.SeguimientoRepositoryInterface
	RegistroRepo entity.RegistroRepositoryInterface
	Producer     queue.ProducerInterface
	Log          *zap.SugaredLogger
}

func NewCreateSeguimientoUseCase(
	repo entity.SeguimientoRepositoryInterface,
	registroRepo entity.RegistroRepositoryInterface,
	producer queue.ProducerInterface,
	log *zap.SugaredLogger,
) *CreateSeguimientoUseCase {
	return &CreateSeguimientoUseCase{
		Repo:         repo,
		RegistroRepo: registroRepo,
		Producer:     producer,
		Log:          log,
	}
}

// Execute valida en orden fijo (campos obligatorios, motivo, estado) y
// solo después persiste. La notificación por cola es best effort: si la
// publicación falla, el seguimiento ya quedó guardado y la petición no
// se cae.
func (uc *CreateSeguimientoUseCase) Execute(ctx context.Context, input CreateSeguimientoInput) (*entity.Seguimiento, error) {
	if input.IDReg == 0 || input.Fecha == "" || input.Hora == "" ||
		input.Motivo == "" || input.Estado == "" || input.IDUsuario == 0 {
		return nil, ErrCamposObligatorios
	}

	motivo := entity.Motivo(input.Motivo)
	if !motivo.Valid() {
		return nil, ErrMotivoNoValido
	}

	estado := entity.Estado(input.Estado)
	if !estado.Valid() {
		return nil, ErrEstadoNoValido
	}

	seguimiento := &entity.Seguimiento{
		IDReg:     input.IDReg,
		Fecha:     input.Fecha,
		Hora:      input.Hora,
		Motivo:    motivo,
		Notas:     input.Notas,
		Estado:    estado,
		IDUsuario: input.IDUsuario,
	}

	if err := uc.Repo.Create(ctx, seguimiento); err != nil {
		return nil, err
	}

	middleware.RecordSeguimiento(input.Motivo)
	uc.publish(ctx, seguimiento)

	return seguimiento, nil
}

func (uc *CreateSeguimientoUseCase) publish(ctx context.Context, s *entity.Seguimiento) {
	if uc.Producer == nil {
		return
	}

	event := queue.SeguimientoEvent{
		IDSeg:     s.IDSeg,
		IDReg:     s.IDReg,
		Fecha:     s.Fecha,
		Hora:      s.Hora,
		Motivo:    string(s.Motivo),
		Notas:     s.Notas,
		Estado:    string(s.Estado),
		IDUsuario: s.IDUsuario,
	}

	// Los datos del lead viajan desnormalizados en el evento para que el
	// worker no vuelva a consultar la base.
	registro, err := uc.RegistroRepo.FindByID(ctx, s.IDReg)
	if err != nil {
		uc.Log.Errorw("no se pudo resolver el registro para el evento",
			"id_reg", s.IDReg, "error", err)
	} else {
		event.NombreLead = registro.NombreReg + " " + registro.ApellidoReg
		event.CelLead = registro.CelReg
		event.CursoLead = registro.CursoReg
	}

	if err := uc.Producer.PublishSeguimiento(ctx, event); err != nil {
		uc.Log.Errorw("no se pudo publicar el evento de seguimiento",
			"id_seg", s.IDSeg, "error", err)
	}
}

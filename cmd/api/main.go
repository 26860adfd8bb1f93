package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/academia-crm/backend/internal/infra/database"
	"github.com/academia-crm/backend/internal/infra/http/handlers"
	"github.com/academia-crm/backend/internal/infra/http/middleware"
	"github.com/academia-crm/backend/internal/infra/integration/whatsapp"
	"github.com/academia-crm/backend/internal/infra/mail"
	"github.com/academia-crm/backend/internal/infra/queue"
	"github.com/academia-crm/backend/internal/usecase"
)

func main() {
	godotenv.Load()

	log, err := newLog("academia-api")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("startup", "error", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	// 1. Base de datos
	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		return fmt.Errorf("conectando a la base: %w", err)
	}
	defer db.Close()

	log.Infow("startup", "status", "aplicando migraciones")
	if err := database.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrando esquema: %w", err)
	}

	// 2. RabbitMQ (opcional: sin cola no hay notificaciones, pero el API corre)
	var rabbitMQ *queue.RabbitMQ
	var producer queue.ProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			return fmt.Errorf("conectando a RabbitMQ: %w", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	} else {
		log.Infow("startup", "status", "RABBITMQ_URL vacío, notificaciones deshabilitadas")
	}

	// 3. Repositorios
	registroRepo := database.NewRegistroRepository(db)
	seguimientoRepo := database.NewSeguimientoRepository(db)
	usuarioRepo := database.NewUsuarioRepository(db)
	estudianteRepo := database.NewEstudianteRepository(db)
	docenteRepo := database.NewDocenteRepository(db)
	pagoRepo := database.NewPagoRepository(db)
	asistenciaRepo := database.NewAsistenciaRepository(db)

	// 4. Worker de notificaciones (WhatsApp al lead, correo a coordinación)
	if rabbitMQ != nil {
		waClient := whatsapp.NewClient()
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"),
			mailPort(),
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
			os.Getenv("MAIL_COORDINACION"),
		)
		worker := queue.NewWorker(rabbitMQ.Ch, waClient, mailSender, log)
		go worker.Start(queue.QueueName)
	}

	// 5. UseCases
	createSeguimientoUC := usecase.NewCreateSeguimientoUseCase(seguimientoRepo, registroRepo, producer, log)
	loginUC := usecase.NewLoginUseCase(usuarioRepo)

	// 6. Handlers
	registroHandler := handlers.NewRegistroHandler(registroRepo, log)
	seguimientoHandler := handlers.NewSeguimientoHandler(seguimientoRepo, createSeguimientoUC, log)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioRepo, loginUC, log)
	estudianteHandler := handlers.NewEstudianteHandler(estudianteRepo, log)
	docenteHandler := handlers.NewDocenteHandler(docenteRepo, log)
	pagoHandler := handlers.NewPagoHandler(pagoRepo, log)
	asistenciaHandler := handlers.NewAsistenciaHandler(asistenciaRepo, log)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin()},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/ping", handlers.Ping)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/registros", func(r chi.Router) {
			r.Get("/", registroHandler.List)
			r.Get("/cel/{celular}", registroHandler.GetByCelular)
			r.Get("/{id}", registroHandler.GetByID)
			r.Post("/", registroHandler.Create)
			r.Put("/{id}", registroHandler.Update)
			r.Delete("/{id}", registroHandler.Delete)
		})

		r.Route("/seguimientos", func(r chi.Router) {
			r.Get("/", seguimientoHandler.List)
			r.Get("/joinRegistros", seguimientoHandler.ListConRegistros)
			r.Get("/registro/{id}", seguimientoHandler.ListByRegistro)
			r.Post("/", seguimientoHandler.Create)
			r.Delete("/{id}", seguimientoHandler.Delete)
		})

		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/", usuarioHandler.List)
			r.Post("/", usuarioHandler.Create)
			r.Post("/login", usuarioHandler.Login)
			r.Get("/{id}", usuarioHandler.GetByID)
			r.Put("/{id}", usuarioHandler.Update)
			r.Delete("/{id}", usuarioHandler.Delete)
		})

		r.Route("/estudiantes", func(r chi.Router) {
			r.Get("/", estudianteHandler.List)
			r.Get("/{id}", estudianteHandler.GetByID)
			r.Post("/", estudianteHandler.Create)
			r.Put("/{id}", estudianteHandler.Update)
			r.Delete("/{id}", estudianteHandler.Delete)
		})

		r.Route("/docentes", func(r chi.Router) {
			r.Get("/", docenteHandler.List)
			r.Get("/{id}", docenteHandler.GetByID)
			r.Post("/", docenteHandler.Create)
			r.Put("/{id}", docenteHandler.Update)
			r.Delete("/{id}", docenteHandler.Delete)
		})

		r.Route("/pagos", func(r chi.Router) {
			r.Get("/", pagoHandler.List)
			r.Get("/{id}", pagoHandler.GetByID)
			r.Post("/", pagoHandler.Create)
			r.Put("/{id}", pagoHandler.Update)
			r.Delete("/{id}", pagoHandler.Delete)
		})

		r.Route("/asistencia", func(r chi.Router) {
			r.Get("/", asistenciaHandler.List)
			r.Get("/{id}", asistenciaHandler.GetByID)
			r.Post("/", asistenciaHandler.Create)
			r.Put("/{id}", asistenciaHandler.Update)
			r.Delete("/{id}", asistenciaHandler.Delete)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Infow("startup", "status", "servidor escuchando", "port", port)
	return http.ListenAndServe(":"+port, r)
}

func newLog(serviceName string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}

func mailPort() int {
	port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil {
		return 587
	}
	return port
}

package curiobackend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/curioapp/curio-backend/internal/config"
	customjwt "github.com/curioapp/curio-backend/internal/lib/jwt"
	"github.com/curioapp/curio-backend/internal/lib/sl"
	"github.com/curioapp/curio-backend/internal/migrations"
	"github.com/curioapp/curio-backend/internal/rabbitmq"
	authservice "github.com/curioapp/curio-backend/internal/services/auth"
	contactservice "github.com/curioapp/curio-backend/internal/services/contact"
	"github.com/curioapp/curio-backend/internal/storage/repository"
)

// App связывает хранилище, брокер уведомлений и HTTP-сервер приложения.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	amqpConn *amqp.Connection
}

// New собирает приложение: хранилище, миграции, брокер, сервисы и маршруты.
//
// Недоступность базы данных на старте — фатальная ошибка. Недоступность брокера
// уведомлений только отключает публикацию событий.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	var amqpConn *amqp.Connection
	var publisher contactservice.Publisher
	if cfg.RabbitMQ.ConnectionString != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQ.ConnectionString, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			logger.Warn("rabbitmq unavailable, contact notifications disabled", sl.Err(err))
		} else {
			ch, err := rabbitmq.SetupChannel(amqpConn, rabbitmq.GetNotificationQueues())
			if err != nil {
				return nil, err
			}
			publisher = rabbitmq.NewPublisher(ch)
		}
	}

	jwtMaker := customjwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker, cfg.HTTPServer.StorageTimeout)
	contactService := contactservice.NewContactService(db, publisher, logger, cfg.HTTPServer.StorageTimeout)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, contactService, authService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		amqpConn: amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqpConn != nil {
			_ = a.amqpConn.Close()
		}
		_ = a.db.DB.Close()
		return err
	}
}

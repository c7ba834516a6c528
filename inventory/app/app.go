package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-inventory/inventory/config"
	"github.com/Astemirdum/book-inventory/inventory/internal/handler"
	"github.com/Astemirdum/book-inventory/inventory/internal/repository"
	"github.com/Astemirdum/book-inventory/inventory/internal/server"
	"github.com/Astemirdum/book-inventory/inventory/internal/service"
	"github.com/Astemirdum/book-inventory/inventory/migrations"
	cb "github.com/Astemirdum/book-inventory/pkg/circuit_breaker"
	"github.com/Astemirdum/book-inventory/pkg/kafka"
	"github.com/Astemirdum/book-inventory/pkg/logger"
	"github.com/Astemirdum/book-inventory/pkg/postgres"
)

type eventPublisher interface {
	service.Publisher
	Close() error
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "inventory")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}

	pub, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return errors.Wrap(err, "publisher")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error("publisher close", zap.Error(err))
		}
	}()

	svc := service.NewService(repo, pub, log)
	h := handler.New(svc, cfg.Banner, log)
	router, err := h.NewRouter()
	if err != nil {
		return errors.Wrap(err, "router")
	}
	srv := server.NewServer(cfg.Server, router)
	log.Info("http server start ON: ",
		zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case err := <-runErr:
		if err != nil {
			return errors.Wrap(err, "server run")
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// newPublisher falls back to a no-op publisher when no brokers are configured.
func newPublisher(cfg kafka.Config, log *zap.Logger) (eventPublisher, error) {
	if !cfg.Enabled() {
		log.Info("kafka disabled, inventory events are not published")
		return kafka.NopPublisher{}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	breaker := cb.New(cb.Settings{
		Window:           10,
		Timeout:          5 * time.Second,
		FailureRatio:     0.5,
		RecoveryRequests: 1,
	})
	return kafka.NewPublisher(producer, cfg.InventoryTopic, breaker), nil
}

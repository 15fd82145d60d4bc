package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-ledger-service/internal/adapter/http/controller"
	"github.com/api-sage/bank-ledger-service/internal/adapter/http/middleware"
	"github.com/api-sage/bank-ledger-service/internal/adapter/http/router"
	"github.com/api-sage/bank-ledger-service/internal/adapter/notifier"
	"github.com/api-sage/bank-ledger-service/internal/adapter/repository/postgres"
	"github.com/api-sage/bank-ledger-service/internal/config"
	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)

	// The bus stays empty until something subscribes; publishing to it is
	// then a no-op, so it costs nothing in an AMQP-only deployment.
	bus := notifier.NewBus()
	transferNotifier := domain.TransferNotifier(bus)
	if cfg.AMQPURL != "" {
		publisher, err := notifier.NewRabbitMQPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("connect rabbitmq: %v", err)
		}
		defer publisher.Close()
		transferNotifier = notifier.NewFanout(bus, publisher)
	}

	mux := router.New(
		controller.NewAccountController(services.NewAccountService(accountRepo)),
		controller.NewTransferController(services.NewTransferService(ledgerRepo, transferNotifier)),
		controller.NewTransactionController(services.NewTransactionService(ledgerRepo)),
		middleware.CORS(cfg.AllowedOrigin),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

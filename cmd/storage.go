package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/config"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	eventTypeCache "github.com/m04kA/GSO-BookingService/internal/infra/cache/eventtype"
	auditRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/audit"
	bookingRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/eventtype"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	auditService "github.com/m04kA/GSO-BookingService/internal/service/audit"
	backupService "github.com/m04kA/GSO-BookingService/internal/service/backup"
	bookingsService "github.com/m04kA/GSO-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/GSO-BookingService/internal/usecase/create_booking"
	findConflictUC "github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
	updateBookingUC "github.com/m04kA/GSO-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/GSO-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
	"github.com/m04kA/GSO-BookingService/pkg/metrics"
	"github.com/m04kA/GSO-BookingService/pkg/txmanager"
)

// bookingRepository объединяет контракты всех потребителей репозитория броней
type bookingRepository interface {
	createBookingUC.BookingRepository
	updateBookingUC.BookingRepository
	findConflictUC.BookingRepository
	bookingsService.BookingRepository
	backupService.BookingRepository
}

// Интерфейс для transaction manager (Postgres или memory)
type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	bookings   bookingRepository
	eventTypes eventTypeCache.Repository
	audit      auditService.Repository
	txManager  transactionManager
	close      func()
}

// openStorage создает хранилище по storage.driver
func openStorage(cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		store.SeedEventTypes(domain.DefaultEventTypes())
		log.Info("Using in-memory storage, %d default event types seeded", len(domain.DefaultEventTypes()))

		return &storage{
			bookings:   store.Bookings(),
			eventTypes: store.EventTypes(),
			audit:      store.Audit(),
			txManager:  store.TxManager(),
			close:      func() {},
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// nil collector отключает метрики запросов
	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	txMgr := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithSerializableRetries(cfg.Database.SerializableRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	return &storage{
		bookings:   bookingRepo.NewRepository(wrappedDB, log),
		eventTypes: eventTypeRepo.NewRepository(wrappedDB),
		audit:      auditRepo.NewRepository(wrappedDB),
		txManager:  txMgr,
		close: func() {
			close(stopMetricsCh)
			db.Close()
		},
	}, nil
}

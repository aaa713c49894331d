package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	archiveBookingHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/archive_booking"
	checkConflictHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/create_booking"
	createEventTypeHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/create_event_type"
	deleteBookingHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/delete_booking"
	deleteEventTypeHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/delete_event_type"
	exportBackupHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/export_backup"
	getAuditTrailHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/get_audit_trail"
	getBookingHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/get_booking"
	getVenueAvailabilityHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/get_venue_availability"
	healthHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/list_bookings"
	listEventTypesHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/list_event_types"
	listVenuesHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/list_venues"
	restoreBackupHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/restore_backup"
	updateBookingHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/update_booking"
	updateEventTypeHandler "github.com/m04kA/GSO-BookingService/internal/api/handlers/update_event_type"
	"github.com/m04kA/GSO-BookingService/internal/api/middleware"
	"github.com/m04kA/GSO-BookingService/internal/config"
	eventTypeCache "github.com/m04kA/GSO-BookingService/internal/infra/cache/eventtype"
	"github.com/m04kA/GSO-BookingService/internal/integrations/auditbus"
	auditService "github.com/m04kA/GSO-BookingService/internal/service/audit"
	backupService "github.com/m04kA/GSO-BookingService/internal/service/backup"
	bookingsService "github.com/m04kA/GSO-BookingService/internal/service/bookings"
	eventTypesService "github.com/m04kA/GSO-BookingService/internal/service/eventtypes"
	createBookingUC "github.com/m04kA/GSO-BookingService/internal/usecase/create_booking"
	findConflictUC "github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
	venueAvailabilityUC "github.com/m04kA/GSO-BookingService/internal/usecase/get_venue_availability"
	updateBookingUC "github.com/m04kA/GSO-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
	"github.com/m04kA/GSO-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GSO-BookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище: Postgres или memory
	store, err := openStorage(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Кэш каталога типов событий
	var eventTypes eventTypeCache.Repository = store.eventTypes
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unavailable at %s, event type cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			eventTypes = eventTypeCache.NewCache(store.eventTypes, rdb, time.Duration(cfg.Redis.TTL)*time.Second, log)
			log.Info("Event type cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Публикация журнала аудита в Kafka
	var publisher auditService.Publisher
	if cfg.Kafka.Enabled {
		producer := auditbus.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second, log)
		defer producer.Close()
		publisher = producer
		log.Info("Audit stream enabled (topic=%s, brokers=%v)", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	// Инициализируем сервисы
	auditSvc := auditService.NewService(store.audit, publisher, log)
	conflictChecker := findConflictUC.NewUseCase(store.bookings, metricsCollector, log)
	bookingSvc := bookingsService.NewService(
		store.bookings,
		conflictChecker,
		auditSvc,
		metricsCollector,
		store.txManager,
		log,
		cfg.Booking.AllowDeleteActive,
	)
	eventTypeSvc := eventTypesService.NewService(eventTypes, auditSvc, log)
	backupSvc := backupService.NewService(store.bookings, eventTypes, auditSvc, store.txManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		eventTypes,
		conflictChecker,
		auditSvc,
		metricsCollector,
		store.txManager,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		store.bookings,
		eventTypes,
		conflictChecker,
		auditSvc,
		metricsCollector,
		store.txManager,
		log,
	)
	venueAvailabilityUseCase := venueAvailabilityUC.NewUseCase(store.bookings, log)

	// Инициализируем handlers
	checkConflict := checkConflictHandler.NewHandler(conflictChecker, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getVenueAvailability := getVenueAvailabilityHandler.NewHandler(venueAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	archiveBooking := archiveBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listEventTypes := listEventTypesHandler.NewHandler(eventTypeSvc, log)
	createEventType := createEventTypeHandler.NewHandler(eventTypeSvc, log)
	updateEventType := updateEventTypeHandler.NewHandler(eventTypeSvc, log)
	deleteEventType := deleteEventTypeHandler.NewHandler(eventTypeSvc, log)
	getAuditTrail := getAuditTrailHandler.NewHandler(auditSvc, log)
	exportBackup := exportBackupHandler.NewHandler(backupSvc, log)
	restoreBackup := restoreBackupHandler.NewHandler(backupSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/api/health", healthHandler.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/venues", listVenuesHandler.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venue}/availability", getVenueAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/check-conflict", checkConflict.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/archive", archiveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Каталог типов событий ---
	protected.HandleFunc("/event-types", createEventType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/event-types/{eventTypeId}", updateEventType.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/event-types/{eventTypeId}", deleteEventType.Handle).Methods(http.MethodDelete)

	// --- Администрирование ---
	protected.HandleFunc("/admin/audit", getAuditTrail.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/backup", exportBackup.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/restore", restoreBackup.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s)", addr, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

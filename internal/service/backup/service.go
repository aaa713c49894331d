package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

// Service выгрузка и восстановление каталога и броней
type Service struct {
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	audit         AuditRecorder
	txManager     TransactionManager
	logger        Logger
	now           func() time.Time
}

func NewService(
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		audit:         audit,
		txManager:     txManager,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Export возвращает согласованный снимок всех типов событий и броней, включая архивные
func (s *Service) Export(ctx context.Context) (*domain.Backup, error) {
	s.logger.Info("Export: building backup")

	result := &domain.Backup{ExportedAt: s.now()}
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		eventTypes, err := s.eventTypeRepo.List(txCtx)
		if err != nil {
			return err
		}
		bookings, err := s.bookingRepo.List(txCtx, domain.BookingsFilter{
			Status: domain.StatusFilterAll,
			Sort:   domain.SortAsc,
		})
		if err != nil {
			return err
		}

		result.EventTypes = make([]domain.EventType, 0, len(eventTypes))
		for _, et := range eventTypes {
			result.EventTypes = append(result.EventTypes, *et)
		}
		result.Bookings = make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			result.Bookings = append(result.Bookings, *b)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Export: %d event types, %d bookings", len(result.EventTypes), len(result.Bookings))
	return result, nil
}

// Restore заменяет каталог и все брони содержимым снимка.
// Снимок проверяется целиком; при любой ошибке данные не меняются.
func (s *Service) Restore(ctx context.Context, actor string, backup *domain.Backup) error {
	s.logger.Info("Restore: %d event types, %d bookings by %q", len(backup.EventTypes), len(backup.Bookings), actor)

	if err := validateBackup(backup); err != nil {
		s.logger.Warn("Restore: rejected: %v", err)
		return err
	}

	eventTypes := make([]*domain.EventType, 0, len(backup.EventTypes))
	for i := range backup.EventTypes {
		eventTypes = append(eventTypes, &backup.EventTypes[i])
	}
	bookings := make([]*domain.Booking, 0, len(backup.Bookings))
	for i := range backup.Bookings {
		bookings = append(bookings, &backup.Bookings[i])
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.eventTypeRepo.ReplaceAll(txCtx, eventTypes); err != nil {
			return err
		}
		return s.bookingRepo.ReplaceAll(txCtx, bookings)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		s.logger.Error("Restore: failed: %v", err)
		return fmt.Errorf("%w: Restore - repository error: %v", ErrInternal, err)
	}

	if err := s.audit.Record(ctx, domain.AuditBackupRestored, actor, "", map[string]interface{}{
		"eventTypes": len(eventTypes),
		"bookings":   len(bookings),
	}); err != nil {
		s.logger.Error("Restore: failed to record audit: %v", err)
	}

	s.logger.Info("Restore: completed")
	return nil
}

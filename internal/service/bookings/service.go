package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GSO-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

// Service сервис для работы с бронированиями: чтение, архивирование, удаление
type Service struct {
	bookingRepo       BookingRepository
	conflicts         ConflictChecker
	audit             AuditRecorder
	metrics           OperationMetrics
	txManager         TransactionManager
	logger            Logger
	allowDeleteActive bool
	now               func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований.
// allowDeleteActive разрешает удаление неархивированных броней.
func NewService(
	bookingRepo BookingRepository,
	conflicts ConflictChecker,
	audit AuditRecorder,
	metrics OperationMetrics,
	txManager TransactionManager,
	logger Logger,
	allowDeleteActive bool,
) *Service {
	return &Service{
		bookingRepo:       bookingRepo,
		conflicts:         conflicts,
		audit:             audit,
		metrics:           metrics,
		txManager:         txManager,
		logger:            logger,
		allowDeleteActive: allowDeleteActive,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией.
// По умолчанию только активные, сначала самые поздние.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]*domain.Booking, error) {
	logMsg := fmt.Sprintf("List: fetching bookings status=%q", req.Status)
	if req.Venue != "" {
		logMsg += fmt.Sprintf(", venue=%q", req.Venue)
	}
	if req.From != nil || req.To != nil {
		logMsg += fmt.Sprintf(", period=%v to %v", formatOptionalDate(req.From), formatOptionalDate(req.To))
	}
	if req.Search != "" {
		logMsg += fmt.Sprintf(", search=%q", req.Search)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return bookings, nil
}

// ToggleArchive переключает флаг archived.
// При возврате из архива бронь снова проходит проверку пересечений.
func (s *Service) ToggleArchive(ctx context.Context, id, actor string) (*domain.Booking, error) {
	s.logger.Info("ToggleArchive: booking id=%s by %q", id, actor)

	var result *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		archived := !booking.Archived
		if !archived {
			resp, err := s.conflicts.Execute(txCtx, &find_conflict.Request{
				Venue:     booking.Venue,
				Dates:     booking.Dates,
				StartTime: booking.StartTime,
				EndTime:   booking.EndTime,
				IgnoreID:  &booking.ID,
			})
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
		}

		updatedAt := s.now()
		if err := s.bookingRepo.SetArchived(txCtx, id, archived, updatedAt); err != nil {
			return err
		}

		booking.Archived = archived
		booking.UpdatedAt = updatedAt
		result = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("ToggleArchive: booking id=%s not found", id)
			s.count("archive", "not_found")
			return nil, ErrBookingNotFound
		case errors.Is(err, domain.ErrScheduleConflict), errors.Is(err, domain.ErrInvalidInput):
			s.logger.Warn("ToggleArchive: booking id=%s cannot be restored: %v", id, err)
			s.count("archive", "conflict")
			return nil, err
		default:
			s.logger.Error("ToggleArchive: failed for booking id=%s: %v", id, err)
			s.count("archive", "error")
			return nil, fmt.Errorf("%w: ToggleArchive - repository error: %v", ErrInternal, err)
		}
	}

	action := domain.AuditBookingUnarchived
	if result.Archived {
		action = domain.AuditBookingArchived
	}
	s.record(ctx, action, actor, result)
	s.count("archive", "ok")

	s.logger.Info("ToggleArchive: booking id=%s archived=%t", id, result.Archived)
	return result, nil
}

// Delete удаляет бронирование вместе с датами
func (s *Service) Delete(ctx context.Context, id, actor string) error {
	s.logger.Info("Delete: booking id=%s by %q", id, actor)

	var deleted *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if booking.IsActive() && !s.allowDeleteActive {
			return ErrNotArchived
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Delete: booking id=%s not found", id)
			s.count("delete", "not_found")
			return ErrBookingNotFound
		case errors.Is(err, ErrNotArchived):
			s.logger.Warn("Delete: booking id=%s is still active", id)
			s.count("delete", "rejected")
			return ErrNotArchived
		default:
			s.logger.Error("Delete: failed for booking id=%s: %v", id, err)
			s.count("delete", "error")
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.record(ctx, domain.AuditBookingDeleted, actor, deleted)
	s.count("delete", "ok")

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

func (s *Service) record(ctx context.Context, action, actor string, b *domain.Booking) {
	meta := map[string]interface{}{
		"eventName": b.Event.Name,
		"date":      domain.FormatDate(b.PrimaryDate()),
		"venue":     string(b.Venue),
	}
	if err := s.audit.Record(ctx, action, actor, b.ID, meta); err != nil {
		s.logger.Error("%s: failed to record audit for booking id=%s: %v", action, b.ID, err)
	}
}

func (s *Service) count(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.IncBookingOperation(operation, outcome)
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return domain.FormatDate(*t)
}

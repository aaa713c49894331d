package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/eventtype"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

const operation = "update"

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	conflicts     ConflictChecker
	audit         AuditRecorder
	metrics       OperationMetrics
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	conflicts ConflictChecker,
	audit AuditRecorder,
	metrics OperationMetrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		conflicts:     conflicts,
		audit:         audit,
		metrics:       metrics,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute изменяет бронирование.
// Чтение, проверка пересечений (без учёта самой брони) и запись - в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("UpdateBooking: id=%s, venue=%s, date=%s, time=%s-%s",
		req.ID, req.Venue, domain.FormatDate(req.Date), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed for id=%s: %v", req.ID, err)
		uc.count("rejected")
		return nil, err
	}

	eventType, err := uc.resolveEventType(ctx, req.EventTypeID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		b, err := uc.merge(existing, req, eventType)
		if err != nil {
			return err
		}

		// архивная бронь в проверке пересечений не участвует
		if b.IsActive() {
			resp, err := uc.conflicts.Execute(txCtx, &find_conflict.Request{
				Venue:     b.Venue,
				Dates:     b.Dates,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
				IgnoreID:  &b.ID,
			})
			if err != nil {
				return err
			}
			if err := resp.Err(); err != nil {
				return err
			}
		}

		if err := uc.bookingRepo.Update(txCtx, b); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		updated = b
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			uc.logger.Warn("UpdateBooking: booking id=%s not found", req.ID)
			uc.count("not_found")
			return nil, err
		case errors.Is(err, domain.ErrScheduleConflict):
			uc.logger.Warn("UpdateBooking: id=%s: %v", req.ID, err)
			uc.count("conflict")
			return nil, err
		case errors.Is(err, domain.ErrInvalidInput):
			uc.logger.Warn("UpdateBooking: validation failed for id=%s: %v", req.ID, err)
			uc.count("rejected")
			return nil, err
		default:
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.ID, err)
			uc.count("error")
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", updated.ID)
	uc.count("ok")

	if err := uc.audit.Record(ctx, domain.AuditBookingUpdated, req.Actor, updated.ID, map[string]interface{}{
		"eventName": updated.Event.Name,
		"date":      domain.FormatDate(updated.PrimaryDate()),
		"venue":     string(updated.Venue),
	}); err != nil {
		uc.logger.Error("UpdateBooking: failed to record audit for booking id=%s: %v", updated.ID, err)
	}

	return updated, nil
}

func (uc *UseCase) resolveEventType(ctx context.Context, id *string) (*domain.EventType, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}

	et, err := uc.eventTypeRepo.GetByID(ctx, strings.TrimSpace(*id))
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("UpdateBooking: event type id=%s not found", *id)
			uc.count("rejected")
			return nil, domain.NewValidationError(domain.ReasonUnknownEventType, "Unknown event type")
		}
		uc.logger.Error("UpdateBooking: failed to get event type id=%s: %v", *id, err)
		uc.count("error")
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}
	return et, nil
}

// merge переносит поля запроса на копию сохранённой записи
func (uc *UseCase) merge(existing *domain.Booking, req *Request, eventType *domain.EventType) (*domain.Booking, error) {
	b := existing.Clone()

	b.RequestedBy = strings.TrimSpace(req.RequestedBy)
	if eventType != nil {
		b.Event = domain.KnownEvent(eventType.ID, eventType.Name)
	} else {
		b.Event = domain.CustomEvent(strings.TrimSpace(req.EventName))
	}
	b.Venue, _ = domain.ParseVenue(req.Venue)
	b.Dates = []time.Time{domain.TruncateDate(req.Date)}
	b.StartTime = req.StartTime.Normalize()
	b.EndTime = req.EndTime.Normalize()

	switch {
	case req.Amount != nil:
		b.Amount = *req.Amount
	case eventType != nil:
		b.Amount = eventType.AmountFor(b.DurationHours())
	}
	if b.Amount <= 0 {
		return nil, domain.NewValidationError(domain.ReasonInvalidAmount, "Amount is required")
	}

	if req.DiscountPct != nil {
		b.DiscountPct = *req.DiscountPct
	}
	if req.Donation != nil {
		b.Donation = *req.Donation
	}
	if req.Resources != nil {
		b.Resources = *req.Resources
	}
	if req.Archived != nil {
		b.Archived = *req.Archived
	}

	b.ApplyPricing()
	b.UpdatedAt = uc.timeProvider.Now()

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.FinalAmount <= 0 {
		return nil, domain.NewValidationError(domain.ReasonInvalidAmount, "Final amount must be greater than zero")
	}
	return b, nil
}

func (uc *UseCase) count(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingOperation(operation, outcome)
	}
}

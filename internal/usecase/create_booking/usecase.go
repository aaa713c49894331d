package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	eventTypeRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/eventtype"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

const operation = "create"

// UseCase use case для создания бронирования
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

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает бронирование.
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: venue=%s, dates=%d, time=%s-%s, requestedBy=%q",
		req.Venue, len(req.Dates), req.StartTime, req.EndTime, req.RequestedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.count("rejected")
		return nil, err
	}

	// 2. Тип события: известный ID имеет приоритет над текстом
	var eventType *domain.EventType
	event := domain.CustomEvent(strings.TrimSpace(req.EventName))
	if req.EventTypeID != nil && strings.TrimSpace(*req.EventTypeID) != "" {
		et, err := uc.eventTypeRepo.GetByID(ctx, strings.TrimSpace(*req.EventTypeID))
		if err != nil {
			if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
				uc.logger.Warn("CreateBooking: event type id=%s not found", *req.EventTypeID)
				uc.count("rejected")
				return nil, domain.NewValidationError(domain.ReasonUnknownEventType, "Unknown event type")
			}
			uc.logger.Error("CreateBooking: failed to get event type id=%s: %v", *req.EventTypeID, err)
			uc.count("error")
			return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
		}
		eventType = et
		event = domain.KnownEvent(et.ID, et.Name)
	}

	// 3. Собираем бронирование; суммы считаются на сервере
	venue, _ := domain.ParseVenue(req.Venue)
	now := uc.timeProvider.Now()

	booking := &domain.Booking{
		ID:          uuid.NewString(),
		RequestedBy: strings.TrimSpace(req.RequestedBy),
		Event:       event,
		Venue:       venue,
		Dates:       domain.NormalizeDates(req.Dates),
		StartTime:   req.StartTime.Normalize(),
		EndTime:     req.EndTime.Normalize(),
		DiscountPct: req.DiscountPct,
		Donation:    req.Donation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	amount, err := resolveAmount(req.Amount, eventType, booking.DurationHours())
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		uc.count("rejected")
		return nil, err
	}
	booking.Amount = amount
	booking.ApplyPricing()

	switch {
	case req.Resources != nil:
		booking.Resources = *req.Resources
	case eventType != nil:
		booking.Resources = eventType.DefaultResources
	}

	if err := booking.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.count("rejected")
		return nil, err
	}
	if err := requirePositiveFinal(booking); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.count("rejected")
		return nil, err
	}

	// 4. Проверка пересечений + вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resp, err := uc.conflicts.Execute(txCtx, &find_conflict.Request{
			Venue:     booking.Venue,
			Dates:     booking.Dates,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
		})
		if err != nil {
			return err
		}
		if err := resp.Err(); err != nil {
			return err
		}

		return uc.bookingRepo.Create(txCtx, booking)
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleConflict):
			uc.logger.Warn("CreateBooking: %v", err)
			uc.count("conflict")
			return nil, err
		case errors.Is(err, domain.ErrInvalidInput):
			uc.logger.Warn("CreateBooking: validation failed: %v", err)
			uc.count("rejected")
			return nil, err
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			uc.count("error")
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	uc.count("ok")

	// 5. Аудит после коммита: его сбой не отменяет бронирование
	if err := uc.audit.Record(ctx, domain.AuditBookingCreated, req.Actor, booking.ID, map[string]interface{}{
		"eventName": booking.Event.Name,
		"date":      domain.FormatDate(booking.PrimaryDate()),
		"venue":     string(booking.Venue),
	}); err != nil {
		uc.logger.Error("CreateBooking: failed to record audit for booking id=%s: %v", booking.ID, err)
	}

	return booking, nil
}

func (uc *UseCase) count(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingOperation(operation, outcome)
	}
}

package eventtypes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	eventTypeRepo "github.com/m04kA/GSO-BookingService/internal/infra/storage/eventtype"
	"github.com/m04kA/GSO-BookingService/internal/service/eventtypes/models"
)

const idPrefix = "evt-"

// Service сервис каталога типов событий
type Service struct {
	repo   Repository
	audit  AuditRecorder
	logger Logger
	now    func() time.Time
}

func NewService(repo Repository, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		repo:   repo,
		audit:  audit,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List возвращает каталог, упорядоченный по названию
func (s *Service) List(ctx context.Context) ([]*domain.EventType, error) {
	eventTypes, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return eventTypes, nil
}

// GetByID получает тип события по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.EventType, error) {
	et, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("GetByID: event type id=%s not found", id)
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("GetByID: repository error for event type id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return et, nil
}

// Create добавляет тип события
func (s *Service) Create(ctx context.Context, actor string, req *models.CreateEventTypeRequest) (*domain.EventType, error) {
	s.logger.Info("Create: event type name=%q by %q", req.Name, actor)

	now := s.now()
	et := &domain.EventType{
		ID:               idPrefix + uuid.NewString(),
		Name:             strings.TrimSpace(req.Name),
		BaseAmount:       req.BaseAmount,
		DefaultResources: req.DefaultResources,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := et.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.repo.Create(ctx, et); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.record(ctx, domain.AuditEventTypeCreated, actor, et)
	s.logger.Info("Create: event type id=%s created", et.ID)
	return et, nil
}

// Update изменяет тип события.
// Брони сохраняют название события на момент бронирования.
func (s *Service) Update(ctx context.Context, id, actor string, req *models.UpdateEventTypeRequest) (*domain.EventType, error) {
	s.logger.Info("Update: event type id=%s by %q", id, actor)

	et, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(et)
	et.Name = strings.TrimSpace(et.Name)
	et.UpdatedAt = s.now()
	if err := et.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	if err := s.repo.Update(ctx, et); err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.record(ctx, domain.AuditEventTypeUpdated, actor, et)
	return et, nil
}

// Delete удаляет тип события; ссылающиеся брони становятся произвольными событиями
func (s *Service) Delete(ctx context.Context, id, actor string) error {
	s.logger.Info("Delete: event type id=%s by %q", id, actor)

	et, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			return ErrEventTypeNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.record(ctx, domain.AuditEventTypeDeleted, actor, et)
	return nil
}

func (s *Service) record(ctx context.Context, action, actor string, et *domain.EventType) {
	meta := map[string]interface{}{"id": et.ID, "name": et.Name}
	if err := s.audit.Record(ctx, action, actor, et.ID, meta); err != nil {
		s.logger.Error("%s: failed to record audit for event type id=%s: %v", action, et.ID, err)
	}
}

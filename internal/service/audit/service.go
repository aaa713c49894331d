package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

const systemActor = "system"

// Service журнал действий операторов
type Service struct {
	repo      Repository
	publisher Publisher
	logger    Logger
	now       func() time.Time
}

// NewService создает сервис аудита. publisher может быть nil.
func NewService(repo Repository, publisher Publisher, logger Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Record сохраняет запись и публикует её, если настроен publisher.
// Ошибка публикации только логируется: источником истины остаётся хранилище.
func (s *Service) Record(ctx context.Context, action, actor, entityID string, meta map[string]interface{}) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = systemActor
	}

	entry := &domain.AuditEntry{
		ID:       uuid.NewString(),
		Action:   action,
		Actor:    actor,
		EntityID: entityID,
		Meta:     meta,
		At:       s.now(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("Record: failed to append %s for entity=%s: %v", action, entityID, err)
		return fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, entry); err != nil {
			s.logger.Warn("Record: failed to publish %s for entity=%s: %v", action, entityID, err)
		}
	}

	return nil
}

// List возвращает последние записи, новые первыми.
// limit <= 0 заменяется значением по умолчанию, слишком большой - обрезается.
func (s *Service) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	switch {
	case limit <= 0:
		limit = domain.DefaultAuditLimit
	case limit > domain.MaxAuditLimit:
		limit = domain.MaxAuditLimit
	}

	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

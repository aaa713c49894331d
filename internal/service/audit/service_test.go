package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/GSO-BookingService/pkg/logger"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditEntry), args.Error(1)
}

func TestService_RecordPersistsAndPublishes(t *testing.T) {
	store := memory.NewStore()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditBookingCreated && e.EntityID == "bk-1"
	})).Return(nil)

	svc := NewService(store.Audit(), publisher, logger.NewNop())

	require.NoError(t, svc.Record(context.Background(), domain.AuditBookingCreated, "admin", "bk-1",
		map[string]interface{}{"eventName": "VOLLEYBALL TRAINING"}))

	entries, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].Actor)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].At.IsZero())
	publisher.AssertExpectations(t)
}

func TestService_RecordDefaultsActor(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Audit(), nil, logger.NewNop())

	require.NoError(t, svc.Record(context.Background(), domain.AuditBookingDeleted, "  ", "bk-1", nil))

	entries, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, systemActor, entries[0].Actor)
}

func TestService_PublishFailureIsNotReturned(t *testing.T) {
	store := memory.NewStore()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	svc := NewService(store.Audit(), publisher, logger.NewNop())

	require.NoError(t, svc.Record(context.Background(), domain.AuditBookingUpdated, "admin", "bk-1", nil))
}

func TestService_RepositoryFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	publisher := new(MockPublisher)

	svc := NewService(repo, publisher, logger.NewNop())

	err := svc.Record(context.Background(), domain.AuditBookingUpdated, "admin", "bk-1", nil)
	require.ErrorIs(t, err, ErrInternal)
	publisher.AssertNumberOfCalls(t, "Publish", 0)
}

func TestService_ListClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, domain.DefaultAuditLimit).Return([]*domain.AuditEntry{}, nil).Once()
	repo.On("List", mock.Anything, domain.MaxAuditLimit).Return([]*domain.AuditEntry{}, nil).Once()
	repo.On("List", mock.Anything, 5).Return([]*domain.AuditEntry{}, nil).Once()

	svc := NewService(repo, nil, logger.NewNop())

	for _, limit := range []int{-1, domain.MaxAuditLimit + 1, 5} {
		_, err := svc.List(context.Background(), limit)
		require.NoError(t, err)
	}
	repo.AssertExpectations(t)
}

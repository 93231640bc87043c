package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"nebulanotes/internal/models"
)

type MockGalaxyStore struct {
	mock.Mock
}

func (m *MockGalaxyStore) List(ctx context.Context) ([]models.Galaxy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Galaxy), args.Error(1)
}

func (m *MockGalaxyStore) FindByID(ctx context.Context, id int64) (*models.Galaxy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Galaxy), args.Error(1)
}

func (m *MockGalaxyStore) FindByName(ctx context.Context, name string) (*models.Galaxy, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Galaxy), args.Error(1)
}

func (m *MockGalaxyStore) Create(ctx context.Context, g *models.Galaxy) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalaxyStore) Update(ctx context.Context, g *models.Galaxy) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalaxyStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockObjectTypeStore struct {
	mock.Mock
}

func (m *MockObjectTypeStore) List(ctx context.Context) ([]models.ObjectType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ObjectType), args.Error(1)
}

func (m *MockObjectTypeStore) FindByID(ctx context.Context, id int64) (*models.ObjectType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ObjectType), args.Error(1)
}

func (m *MockObjectTypeStore) FindByName(ctx context.Context, name string) (*models.ObjectType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ObjectType), args.Error(1)
}

func (m *MockObjectTypeStore) Create(ctx context.Context, t *models.ObjectType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockObjectTypeStore) Update(ctx context.Context, t *models.ObjectType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockObjectTypeStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AstronomicalObject), args.Error(1)
}

func (m *MockObjectStore) FindByID(ctx context.Context, id int64) (*models.AstronomicalObject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AstronomicalObject), args.Error(1)
}

func (m *MockObjectStore) FindByName(ctx context.Context, name string) (*models.AstronomicalObject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AstronomicalObject), args.Error(1)
}

func (m *MockObjectStore) FindByIDs(ctx context.Context, ids []int64) ([]models.AstronomicalObject, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AstronomicalObject), args.Error(1)
}

func (m *MockObjectStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStore) Create(ctx context.Context, o *models.AstronomicalObject) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockObjectStore) Update(ctx context.Context, o *models.AstronomicalObject) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockObjectStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockExistence struct {
	mock.Mock
}

func (m *MockExistence) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) List(ctx context.Context, desc bool) ([]models.Event, error) {
	args := m.Called(ctx, desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventStore) Create(ctx context.Context, e *models.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEventStore) Update(ctx context.Context, e *models.Event) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockObservationStore struct {
	mock.Mock
}

func (m *MockObservationStore) ListByUser(ctx context.Context, userID int64) ([]models.Observation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Observation), args.Error(1)
}

func (m *MockObservationStore) FindByIDForUser(ctx context.Context, id, userID int64) (*models.Observation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Observation), args.Error(1)
}

func (m *MockObservationStore) Create(ctx context.Context, o *models.Observation) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockObservationStore) Update(ctx context.Context, o *models.Observation) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockObservationStore) Delete(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateWithProfile(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetOrCreate(ctx context.Context, userID int64) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileStore) FindByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileStore) AddFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error {
	return m.Called(ctx, p, o).Error(0)
}

func (m *MockProfileStore) RemoveFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error {
	return m.Called(ctx, p, o).Error(0)
}

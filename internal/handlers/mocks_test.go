package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nebulanotes/internal/models"
	"nebulanotes/internal/services"
)

type MockGalaxyService struct {
	mock.Mock
}

func (m *MockGalaxyService) List(ctx context.Context) ([]models.Galaxy, error) {
	args := m.Called(ctx)
	galaxies, _ := args.Get(0).([]models.Galaxy)
	return galaxies, args.Error(1)
}

func (m *MockGalaxyService) Get(ctx context.Context, id int64) (*models.Galaxy, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.Galaxy)
	return g, args.Error(1)
}

func (m *MockGalaxyService) Create(ctx context.Context, in services.GalaxyInput) (*models.Galaxy, error) {
	args := m.Called(ctx, in)
	g, _ := args.Get(0).(*models.Galaxy)
	return g, args.Error(1)
}

func (m *MockGalaxyService) Update(ctx context.Context, id int64, in services.GalaxyInput) (*models.Galaxy, error) {
	args := m.Called(ctx, id, in)
	g, _ := args.Get(0).(*models.Galaxy)
	return g, args.Error(1)
}

func (m *MockGalaxyService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error) {
	args := m.Called(ctx, typeID)
	objects, _ := args.Get(0).([]models.AstronomicalObject)
	return objects, args.Error(1)
}

func (m *MockObjectService) Get(ctx context.Context, id int64) (*models.AstronomicalObject, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.AstronomicalObject)
	return o, args.Error(1)
}

func (m *MockObjectService) Create(ctx context.Context, in services.AstronomicalObjectInput) (*models.AstronomicalObject, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*models.AstronomicalObject)
	return o, args.Error(1)
}

func (m *MockObjectService) Update(ctx context.Context, id int64, in services.AstronomicalObjectInput) (*models.AstronomicalObject, error) {
	args := m.Called(ctx, id, in)
	o, _ := args.Get(0).(*models.AstronomicalObject)
	return o, args.Error(1)
}

func (m *MockObjectService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(ctx context.Context, sort string) ([]models.Event, error) {
	args := m.Called(ctx, sort)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, in services.EventInput) (*models.Event, error) {
	args := m.Called(ctx, in)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, id int64, in services.EventInput) (*models.Event, error) {
	args := m.Called(ctx, id, in)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockObservationService struct {
	mock.Mock
}

func (m *MockObservationService) List(ctx context.Context, userID int64) ([]models.Observation, error) {
	args := m.Called(ctx, userID)
	observations, _ := args.Get(0).([]models.Observation)
	return observations, args.Error(1)
}

func (m *MockObservationService) Get(ctx context.Context, id, userID int64) (*models.Observation, error) {
	args := m.Called(ctx, id, userID)
	o, _ := args.Get(0).(*models.Observation)
	return o, args.Error(1)
}

func (m *MockObservationService) Create(ctx context.Context, userID int64, in services.ObservationInput) (*models.Observation, error) {
	args := m.Called(ctx, userID, in)
	o, _ := args.Get(0).(*models.Observation)
	return o, args.Error(1)
}

func (m *MockObservationService) Update(ctx context.Context, id, userID int64, in services.ObservationInput) (*models.Observation, error) {
	args := m.Called(ctx, id, userID, in)
	o, _ := args.Get(0).(*models.Observation)
	return o, args.Error(1)
}

func (m *MockObservationService) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	args := m.Called(ctx, username, password)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthService) Register(ctx context.Context, in services.RegisterInput) (*models.Session, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID int64) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}

func (m *MockProfileService) IsFavorite(ctx context.Context, userID, objectID int64) (bool, error) {
	args := m.Called(ctx, userID, objectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) AddFavorite(ctx context.Context, userID, objectID int64) error {
	return m.Called(ctx, userID, objectID).Error(0)
}

func (m *MockProfileService) RemoveFavorite(ctx context.Context, userID, objectID int64) error {
	return m.Called(ctx, userID, objectID).Error(0)
}

type MockObjectTypeService struct {
	mock.Mock
}

func (m *MockObjectTypeService) List(ctx context.Context) ([]models.ObjectType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]models.ObjectType)
	return types, args.Error(1)
}

func (m *MockObjectTypeService) Get(ctx context.Context, id int64) (*models.ObjectType, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.ObjectType)
	return t, args.Error(1)
}

func (m *MockObjectTypeService) Create(ctx context.Context, in services.ObjectTypeInput) (*models.ObjectType, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*models.ObjectType)
	return t, args.Error(1)
}

func (m *MockObjectTypeService) Update(ctx context.Context, id int64, in services.ObjectTypeInput) (*models.ObjectType, error) {
	args := m.Called(ctx, id, in)
	t, _ := args.Get(0).(*models.ObjectType)
	return t, args.Error(1)
}

func (m *MockObjectTypeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

package testutils

import (
	"context"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderStorage struct {
	mock.Mock
}

func (m *MockOrderStorage) AddOrder(ctx context.Context, submission models.OrderSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockOrderStorage) GetOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.OrderRecord), args.Error(1)
}

func (m *MockOrderStorage) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) GetUserIDOrCreate(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) SubmitOrder(ctx context.Context, submission models.OrderSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.OrderRecord), args.Error(1)
}

func (m *MockOrderService) RemoveOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubmissionValidator struct {
	mock.Mock
}

func (m *MockSubmissionValidator) ValidateSubmission(submission models.OrderSubmission) error {
	args := m.Called(submission)
	return args.Error(0)
}

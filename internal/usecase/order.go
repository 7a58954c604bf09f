package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/AlenaMolokova/canteen/internal/validation"
	"github.com/google/uuid"
)

var ErrInvalidSubmission = errors.New("invalid order submission")

type OrderStorage interface {
	AddOrder(ctx context.Context, submission models.OrderSubmission) error
	GetOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type OrderUseCase struct {
	storage   OrderStorage
	validator validation.SubmissionValidator
}

func NewOrderUseCase(storage OrderStorage, validator validation.SubmissionValidator) *OrderUseCase {
	return &OrderUseCase{
		storage:   storage,
		validator: validator,
	}
}

func (uc *OrderUseCase) SubmitOrder(ctx context.Context, submission models.OrderSubmission) error {
	if err := uc.validator.ValidateSubmission(submission); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	if err := uc.storage.AddOrder(ctx, submission); err != nil {
		return fmt.Errorf("failed to add order: %w", err)
	}
	return nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error) {
	return uc.storage.GetOrders(ctx, filter)
}

func (uc *OrderUseCase) RemoveOrder(ctx context.Context, id uuid.UUID) error {
	if err := uc.storage.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("failed to remove order: %w", err)
	}
	return nil
}

package handlers

import (
	"context"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/google/uuid"
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, submission models.OrderSubmission) error
}

type OrderLister interface {
	ListOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error)
}

type OrderRemover interface {
	RemoveOrder(ctx context.Context, id uuid.UUID) error
}

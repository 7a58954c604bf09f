package validation

import (
	"testing"
	"time"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	validator := NewOrderValidator()
	now := time.Now()

	valid := models.OrderSubmission{
		Name:        "Alice",
		Datetime:    now,
		Description: "Coffee",
		Price:       decimal.RequireFromString("3.50"),
	}

	tests := []struct {
		name       string
		submission models.OrderSubmission
		expected   error
	}{
		{
			name:       "valid submission",
			submission: valid,
			expected:   nil,
		},
		{
			name: "empty name",
			submission: models.OrderSubmission{
				Name:        "   ",
				Datetime:    now,
				Description: "Coffee",
				Price:       valid.Price,
			},
			expected: ErrEmptyName,
		},
		{
			name: "empty description",
			submission: models.OrderSubmission{
				Name:     "Alice",
				Datetime: now,
				Price:    valid.Price,
			},
			expected: ErrEmptyDescription,
		},
		{
			name: "zero price",
			submission: models.OrderSubmission{
				Name:        "Alice",
				Datetime:    now,
				Description: "Coffee",
				Price:       decimal.Zero,
			},
			expected: ErrInvalidPrice,
		},
		{
			name: "negative price",
			submission: models.OrderSubmission{
				Name:        "Alice",
				Datetime:    now,
				Description: "Coffee",
				Price:       decimal.RequireFromString("-1.00"),
			},
			expected: ErrInvalidPrice,
		},
		{
			name: "zero datetime",
			submission: models.OrderSubmission{
				Name:        "Alice",
				Description: "Coffee",
				Price:       valid.Price,
			},
			expected: ErrZeroDatetime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSubmission(tt.submission)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

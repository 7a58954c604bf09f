package validation

import (
	"errors"
	"strings"

	"github.com/AlenaMolokova/canteen/internal/models"
)

var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrZeroDatetime     = errors.New("datetime is required")
)

type SubmissionValidator interface {
	ValidateSubmission(submission models.OrderSubmission) error
}

type OrderValidator struct{}

func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

func (v *OrderValidator) ValidateSubmission(submission models.OrderSubmission) error {
	if strings.TrimSpace(submission.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(submission.Description) == "" {
		return ErrEmptyDescription
	}
	if !submission.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if submission.Datetime.IsZero() {
		return ErrZeroDatetime
	}
	return nil
}

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlenaMolokova/canteen/internal/testutils"
	"github.com/AlenaMolokova/canteen/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderHandlerServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(service *testutils.MockOrderService)
		expectedStatus int
	}{
		{
			name: "успешное создание заказа",
			body: `{"name":"Alice","datetime":"2024-01-01T10:00:00","description":"Coffee","price":3.50}`,
			setupMocks: func(service *testutils.MockOrderService) {
				service.On("SubmitOrder", mock.Anything, mock.AnythingOfType("models.OrderSubmission")).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "цена строкой тоже принимается",
			body: `{"name":"Alice","datetime":"2024-01-01T10:00:00","description":"Coffee","price":"3.50"}`,
			setupMocks: func(service *testutils.MockOrderService) {
				service.On("SubmitOrder", mock.Anything, mock.AnythingOfType("models.OrderSubmission")).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "некорректный JSON",
			body:           `{"name":`,
			setupMocks:     func(service *testutils.MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "некорректное время",
			body:           `{"name":"Alice","datetime":"вчера","description":"Coffee","price":3.50}`,
			setupMocks:     func(service *testutils.MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "отклонено валидацией",
			body: `{"name":"","datetime":"2024-01-01T10:00:00","description":"Coffee","price":3.50}`,
			setupMocks: func(service *testutils.MockOrderService) {
				service.On("SubmitOrder", mock.Anything, mock.AnythingOfType("models.OrderSubmission")).
					Return(fmt.Errorf("%w: name is required", usecase.ErrInvalidSubmission))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "ошибка хранилища",
			body: `{"name":"Alice","datetime":"2024-01-01T10:00:00","description":"Coffee","price":3.50}`,
			setupMocks: func(service *testutils.MockOrderService) {
				service.On("SubmitOrder", mock.Anything, mock.AnythingOfType("models.OrderSubmission")).
					Return(errors.New("connection lost"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &testutils.MockOrderService{}
			tt.setupMocks(service)

			handler := NewOrderHandler(service)
			req := httptest.NewRequest(http.MethodPost, "/api/order/", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Empty(t, w.Body.String(), "success response must have no body")
			}
			service.AssertExpectations(t)
		})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/AlenaMolokova/canteen/internal/usecase"
	"github.com/AlenaMolokova/canteen/internal/utils"
	"github.com/shopspring/decimal"
)

type OrderRequest struct {
	Name        string          `json:"name"`
	Datetime    string          `json:"datetime"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type OrderHandler struct {
	orders OrderSubmitter
}

func NewOrderHandler(orders OrderSubmitter) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode order request: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	datetime, err := utils.ParseDatetime(req.Datetime)
	if err != nil {
		log.Printf("Invalid datetime %q: %v", req.Datetime, err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid datetime")
		return
	}

	submission := models.OrderSubmission{
		Name:        req.Name,
		Datetime:    datetime,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := h.orders.SubmitOrder(r.Context(), submission); err != nil {
		if errors.Is(err, usecase.ErrInvalidSubmission) {
			log.Printf("Rejected order submission: %v", err)
			utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Failed to submit order for %q: %v", req.Name, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("Order created for %q", req.Name)
	w.WriteHeader(http.StatusOK)
}

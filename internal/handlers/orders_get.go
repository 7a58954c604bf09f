package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/AlenaMolokova/canteen/internal/utils"
)

type OrderGetHandler struct {
	orders OrderLister
}

func NewOrderGetHandler(orders OrderLister) *OrderGetHandler {
	return &OrderGetHandler{orders: orders}
}

type OrderResponse struct {
	ID          string `json:"id"`
	Datetime    string `json:"datetime"`
	User        string `json:"user"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (h *OrderGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter models.OrdersFilter
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := utils.ParseDate(dateParam)
		if err != nil {
			log.Printf("Invalid date filter %q: %v", dateParam, err)
			utils.WriteJSONError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		filter.Date = &date
	}

	orders, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		log.Printf("Failed to get orders: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderResponse{
			ID:          order.ID.String(),
			Datetime:    order.Datetime.Time.Format(time.RFC3339),
			User:        order.User,
			Description: order.Description,
			Price:       order.Price.StringFixed(2),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode orders response: %v", err)
		return
	}
	log.Printf("Returned %d orders", len(orders))
}

package handlers

import (
	"log"
	"net/http"

	"github.com/AlenaMolokova/canteen/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderDeleteHandler struct {
	orders OrderRemover
}

func NewOrderDeleteHandler(orders OrderRemover) *OrderDeleteHandler {
	return &OrderDeleteHandler{orders: orders}
}

func (h *OrderDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		log.Printf("Invalid order id %q: %v", idParam, err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orders.RemoveOrder(r.Context(), id); err != nil {
		log.Printf("Failed to delete order %s: %v", id, err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("Order %s deleted", id)
	w.WriteHeader(http.StatusOK)
}

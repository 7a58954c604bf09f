package handlers

import (
	"errors"
	"log"
	"net/http"
	"os/user"
	"time"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/AlenaMolokova/canteen/internal/usecase"
	"github.com/AlenaMolokova/canteen/internal/web"
	"github.com/shopspring/decimal"
)

func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return "guest"
	}
	return u.Username
}

type HomeHandler struct {
	orders    OrderLister
	templates *web.Templates
}

func NewHomeHandler(orders OrderLister, templates *web.Templates) *HomeHandler {
	return &HomeHandler{orders: orders, templates: templates}
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	today := now
	orders, err := h.orders.ListOrders(r.Context(), models.OrdersFilter{Date: &today})
	if err != nil {
		log.Printf("Failed to get today's orders: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Now":      now,
		"Username": currentUsername(),
		"Orders":   orders,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "index.html", data); err != nil {
		log.Printf("Failed to render home page: %v", err)
	}
}

type OrderPageHandler struct {
	templates *web.Templates
}

func NewOrderPageHandler(templates *web.Templates) *OrderPageHandler {
	return &OrderPageHandler{templates: templates}
}

func (h *OrderPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Username": currentUsername(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "order.html", data); err != nil {
		log.Printf("Failed to render order page: %v", err)
	}
}

// SubmitHandler takes the order form post and redirects back to the home
// page, like the original form flow. The order datetime is the submission
// moment.
type SubmitHandler struct {
	orders OrderSubmitter
}

func NewSubmitHandler(orders OrderSubmitter) *SubmitHandler {
	return &SubmitHandler{orders: orders}
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("Failed to parse order form: %v", err)
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil {
		log.Printf("Invalid form price %q: %v", r.PostFormValue("price"), err)
		http.Error(w, "Invalid price", http.StatusBadRequest)
		return
	}

	submission := models.OrderSubmission{
		Name:        r.PostFormValue("name"),
		Datetime:    time.Now(),
		Description: r.PostFormValue("description"),
		Price:       price,
	}

	if err := h.orders.SubmitOrder(r.Context(), submission); err != nil {
		if errors.Is(err, usecase.ErrInvalidSubmission) {
			log.Printf("Rejected form submission: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Failed to submit form order: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

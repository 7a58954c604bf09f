package router

import (
	"net/http"

	"github.com/AlenaMolokova/canteen/internal/handlers"
	"github.com/AlenaMolokova/canteen/internal/middleware"
	"github.com/AlenaMolokova/canteen/internal/storage"
	"github.com/AlenaMolokova/canteen/internal/usecase"
	"github.com/AlenaMolokova/canteen/internal/validation"
	"github.com/AlenaMolokova/canteen/internal/web"
	"github.com/go-chi/chi/v5"
)

const (
	APIPrefix     = "/api"
	OrderPath     = "/order/"
	OrdersPath    = "/orders/"
	HomePath      = "/"
	OrderFormPath = "/order"
	SubmitPath    = "/submit"
	StaticPath    = "/static"
)

func SetupRoutes(store *storage.Storage, templates *web.Templates, staticDir string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	orderUC := usecase.NewOrderUseCase(store, validation.NewOrderValidator())

	r.Post(APIPrefix+OrderPath, handlers.NewOrderHandler(orderUC).ServeHTTP)
	r.Get(APIPrefix+OrdersPath, handlers.NewOrderGetHandler(orderUC).ServeHTTP)
	r.Delete(APIPrefix+OrdersPath+"{id}", handlers.NewOrderDeleteHandler(orderUC).ServeHTTP)

	r.Get(HomePath, handlers.NewHomeHandler(orderUC, templates).ServeHTTP)
	r.Get(OrderFormPath, handlers.NewOrderPageHandler(templates).ServeHTTP)
	r.Post(SubmitPath, handlers.NewSubmitHandler(orderUC).ServeHTTP)

	static := http.StripPrefix(StaticPath+"/", http.FileServer(http.Dir(staticDir)))
	r.Get(StaticPath+"/*", static.ServeHTTP)

	return r
}

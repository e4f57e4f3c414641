package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/catalog/api/handler"
	"github.com/fastygo/catalog/api/transport"
	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/pkg/httpcontext"
)

type Handlers struct {
	Restaurant *apiHandler.RestaurantHandler
	Dish       *apiHandler.DishHandler
	Health     *apiHandler.HealthHandler
}

// Middleware wraps a request handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// New wires the catalog routes. Middlewares wrap the whole router, the
// first one outermost. Panics inside handlers become opaque 500 responses.
func New(handlers Handlers, logger *zap.Logger, middlewares ...Middleware) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := router.New()

	if handlers.Health != nil {
		r.GET("/health", handlers.Health.Check)
	}

	r.POST("/restaurants", handlers.Restaurant.CreateRestaurant)
	r.GET("/restaurants", handlers.Restaurant.ListRestaurants)
	r.POST("/restaurants/{restaurantId}/dishes", handlers.Dish.AddDish)
	r.GET("/dishes", handlers.Dish.ListDishes)

	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, http.StatusNotFound, transport.NewError(string(domain.ErrCodeNotFound), "route not found", ""))
	}
	r.MethodNotAllowed = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, http.StatusMethodNotAllowed, transport.NewError("METHOD_NOT_ALLOWED", "method not allowed", ""))
	}
	r.PanicHandler = func(ctx *fasthttp.RequestCtx, recovered interface{}) {
		logger.Error("panic while handling request",
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.String("request_id", httpcontext.EnsureRequestID(ctx)),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.Stack("stack"))
		writeError(ctx, http.StatusInternalServerError, transport.NewError(string(domain.ErrCodeInternal), apiHandler.MessageInternal, ""))
	}

	handler := r.Handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func writeError(ctx *fasthttp.RequestCtx, status int, body transport.ErrorResponse) {
	payload, _ := json.Marshal(body)
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(payload)
}

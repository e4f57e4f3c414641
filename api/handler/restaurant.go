package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/api/transport"
	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/pkg/httpcontext"
	catalogUC "github.com/fastygo/catalog/usecase/catalog"
)

type RestaurantHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewRestaurantHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Router /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var req transport.RestaurantRequest
	if err := decodeBody(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	input, err := catalogUC.ParseRestaurant(req.Name)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	created, err := h.uc.CreateRestaurant(stdCtx, input)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary List restaurants, newest first
// @Tags restaurants
// @Produce json
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	restaurants, err := h.uc.ListRestaurants(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, restaurants)
}

// decodeBody treats an empty body as an empty object.
func decodeBody(body []byte, dst interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "request body must be a JSON object", err)
	}
	return nil
}

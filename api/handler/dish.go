package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/api/transport"
	"github.com/fastygo/catalog/pkg/httpcontext"
	catalogUC "github.com/fastygo/catalog/usecase/catalog"
)

type DishHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewDishHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DishHandler {
	return &DishHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Add a dish to a restaurant
// @Tags dishes
// @Accept json
// @Produce json
// @Router /restaurants/{restaurantId}/dishes [post]
func (h *DishHandler) AddDish(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	raw, _ := ctx.UserValue("restaurantId").(string)
	restaurantID, err := catalogUC.ValidateID("restaurantId", raw)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	var req transport.DishRequest
	if err := decodeBody(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	input, err := catalogUC.ParseDish(req.Name, req.Price)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	view, err := h.uc.AddDish(stdCtx, restaurantID, input)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, view)
}

// @Summary List a restaurant's dishes, three per page
// @Tags dishes
// @Produce json
// @Param restaurant query string true "restaurant id"
// @Param page query int false "page number, defaults to 1"
// @Router /dishes [get]
func (h *DishHandler) ListDishes(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	args := ctx.QueryArgs()
	restaurantID, err := catalogUC.ValidateID("restaurant", string(args.Peek("restaurant")))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	page, err := h.uc.ListDishes(stdCtx, restaurantID, parsePage(string(args.Peek("page"))))
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, page)
}

// parsePage reads an optional sign and the leading digits of value, so
// "2abc" and "2.5" are page 2. Anything without leading digits, or below
// 1, is the first page.
func parsePage(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}

	page, err := strconv.Atoi(value[:end])
	if err != nil {
		// Out of range: a huge positive page is simply past the end.
		if value[0] != '-' {
			return math.MaxInt
		}
		return 1
	}
	return max(page, 1)
}

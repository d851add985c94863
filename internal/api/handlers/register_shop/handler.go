package register_shop

import (
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /shop/register, /api/shop/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterShopRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /shop/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /shop/register - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	id, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /shop/register - Failed to register shop: shop=%s, error=%v", req.ShopName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /shop/register - Shop registered: shop_id=%d", id)
	handlers.RespondCreated(w, id)
}

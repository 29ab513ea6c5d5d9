package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sucan/ordertrack/internal/domain/errors"
	"github.com/sucan/ordertrack/internal/domain/model"
	"github.com/sucan/ordertrack/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.Code, req.Branch, req.Quantity, req.Notes)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// UpdateStatus handles POST /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.ApplyAction(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Signature handles POST /api/orders/:id/signature.
func (h *OrderHandler) Signature(c *gin.Context) {
	var req dto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Signature == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "signature is required"})
		return
	}

	order, err := h.facade.AttachSignature(c.Request.Context(), c.Param("id"), req.Signature)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// respondEngineError maps lifecycle engine failures to HTTP responses.
// Every error in the domain taxonomy is a caller-input error.
func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrProductNotFound),
		errors.Is(err, domainErrors.ErrOrderNotFound),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrSignatureRequired),
		errors.Is(err, domainErrors.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		RequestedAt: order.RequestedAt,
		Branch:      order.Branch,
		Product: dto.ProductSnapshotResponse{
			Code:           order.Product.Code,
			Name:           order.Product.Name,
			Brand:          order.Product.Brand,
			ArrivalChannel: order.Product.ArrivalChannel,
		},
		Quantity:    order.Quantity,
		Status:      string(order.Status),
		ArrivedAt:   order.ArrivedAt,
		NotifiedAt:  order.NotifiedAt,
		DeliveredAt: order.DeliveredAt,
		Signature:   order.Signature,
		Notes:       order.Notes,
	}
}

package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/auth"
	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	apperrors "github.com/AshleyKendi786/Delivery-App/internal/errors"
)

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error)
	Create(ctx context.Context, customerID uint, draft domain.OrderDraft) (*domain.Order, error)
	Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error
}

// CreateOrderRequest takes customer_id in snake_case. Reads return
// customerId, and existing clients depend on both shapes.
type CreateOrderRequest struct {
	ProductName string  `json:"productName"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	CustomerID  uint    `json:"customer_id"`
	Status      string  `json:"status"`
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

// HandleListAll serves GET /orders for the delivery dashboard.
func (c *OrderController) HandleListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, orders)
}

// HandleListByCustomer serves GET /orders/customer/{customerId}.
func (c *OrderController) HandleListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := c.uintParam(w, r, "customerId")
	if !ok {
		return
	}

	orders, err := c.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, orders)
}

// HandleCreate serves POST /orders.
func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	draft := domain.OrderDraft{
		ProductName: req.ProductName,
		Address:     req.Address,
		Price:       req.Price,
	}

	order, err := c.service.Create(r.Context(), req.CustomerID, draft)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

// HandleUpdate serves PUT /orders/{id}.
func (c *OrderController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.uintParam(w, r, "id")
	if !ok {
		return
	}

	var patch domain.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	// Status transitions belong to delivery accounts; customers may only
	// edit the order's fields.
	if patch.Status != nil {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			c.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		if claims.Type != domain.RoleDelivery {
			logger.Warn("status change refused",
				zap.Uint("userId", claims.UserID),
				zap.String("role", claims.Type),
			)
			c.writeJSON(w, http.StatusForbidden, errorResponse{Error: "only delivery accounts can change order status"})
			return
		}
	}

	order, err := c.service.Update(r.Context(), id, patch)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

// HandleDelete serves DELETE /orders/{id}.
func (c *OrderController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.uintParam(w, r, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

func (c *OrderController) uintParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		c.writeValidationError(w, "invalid "+name, apperrors.ValidationDetail{
			Field:   name,
			Message: name + " must be a positive integer",
		})
		return 0, false
	}
	return uint(v), true
}

func (c *OrderController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

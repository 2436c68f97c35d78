package controllers

import (
	"errors"
	"net/http"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// enquiryNumber and createdAt are server-owned; status is updatable so
// the admin can work the enquiry queue.
var orderFields = []string{"name", "email", "phone", "subject", "message", "productId", "status"}

type OrderController struct {
	svc  *services.OrderService
	repo repositories.OrderRepository
}

func NewOrderController(svc *services.OrderService, repo repositories.OrderRepository) *OrderController {
	return &OrderController{svc: svc, repo: repo}
}

// GET /api/orders — most recent 50 enquiries.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GET /api/orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Order")
	if !ok {
		return
	}

	order, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch order", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// POST /api/orders
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateOrderRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	order, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create order", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateOrderResponse{Success: true, Order: *order})
}

// PUT /api/orders/{id}
func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Order")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, orderFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update order", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Order updated successfully"})
}

// DELETE /api/orders/{id}
func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Order")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete order", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Order deleted successfully"})
}

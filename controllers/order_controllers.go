package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-admin/models"
	"github.com/yeremiapane/restaurant-admin/services"
	"github.com/yeremiapane/restaurant-admin/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GetOrders -> satu halaman orders, terbaru dulu
// Endpoint: GET /orders?status=<status>&page=<n>&limit=<n>
func (oc *OrderController) GetOrders(c *gin.Context) {
	var filter services.OrderFilter
	if status := c.Query("status"); status != "" {
		st := models.OrderStatus(status)
		filter.Status = &st
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", services.DefaultPageSize)
	if !ok {
		return
	}

	result, err := oc.Orders.List(filter, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondPage(c, http.StatusOK, "List of orders", result.Total, result.Page, result.Limit, result.Orders)
}

// GetOrderByID -> detail 1 order beserta menu item tiap baris
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := oc.Orders.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body services.OrderInput
	if !bindJSON(c, &body) {
		return
	}

	order, err := oc.Orders.Create(body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.WithField("order_number", order.OrderNumber).Info("order created")
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus
// Endpoint: PATCH /orders/:id/status body {"status": "Preparing"}
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body updateStatusRequest
	if !bindJSON(c, &body) {
		return
	}

	order, err := oc.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   order.Status,
	}).Info("order status updated")
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

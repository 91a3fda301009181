package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

// createOrderRequest is the POST /orders body: the order fields plus its lines.
type createOrderRequest struct {
	models.NewOrder
	Items []models.NewOrderItem `json:"items" binding:"required,dive"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) ListOrders(c *gin.Context) {
	locationID, ok := requireQuery(c, "locationId")
	if !ok {
		return
	}
	var status models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		var err error
		if status, err = models.ParseOrderStatus(raw); err != nil {
			h.invalid(c, err, "Order")
			return
		}
	}
	orders, err := h.orders.ListOrders(c.Request.Context(), locationID, status)
	if err != nil {
		h.fail(c, err, "Order", "fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Order", "fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalid(c, err, "Order")
		return
	}
	order, err := h.orders.CreateOrder(c.Request.Context(), req.NewOrder, req.Items)
	if err != nil {
		h.fail(c, err, "Order", "create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalid(c, err, "Status")
		return
	}
	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err, "Order", "update order status")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var in models.NewPayment
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Payment")
		return
	}
	payment, err := h.repo.CreatePayment(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Payment", "create payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.repo.ListPayments(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.fail(c, err, "Payment", "fetch payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Package handlers maps the /api routes onto the repository and the read
// model services. Errors reach the client as {"error": "..."}.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/middlewares"
	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/services"
	"github.com/judyrop/restaurant-pos/storage"
)

type Handler struct {
	repo   storage.Repository
	orders *services.OrderService
	floor  *services.FloorService
	sales  *services.SalesService
	log    *slog.Logger
	now    func() time.Time
}

func New(repo storage.Repository, log *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		orders: services.NewOrderService(repo),
		floor:  services.NewFloorService(repo),
		sales:  services.NewSalesService(repo),
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register mounts every API route on g.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/locations", h.ListLocations)
	g.GET("/locations/:id", h.GetLocation)
	g.POST("/locations", h.CreateLocation)
	g.PATCH("/locations/:id", h.UpdateLocation)

	g.GET("/menu-categories", h.ListMenuCategories)
	g.POST("/menu-categories", h.CreateMenuCategory)
	g.GET("/menu-items", h.ListMenuItems)
	g.GET("/menu-items/:id", h.GetMenuItem)
	g.POST("/menu-items", h.CreateMenuItem)
	g.PATCH("/menu-items/:id", h.UpdateMenuItem)
	g.DELETE("/menu-items/:id", h.DeleteMenuItem)

	g.GET("/areas", h.ListAreas)
	g.POST("/areas", h.CreateArea)
	g.GET("/tables", h.ListTables)
	g.GET("/tables/:id", h.GetTable)
	g.POST("/tables", h.CreateTable)
	g.PATCH("/tables/:id", h.UpdateTable)

	g.GET("/orders", h.ListOrders)
	g.GET("/orders/:id", h.GetOrder)
	g.POST("/orders", h.CreateOrder)
	g.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	g.GET("/staff", h.ListStaff)
	g.GET("/staff/:id", h.GetStaff)
	g.POST("/staff", h.CreateStaff)
	g.PATCH("/staff/:id", h.UpdateStaff)

	g.GET("/customers", h.ListCustomers)
	g.GET("/customers/:id", h.GetCustomer)
	g.POST("/customers", h.CreateCustomer)
	g.PATCH("/customers/:id", h.UpdateCustomer)

	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.POST("/reservations", h.CreateReservation)
	g.PATCH("/reservations/:id", h.UpdateReservation)

	g.POST("/payments", h.CreatePayment)
	g.GET("/payments/order/:orderId", h.ListPayments)

	g.GET("/settings", h.GetSettings)
	g.POST("/settings", h.CreateSettings)
	g.PATCH("/settings/:id", h.UpdateSettings)

	g.GET("/analytics/sales", h.GetSalesData)
}

// fail maps err to a status code. entity names the resource in messages,
// action describes the failed operation for 500 responses.
func (h *Handler) fail(c *gin.Context, err error, entity, action string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case models.IsValidationError(err), errors.Is(err, storage.ErrConstraint):
		h.invalid(c, err, entity)
	default:
		h.log.Error("request failed",
			slog.String("request_id", c.GetString(middlewares.RequestIDKey)),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// invalid answers 400 with a generic message; the cause goes to the debug log.
func (h *Handler) invalid(c *gin.Context, err error, entity string) {
	h.log.Debug("invalid request",
		slog.String("request_id", c.GetString(middlewares.RequestIDKey)),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + strings.ToLower(entity) + " data"})
}

// requireQuery reads a mandatory query parameter, answering 400 when absent.
func requireQuery(c *gin.Context, key string) (string, bool) {
	v := c.Query(key)
	if v == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " is required"})
		return "", false
	}
	return v, true
}

// bindPatch decodes a PATCH body and runs the patch's own checks.
func (h *Handler) bindPatch(c *gin.Context, p interface{ Validate() error }, entity string) bool {
	if err := c.ShouldBindJSON(p); err != nil {
		h.invalid(c, err, entity)
		return false
	}
	if err := p.Validate(); err != nil {
		h.invalid(c, err, entity)
		return false
	}
	return true
}

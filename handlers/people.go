package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.repo.ListStaff(c.Request.Context(), c.Query("locationId"))
	if err != nil {
		h.fail(c, err, "Staff", "fetch staff")
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) GetStaff(c *gin.Context) {
	member, err := h.repo.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Staff", "fetch staff member")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var in models.NewStaff
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Staff")
		return
	}
	member, err := h.repo.CreateStaff(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Staff", "create staff member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	var patch models.StaffPatch
	if !h.bindPatch(c, &patch, "Staff") {
		return
	}
	member, err := h.repo.UpdateStaff(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Staff", "update staff member")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.repo.ListCustomers(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Customer", "fetch customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.repo.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Customer", "fetch customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var in models.NewCustomer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Customer")
		return
	}
	customer, err := h.repo.CreateCustomer(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Customer", "create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var patch models.CustomerPatch
	if !h.bindPatch(c, &patch, "Customer") {
		return
	}
	customer, err := h.repo.UpdateCustomer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Customer", "update customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

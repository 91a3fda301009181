package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) ListMenuCategories(c *gin.Context) {
	categories, err := h.repo.ListMenuCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Menu category", "fetch menu categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateMenuCategory(c *gin.Context) {
	var in models.NewMenuCategory
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Category")
		return
	}
	category, err := h.repo.CreateMenuCategory(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Category", "create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// ListMenuItems returns the whole menu, or one category of it when
// categoryId is given.
func (h *Handler) ListMenuItems(c *gin.Context) {
	items, err := h.repo.ListMenuItems(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		h.fail(c, err, "Menu item", "fetch menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.repo.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Menu item", "fetch menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var in models.NewMenuItem
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Menu item")
		return
	}
	item, err := h.repo.CreateMenuItem(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Menu item", "create menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if !h.bindPatch(c, &patch, "Menu item") {
		return
	}
	item, err := h.repo.UpdateMenuItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Menu item", "update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.repo.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Menu item", "delete menu item")
		return
	}
	c.Status(http.StatusNoContent)
}

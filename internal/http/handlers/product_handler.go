package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type ProductHandler struct {
	Products *store.Products
}

// List applies any filter query params to the store and returns the
// derived view. An empty result set is a valid 200, never an error.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if q := c.Query("q"); c.Request().URI().QueryArgs().Has("q") {
		h.Products.SetSearchQuery(q)
	}
	if cat := c.Query("category"); cat != "" {
		h.Products.SetCategory(cat)
	}
	if v := c.Query("priceMax"); v != "" {
		if max, err := strconv.ParseInt(v, 10, 64); err == nil && max >= 0 {
			h.Products.SetPriceMax(max)
		}
	}
	if v := c.Query("sort"); v != "" {
		h.Products.SetSortKey(store.SortKey(v))
	}
	if v := c.Query("inStock"); v != "" {
		h.Products.SetStockOnly(v == "true" || v == "1")
	}
	if v := c.Query("minRating"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			h.Products.SetMinRating(r)
		}
	}
	if v := c.Query("brand"); c.Request().URI().QueryArgs().Has("brand") {
		h.Products.SetBrand(v)
	}

	snap := h.Products.Snapshot()
	return c.JSON(fiber.Map{
		"products": snap.View,
		"filters":  snap.Filters,
		"count":    len(snap.View),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, ok := h.Products.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.Products.Snapshot().Categories)
}

// ClearFilters resets every filter dimension.
func (h *ProductHandler) ClearFilters(c *fiber.Ctx) error {
	h.Products.ClearFilters()
	return c.JSON(h.Products.Snapshot().Filters)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/log"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type CartHandler struct {
	Cart     *store.Cart
	Products *store.Products
	Notifier *store.Notifier
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.Cart.Snapshot())
}

type addItemReq struct {
	ProductID int `json:"productId"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, ok := h.Products.Get(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.Cart.Add(p)
	h.Notifier.Show(store.NotifySuccess, "Added to Cart", p.Name+" has been added to your cart.")
	applog.Info(c, "cart.add", map[string]any{"product_id": p.ID})
	return c.JSON(h.Cart.Snapshot())
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req setQuantityReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	h.Cart.SetQuantity(id, req.Quantity)
	return c.JSON(h.Cart.Snapshot())
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.Cart.Remove(id)
	return c.JSON(h.Cart.Snapshot())
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear()
	applog.Info(c, "cart.clear", nil)
	return c.JSON(h.Cart.Snapshot())
}

func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	h.Cart.ToggleSidebar()
	return c.JSON(h.Cart.Snapshot())
}

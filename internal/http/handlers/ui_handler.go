package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type UIHandler struct {
	UI       *store.UI
	Notifier *store.Notifier
}

func (h *UIHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.UI.Snapshot())
}

type prefReq struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

func (h *UIHandler) SetPreferences(c *fiber.Ctx) error {
	var req prefReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.Theme != "" {
		h.UI.SetTheme(req.Theme)
	}
	if req.Language != "" {
		h.UI.SetLanguage(req.Language)
	}
	return c.JSON(h.UI.Snapshot())
}

func (h *UIHandler) ToggleSidebar(c *fiber.Ctx) error {
	h.UI.ToggleSidebar()
	return c.JSON(h.UI.Snapshot())
}

func (h *UIHandler) ToggleMobileMenu(c *fiber.Ctx) error {
	h.UI.ToggleMobileMenu()
	return c.JSON(h.UI.Snapshot())
}

func (h *UIHandler) CloseAllMenus(c *fiber.Ctx) error {
	h.UI.CloseAllMenus()
	return c.JSON(h.UI.Snapshot())
}

func (h *UIHandler) Notification(c *fiber.Ctx) error {
	n := h.Notifier.Current()
	if n == nil {
		return c.JSON(fiber.Map{"notification": nil})
	}
	return c.JSON(fiber.Map{"notification": n})
}

func (h *UIHandler) DismissNotification(c *fiber.Ctx) error {
	h.Notifier.Dismiss()
	return c.JSON(fiber.Map{"notification": nil})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/checkout"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
	applog "github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/log"
)

type CheckoutHandler struct {
	Flow *checkout.Flow
}

func (h *CheckoutHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.Flow.Snapshot())
}

func (h *CheckoutHandler) SubmitShipping(c *fiber.Ctx) error {
	var info domain.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if errs := h.Flow.SubmitShipping(info); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}
	return c.JSON(h.Flow.Snapshot())
}

func (h *CheckoutHandler) SubmitPayment(c *fiber.Ctx) error {
	var info domain.PaymentInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if errs := h.Flow.SubmitPayment(info); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}
	return c.JSON(h.Flow.Snapshot())
}

type backReq struct {
	Step int `json:"step"`
}

func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	var req backReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if !h.Flow.Back(checkout.Step(req.Step)) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "cannot navigate to that step"})
	}
	return c.JSON(h.Flow.Snapshot())
}

// PlaceOrder awaits the payment processor. A duplicate submission while
// one is in flight gets a 409; validation-level preconditions get a 422.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	outcome, err := h.Flow.PlaceOrder(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, checkout.ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if outcome.Failure != nil {
		applog.Info(c, "checkout.payment.fail", map[string]any{"reason": outcome.Failure.Reason})
		return c.Status(fiber.StatusPaymentRequired).JSON(outcome)
	}
	applog.Audit(c, "checkout.order.placed", map[string]any{"order_id": outcome.Confirmation.OrderID})
	return c.JSON(outcome)
}

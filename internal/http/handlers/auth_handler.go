package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	applog "github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/log"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type AuthHandler struct {
	Auth     *store.Auth
	Identity *identity.Authenticator
	Notifier *store.Notifier
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	h.Auth.LoginStart()
	sess, err := h.Identity.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		h.Auth.LoginFailure(err.Error())
		if errors.Is(err, identity.ErrBadCreds) {
			applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}

	h.Auth.LoginSuccess(sess)
	h.Notifier.Show(store.NotifySuccess, "Login Successful", "Welcome back, "+sess.User.Name+"!")
	applog.Audit(c, "auth.login", map[string]any{"user_id": sess.User.ID})
	return c.JSON(h.Auth.Snapshot())
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout()
	h.Notifier.Show(store.NotifySuccess, "Logged Out", "You have been successfully logged out.")
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(h.Auth.Snapshot())
}

// Session reports the current auth state, dropping the session first if
// the token expired since the last check.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	if h.Auth.CheckExpiry(time.Now()) {
		h.Notifier.Show(store.NotifyWarning, "Session Expired", "Please log in again to continue.")
	}
	return c.JSON(h.Auth.Snapshot())
}

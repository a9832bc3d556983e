package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/catalog"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/http/handlers"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/payment"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/storage"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

// newTestApp wires the full API against the seeded in-memory catalog,
// an instant identity provider and a deterministic payment mock.
func newTestApp(t *testing.T, processor payment.Processor) (*fiber.App, *handlers.Deps, handlers.Stores) {
	t.Helper()

	db, err := catalog.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stores := handlers.Stores{
		Cart:     store.NewCart(),
		Products: store.NewProducts(),
		Auth:     store.NewAuth(storage.NewMemory()),
		UI:       store.NewUI(storage.NewMemory()),
		Notifier: store.NewNotifier(time.Minute),
	}
	repo := catalog.NewRepo(db)
	products, err := repo.Products()
	require.NoError(t, err)
	categories, err := repo.Categories()
	require.NoError(t, err)
	stores.Products.LoadCatalog(products, categories)

	auth := identity.New("test-secret", time.Hour, 0)
	deps := handlers.NewDeps(stores, auth, processor)

	app := fiber.New()
	api := app.Group("/api/v1")

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.ProductHandler.Categories)
	api.Post("/filters/clear", deps.ProductHandler.ClearFilters)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Put("/cart/items/:id", deps.CartHandler.SetQuantity)
	api.Delete("/cart/items/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/cart/toggle", deps.CartHandler.Toggle)

	api.Post("/auth/login", deps.AuthHandler.Login)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/session", deps.AuthHandler.Session)

	api.Get("/checkout", deps.CheckoutHandler.State)
	api.Post("/checkout/shipping", deps.CheckoutHandler.SubmitShipping)
	api.Post("/checkout/payment", deps.CheckoutHandler.SubmitPayment)
	api.Post("/checkout/back", deps.CheckoutHandler.Back)
	api.Post("/checkout/place", deps.CheckoutHandler.PlaceOrder)

	api.Get("/ui", deps.UIHandler.State)
	api.Put("/ui/preferences", deps.UIHandler.SetPreferences)
	api.Post("/ui/sidebar/toggle", deps.UIHandler.ToggleSidebar)
	api.Post("/ui/mobile-menu/toggle", deps.UIHandler.ToggleMobileMenu)
	api.Post("/ui/menus/close", deps.UIHandler.CloseAllMenus)
	api.Get("/notification", deps.UIHandler.Notification)
	api.Delete("/notification", deps.UIHandler.DismissNotification)

	return app, deps, stores
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, into), "body: %s", raw)
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, into any) *http.Response {
	t.Helper()
	resp, err := app.Test(jsonReq(method, target, body))
	require.NoError(t, err)
	if into != nil {
		decode(t, resp, into)
	}
	return resp
}

func login(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email":"priya@sreeranga.test","password":"Passw0rd!"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

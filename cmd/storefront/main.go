package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/catalog"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/config"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/http/handlers"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	applog "github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/log"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/payment"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/storage"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := catalog.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	kv, err := storage.NewSQL(db)
	if err != nil {
		log.Fatal(err)
	}

	// Stores
	stores := handlers.Stores{
		Cart:     store.NewCart(),
		Products: store.NewProducts(),
		Auth:     store.NewAuth(kv),
		UI:       store.NewUI(kv),
		Notifier: store.NewNotifier(store.DefaultNotificationTTL),
	}

	// Load the catalog once at startup; filters set before this point
	// would still apply.
	repo := catalog.NewRepo(db)
	products, err := repo.Products()
	if err != nil {
		log.Fatal(err)
	}
	categories, err := repo.Categories()
	if err != nil {
		log.Fatal(err)
	}
	stores.Products.LoadCatalog(products, categories)

	// Restore a persisted session if its token is still good.
	if stores.Auth.Restore(time.Now()) {
		log.Println("[auth] restored persisted session")
	}

	auth := identity.New(cfg.JWTSecret, cfg.TokenTTL, cfg.LoginLatency)
	processor := payment.NewMock()
	processor.Latency = cfg.PaymentLatency
	deps := handlers.NewDeps(stores, auth, processor)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.ProductHandler.Categories)
	api.Post("/filters/clear", deps.ProductHandler.ClearFilters)

	// Cart
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Put("/cart/items/:id", deps.CartHandler.SetQuantity)
	api.Delete("/cart/items/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/cart/toggle", deps.CartHandler.Toggle)

	// Auth (login throttled)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AuthHandler.Login)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/session", deps.AuthHandler.Session)

	// Checkout
	api.Get("/checkout", deps.CheckoutHandler.State)
	api.Post("/checkout/shipping", deps.CheckoutHandler.SubmitShipping)
	api.Post("/checkout/payment", deps.CheckoutHandler.SubmitPayment)
	api.Post("/checkout/back", deps.CheckoutHandler.Back)
	api.Post("/checkout/place", deps.CheckoutHandler.PlaceOrder)

	// UI & notifications
	api.Get("/ui", deps.UIHandler.State)
	api.Put("/ui/preferences", deps.UIHandler.SetPreferences)
	api.Post("/ui/sidebar/toggle", deps.UIHandler.ToggleSidebar)
	api.Post("/ui/mobile-menu/toggle", deps.UIHandler.ToggleMobileMenu)
	api.Post("/ui/menus/close", deps.UIHandler.CloseAllMenus)
	api.Get("/notification", deps.UIHandler.Notification)
	api.Delete("/notification", deps.UIHandler.DismissNotification)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}

package handlers

import (
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/checkout"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/identity"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/payment"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	AuthHandler     *AuthHandler
	CheckoutHandler *CheckoutHandler
	UIHandler       *UIHandler
}

type Stores struct {
	Cart     *store.Cart
	Products *store.Products
	Auth     *store.Auth
	UI       *store.UI
	Notifier *store.Notifier
}

func NewDeps(s Stores, auth *identity.Authenticator, processor payment.Processor) *Deps {
	flow := checkout.NewFlow(s.Cart, s.Auth, s.Notifier, processor)
	return &Deps{
		ProductHandler:  &ProductHandler{Products: s.Products},
		CartHandler:     &CartHandler{Cart: s.Cart, Products: s.Products, Notifier: s.Notifier},
		AuthHandler:     &AuthHandler{Auth: s.Auth, Identity: auth, Notifier: s.Notifier},
		CheckoutHandler: &CheckoutHandler{Flow: flow},
		UIHandler:       &UIHandler{UI: s.UI, Notifier: s.Notifier},
	}
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/checkout"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/payment"
)

const shippingJSON = `{
  "name": "Priya Raman",
  "email": "priya@sreeranga.test",
  "phone": "9876543210",
  "address": "12 Gandhi Road, Begambur",
  "city": "Dindigul",
  "state": "Tamil Nadu",
  "pincode": "624001"
}`

func TestCheckoutHappyPath(t *testing.T) {
	app, _, stores := newTestApp(t, payment.NewMockSeeded(0, 1, 42))
	login(t, app)
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1}`, nil)
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":4}`, nil)

	var snap checkout.Snapshot
	resp := doJSON(t, app, "POST", "/api/v1/checkout/shipping", shippingJSON, &snap)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, checkout.StepPayment, snap.Step)

	resp = doJSON(t, app, "POST", "/api/v1/checkout/payment", `{"method":"cod"}`, &snap)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, checkout.StepReview, snap.Step)

	// bill: 2498 + 450 tax + free shipping
	assert.Equal(t, int64(2948), snap.Totals.Total)

	var out checkout.Outcome
	resp = doJSON(t, app, "POST", "/api/v1/checkout/place", "", &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, out.Confirmation)
	assert.Equal(t, int64(2948), out.Confirmation.Amount)
	assert.Equal(t, "cod", out.Confirmation.Method)

	// the cart is emptied and the flow reset
	assert.Empty(t, stores.Cart.Snapshot().Lines)
	doJSON(t, app, "GET", "/api/v1/checkout", "", &snap)
	assert.Equal(t, checkout.StepShipping, snap.Step)
}

func TestCheckoutShippingValidationErrors(t *testing.T) {
	app, _, _ := newTestApp(t, payment.NewMockSeeded(0, 1, 1))

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	resp := doJSON(t, app, "POST", "/api/v1/checkout/shipping",
		`{"name":"P","phone":"123","pincode":"0123"}`, &body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body.Errors, "phone")
	assert.Contains(t, body.Errors, "pincode")
	assert.Contains(t, body.Errors, "address")
}

func TestCheckoutCannotSkipToPayment(t *testing.T) {
	app, _, _ := newTestApp(t, payment.NewMockSeeded(0, 1, 1))

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	resp := doJSON(t, app, "POST", "/api/v1/checkout/payment", `{"method":"cod"}`, &body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body.Errors, "step")
}

func TestCheckoutBackNavigation(t *testing.T) {
	app, _, _ := newTestApp(t, payment.NewMockSeeded(0, 1, 1))
	doJSON(t, app, "POST", "/api/v1/checkout/shipping", shippingJSON, nil)

	// forward jump refused
	resp := doJSON(t, app, "POST", "/api/v1/checkout/back", `{"step":3}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var snap checkout.Snapshot
	resp = doJSON(t, app, "POST", "/api/v1/checkout/back", `{"step":1}`, &snap)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, checkout.StepShipping, snap.Step)
}

func TestCheckoutPlaceOrderPreconditions(t *testing.T) {
	// not on review yet -> 422
	app, _, _ := newTestApp(t, payment.NewMockSeeded(0, 1, 1))
	resp := doJSON(t, app, "POST", "/api/v1/checkout/place", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// on review but anonymous -> 401
	app, _, _ = newTestApp(t, payment.NewMockSeeded(0, 1, 1))
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1}`, nil)
	doJSON(t, app, "POST", "/api/v1/checkout/shipping", shippingJSON, nil)
	doJSON(t, app, "POST", "/api/v1/checkout/payment", `{"method":"cod"}`, nil)
	resp = doJSON(t, app, "POST", "/api/v1/checkout/place", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// signed in with an empty cart -> 422
	app, _, _ = newTestApp(t, payment.NewMockSeeded(0, 1, 1))
	login(t, app)
	doJSON(t, app, "POST", "/api/v1/checkout/shipping", shippingJSON, nil)
	doJSON(t, app, "POST", "/api/v1/checkout/payment", `{"method":"cod"}`, nil)
	resp = doJSON(t, app, "POST", "/api/v1/checkout/place", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCheckoutDeclinedPaymentReturns402(t *testing.T) {
	app, _, stores := newTestApp(t, payment.NewMockSeeded(0, 0, 42)) // always declines
	login(t, app)
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1}`, nil)
	doJSON(t, app, "POST", "/api/v1/checkout/shipping", shippingJSON, nil)
	doJSON(t, app, "POST", "/api/v1/checkout/payment", `{"method":"cod"}`, nil)

	var out checkout.Outcome
	resp := doJSON(t, app, "POST", "/api/v1/checkout/place", "", &out)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	require.NotNil(t, out.Failure)
	assert.NotEmpty(t, out.Failure.Reason)

	// cart intact, flow still on review for a retry
	assert.NotEmpty(t, stores.Cart.Snapshot().Lines)
	var snap checkout.Snapshot
	doJSON(t, app, "GET", "/api/v1/checkout", "", &snap)
	assert.Equal(t, checkout.StepReview, snap.Step)
}

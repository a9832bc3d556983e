// Package checkout sequences the three checkout steps: shipping entry,
// payment entry, order review. The flow is forward-only (no skipping);
// back-navigation may return to any step at or before the current one.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/payment"
	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepReview   Step = 3
)

var (
	ErrNotAuthenticated = errors.New("checkout: sign in required")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrWrongStep        = errors.New("checkout: order can only be placed from the review step")
	ErrInFlight         = errors.New("checkout: a submission is already in progress")
)

type Confirmation struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
}

type Failure struct {
	Reason  string `json:"reason"`
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

// Outcome carries exactly one of Confirmation or Failure after a
// submission ran to completion.
type Outcome struct {
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	Failure      *Failure      `json:"failure,omitempty"`
}

// Snapshot is the flow state a view renders from.
type Snapshot struct {
	Step       Step                `json:"step"`
	Shipping   domain.ShippingInfo `json:"shipping"`
	Payment    domain.PaymentInfo  `json:"payment"`
	Errors     map[string]string   `json:"errors"`
	Submitting bool                `json:"submitting"`
	Totals     Totals              `json:"totals"`
}

// Validator lets tests pin "now" for expiry checks; production passes
// the validate package functions through unchanged.
type validators struct {
	shipping func(domain.ShippingInfo) map[string]string
	payment  func(domain.PaymentInfo, time.Time) map[string]string
}

// Flow is the checkout controller. It reads the cart and auth stores,
// validates locally, and talks to the processor only on final
// submission.
type Flow struct {
	mu         sync.Mutex
	step       Step
	shipping   domain.ShippingInfo
	payInfo    domain.PaymentInfo
	fieldErrs  map[string]string
	submitting bool

	cart      *store.Cart
	auth      *store.Auth
	notifier  *store.Notifier
	processor payment.Processor
	now       func() time.Time
	check     validators
}

func NewFlow(cart *store.Cart, auth *store.Auth, notifier *store.Notifier, processor payment.Processor) *Flow {
	return &Flow{
		step:      StepShipping,
		fieldErrs: map[string]string{},
		cart:      cart,
		auth:      auth,
		notifier:  notifier,
		processor: processor,
		now:       time.Now,
		check:     defaultValidators(),
	}
}

// SetClock overrides the flow's time source; tests use it to make expiry
// validation reproducible.
func (f *Flow) SetClock(now func() time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

// SubmitShipping validates step 1 and advances to payment when clean.
// On validation errors the flow stays put and the field messages are
// kept for the view.
func (f *Flow) SubmitShipping(s domain.ShippingInfo) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shipping = s
	errs := f.check.shipping(s)
	if len(errs) > 0 {
		f.fieldErrs = errs
		return copyErrs(errs)
	}
	f.fieldErrs = map[string]string{}
	if f.step < StepPayment {
		f.step = StepPayment
	}
	return nil
}

// SubmitPayment validates step 2 and advances to review when clean.
// Rejected when shipping has not been completed yet: steps cannot be
// skipped.
func (f *Flow) SubmitPayment(p domain.PaymentInfo) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step < StepPayment {
		return map[string]string{"step": "complete shipping information first"}
	}
	f.payInfo = p
	errs := f.check.payment(p, f.now())
	if len(errs) > 0 {
		f.fieldErrs = errs
		return copyErrs(errs)
	}
	f.fieldErrs = map[string]string{}
	if f.step < StepReview {
		f.step = StepReview
	}
	return nil
}

// Back returns to an earlier (or the current) step. Forward jumps are
// refused.
func (f *Flow) Back(step Step) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if step < StepShipping || step > f.step {
		return false
	}
	f.step = step
	f.fieldErrs = map[string]string{}
	return true
}

// Totals computes the bill from the cart's current subtotal.
func (f *Flow) Totals() Totals {
	return ComputeTotals(f.cart.Snapshot().TotalPrice)
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Step:       f.step,
		Shipping:   f.shipping,
		Payment:    f.payInfo,
		Errors:     copyErrs(f.fieldErrs),
		Submitting: f.submitting,
		Totals:     ComputeTotals(f.cart.Snapshot().TotalPrice),
	}
}

// PlaceOrder runs the final submission: it calls the processor with the
// computed total, holding the in-flight flag so a duplicate submission
// is refused while one is outstanding. Success clears the cart and
// resets the flow; failure leaves the flow on review so the shopper can
// retry.
func (f *Flow) PlaceOrder(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.step != StepReview {
		f.mu.Unlock()
		return Outcome{}, ErrWrongStep
	}
	if f.submitting {
		f.mu.Unlock()
		return Outcome{}, ErrInFlight
	}
	if f.auth.Snapshot().State != store.AuthAuthenticated {
		f.mu.Unlock()
		return Outcome{}, ErrNotAuthenticated
	}
	cart := f.cart.Snapshot()
	if len(cart.Lines) == 0 {
		f.mu.Unlock()
		return Outcome{}, ErrEmptyCart
	}
	totals := ComputeTotals(cart.TotalPrice)
	method := f.payInfo.Method
	info := f.payInfo
	f.submitting = true
	f.mu.Unlock()

	result, err := f.processor.Process(ctx, payment.Request{
		Amount: totals.Total,
		Method: method,
		Info:   info,
	})

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		f.notifier.Show(store.NotifyError, "Payment Failed",
			"There was an issue processing your payment. Please try again.")
		return Outcome{Failure: &Failure{
			Reason:  payment.FailureReason(err),
			OrderID: fmt.Sprintf("ORD%d", f.now().UnixMilli()),
			Amount:  totals.Total,
		}}, nil
	}
	// One attempt per flow: reset for the next checkout.
	f.step = StepShipping
	f.shipping = domain.ShippingInfo{}
	f.payInfo = domain.PaymentInfo{}
	f.fieldErrs = map[string]string{}
	f.mu.Unlock()

	f.cart.Clear()
	f.notifier.Show(store.NotifySuccess, "Order Placed Successfully!",
		"Your order has been confirmed and will be delivered soon.")
	return Outcome{Confirmation: &Confirmation{
		OrderID: result.TransactionID,
		Amount:  result.Amount,
		Method:  result.Method,
	}}, nil
}

func copyErrs(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

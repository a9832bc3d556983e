// Package payment defines the processor boundary the checkout flow is
// programmed against, plus the mock implementation used in this repo.
// A real gateway can be substituted without touching the flow.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

// Failure reason codes the processor can raise.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonCardDeclined      = "card_declined"
	ReasonExpiredCard       = "expired_card"
	ReasonNetworkError      = "network_error"

	// ReasonUnknown is the fallback when an error carries no code.
	ReasonUnknown = "payment_failed"
)

type Request struct {
	Amount int64
	Method string
	Info   domain.PaymentInfo
}

type Result struct {
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
}

// Error is a processing failure tagged with a reason code.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "payment failed: " + e.Reason }

// FailureReason extracts the reason code from a processor error.
func FailureReason(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ReasonUnknown
}

type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
}

// Reference builds a payment reference of the form
// PAY_<millis>_<random>, uppercase.
func Reference() string {
	rand := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("PAY_%d_%s", time.Now().UnixMilli(), rand)
}

// ProcessingFee is the per-method fee table: 2.5% for cards, 1% for net
// banking, free otherwise. Rounded to whole rupees.
func ProcessingFee(amount int64, method string) int64 {
	var rate string
	switch method {
	case domain.MethodCard:
		rate = "0.025"
	case domain.MethodNetbanking:
		rate = "0.01"
	default:
		return 0
	}
	r, _ := decimal.NewFromString(rate)
	return decimal.NewFromInt(amount).Mul(r).Round(0).IntPart()
}

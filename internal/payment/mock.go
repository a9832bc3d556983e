package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

var failureReasons = []string{
	ReasonInsufficientFunds,
	ReasonCardDeclined,
	ReasonExpiredCard,
	ReasonNetworkError,
}

// Mock simulates a gateway: fixed latency, then success with probability
// SuccessRate, otherwise a failure with a randomly drawn reason. Latency
// honors context cancellation; a started call is otherwise
// fire-to-completion.
type Mock struct {
	Latency     time.Duration
	SuccessRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMock mirrors the original's timings: 2 s delay, 90% success.
func NewMock() *Mock {
	return &Mock{
		Latency:     2 * time.Second,
		SuccessRate: 0.9,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewMockSeeded fixes the random source so tests are deterministic.
func NewMockSeeded(latency time.Duration, successRate float64, seed int64) *Mock {
	return &Mock{
		Latency:     latency,
		SuccessRate: successRate,
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

func (m *Mock) Process(ctx context.Context, req Request) (Result, error) {
	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	m.mu.Lock()
	roll := m.rnd.Float64()
	pick := m.rnd.Intn(len(failureReasons))
	m.mu.Unlock()

	if roll >= m.SuccessRate {
		return Result{}, &Error{Reason: failureReasons[pick]}
	}
	return Result{
		TransactionID: Reference(),
		Amount:        req.Amount,
		Method:        req.Method,
		Timestamp:     time.Now().UTC(),
	}, nil
}

package identity

import (
	"context"
	"sync/atomic"
	"time"
)

// MockProvider simulates a provider flow: it waits for a fixed delay and
// then reports a preconfigured outcome. It never returns a profile, so the
// caller synthesizes one.
type MockProvider struct {
	kind    Kind
	delay   time.Duration
	outcome Outcome
	token   string
	err     error
	calls   atomic.Int64
}

var _ Provider = (*MockProvider)(nil)

type MockOption func(*MockProvider)

// WithDelay sets the simulated flow duration.
func WithDelay(d time.Duration) MockOption {
	return func(m *MockProvider) { m.delay = d }
}

// WithToken sets the access token handed out on success.
func WithToken(token string) MockOption {
	return func(m *MockProvider) { m.token = token }
}

// WithCancellation makes every flow end as Cancelled.
func WithCancellation() MockOption {
	return func(m *MockProvider) { m.outcome = Cancelled }
}

// WithFailure makes every flow end as Failed with err.
func WithFailure(err error) MockOption {
	return func(m *MockProvider) {
		m.outcome = Failed
		m.err = err
	}
}

// NewMockProvider returns a provider that succeeds with token "<kind>-token"
// unless configured otherwise.
func NewMockProvider(kind Kind, opts ...MockOption) *MockProvider {
	m := &MockProvider{
		kind:    kind,
		outcome: Success,
		token:   string(kind) + "-token",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockProvider) Kind() Kind { return m.kind }

// Calls returns how many flows were started.
func (m *MockProvider) Calls() int { return int(m.calls.Load()) }

func (m *MockProvider) Initiate(ctx context.Context) Result {
	m.calls.Add(1)

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Fail(ctx.Err())
		}
	}

	switch m.outcome {
	case Cancelled:
		return Cancel()
	case Failed:
		return Fail(m.err)
	}
	return Succeeded(m.token, nil)
}

package llm

import (
	"context"
	"sync"
)

// Fake is an in-memory Client for tests and local runs without credentials.
// It returns canned responses in order and records every request it receives.
type Fake struct {
	// Respond, when set, computes the reply for each request. Useful when
	// calls may arrive in any order (e.g. concurrent pipeline stages).
	Respond func(Request) (string, error)

	mu        sync.Mutex
	responses []string
	err       error
	requests  []Request
}

// NewFake returns a Fake that replies with the given responses in order.
// Once exhausted it keeps returning the last response.
func NewFake(responses ...string) *Fake {
	return &Fake{responses: responses}
}

// NewFailingFake returns a Fake whose Complete always returns err.
func NewFailingFake(err error) *Fake {
	return &Fake{err: err}
}

// Complete records the request and returns the next canned response.
func (f *Fake) Complete(_ context.Context, req Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if f.Respond != nil {
		return f.Respond(req)
	}
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	idx := len(f.requests) - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

// Close implements Client.
func (f *Fake) Close() error { return nil }

// Calls returns the number of Complete invocations so far.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests returns a copy of all recorded requests.
func (f *Fake) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Request, len(f.requests))
	copy(out, f.requests)
	return out
}

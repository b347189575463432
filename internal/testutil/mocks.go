// Package testutil provides shared testing utilities and mocks for use
// across the livy-client-kit test suite.
package testutil

import (
	"context"
	"net/url"
	"sync"

	"github.com/cecil-the-coder/livy-client-kit/pkg/conf"
	"github.com/cecil-the-coder/livy-client-kit/pkg/types"
)

// MockClient is a minimal Client implementation for tests.
type MockClient struct {
	// FactoryName records which factory produced the client.
	FactoryName string

	mu      sync.Mutex
	stopped bool
}

// Stop implements types.Client.
func (c *MockClient) Stop(ctx context.Context, shutdownSession bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	return nil
}

// Stopped reports whether Stop was called.
func (c *MockClient) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// RecordingFactory is a configurable ClientFactory that records every
// invocation, letting tests assert on consultation order and fail-fast
// behavior.
type RecordingFactory struct {
	// FactoryName is returned by Name.
	FactoryName string

	// Client is returned by CreateClient when Err is nil. A nil Client with
	// a nil Err declines the URI.
	Client types.Client

	// Err, when set, is returned by CreateClient.
	Err error

	// Calls records the URIs passed to CreateClient, in order.
	Calls []*url.URL

	// Journal, when set, receives the factory name on every invocation so
	// tests can observe ordering across factories.
	Journal *CallJournal
}

// Name implements types.ClientFactory.
func (f *RecordingFactory) Name() string { return f.FactoryName }

// CreateClient implements types.ClientFactory.
func (f *RecordingFactory) CreateClient(uri *url.URL, config *conf.Configuration) (types.Client, error) {
	f.Calls = append(f.Calls, uri)
	if f.Journal != nil {
		f.Journal.Record(f.FactoryName)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Client, nil
}

// Invoked reports how many times CreateClient was called.
func (f *RecordingFactory) Invoked() int { return len(f.Calls) }

// CallJournal records factory invocations across multiple factories.
type CallJournal struct {
	mu    sync.Mutex
	names []string
}

// Record appends name to the journal.
func (j *CallJournal) Record(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.names = append(j.names, name)
}

// Names returns the recorded factory names in invocation order.
func (j *CallJournal) Names() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.names))
	copy(out, j.names)
	return out
}

package types

import (
	"context"
	"net/url"

	"github.com/cecil-the-coder/livy-client-kit/pkg/conf"
)

// Client is an opaque handle to a remote computation session. Ownership
// transfers fully to the caller when a factory returns one; the kit never
// retains or caches clients. Session semantics, the wire protocol, and any
// cancellation or timeout behavior belong to the implementation behind the
// handle.
type Client interface {
	// Stop releases the client. When shutdownSession is true the remote
	// session is terminated as well; otherwise it is left running for a
	// later client to attach to.
	Stop(ctx context.Context, shutdownSession bool) error
}

// ClientFactory is the capability a back-end registers to claim connection
// URIs. Factories are consulted in registration order and the first one to
// produce a client wins.
type ClientFactory interface {
	// Name identifies the factory in logs and factory errors.
	Name() string

	// CreateClient produces a client for the given URI and configuration.
	// A factory that does not handle the URI must return (nil, nil) — that
	// is the only decline signal, and resolution moves on to the next
	// factory. A non-nil error aborts resolution immediately; no further
	// factories are consulted.
	CreateClient(uri *url.URL, config *conf.Configuration) (Client, error)
}

// ClientFactoryFunc adapts a function to the ClientFactory interface.
type ClientFactoryFunc struct {
	// FactoryName is returned by Name.
	FactoryName string

	// Create is invoked by CreateClient.
	Create func(uri *url.URL, config *conf.Configuration) (Client, error)
}

// Name implements ClientFactory.
func (f ClientFactoryFunc) Name() string { return f.FactoryName }

// CreateClient implements ClientFactory.
func (f ClientFactoryFunc) CreateClient(uri *url.URL, config *conf.Configuration) (Client, error) {
	return f.Create(uri, config)
}

// Package builder resolves a connection URI and layered configuration into a
// client handle by consulting the registered client factories in order.
// Resolution is synchronous and single-shot: the first factory to produce a
// client wins, a factory error aborts immediately, and nothing is retried or
// cached.
package builder

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cecil-the-coder/livy-client-kit/pkg/conf"
	"github.com/cecil-the-coder/livy-client-kit/pkg/redact"
	"github.com/cecil-the-coder/livy-client-kit/pkg/registry"
	"github.com/cecil-the-coder/livy-client-kit/pkg/types"
)

// ClientBuilder accumulates configuration and resolves it into a client via
// Build. Defaults loaded at construction are overridden by setter calls,
// last write wins. A builder owns its configuration exclusively and is not
// safe for concurrent use.
type ClientBuilder struct {
	config *conf.Configuration
	reg    *registry.Registry
	logger zerolog.Logger
	err    error
}

// New creates a builder preloaded with the default conf files found under
// conf.DefaultConfDir. A default file that is absent is skipped; one that
// exists but cannot be read or parsed fails construction.
func New() (*ClientBuilder, error) {
	b := NewWithoutDefaults()
	if err := b.config.LoadDefaults(conf.DefaultConfDir()); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithoutDefaults creates a builder with an empty configuration.
func NewWithoutDefaults() *ClientBuilder {
	return &ClientBuilder{
		config: conf.New(),
		reg:    registry.Default(),
		logger: zerolog.Nop(),
	}
}

// SetURI sets the URI of the Livy server the client will connect to.
func (b *ClientBuilder) SetURI(u *url.URL) *ClientBuilder {
	b.config.Set(conf.KeyURI, u.String())
	return b
}

// SetURIString sets the connection URI from its string form. The value is
// validated at Build time, not here.
func (b *ClientBuilder) SetURIString(s string) *ClientBuilder {
	b.config.Set(conf.KeyURI, s)
	return b
}

// SetSessionID sets the id of an existing session the client should attach
// to rather than creating a new one. A negative id is rejected and surfaces
// as an error from Build.
func (b *ClientBuilder) SetSessionID(id int) *ClientBuilder {
	if id < 0 {
		if b.err == nil {
			b.err = fmt.Errorf("builder: session id must be non-negative, got %d", id)
		}
		return b
	}
	b.config.Set(conf.KeySessionID, strconv.Itoa(id))
	return b
}

// SetConf sets a single configuration entry, overriding any loaded default.
func (b *ClientBuilder) SetConf(key, value string) *ClientBuilder {
	b.config.Set(key, value)
	return b
}

// UnsetConf removes a configuration entry. Resolution then behaves as if the
// key had never been set, including keys that came from default files.
func (b *ClientBuilder) UnsetConf(key string) *ClientBuilder {
	b.config.Unset(key)
	return b
}

// SetAll copies every entry of m into the configuration.
func (b *ClientBuilder) SetAll(m map[string]string) *ClientBuilder {
	b.config.SetAll(m)
	return b
}

// Merge copies every entry of c into the configuration in c's insertion
// order, overwriting on collision.
func (b *ClientBuilder) Merge(c *conf.Configuration) *ClientBuilder {
	b.config.Merge(c)
	return b
}

// WithRegistry resolves against r instead of the process-wide default
// registry.
func (b *ClientBuilder) WithRegistry(r *registry.Registry) *ClientBuilder {
	b.reg = r
	return b
}

// WithLogger attaches a logger for resolution debug events. URIs in log
// fields are always redacted. The default logger discards everything.
func (b *ClientBuilder) WithLogger(l zerolog.Logger) *ClientBuilder {
	b.logger = l
	return b
}

// Build resolves the accumulated configuration into a client.
//
// The required livy.uri key is read and parsed, the registry snapshot is
// taken, and each factory is consulted in registration order with the parsed
// URI and the configuration. The first non-nil client terminates resolution
// and is returned with full ownership. A factory error is wrapped as a
// factory BuildError and propagated immediately; later factories are never
// consulted, even if one of them would have succeeded. When every factory
// declines, the returned unsupported_uri error embeds the redacted URI so
// credentials never reach logs.
func (b *ClientBuilder) Build() (types.Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	uriStr, ok := b.config.URI()
	if !ok {
		return nil, types.NewBuildError(types.ErrCodeMissingURI,
			"connection URI must be provided (set "+conf.KeyURI+")")
	}
	uri, err := url.Parse(uriStr)
	if err != nil {
		return nil, types.NewBuildError(types.ErrCodeInvalidURI,
			"invalid connection URI").WithOriginalErr(err)
	}

	factories := b.reg.Snapshot()
	if len(factories) == 0 {
		return nil, types.NewBuildError(types.ErrCodeNoFactory,
			"no client factory is registered")
	}

	log := b.logger.With().Str("build_id", uuid.NewString()).Logger()
	log.Debug().
		Str("uri", redact.URL(uri).String()).
		Int("factories", len(factories)).
		Msg("resolving client")

	for _, factory := range factories {
		client, err := factory.CreateClient(uri, b.config)
		if err != nil {
			log.Debug().Str("factory", factory.Name()).Err(err).Msg("factory failed")
			return nil, wrapFactoryErr(factory.Name(), err)
		}
		if client != nil {
			log.Debug().Str("factory", factory.Name()).Msg("client resolved")
			return client, nil
		}
		log.Debug().Str("factory", factory.Name()).Msg("factory declined")
	}

	redacted := redact.URL(uri)
	log.Debug().Str("uri", redacted.String()).Msg("no factory supports the URI")
	return nil, types.NewBuildError(types.ErrCodeUnsupportedURI,
		fmt.Sprintf("URI '%s' is not supported by any registered client factory", redacted))
}

// wrapFactoryErr wraps err as a factory BuildError unless it already is one.
func wrapFactoryErr(name string, err error) error {
	if _, ok := err.(*types.BuildError); ok {
		return err
	}
	return types.NewBuildError(types.ErrCodeFactory, "client factory failed").
		WithFactory(name).
		WithOriginalErr(err)
}

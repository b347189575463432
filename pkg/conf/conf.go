// Package conf implements the layered key/value configuration consumed by the
// client builder. Values are opaque strings: nothing in this package coerces
// types, and interpretation is deferred to whichever factory or client reads
// a key. The store keeps insertion order so that override precedence stays
// deterministic and observable.
package conf

import "strconv"

// Recognized configuration keys. Factories may define additional keys of
// their own; these are the only ones this layer interprets.
const (
	// KeyURI is the required connection URI for the Livy server.
	KeyURI = "livy.uri"

	// KeySessionID optionally names an existing session to attach to instead
	// of creating a new one. Its value must be a string-encoded non-negative
	// integer.
	KeySessionID = "livy.sessionId"
)

// Configuration is an insertion-ordered key/value store of strings.
// Overwriting an existing key keeps its original position; Unset removes the
// key entirely, so a later Set re-inserts it at the end.
//
// A Configuration is not safe for concurrent use; each builder owns its own.
type Configuration struct {
	order  []string
	values map[string]string
}

// New returns an empty Configuration.
func New() *Configuration {
	return &Configuration{values: make(map[string]string)}
}

// Set stores value under key, overwriting any previous value.
func (c *Configuration) Set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.order = append(c.order, key)
	}
	c.values[key] = value
}

// Unset removes key from the store. Subsequent reads behave as if the key
// was never present. Removing an absent key is a no-op.
func (c *Configuration) Unset(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key and whether it was present.
func (c *Configuration) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the stored keys in insertion order. The returned slice is a
// copy and may be modified by the caller.
func (c *Configuration) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len returns the number of stored keys.
func (c *Configuration) Len() int {
	return len(c.order)
}

// Merge copies every entry of other into c in other's insertion order,
// overwriting on collision. A nil other is a no-op.
func (c *Configuration) Merge(other *Configuration) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		c.Set(k, other.values[k])
	}
}

// SetAll copies every entry of m into c. Map iteration order is not
// deterministic, so callers that care about relative ordering of new keys
// should use Set or Merge instead.
func (c *Configuration) SetAll(m map[string]string) {
	for k, v := range m {
		c.Set(k, v)
	}
}

// URI returns the value of the required connection URI key and whether it is
// present. The value is not validated here; the builder parses it.
func (c *Configuration) URI() (string, bool) {
	return c.Get(KeyURI)
}

// SessionID returns the session id to attach to, if one is configured.
// ok reports whether the key is present at all; err is non-nil when the key
// is present but its value is not a string-encoded non-negative integer.
func (c *Configuration) SessionID() (id int, ok bool, err error) {
	v, ok := c.Get(KeySessionID)
	if !ok {
		return 0, false, nil
	}
	id, err = strconv.Atoi(v)
	if err != nil || id < 0 {
		return 0, true, &InvalidSessionIDError{Value: v}
	}
	return id, true, nil
}

// InvalidSessionIDError reports a session id value that is not a
// string-encoded non-negative integer.
type InvalidSessionIDError struct {
	Value string
}

func (e *InvalidSessionIDError) Error() string {
	return "invalid session id " + strconv.Quote(e.Value) + ": must be a non-negative integer"
}

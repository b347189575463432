// Package redact strips credentials from connection URIs before they appear
// in errors or logs. Redaction operates on the parsed URL structure, never on
// raw text, so the remaining components cannot be corrupted.
package redact

import "net/url"

// Placeholder replaces the userinfo component of a redacted URI.
const Placeholder = "redacted"

// URL returns a copy of u with any userinfo replaced by Placeholder.
// Every other component is left untouched. The input is never modified, and
// the function is idempotent: redacting an already-redacted URL yields an
// equal URL.
func URL(u *url.URL) *url.URL {
	out := *u
	if out.User != nil {
		out.User = url.User(Placeholder)
	}
	return &out
}

// String parses s, redacts it, and returns the result. When s does not parse
// as a URL it is returned unchanged: an unparsable string has no
// identifiable userinfo component to strip, and callers on error paths still
// need something to report.
func String(s string) string {
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	return URL(u).String()
}

// Package types defines the core contracts of the Livy Client Kit: the
// opaque Client handle, the pluggable ClientFactory capability, and the
// classified BuildError surfaced when resolution fails. Concrete client
// implementations live outside this module and plug in through the registry
// package.
package types

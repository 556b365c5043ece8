package config

import "context"

// FetchStatus distinguishes how much of a parameter path was read.
type FetchStatus string

const (
	// FetchComplete means every parameter under the path was read.
	FetchComplete FetchStatus = "complete"
	// FetchPartial means some parameters were read before the fetch failed.
	FetchPartial FetchStatus = "partial"
	// FetchFailed means the fetch failed before any parameter was read.
	FetchFailed FetchStatus = "failed"
)

// Parameters is the outcome of a ParameterStore lookup. Values is keyed by
// the last segment of each parameter name and is never nil, so callers may
// read from it without checking Status first.
type Parameters struct {
	Values map[string]string
	Status FetchStatus
	// Err is the failure that stopped the fetch. Nil when Status is FetchComplete.
	Err error
}

// Get returns the value stored under name and whether it was present.
func (p Parameters) Get(name string) (string, bool) {
	v, ok := p.Values[name]
	return v, ok
}

// ParameterStore abstracts the retrieval of runtime parameters to support both
// AWS SSM Parameter Store (deployed environments) and environment variables
// (local development).
//
// Implementations never return an error: failures are reported through
// Parameters.Status so that notification delivery is not blocked by a
// configuration outage. The caller decides whether to proceed with what
// was fetched.
type ParameterStore interface {
	// GetParametersByPath returns the parameters located directly under path
	// (non-recursive), with any SecureString values decrypted.
	GetParametersByPath(ctx context.Context, path string) Parameters
}

package config

import (
	"context"
	"os"
)

// EnvVarProvider implements ParameterStore by resolving parameters from OS
// environment variables. It is the provider for local development
// (ENV=local), where the webhook URL is set directly in the environment or
// via a .env file instead of SSM.
//
// Only the configured names are looked up; the path is ignored because the
// environment is flat.
type EnvVarProvider struct {
	names  []string
	lookup func(key string) (string, bool)
}

// NewEnvVarProvider creates an EnvVarProvider that resolves the given
// parameter names.
func NewEnvVarProvider(names ...string) *EnvVarProvider {
	return &EnvVarProvider{
		names:  names,
		lookup: os.LookupEnv,
	}
}

// GetParametersByPath returns every configured name that is set in the
// environment. Missing names are silently omitted, matching how SSM omits
// parameters that do not exist under a path.
func (p *EnvVarProvider) GetParametersByPath(_ context.Context, _ string) Parameters {
	values := make(map[string]string, len(p.names))
	for _, name := range p.names {
		if val, ok := p.lookup(name); ok {
			values[name] = val
		}
	}
	return Parameters{Values: values, Status: FetchComplete}
}

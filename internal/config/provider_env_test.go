package config

import (
	"context"
	"testing"
)

func TestEnvVarProviderSatisfiesParameterStore(t *testing.T) {
	var _ ParameterStore = (*EnvVarProvider)(nil)
}

func TestEnvVarProviderResolvesConfiguredNames(t *testing.T) {
	t.Setenv("TEAMS_URL", "https://example.webhook.office.com/local")
	unsetEnv(t, "OTHER_PARAM")

	provider := NewEnvVarProvider("TEAMS_URL", "OTHER_PARAM")
	got := provider.GetParametersByPath(context.Background(), "/local/ignored")

	if got.Status != FetchComplete {
		t.Errorf("Status = %q, want %q", got.Status, FetchComplete)
	}
	if got.Values["TEAMS_URL"] != "https://example.webhook.office.com/local" {
		t.Errorf("Values[TEAMS_URL] = %q", got.Values["TEAMS_URL"])
	}
	if _, ok := got.Values["OTHER_PARAM"]; ok {
		t.Error("unset names should be omitted")
	}
}

func TestEnvVarProviderInjectedLookup(t *testing.T) {
	provider := NewEnvVarProvider("foo", "baz")
	provider.lookup = func(key string) (string, bool) {
		v, ok := map[string]string{"foo": "bar", "baz": "buzz"}[key]
		return v, ok
	}

	got := provider.GetParametersByPath(context.Background(), "/local/x")
	if len(got.Values) != 2 || got.Values["foo"] != "bar" || got.Values["baz"] != "buzz" {
		t.Errorf("Values = %v, want {foo: bar, baz: buzz}", got.Values)
	}
}

func TestEnvVarProviderNoNames(t *testing.T) {
	got := NewEnvVarProvider().GetParametersByPath(context.Background(), "/x")
	if got.Values == nil || len(got.Values) != 0 {
		t.Errorf("Values = %v, want empty non-nil map", got.Values)
	}
}

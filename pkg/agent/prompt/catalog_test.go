package prompt

import (
	"strings"
	"testing"
)

func TestCatalogFallsBackToStaticDefaults(t *testing.T) {
	catalog := NewCatalog(nil, nil)

	keys := catalog.Keys()
	if len(keys) != len(StaticDefaults) {
		t.Fatalf("Keys() = %d entries, want %d", len(keys), len(StaticDefaults))
	}
	if keys[0] != "orchestrator" {
		t.Errorf("Keys()[0] = %q, want orchestrator", keys[0])
	}

	if got := catalog.Prompt("research"); got != StaticDefaults[1].DefaultPrompt {
		t.Errorf("Prompt(research) = %q, want static default", got)
	}
}

func TestCatalogDefinitionsReplaceDefaults(t *testing.T) {
	definitions := []AgentConfig{
		{Key: "research", DefaultPrompt: "Prompt desde base de datos."},
	}
	catalog := NewCatalog(definitions, nil)

	keys := catalog.Keys()
	if len(keys) != 1 || keys[0] != "research" {
		t.Fatalf("Keys() = %v, want [research]", keys)
	}

	if got := catalog.Prompt("research"); got != "Prompt desde base de datos." {
		t.Errorf("Prompt(research) = %q", got)
	}

	// Agents absent from the definition rows resolve to an empty base.
	if got := catalog.Prompt("copy"); got != "" {
		t.Errorf("Prompt(copy) = %q, want empty", got)
	}
}

func TestCatalogOverrideAppends(t *testing.T) {
	overrides := map[string]string{
		"research": "Prioriza productos de menos de 20 USD.",
	}
	catalog := NewCatalog(nil, overrides)

	got := catalog.Prompt("research")
	if !strings.HasPrefix(got, StaticDefaults[1].DefaultPrompt) {
		t.Errorf("Prompt(research) should keep the base prompt, got %q", got)
	}
	if !strings.Contains(got, "Instrucciones personalizadas:") {
		t.Errorf("Prompt(research) missing override marker, got %q", got)
	}
	if !strings.Contains(got, "menos de 20 USD") {
		t.Errorf("Prompt(research) missing override text, got %q", got)
	}
}

func TestCatalogOverrideOnUnknownKey(t *testing.T) {
	overrides := map[string]string{
		"custom_agent": "Haz lo tuyo.",
	}
	catalog := NewCatalog(nil, overrides)

	got := catalog.Prompt("custom_agent")
	if !strings.Contains(got, "Haz lo tuyo.") {
		t.Errorf("Prompt(custom_agent) = %q, want override honored", got)
	}
}

func TestCatalogEmptyOverrideIgnored(t *testing.T) {
	overrides := map[string]string{"research": ""}
	catalog := NewCatalog(nil, overrides)

	if got := catalog.Prompt("research"); got != StaticDefaults[1].DefaultPrompt {
		t.Errorf("Prompt(research) = %q, want base without marker", got)
	}
}

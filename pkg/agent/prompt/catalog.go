package prompt

import "fmt"

// Catalog resolves agent prompts with explicit precedence:
//  1. per-user override rows (appended as "Instrucciones personalizadas")
//  2. active agent_definitions rows
//  3. StaticDefaults
//
// Tier 2 replaces tier 3 wholesale (the definitions table defines the
// available agent set); tier 1 only ever appends to the resolved base.
type Catalog struct {
	definitions []AgentConfig
	overrides   map[string]string
}

// NewCatalog builds a catalog from database-loaded definitions and per-user
// overrides. Pass nil/empty definitions to fall back to the static set.
func NewCatalog(definitions []AgentConfig, overrides map[string]string) *Catalog {
	if len(definitions) == 0 {
		definitions = StaticDefaults
	}
	if overrides == nil {
		overrides = map[string]string{}
	}
	return &Catalog{definitions: definitions, overrides: overrides}
}

// Keys returns the available agent keys in definition order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.definitions))
	for i, def := range c.definitions {
		keys[i] = def.Key
	}
	return keys
}

// Prompt resolves the full prompt for an agent key. Unknown keys resolve to
// an empty base, still honoring any user override.
func (c *Catalog) Prompt(key string) string {
	var base string
	for _, def := range c.definitions {
		if def.Key == key {
			base = def.DefaultPrompt
			break
		}
	}
	if custom, ok := c.overrides[key]; ok && custom != "" {
		return fmt.Sprintf("%s\n\nInstrucciones personalizadas:\n%s", base, custom)
	}
	return base
}

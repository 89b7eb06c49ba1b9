package intent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"ecomia-be/pkg/llm"
)

// Key identifies which agent handles a chat turn.
type Key string

const (
	KeyCopy            Key = "copy"
	KeyLandingBuilder  Key = "landing_builder"
	KeyMediaCreator    Key = "media_creator"
	KeyFallbackMonitor Key = "fallback_monitor"
	KeyRecommendation  Key = "recommendation"
	KeyResearch        Key = "research"
)

// Heuristic vocabulary per intent. ORDER MATTERS: the first match wins, so a
// message that mentions both "copy" and "landing" classifies as copy.
var heuristics = []struct {
	key     Key
	pattern *regexp.Regexp
}{
	{KeyCopy, regexp.MustCompile(`(copy|caption|post|instagram|tiktok|facebook|anuncio|ads|publicidad)`)},
	{KeyLandingBuilder, regexp.MustCompile(`(landing|pagina|página|sitio|home|web|embudo)`)},
	{KeyMediaCreator, regexp.MustCompile(`(imagen|imagenes|video|videos|reel|reels|short|shorts|creativo|creativos)`)},
	{KeyFallbackMonitor, regexp.MustCompile(`(error|falla|fallo|no funciona|no responde|arreglar|solucionar|debug)`)},
	{KeyRecommendation, regexp.MustCompile(`(recomienda|mejor|opcion|opciones|comparar|tabla)`)},
}

// Classify maps a user message to an intent using keyword heuristics only.
// Research is the fallback when nothing matches.
func Classify(message string) Key {
	text := strings.ToLower(message)
	for _, h := range heuristics {
		if h.pattern.MatchString(text) {
			return h.key
		}
	}
	return KeyResearch
}

// Router refines a heuristic classification by asking the model to pick one
// of the available agent keys.
type Router struct {
	provider llm.LLMProvider
}

func NewRouter(provider llm.LLMProvider) *Router {
	return &Router{provider: provider}
}

// Refine asks the model for an agent key. The override only applies when the
// trimmed reply is exactly one of availableKeys; anything else is an error and
// the caller keeps the heuristic result.
func (r *Router) Refine(ctx context.Context, message, orchestratorPrompt string, availableKeys []string) (Key, error) {
	routingPrompt := fmt.Sprintf(`Eres un orquestador. Elige SOLO una clave de agente para responder.
Claves disponibles: %s

Instrucciones del orquestador:
%s

Mensaje del usuario: "%s"

Responde solo con la clave exacta.`, strings.Join(availableKeys, ", "), orchestratorPrompt, message)

	reply, err := r.provider.Chat(ctx, []llm.Message{{Role: "system", Content: routingPrompt}})
	if err != nil {
		return "", err
	}

	selected := strings.TrimSpace(reply)
	for _, key := range availableKeys {
		if selected == key {
			return Key(selected), nil
		}
	}
	return "", fmt.Errorf("router returned unknown key %q", selected)
}

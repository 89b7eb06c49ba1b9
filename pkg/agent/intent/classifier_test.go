package intent

import (
	"context"
	"fmt"
	"testing"

	"ecomia-be/pkg/llm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Key
	}{
		{"copy keywords", "hazme un copy para instagram", KeyCopy},
		{"landing keywords", "necesito una landing para vender", KeyLandingBuilder},
		{"media keywords", "dame ideas de videos para el reel", KeyMediaCreator},
		{"fallback keywords", "la app da error al guardar", KeyFallbackMonitor},
		{"recommendation keywords", "¿cuál es la mejor opción?", KeyRecommendation},
		{"research fallback", "quiero vender algo en Colombia", KeyResearch},
		{"uppercase message", "COPY PARA TIKTOK", KeyCopy},

		// First heuristic wins when vocabularies overlap.
		{"copy beats landing", "un copy para la landing", KeyCopy},
		{"landing beats media", "landing con video de fondo", KeyLandingBuilder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

// stubProvider returns a fixed reply or error for every call.
type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func TestRouterRefine(t *testing.T) {
	keys := []string{"research", "recommendation", "copy"}

	tests := []struct {
		name     string
		reply    string
		replyErr error
		want     Key
		wantErr  bool
	}{
		{"exact key", "copy", nil, KeyCopy, false},
		{"key with whitespace", "  recommendation \n", nil, KeyRecommendation, false},
		{"unknown key", "marketing_guru", nil, "", true},
		{"chatty answer rejected", "Creo que copy es lo mejor", nil, "", true},
		{"provider error", "", fmt.Errorf("upstream timeout"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(&stubProvider{reply: tt.reply, err: tt.replyErr})

			got, err := router.Refine(context.Background(), "mensaje", "instrucciones", keys)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Refine() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Refine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Refine() = %v, want %v", got, tt.want)
			}
		})
	}
}

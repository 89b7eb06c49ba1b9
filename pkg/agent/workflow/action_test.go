package workflow

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Action
	}{
		{"plain question", "¿Qué producto me recomiendas?", ActionNone},
		{"store draft", "quiero crear tienda para mi producto", ActionStoreDraft},
		{"store draft other verb", "puedes armar tienda con ese nombre", ActionStoreDraft},
		{"store draft english noun", "vamos a generar store", ActionStoreDraft},
		{"store confirm", "confirmo tienda", ActionStoreConfirm},
		{"store confirm with dale", "dale, la tienda así está bien", ActionStoreConfirm},
		{"landing draft", "ahora crear landing para la botella", ActionLandingDraft},
		{"landing confirm", "confirmo landing", ActionLandingConfirm},
		{"confirm without subject", "confirmo", ActionNone},

		// The draft verbs take precedence, so repeating the verb inside a
		// confirmation re-drafts instead of confirming.
		{"confirm repeating verb re-drafts", "confirmo crear tienda", ActionStoreDraft},
		{"landing confirm repeating verb re-drafts", "confirmo crear landing", ActionLandingDraft},

		// Store patterns are checked before landing patterns.
		{"store wins over landing on confirm", "confirmo la tienda y la landing", ActionStoreConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

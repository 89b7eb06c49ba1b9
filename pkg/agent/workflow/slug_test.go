package workflow

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Tienda Botella Térmica", "tienda-botella-termica"},
		{"Organizador  de   Cables", "organizador-de-cables"},
		{"Ñandú & Café!", "nandu-cafe"},
		{"  Mi Tienda  ", "mi-tienda"},
		{"ya-con-guiones", "ya-con-guiones"},
		{"doble -- guion", "doble-guion"},
		{"SOLO MAYÚSCULAS", "solo-mayusculas"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := Slugify(tt.value); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

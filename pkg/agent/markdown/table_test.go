package markdown

import (
	"testing"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantNil     bool
		wantHeader  []string
		wantRows    int
		wantCell    string // Rows[0][0] when wantRows > 0
	}{
		{
			name:    "no table at all",
			text:    "Aquí tienes un resumen del mercado de botellas térmicas en LATAM.",
			wantNil: true,
		},
		{
			name: "full table with alignment row",
			text: "Claro, estas son las opciones:\n\n" +
				"| Producto | Demanda | Competencia | Margen | Proveedor | Recomendacion |\n" +
				"|---|---|---|---|---|---|\n" +
				"| Botella térmica | Alta | Media | $8-$15 | Proveedor MX | Lanzar ya |\n" +
				"| Organizador de cables | Media | Baja | $3-$6 | AliExpress | Probar con ads |\n",
			wantHeader: []string{"Producto", "Demanda", "Competencia", "Margen", "Proveedor", "Recomendacion"},
			wantRows:   2,
			wantCell:   "Botella térmica",
		},
		{
			name: "missing alignment row",
			text: "| Producto | Demanda |\n" +
				"| Botella térmica | Alta |\n",
			wantHeader: []string{"Producto", "Demanda"},
			wantRows:   1,
			wantCell:   "Botella térmica",
		},
		{
			name: "missing header falls back to canonical columns",
			text: "| Botella térmica | Alta | Media | $8-$15 | Proveedor MX | Lanzar ya |\n" +
				"| Mini proyector | Alta | Alta | $20-$35 | Shenzhen Ltd | Nicho saturado |\n",
			wantHeader: DefaultHeader,
			wantRows:   2,
			wantCell:   "Botella térmica",
		},
		{
			name: "table stops at first non-pipe line",
			text: "| Producto | Demanda |\n" +
				"| --- | --- |\n" +
				"| Botella térmica | Alta |\n" +
				"Eso es todo por ahora.\n" +
				"| Esto ya no | cuenta |\n",
			wantHeader: []string{"Producto", "Demanda"},
			wantRows:   1,
			wantCell:   "Botella térmica",
		},
		{
			name:    "single pipe line is not a table",
			text:    "| Producto | Demanda |",
			wantNil: true,
		},
		{
			name: "alignment row with colons",
			text: "| Producto | Demanda |\n" +
				"| :--- | ---: |\n" +
				"| Botella térmica | Alta |\n",
			wantHeader: []string{"Producto", "Demanda"},
			wantRows:   1,
			wantCell:   "Botella térmica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ParseTable(tt.text)

			if tt.wantNil {
				if table != nil {
					t.Fatalf("ParseTable() = %+v, want nil", table)
				}
				return
			}
			if table == nil {
				t.Fatal("ParseTable() = nil, want table")
			}

			if len(table.Header) != len(tt.wantHeader) {
				t.Fatalf("Header = %v, want %v", table.Header, tt.wantHeader)
			}
			for i, cell := range tt.wantHeader {
				if table.Header[i] != cell {
					t.Errorf("Header[%d] = %q, want %q", i, table.Header[i], cell)
				}
			}

			if len(table.Rows) != tt.wantRows {
				t.Fatalf("Rows = %d, want %d", len(table.Rows), tt.wantRows)
			}
			if tt.wantRows > 0 && table.Rows[0][0] != tt.wantCell {
				t.Errorf("Rows[0][0] = %q, want %q", table.Rows[0][0], tt.wantCell)
			}
		})
	}
}

func TestIsAlignmentRow(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  bool
	}{
		{"plain dashes", []string{"---", "---"}, true},
		{"colon variants", []string{":---", "---:", ":---:"}, true},
		{"data row", []string{"Botella térmica", "Alta"}, false},
		{"empty", []string{}, false},
		{"mixed", []string{"---", "Alta"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAlignmentRow(tt.cells); got != tt.want {
				t.Errorf("isAlignmentRow(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

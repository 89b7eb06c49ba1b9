package markdown

import (
	"regexp"
	"strings"
)

// Table is a pipe-delimited markdown table extracted from free-form text.
// Row cell counts are not validated against the header; callers index
// defensively.
type Table struct {
	Header []string
	Rows   [][]string
}

var alignmentCellPattern = regexp.MustCompile(`^:?-+:?$`)

// DefaultHeader is substituted when the model emits data rows without a
// recognizable header line.
var DefaultHeader = []string{"Producto", "Demanda", "Competencia", "Margen", "Proveedor", "Recomendacion"}

// ParseTable locates the first pipe table in text and returns it, or nil when
// no table is present.
//
// The model is told to lead its reply with a table using the exact header
// "| Producto | Demanda | ... |" but does not always comply: the alignment
// row may be missing, and sometimes the header line itself is dropped. Both
// cases are recovered here rather than rejected.
func ParseTable(text string) *Table {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "|") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var tableLines []string
	for i := start; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "|") {
			break
		}
		tableLines = append(tableLines, lines[i])
	}

	if len(tableLines) < 2 {
		return nil
	}

	rows := make([][]string, len(tableLines))
	for i, line := range tableLines {
		rows[i] = splitRow(line)
	}

	header := rows[0]
	body := rows[1:]

	if len(body) > 0 && isAlignmentRow(body[0]) {
		body = body[1:]
	}

	if !containsProducto(header) {
		// The first row is data, not a header. Keep it and fall back to the
		// canonical column set.
		body = append([][]string{header}, body...)
		header = append([]string(nil), DefaultHeader...)
	}

	if len(header) == 0 || len(body) == 0 {
		return nil
	}

	return &Table{Header: header, Rows: body}
}

// splitRow splits "| a | b |" into trimmed cells, dropping the empty fragments
// produced by the leading and trailing pipes.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) <= 2 {
		return []string{}
	}
	cells := parts[1 : len(parts)-1]
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func isAlignmentRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		compact := strings.Join(strings.Fields(cell), "")
		if !alignmentCellPattern.MatchString(compact) {
			return false
		}
	}
	return true
}

func containsProducto(header []string) bool {
	for _, cell := range header {
		if strings.Contains(strings.ToLower(cell), "producto") {
			return true
		}
	}
	return false
}

package workflow

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDropPattern     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacePattern    = regexp.MustCompile(`\s+`)
	slugCollapsePattern = regexp.MustCompile(`-+`)
)

var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify turns "Tienda Botella Térmica" into "tienda-botella-termica":
// lowercase, NFKD-decompose and strip combining marks, drop anything outside
// [a-z0-9 -], collapse whitespace to single hyphens, collapse hyphen runs.
func Slugify(value string) string {
	lowered := strings.ToLower(value)
	stripped, _, err := transform.String(deaccent, lowered)
	if err != nil {
		stripped = lowered
	}
	stripped = slugDropPattern.ReplaceAllString(stripped, "")
	stripped = strings.TrimSpace(stripped)
	stripped = slugSpacePattern.ReplaceAllString(stripped, "-")
	return slugCollapsePattern.ReplaceAllString(stripped, "-")
}

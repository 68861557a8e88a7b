package render

import (
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
)

// Substitute replaces every literal occurrence of each pattern with its replacement.
//
// Substitutions are applied one after the other, so a later pattern also matches text
// produced by an earlier replacement. Empty patterns are ignored.
func Substitute(tmpl string, subs []domain.Substitution) string {
	for _, s := range subs {
		if s.Pattern == "" {
			continue
		}
		tmpl = strings.ReplaceAll(tmpl, s.Pattern, s.Replacement)
	}
	return tmpl
}

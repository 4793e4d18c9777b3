package dateformat

import (
	"fmt"
	"regexp"
	"strings"
)

// compilePattern concatenates each token's input pattern into one
// anchored, case-insensitive expression and records the tokens owning
// a capture group, in left-to-right order. That order is exactly the
// order of groups in a successful match.
func compilePattern(f *DateFormat) error {
	var b strings.Builder
	b.WriteString(`(?i)^`)
	for _, tok := range f.tokens {
		b.WriteString(tok.inputPattern(f))
		if tok.captures() {
			f.groupTokens = append(f.groupTokens, tok)
		}
	}
	b.WriteString(`$`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return fmt.Errorf("dateformat: compiling pattern for %q: %w", f.spec, err)
	}
	f.re = re
	return nil
}

package patterns

import (
	"fmt"

	"go.elara.ws/pcre"
)

// Pattern is a PCRE expression anchored at the start of the subject, so
// "/blog" matches "/blog/post" but not "/en/blog". Lookarounds and other
// PCRE-only syntax are supported.
type Pattern struct {
	expr  string
	regex *pcre.Regexp
}

// Compile anchors expr at the start of the subject and compiles it.
func Compile(expr string) (*Pattern, error) {
	regex, err := pcre.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, regex: regex}, nil
}

// MatchString reports whether s starts with a match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.regex.MatchString(s)
}

// String returns the expression as given to Compile.
func (p *Pattern) String() string {
	return p.expr
}

// Close releases the compiled expression.
func (p *Pattern) Close() error {
	return p.regex.Close()
}

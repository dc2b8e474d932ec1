package schema

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single pattern evaluation. Schema patterns are small
// and anchored, so hitting it means a pathological input.
const matchTimeout = 100 * time.Millisecond

// Pattern is a compiled regular expression used to constrain string values.
// It uses regexp2 rather than regexp so patterns may contain lookahead and
// lookbehind assertions. Patterns follow ECMAScript rules: without the
// multiline flag, $ matches only at the very end of the input, never before
// a trailing newline.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// CompilePattern compiles expr into a Pattern.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", expr, err)
	}
	re.MatchTimeout = matchTimeout
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error. It is meant
// for package-level schema definitions.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s satisfies the pattern. A match that errors
// (timeout) counts as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// Expr returns the source expression.
func (p *Pattern) Expr() string { return p.expr }

// String renders the pattern in /expr/ form, as used in error messages.
func (p *Pattern) String() string { return "/" + p.expr + "/" }

package geom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Style values accept length expressions like "12pt", "0.65em", "1.2x" or
// sums of both parts like "1em + 2pt". The "x" suffix is an alias for "em"
// kept for line-height factors.

var (
	relLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Term", Pattern: `(?:\d+\.\d+|\.\d+|\d+)(?:pt|mm|cm|in|em|x)?`},
		{Name: "Plus", Pattern: `\+`},
	})

	relParser = participle.MustBuild[relExpr](
		participle.Lexer(relLexer),
		participle.Elide("Whitespace"),
	)
)

// relExpr is the AST for a length expression: one or more terms joined by '+'.
type relExpr struct {
	Terms []string `parser:"@Term ( '+' @Term )*"`
}

// ParseRel parses a length expression into its absolute and font-relative parts.
func ParseRel(input string) (Rel, error) {
	expr, err := relParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return Rel{}, fmt.Errorf("invalid length %q: %w", input, err)
	}
	var rel Rel
	for _, term := range expr.Terms {
		value, unit, err := splitTerm(term)
		if err != nil {
			return Rel{}, err
		}
		switch unit {
		case UnitMM:
			rel.Abs += Mm(value)
		case UnitCM:
			rel.Abs += Cm(value)
		case UnitIN:
			rel.Abs += In(value)
		case UnitPT:
			rel.Abs += Pt(value)
		case UnitEM:
			rel.Em += Em(value)
		default:
			return Rel{}, fmt.Errorf("length %q is missing a unit", term)
		}
	}
	return rel, nil
}

// ParseAbs parses a length expression that must not contain a font-relative part.
func ParseAbs(input string) (Abs, error) {
	rel, err := ParseRel(input)
	if err != nil {
		return 0, err
	}
	if !rel.Em.IsZero() {
		return 0, fmt.Errorf("length %q must be absolute", input)
	}
	return rel.Abs, nil
}

// splitTerm separates the numeric prefix from the unit suffix of one term.
func splitTerm(term string) (float64, Unit, error) {
	num := term
	unit := UnitNone
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}, {"em", UnitEM}, {"x", UnitEM}} {
		if strings.HasSuffix(term, suf.s) {
			unit = suf.u
			num = strings.TrimSuffix(term, suf.s)
			break
		}
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, UnitNone, fmt.Errorf("invalid length term %q", term)
	}
	return value, unit, nil
}

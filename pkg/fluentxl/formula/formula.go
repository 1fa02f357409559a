// Package formula composes additive spreadsheet formulas from cell and range references.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

// RangeSeparator separates the start and end coordinates of a range reference.
const RangeSeparator = ":"

// NegationMarker prefixes a reference whose contribution is subtracted.
const NegationMarker = "-"

// ErrInvalidArgument indicates the references cannot produce a formula.
var ErrInvalidArgument = errors.New("invalid argument")

// Term is the contribution of one reference to a composed formula.
type Term struct {
	// Ref is the reference without the negation marker.
	Ref string
	// Negated reports whether the term is subtracted.
	Negated bool
}

// IsRange reports whether the term addresses a range rather than one cell.
func (t Term) IsRange() bool {
	return IsRange(t.Ref)
}

// String renders the term. Ranges are wrapped in SUM, single cells stay bare.
func (t Term) String() string {
	s := t.Ref
	if t.IsRange() {
		s = "SUM(" + s + ")"
	}
	if t.Negated {
		return NegationMarker + s
	}
	return s
}

// IsRange reports whether ref contains a range separator.
// The check is purely syntactic; ref is not validated as an address.
func IsRange(ref string) bool {
	return strings.Contains(ref, RangeSeparator)
}

// ParseTerm trims ref and strips an optional leading negation marker.
// It returns false when nothing is left.
func ParseTerm(ref string) (Term, bool) {
	ref = strings.TrimSpace(ref)
	var t Term
	if strings.HasPrefix(ref, NegationMarker) {
		t.Negated = true
		ref = strings.TrimSpace(strings.TrimPrefix(ref, NegationMarker))
	}
	if ref == "" {
		return Term{}, false
	}
	t.Ref = ref
	return t, true
}

// Sum builds the formula for a single reference. Unlike Compose with several
// references, a lone single cell is still wrapped: "A1" becomes "SUM(A1)".
func Sum(ref string) (string, error) {
	t, ok := ParseTerm(ref)
	if !ok {
		return "", fmt.Errorf("%w: at least one reference required", ErrInvalidArgument)
	}
	s := "SUM(" + t.Ref + ")"
	if t.Negated {
		s = NegationMarker + s
	}
	return s, nil
}

// Compose joins refs into one additive formula without the leading "=".
//
// Range references become SUM(range), single cells are left bare, and a
// leading "-" negates a term. Terms are joined with "+" in input order, so a
// negated term yields a literal "+-" (e.g. "SUM(A1:A5)+-B1"). Blank entries
// are skipped; a "-" with no reference after it is an error. A single
// reference takes the Sum path.
func Compose(refs ...string) (string, error) {
	switch len(refs) {
	case 0:
		return "", fmt.Errorf("%w: at least one reference required", ErrInvalidArgument)
	case 1:
		return Sum(refs[0])
	}

	terms := make([]Term, 0, len(refs))
	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		t, ok := ParseTerm(ref)
		if !ok {
			return "", fmt.Errorf("%w: negation marker without reference", ErrInvalidArgument)
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return "", fmt.Errorf("%w: no valid references", ErrInvalidArgument)
	}

	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, "+"), nil
}

// Terms parses refs in order, dropping blank entries and bare negation
// markers.
func Terms(refs ...string) []Term {
	terms := make([]Term, 0, len(refs))
	for _, ref := range refs {
		if t, ok := ParseTerm(ref); ok {
			terms = append(terms, t)
		}
	}
	return terms
}

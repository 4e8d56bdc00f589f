// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxDecimalDigits bounds the fractional digits Parse keeps exactly (10^18 fits int64).
const maxDecimalDigits = 18

// Parse reads a Rational from text.
// Accepted forms:
//   - "a/b"      integer numerator and denominator ("3/8", "-4/6" → -2/3)
//   - "n"        integer ("17")
//   - "d.ddd"    plain decimal, converted exactly ("0.0625" → 1/16)
//   - "1.5e-3"   exponent form, approximated through FromFloat
//
// Errors: ErrSyntax for unreadable input, ErrZeroDenominator for "a/0".
func Parse(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	if num, den, ok := strings.Cut(t, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("Parse(%q): numerator: %w", s, ErrSyntax)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("Parse(%q): denominator: %w", s, ErrSyntax)
		}

		return New(n, d)
	}

	if strings.ContainsAny(t, "eE") {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}

		return FromFloat(f, DefaultMaxDenominator)
	}

	if intPart, frac, ok := strings.Cut(t, "."); ok {
		return parseDecimal(s, intPart, frac)
	}

	n, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return FromInt(n), nil
}

// parseDecimal turns "int.frac" into an exact fraction over 10^len(frac).
func parseDecimal(orig, intPart, frac string) (Rational, error) {
	neg := strings.HasPrefix(intPart, "-")
	if neg || strings.HasPrefix(intPart, "+") {
		intPart = intPart[1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > maxDecimalDigits {
		frac = frac[:maxDecimalDigits]
	}
	if frac == "" {
		frac = "0"
	}
	for _, ch := range intPart + frac {
		if ch < '0' || ch > '9' {
			return Zero, fmt.Errorf("Parse(%q): %w", orig, ErrSyntax)
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("Parse(%q): %w", orig, ErrSyntax)
	}
	fnum, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("Parse(%q): %w", orig, ErrSyntax)
	}

	var den int64 = 1
	for i := 0; i < len(frac); i++ {
		den *= 10
	}

	r, err := safeDecimal(whole, fnum, den)
	if err != nil {
		return Zero, fmt.Errorf("Parse(%q): %w", orig, err)
	}
	if neg {
		r = r.Neg()
	}

	return r, nil
}

// safeDecimal computes whole + fnum/den, reporting overflow as an error.
func safeDecimal(whole, fnum, den int64) (r Rational, err error) {
	defer Recover(&err)

	return FromInt(whole).Add(reduce(fnum, den)), nil
}

// MarshalText implements encoding.TextMarshaler ("n" or "n/d").
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (x *Rational) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = r

	return nil
}

// UnmarshalYAML lets fixtures write entries as 3, -0.5 or "3/8".
func (x *Rational) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("rational: line %d: expected scalar: %w", node.Line, ErrSyntax)
	}

	return x.UnmarshalText([]byte(node.Value))
}

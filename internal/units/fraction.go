package units

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a quantity string cannot be parsed
var ErrInvalidFormat = errors.New("invalid quantity format")

var (
	decimalRe        = regexp.MustCompile(`^\d*\.?\d+$`)
	fractionRe       = regexp.MustCompile(`^(\d+)/(\d+)$`)
	ingredientLineRe = regexp.MustCompile(`(?i)^(.+):\s*([\d\s/.]+)\s*(cups?|tablespoons?|teaspoons?)$`)
	sizeFieldRe      = regexp.MustCompile(`([\d\s/.]+)\s*([a-zA-Z]+)$`)
)

// ParseFraction converts a human-entered quantity string to a decimal.
// Accepted shapes are plain decimals ("2", "1.5"), simple fractions
// ("1/2") and mixed numbers ("1 1/2"). Anything else, including a zero
// denominator, fails with ErrInvalidFormat.
func ParseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidFormat
	}

	if decimalRe.MatchString(s) {
		return strconv.ParseFloat(s, 64)
	}

	parts := strings.Split(s, " ")
	switch len(parts) {
	case 1:
		return evalFraction(parts[0])
	case 2:
		whole, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, ErrInvalidFormat
		}
		frac, err := evalFraction(parts[1])
		if err != nil {
			return 0, err
		}
		return float64(whole) + frac, nil
	default:
		return 0, ErrInvalidFormat
	}
}

func evalFraction(s string) (float64, error) {
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidFormat
	}
	num, _ := strconv.Atoi(m[1])
	den, _ := strconv.Atoi(m[2])
	if den == 0 {
		return 0, ErrInvalidFormat
	}
	return float64(num) / float64(den), nil
}

// IngredientLine is a parsed recipe ingredient line such as "Flour: 2 cups".
type IngredientLine struct {
	Name     string // lower-cased lookup key
	Display  string // original casing, trimmed
	Quantity float64
	Unit     string // raw unit token, lower-cased (may be plural)
}

// ParseIngredientLine parses a line of the exact shape
// "Name: <quantity> <cup|tablespoon|teaspoon>" (case-insensitive,
// plurals allowed). It reports ok=false on any mismatch rather than an
// error so batch parsing can skip and report invalid lines one by one.
func ParseIngredientLine(line string) (IngredientLine, bool) {
	m := ingredientLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return IngredientLine{}, false
	}
	qty, err := ParseFraction(m[2])
	if err != nil {
		return IngredientLine{}, false
	}
	display := strings.TrimSpace(m[1])
	return IngredientLine{
		Name:     strings.ToLower(display),
		Display:  display,
		Quantity: qty,
		Unit:     strings.ToLower(m[3]),
	}, true
}

// Measure is a parsed quantity+unit pair from a free-text size field.
type Measure struct {
	Quantity float64
	Unit     string // raw unit token, lower-cased
}

// ParseSizeField parses the looser receipt/recipe size shape: a trailing
// run of digits, spaces, slashes and dots followed by an alphabetic unit
// token of any kind ("2 cups", "1 1/2tsp", "500g"). Reports ok=false
// when no such tail exists or the number is malformed.
func ParseSizeField(s string) (Measure, bool) {
	m := sizeFieldRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Measure{}, false
	}
	qty, err := ParseFraction(m[1])
	if err != nil {
		return Measure{}, false
	}
	return Measure{Quantity: qty, Unit: strings.ToLower(m[2])}, true
}

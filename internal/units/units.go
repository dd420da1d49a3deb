package units

import "strings"

// Unit is a canonical measurement unit token
type Unit string

const (
	// Volume units
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tablespoon"
	UnitTeaspoon   Unit = "teaspoon"

	// Weight units
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitOunce    Unit = "ounce"
	UnitPound    Unit = "pound"
)

// abbreviations maps shorthand unit tokens to their canonical names
var abbreviations = map[string]Unit{
	"tbsp": UnitTablespoon,
	"tsp":  UnitTeaspoon,
	"g":    UnitGram,
	"kg":   UnitKilogram,
	"oz":   UnitOunce,
	"lb":   UnitPound,
}

// Normalize lower-cases a raw unit token, strips a trailing plural "s"
// and resolves common abbreviations to canonical unit names. Unknown
// tokens are passed through unchanged so callers can decide how to
// treat them.
func Normalize(raw string) Unit {
	token := strings.ToLower(strings.TrimSpace(raw))
	if u, ok := abbreviations[token]; ok {
		return u
	}
	token = strings.TrimSuffix(token, "s")
	if u, ok := abbreviations[token]; ok {
		return u
	}
	return Unit(token)
}

// IsVolume reports whether a raw unit token denotes one of the three
// cooking volume units (in any spelling).
func IsVolume(raw string) bool {
	switch Normalize(raw) {
	case UnitCup, UnitTablespoon, UnitTeaspoon:
		return true
	}
	return false
}

// AreVolume reports whether both raw unit tokens are volume units.
func AreVolume(a, b string) bool {
	return IsVolume(a) && IsVolume(b)
}

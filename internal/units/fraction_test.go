package units

import (
	"errors"
	"testing"
)

func TestParseFraction(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2", 2.0},
		{"1.5", 1.5},
		{"1/2", 0.5},
		{"1 1/2", 1.5},
		{"3/4", 0.75},
		{"2 3/4", 2.75},
		{" 1 1/2 ", 1.5},
	}

	for _, c := range cases {
		got, err := ParseFraction(c.in)
		if err != nil {
			t.Errorf("ParseFraction(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFraction(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFractionInvalid(t *testing.T) {
	invalid := []string{"", "abc", "1/0", "1 2 3", "one half", "1//2", "/2"}

	for _, in := range invalid {
		_, err := ParseFraction(in)
		if err == nil {
			t.Errorf("ParseFraction(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseFraction(%q) error = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestParseIngredientLine(t *testing.T) {
	line, ok := ParseIngredientLine("Flour: 2 cups")
	if !ok {
		t.Fatal("ParseIngredientLine(\"Flour: 2 cups\") failed, want success")
	}
	if line.Name != "flour" {
		t.Errorf("Name = %q, want %q", line.Name, "flour")
	}
	if line.Display != "Flour" {
		t.Errorf("Display = %q, want %q", line.Display, "Flour")
	}
	if line.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", line.Quantity)
	}
	if line.Unit != "cups" {
		t.Errorf("Unit = %q, want %q", line.Unit, "cups")
	}

	line, ok = ParseIngredientLine("Brown Sugar: 1 1/2 Tablespoons")
	if !ok {
		t.Fatal("mixed-number tablespoon line failed to parse")
	}
	if line.Name != "brown sugar" || line.Quantity != 1.5 || line.Unit != "tablespoons" {
		t.Errorf("unexpected parse: %+v", line)
	}
}

func TestParseIngredientLineRejects(t *testing.T) {
	bad := []string{
		"Flour 2 cups",      // missing colon
		"Flour: 2 grams",    // unit outside the cooking three
		"Flour: cups",       // missing quantity
		"Flour: 1/0 cups",   // zero denominator
		"",                  // empty
		"Flour: 2 handfuls", // unknown unit
	}

	for _, in := range bad {
		if _, ok := ParseIngredientLine(in); ok {
			t.Errorf("ParseIngredientLine(%q) succeeded, want rejection", in)
		}
	}
}

func TestParseSizeField(t *testing.T) {
	cases := []struct {
		in       string
		quantity float64
		unit     string
	}{
		{"2 cups", 2, "cups"},
		{"1 1/2 tsp", 1.5, "tsp"},
		{"500g", 500, "g"},
		{"0.5 oz", 0.5, "oz"},
	}

	for _, c := range cases {
		m, ok := ParseSizeField(c.in)
		if !ok {
			t.Errorf("ParseSizeField(%q) failed, want success", c.in)
			continue
		}
		if m.Quantity != c.quantity || m.Unit != c.unit {
			t.Errorf("ParseSizeField(%q) = %+v, want {%v %s}", c.in, m, c.quantity, c.unit)
		}
	}

	if _, ok := ParseSizeField("a dozen"); ok {
		t.Error("ParseSizeField(\"a dozen\") succeeded, want rejection")
	}
	if _, ok := ParseSizeField(""); ok {
		t.Error("ParseSizeField(\"\") succeeded, want rejection")
	}
}

package units

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/spoken"
)

// ErrNoConversion is returned by Convert for sentences that do not ask for a
// conversion.
var ErrNoConversion = errors.New("no unit conversion found")

// Conversion is the result of converting a quantity between units.
type Conversion struct {
	// Quantity is the amount in the From unit.
	Quantity *big.Rat
	From     Unit
	To       Unit
	// Value is the amount in the To unit.
	Value float64
}

func (c Conversion) String() string {
	x, _ := c.Quantity.Float64()
	return amount(x, c.From) + " = " + amount(c.Value, c.To)
}

func amount(x float64, u Unit) string {
	name := u.Plural
	if x == 1 {
		name = u.Name
	}
	return strconv.FormatFloat(x, 'g', 10, 64) + " " + name
}

// Convert answers a sentence asking for a conversion. It understands two
// forms: "<quantity> <unit> to <unit>", where "in", "into", or "as" may
// replace "to", and "how many <unit> in <quantity> <unit>". The quantity is a
// number phrase as understood by spoken.InterpretRat. A missing quantity, or
// one that is only "a" or "an", is one.
func (t *Table) Convert(text string) (Conversion, error) {
	words := fields(text)
	if c, ok, err := t.howMany(words); ok {
		return c, err
	}
	for j := len(words) - 2; j > 0; j-- {
		switch words[j] {
		case "to", "in", "into", "as":
		default:
			continue
		}
		to := t.units[strings.Join(words[j+1:], " ")]
		if to == nil {
			continue
		}
		k, from := t.suffix(words[:j])
		if from == nil {
			return Conversion{}, &UnknownUnitError{Unit: words[j-1]}
		}
		return t.conversion(words[:j-k], from, to)
	}
	return Conversion{}, fmt.Errorf("%w in %q", ErrNoConversion, text)
}

// howMany converts sentences of the form "how many <unit> in <quantity>
// <unit>". ok is false if words is not in that form.
func (t *Table) howMany(words []string) (c Conversion, ok bool, err error) {
	i := 0
	for i+1 < len(words) && (words[i] != "how" || (words[i+1] != "many" && words[i+1] != "much")) {
		i++
	}
	if i+1 >= len(words) {
		return Conversion{}, false, nil
	}
	rest := words[i+2:]
	k, to := t.prefix(rest)
	if to == nil {
		return Conversion{}, false, nil
	}
	rest = rest[k:]
	for len(rest) > 0 && (rest[0] == "are" || rest[0] == "is" || rest[0] == "there") {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != "in" {
		return Conversion{}, false, nil
	}
	rest = rest[1:]
	k, from := t.suffix(rest)
	if from == nil {
		if len(rest) == 0 {
			return Conversion{}, true, fmt.Errorf("%w: no unit after %q", ErrNoConversion, "in")
		}
		return Conversion{}, true, &UnknownUnitError{Unit: rest[len(rest)-1]}
	}
	c, err = t.conversion(rest[:len(rest)-k], from, to)
	return c, true, err
}

func (t *Table) conversion(qty []string, from, to *Unit) (Conversion, error) {
	q, err := quantity(qty)
	if err != nil {
		return Conversion{}, fmt.Errorf("quantity of %s: %w", from.Plural, err)
	}
	x, err := convert(q, from, to)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Quantity: q, From: *from, To: *to, Value: x}, nil
}

// prefix finds the unit with the longest name at the start of words.
func (t *Table) prefix(words []string) (int, *Unit) {
	for k := min(t.longest, len(words)); k > 0; k-- {
		if u := t.units[strings.Join(words[:k], " ")]; u != nil {
			return k, u
		}
	}
	return 0, nil
}

// suffix finds the unit with the longest name at the end of words.
func (t *Table) suffix(words []string) (int, *Unit) {
	for k := min(t.longest, len(words)); k > 0; k-- {
		if u := t.units[strings.Join(words[len(words)-k:], " ")]; u != nil {
			return k, u
		}
	}
	return 0, nil
}

// quantity interprets the words before a unit name. Leading filler is
// skipped, and a leading "negative", "minus", or '-' negates the amount.
func quantity(words []string) (*big.Rat, error) {
	for len(words) > 0 && !numeric(words[0]) && !sign(words[0]) {
		words = words[1:]
	}
	neg := false
	if len(words) > 0 {
		switch w := words[0]; {
		case sign(w):
			neg = true
			words = words[1:]
		case strings.HasPrefix(w, "-"):
			neg = true
			words = append([]string{w[1:]}, words[1:]...)
		}
	}
	if len(words) == 0 || len(words) == 1 && (words[0] == "a" || words[0] == "an") {
		if neg {
			return big.NewRat(-1, 1), nil
		}
		return big.NewRat(1, 1), nil
	}
	q, err := spoken.InterpretRat(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	if neg {
		q.Neg(q)
	}
	return q, nil
}

// numeric reports whether w can begin a quantity.
func numeric(w string) bool {
	return spoken.NumberWord(strings.ReplaceAll(strings.TrimPrefix(w, "-"), ",", ""))
}

func sign(w string) bool {
	return w == "negative" || w == "minus" || w == "-"
}

// fields splits a sentence into lower-case words without surrounding
// punctuation.
func fields(text string) []string {
	var r []string
	for _, w := range strings.Fields(lowerString(text)) {
		w = strings.TrimRight(strings.Trim(w, ",?!;:\"'()"), ".")
		if w != "" {
			r = append(r, w)
		}
	}
	return r
}

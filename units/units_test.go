package units_test

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/spoken"
	"github.com/zephyrtronium/spoken/units"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		src  string
		from string
		to   string
		want float64
	}{
		{"miles-km", "three miles to kilometers", "mile", "kilometer", 4.828032},
		{"how-many", "how many feet in a mile", "mile", "foot", 5280},
		{"how-many-are", "How many ounces are in two pounds?", "pound", "ounce", 32},
		{"boiling", "one hundred celsius in fahrenheit", "celsius", "fahrenheit", 212},
		{"negative", "negative forty celsius to fahrenheit", "celsius", "fahrenheit", -40},
		{"dash", "-40 fahrenheit to celsius", "fahrenheit", "celsius", -40},
		{"freezing", "thirty two degrees fahrenheit to kelvin", "fahrenheit", "kelvin", 273.15},
		{"fraction", "two and a half pounds to kilograms", "pound", "kilogram", 1.133980925},
		{"into", "convert five gallons into liters", "gallon", "liter", 18.92705892},
		{"digits", "1,024 bytes in kibibytes", "byte", "kibibyte", 1},
		{"two-word", "two nautical miles to meters", "nautical mile", "meter", 3704},
		{"three-word", "sixty miles per hour in kilometers per hour", "mile per hour", "kilometer per hour", 96.56064},
		{"article", "a day in hours", "day", "hour", 24},
		{"bare", "feet to inches", "foot", "inch", 12},
		{"ordinal-unit", "ninety seconds to minutes", "second", "minute", 1.5},
	}
	tab := units.Default()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := tab.Convert(c.src)
			require.NoError(t, err, c.src)
			assert.Equal(t, c.from, r.From.Name)
			assert.Equal(t, c.to, r.To.Name)
			assert.InDelta(t, c.want, r.Value, 1e-6*max(1, c.want))
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tab := units.Default()

	_, err := tab.Convert("five blorps to meters")
	var ue *units.UnknownUnitError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "blorps", ue.Unit)

	_, err = tab.Convert("how many feet in five blorps")
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "blorps", ue.Unit)

	_, err = tab.Convert("three miles to kilograms")
	var de *units.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "length", de.From.Dimension)
	assert.Equal(t, "mass", de.To.Dimension)

	_, err = tab.Convert("what is two plus two")
	assert.ErrorIs(t, err, units.ErrNoConversion)

	_, err = tab.Convert("thousand miles to feet")
	var ne *spoken.NumberParseError
	assert.ErrorAs(t, err, &ne)
}

func TestConversionString(t *testing.T) {
	r, err := units.Default().Convert("three miles to kilometers")
	require.NoError(t, err)
	assert.Equal(t, "3 miles = 4.828032 kilometers", r.String())
	r, err = units.Default().Convert("how many feet in a mile")
	require.NoError(t, err)
	assert.Equal(t, "1 mile = 5280 feet", r.String())
}

func TestLookup(t *testing.T) {
	tab := units.Default()
	u, ok := tab.Lookup("Feet")
	require.True(t, ok)
	assert.Equal(t, "foot", u.Name)
	assert.Equal(t, "length", u.Dimension)
	u, ok = tab.Lookup("fluid  ounces")
	require.True(t, ok)
	assert.Equal(t, "fluid ounce", u.Name)
	_, ok = tab.Lookup("in")
	assert.False(t, ok, `"in" must not name a unit`)

	all := tab.Units()
	assert.Greater(t, len(all), 40)
	assert.IsIncreasing(t, names(all))
}

func names(us []units.Unit) []string {
	r := make([]string, len(us))
	for i, u := range us {
		r[i] = u.Name
	}
	return r
}

func TestConvertRat(t *testing.T) {
	x, err := units.Default().ConvertRat(big.NewRat(3, 2), "kilometers", "m")
	require.NoError(t, err)
	assert.InDelta(t, 1500, x, 1e-9)
	_, err = units.Default().ConvertRat(big.NewRat(1, 1), "parsec", "m")
	assert.True(t, errors.As(err, new(*units.UnknownUnitError)))
}

func TestLoadTable(t *testing.T) {
	extra := []byte(`units: furlong: {dimension: "length", factor: 201.168, plural: "furlongs"}`)
	tab, err := units.LoadTable(extra)
	require.NoError(t, err)
	r, err := tab.Convert("a furlong in yards")
	require.NoError(t, err)
	assert.InDelta(t, 220, r.Value, 1e-9)

	bad := map[string]string{
		"conflict":   `units: mile: factor: 1600`,
		"incomplete": `units: parsec: {dimension: "length"}`,
		"schema":     `currency: dollar: 1`,
		"negative":   `units: nothing: {dimension: "length", factor: -1}`,
		"alias":      `units: metre2: {dimension: "length", factor: 1, aliases: ["m"]}`,
		"syntax":     `units: {`,
	}
	for name, src := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := units.LoadTable([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "extra.cue")
	require.NoError(t, os.WriteFile(p, []byte(`units: league: {dimension: "length", factor: 4828.032, plural: "leagues"}`), 0o644))
	tab, err := units.LoadFiles(p)
	require.NoError(t, err)
	r, err := tab.Convert("two leagues to miles")
	require.NoError(t, err)
	assert.InDelta(t, 6, r.Value, 1e-9)

	_, err = units.LoadFiles(filepath.Join(dir, "missing.cue"))
	assert.Error(t, err)
}

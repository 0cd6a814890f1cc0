// Package units converts quantities between units of measure, as in "three
// miles to kilometers" or "how many feet in a mile".
//
// Units are described in CUE. The built-in table covers common length, mass,
// time, volume, speed, data, and temperature units; LoadTable and LoadFiles
// unify further documents with it.
package units

import (
	_ "embed"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed units.cue
var builtin []byte

// schemaSrc constrains unit documents.
const schemaSrc = `
units: [string]: {
	dimension: string
	factor:    number & >0
	offset?:   number
	plural?:   string
	aliases?: [...string]
}`

// Unit is a unit of measure.
type Unit struct {
	// Name is the singular name of the unit.
	Name string
	// Plural is the plural name, or Name if the document gave none.
	Plural string
	// Dimension names the quantity the unit measures. Only units of the same
	// dimension convert to each other.
	Dimension string
	// Factor and Offset take a value in this unit to the dimension's base
	// unit as value*Factor + Offset.
	Factor float64
	Offset float64
	// Aliases are other names for the unit.
	Aliases []string
}

// def is the decoded form of one unit in a CUE document.
type def struct {
	Dimension string   `json:"dimension"`
	Factor    float64  `json:"factor"`
	Offset    float64  `json:"offset,omitempty"`
	Plural    string   `json:"plural,omitempty"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Table is a set of units indexed by every name they go by. A Table is safe
// for concurrent use.
type Table struct {
	units map[string]*Unit
	// longest is the most words in any name.
	longest int
}

type source struct {
	name string
	src  []byte
}

// LoadTable creates a table from the built-in units unified with each of the
// extra CUE documents. Documents may add units but not change existing ones.
func LoadTable(extra ...[]byte) (*Table, error) {
	srcs := make([]source, 0, len(extra))
	for i, b := range extra {
		srcs = append(srcs, source{name: fmt.Sprintf("extra%d.cue", i), src: b})
	}
	return load(srcs)
}

// LoadFiles is like LoadTable, reading the extra documents from files.
func LoadFiles(paths ...string) (*Table, error) {
	srcs := make([]source, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("units: %w", err)
		}
		srcs = append(srcs, source{name: p, src: b})
	}
	return load(srcs)
}

// Default returns the table of built-in units.
var Default = sync.OnceValue(func() *Table {
	t, err := load(nil)
	if err != nil {
		panic("units: built-in table: " + err.Error())
	}
	return t
})

func load(extra []source) (*Table, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return nil, err
	}
	value := ctx.CompileBytes(builtin, cue.Filename("units.cue"))
	if err := value.Err(); err != nil {
		return nil, err
	}
	for _, s := range extra {
		v := ctx.CompileBytes(s.src, cue.Filename(s.name))
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("units: %w", err)
		}
		value = value.Unify(v)
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}
	var defs map[string]def
	if err := value.LookupPath(cue.ParsePath("units")).Decode(&defs); err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}
	return build(defs)
}

func build(defs map[string]def) (*Table, error) {
	t := &Table{units: make(map[string]*Unit, 3*len(defs))}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		d := defs[name]
		u := &Unit{
			Name:      name,
			Plural:    d.Plural,
			Dimension: d.Dimension,
			Factor:    d.Factor,
			Offset:    d.Offset,
			Aliases:   d.Aliases,
		}
		if u.Plural == "" {
			u.Plural = name
		}
		for _, a := range append([]string{name, u.Plural}, u.Aliases...) {
			a = canon(a)
			if v := t.units[a]; v != nil && v != u {
				return nil, fmt.Errorf("units: %q names both %s and %s", a, v.Name, u.Name)
			}
			t.units[a] = u
			t.longest = max(t.longest, len(strings.Fields(a)))
		}
	}
	return t, nil
}

// lowerString lower-cases s. Casers carry state, so each call gets its own.
func lowerString(s string) string {
	return cases.Lower(language.English).String(s)
}

// canon puts a unit name into the form the table indexes.
func canon(name string) string {
	return strings.Join(strings.Fields(lowerString(name)), " ")
}

// Lookup finds a unit by any of its names.
func (t *Table) Lookup(name string) (Unit, bool) {
	u := t.units[canon(name)]
	if u == nil {
		return Unit{}, false
	}
	return *u, true
}

// Units returns every unit in the table, sorted by name.
func (t *Table) Units() []Unit {
	seen := make(map[*Unit]bool, len(t.units))
	var r []Unit
	for _, u := range t.units {
		if !seen[u] {
			seen[u] = true
			r = append(r, *u)
		}
	}
	slices.SortFunc(r, func(a, b Unit) int { return strings.Compare(a.Name, b.Name) })
	return r
}

// ConvertRat converts a quantity between named units.
func (t *Table) ConvertRat(q *big.Rat, from, to string) (float64, error) {
	f, ok := t.units[canon(from)]
	if !ok {
		return 0, &UnknownUnitError{Unit: from}
	}
	g, ok := t.units[canon(to)]
	if !ok {
		return 0, &UnknownUnitError{Unit: to}
	}
	return convert(q, f, g)
}

func convert(q *big.Rat, from, to *Unit) (float64, error) {
	if from.Dimension != to.Dimension {
		return 0, &DimensionError{From: *from, To: *to}
	}
	x, _ := q.Float64()
	if from == to {
		return x, nil
	}
	base := x*from.Factor + from.Offset
	return (base - to.Offset) / to.Factor, nil
}

// UnknownUnitError is an error indicating a unit name not in the table.
type UnknownUnitError struct {
	Unit string
}

func (err *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", err.Unit)
}

// DimensionError is an error indicating a conversion between units that
// measure different things.
type DimensionError struct {
	From, To Unit
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)", err.From.Plural, err.From.Dimension, err.To.Plural, err.To.Dimension)
}

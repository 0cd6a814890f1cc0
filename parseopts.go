package spoken

import "maps"

// ParseOption is an option for tokenizing and parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt   map[string]Func
	lenientopt struct{}
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// funcs is the set of function and constant words, including phrases
	// like "square root". A nil entry disables a word.
	funcs map[string]Func
	// nodefaults indicates that parse options have set all default functions.
	nodefaults bool
	// lenient disables unknown word errors.
	lenient bool
	// shared is set when funcs belongs to a preset and must be copied
	// before it is modified.
	shared bool
}

// newparsectx applies opts in order and fills in unset default functions.
func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs == nil {
		p.funcs = globalfuncs
	} else if !p.nodefaults {
		// Only set default functions that aren't already set.
		p.own()
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
	}
	return p
}

// own makes p.funcs safe to modify.
func (p *parsectx) own() {
	switch {
	case p.funcs == nil:
		p.funcs = map[string]Func{}
	case p.shared:
		p.funcs = maps.Clone(p.funcs)
		p.shared = false
	}
}

func (p *parsectx) checkdefaults() {
	if p.nodefaults {
		return
	}
	n := 0
	for k := range p.funcs {
		if _, ok := globalfuncs[k]; ok {
			n++
		}
	}
	if n == len(globalfuncs) {
		p.nodefaults = true
	}
}

// ParseFunc sets a function or constant word. Names may contain several
// words, like "square root". To disable a default word, pass nil for fn.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	p.own()
	p.funcs[o.name] = o.fn
	return p
}

// ParseFuncs sets a group of function words. To disable any word, set it to
// nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	p.own()
	for k, v := range o {
		p.funcs[k] = v
	}
	p.checkdefaults()
	return p
}

// DisableDefaultFuncs disables all default function and constant words.
// Sentences using them treat the words as unknown.
func DisableDefaultFuncs() ParseOption {
	m := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

// AllowUnknownWords disables the check for misspelled words next to numbers
// and operators. Such words are then ignored like any other filler.
func AllowUnknownWords() ParseOption {
	return lenientopt{}
}

func (lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = true
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs != nil {
		// If we've set any functions, add unset default ones now.
		p.own()
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
		p.nodefaults = true
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.funcs != nil || p.lenient {
		panic("spoken: preset applied to non-default parse config")
	}
	p.funcs = o.funcs
	p.nodefaults = o.nodefaults
	p.lenient = o.lenient
	p.shared = o.funcs != nil
	return p
}

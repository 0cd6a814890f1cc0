package spoken

import (
	"math/big"
	"strconv"
	"strings"
)

// Interpret converts a phrase made only of number words and digits, such as
// "a hundred and fifty six thousand two hundred and twelve" or "two and a
// quarter", to the nearest float64. Operator, function, and constant words
// are errors.
func Interpret(text string, opts ...ParseOption) (float64, error) {
	r, err := InterpretRat(text, opts...)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// InterpretRat is like Interpret but returns the exact value.
func InterpretRat(text string, opts ...ParseOption) (*big.Rat, error) {
	p := newparsectx(opts)
	toks, err := tokenize(text, &p)
	if err != nil {
		return nil, err
	}
	return interpret(toks)
}

// interpret requires toks to form exactly one number phrase.
func interpret(toks []Token) (*big.Rat, error) {
	if len(toks) == 0 {
		return nil, &NumberParseError{Col: 1, Reason: "no number"}
	}
	r, n, err := scanNumeral(toks)
	if err != nil {
		return nil, err
	}
	if n < len(toks) {
		t := toks[n]
		return nil, &NumberParseError{Col: t.Pos, Word: t.Text, Reason: "not part of the number"}
	}
	return r, nil
}

// scanNumeral reads the longest number phrase at the start of toks. The
// second result is the number of tokens used. If no token can begin a number
// phrase, the result is nil, 0, nil.
func scanNumeral(toks []Token) (*big.Rat, int, error) {
	var m numeral
	i := 0
	for i < len(toks) && !m.done {
		n, err := m.step(toks[i:])
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			break
		}
		i += n
	}
	if i == 0 {
		return nil, 0, nil
	}
	return m.value(), i, nil
}

// numeral accumulates a number phrase. The value is total + group + frac.
// Scale words move group into total.
type numeral struct {
	total, group, frac big.Rat
	// last is the class of the last word added to the phrase.
	last wordClass
	// scale is the last scale word's value, or 0 if there was none. Scale
	// words must decrease.
	scale int64
	// words is the number of words in the current group.
	words int
	// done is set once the phrase cannot continue, e.g. after a fraction.
	done bool
}

func (m *numeral) value() *big.Rat {
	r := new(big.Rat).Add(&m.total, &m.group)
	return r.Add(r, &m.frac)
}

// after reports whether the last word class is one of cs.
func (m *numeral) after(cs ...wordClass) bool {
	for _, c := range cs {
		if m.last == c {
			return true
		}
	}
	return false
}

// step consumes the tokens that continue the phrase at the start of rest and
// returns how many it used. Zero means the phrase ends before rest.
func (m *numeral) step(rest []Token) (int, error) {
	tok := rest[0]
	switch tok.Kind {
	case TokenDigits:
		return m.digits(tok)
	case TokenWord:
		if tok.Ordinal {
			return m.ordinal(tok)
		}
		return m.cardinal(tok)
	case TokenFraction:
		return m.fraction(tok)
	case TokenConjunction:
		return m.conjunction(rest)
	case TokenArticle:
		return m.article(rest)
	case TokenPoint:
		return m.point(rest)
	default:
		return 0, nil
	}
}

func (m *numeral) digits(tok Token) (int, error) {
	if m.last != classNone {
		return 0, nil
	}
	if strings.Contains(tok.Text, ":") {
		return 0, &NumberParseError{Col: tok.Pos, Word: tok.Text, Reason: "a time is not a number"}
	}
	if _, ok := m.group.SetString(tok.Text); !ok {
		return 0, &NumberParseError{Col: tok.Pos, Word: tok.Text, Reason: "malformed digits"}
	}
	m.last = classDigits
	m.words = 1
	return 1, nil
}

func (m *numeral) cardinal(tok Token) (int, error) {
	if tok.Value == 0 && m.last != classNone {
		return 0, nil
	}
	switch tok.class {
	case classUnit:
		if !m.after(classNone, classTens, classHundred, classScale) {
			return 0, nil
		}
		m.group.Add(&m.group, ratInt(tok.Value))
	case classTeen, classTens:
		if !m.after(classNone, classHundred, classScale) {
			return 0, nil
		}
		m.group.Add(&m.group, ratInt(tok.Value))
	case classHundred:
		if m.last == classNone {
			return 0, noQuantity(tok)
		}
		if !m.after(classUnit, classTeen, classTens, classDigits, classDecimal) || m.group.Cmp(ratInt(100)) >= 0 {
			return 0, nil
		}
		m.group.Mul(&m.group, ratInt(100))
	case classScale:
		if m.last == classNone {
			return 0, noQuantity(tok)
		}
		if m.last == classScale || m.scale != 0 && tok.Value >= m.scale {
			return 0, nil
		}
		m.total.Add(&m.total, m.group.Mul(&m.group, ratInt(tok.Value)))
		m.group.SetInt64(0)
		m.scale = tok.Value
		m.last = classScale
		m.words = 0
		return 1, nil
	default:
		panic("spoken: number word with no class: " + tok.String())
	}
	m.last = tok.class
	m.words++
	return 1, nil
}

// ordinal adds an ordinal word, which ends the phrase. After a lone "one", an
// ordinal of three or more is a denominator instead: "one third".
func (m *numeral) ordinal(tok Token) (int, error) {
	if tok.Value >= 3 && m.numeratorOne() {
		m.group.SetInt64(0)
		m.frac.Add(&m.frac, big.NewRat(1, tok.Value))
		m.done = true
		return 1, nil
	}
	n, err := m.cardinal(tok)
	if n > 0 {
		m.done = true
	}
	return n, err
}

func (m *numeral) numeratorOne() bool {
	return m.after(classUnit, classDigits) && m.words == 1 && m.group.Cmp(ratInt(1)) == 0
}

// fraction adds a denominator word. The numerator is the current group, or
// one if the phrase is empty.
func (m *numeral) fraction(tok Token) (int, error) {
	if tok.Value <= 0 {
		return 0, &NumberParseError{Col: tok.Pos, Word: tok.Text, Reason: "unknown denominator"}
	}
	switch {
	case m.last == classNone:
		if tok.Plural {
			return 0, &NumberParseError{Col: tok.Pos, Word: tok.Text, Reason: "fraction with no numerator"}
		}
		m.frac.Add(&m.frac, big.NewRat(1, tok.Value))
	case m.after(classUnit, classTeen, classTens, classDigits):
		if !tok.Plural && m.group.Cmp(ratInt(1)) != 0 {
			return 0, nil
		}
		q := new(big.Rat).Mul(&m.group, big.NewRat(1, tok.Value))
		m.frac.Add(&m.frac, q)
		m.group.SetInt64(0)
	default:
		return 0, nil
	}
	m.done = true
	return 1, nil
}

// conjunction handles "and", which either introduces a fraction clause that
// ends the phrase or joins a hundred or scale word to a smaller number.
func (m *numeral) conjunction(rest []Token) (int, error) {
	if m.last == classNone {
		return 0, nil
	}
	if q, n, ok := fractionClause(rest[1:]); ok {
		m.frac.Add(&m.frac, q)
		m.done = true
		return n + 1, nil
	}
	if len(rest) > 1 && m.after(classHundred, classScale) {
		next := rest[1]
		if next.Kind == TokenWord && next.Value != 0 && next.class <= classTens {
			// Leave last alone so the next word sees the magnitude.
			return 1, nil
		}
		if m.andDigits(next) {
			return 2, nil
		}
	}
	return 0, nil
}

// andDigits adds a digit run joined by "and" to a hundred or scale word, as in
// "one hundred and 5". It must be a whole number below that place.
func (m *numeral) andDigits(tok Token) bool {
	if tok.Kind != TokenDigits || strings.ContainsAny(tok.Text, ".:") {
		return false
	}
	var d big.Int
	if _, ok := d.SetString(tok.Text, 10); !ok || d.Sign() == 0 {
		return false
	}
	limit := m.scale
	if m.last == classHundred {
		limit = 100
	}
	if d.Cmp(big.NewInt(limit)) >= 0 {
		return false
	}
	m.group.Add(&m.group, new(big.Rat).SetInt(&d))
	m.last = classDigits
	m.words++
	return true
}

// fractionClause parses the part of "and a quarter", "and two fifths", or
// "and one third" after "and". The result is the fraction's value and the
// number of tokens it spans.
func fractionClause(rest []Token) (*big.Rat, int, bool) {
	num := new(big.Rat)
	j := 0
	switch {
	case len(rest) == 0:
		return nil, 0, false
	case rest[0].Kind == TokenArticle:
		num.SetInt64(1)
		j = 1
	case rest[0].Kind == TokenDigits:
		if _, ok := num.SetString(rest[0].Text); !ok || !num.IsInt() {
			return nil, 0, false
		}
		j = 1
	case isCardinal(rest[0], classTens):
		num.SetInt64(rest[0].Value)
		j = 1
		if j < len(rest) && isCardinal(rest[j], classUnit) && rest[j].Value != 0 {
			num.Add(num, ratInt(rest[j].Value))
			j++
		}
	case isCardinal(rest[0], classUnit), isCardinal(rest[0], classTeen):
		num.SetInt64(rest[0].Value)
		j = 1
	default:
		return nil, 0, false
	}
	if j >= len(rest) {
		return nil, 0, false
	}
	one := num.Cmp(ratInt(1)) == 0
	t := rest[j]
	var den int64
	switch {
	case t.Kind == TokenFraction && (t.Plural || one):
		den = t.Value
	case t.Kind == TokenWord && t.Ordinal && t.Value >= 3 && one:
		den = t.Value
	default:
		return nil, 0, false
	}
	if den <= 0 {
		return nil, 0, false
	}
	return num.Mul(num, big.NewRat(1, den)), j + 1, true
}

func isCardinal(t Token, c wordClass) bool {
	return t.Kind == TokenWord && !t.Ordinal && t.class == c
}

// article handles "a" or "an" before a magnitude ("a hundred") or a
// denominator ("a quarter"). Elsewhere it is not part of the phrase.
func (m *numeral) article(rest []Token) (int, error) {
	if len(rest) < 2 || m.last != classNone {
		return 0, nil
	}
	next := rest[1]
	switch {
	case next.Kind == TokenFraction && !next.Plural, next.Kind == TokenWord && next.Ordinal && next.Value >= 3:
		if next.Value <= 0 {
			return 0, &NumberParseError{Col: next.Pos, Word: next.Text, Reason: "unknown denominator"}
		}
		m.frac.Add(&m.frac, big.NewRat(1, next.Value))
		m.done = true
		return 2, nil
	case isCardinal(next, classHundred), isCardinal(next, classScale):
		m.group.SetInt64(1)
		m.last = classUnit
		m.words = 1
		return 1, nil
	}
	return 0, nil
}

// point reads the digit words after a decimal point. Each digit word is one
// decimal place, so "point one five" is .15.
func (m *numeral) point(rest []Token) (int, error) {
	if !m.after(classNone, classUnit, classTeen, classTens, classHundred, classScale, classDigits) {
		return 0, nil
	}
	if m.last == classDigits && !m.group.IsInt() {
		return 0, nil
	}
	var ds strings.Builder
	j := 1
loop:
	for j < len(rest) {
		t := rest[j]
		switch {
		case isCardinal(t, classUnit):
			ds.WriteByte(byte('0' + t.Value))
			j++
		case isCardinal(t, classTeen):
			ds.WriteString(strconv.FormatInt(t.Value, 10))
			j++
		case isCardinal(t, classTens):
			ds.WriteByte(byte('0' + t.Value/10))
			j++
			if j < len(rest) && isCardinal(rest[j], classUnit) && rest[j].Value != 0 {
				ds.WriteByte(byte('0' + rest[j].Value))
				j++
			} else {
				ds.WriteByte('0')
			}
		case t.Kind == TokenDigits && strings.Trim(t.Text, "0123456789") == "":
			ds.WriteString(t.Text)
			j++
		default:
			break loop
		}
	}
	if ds.Len() == 0 {
		return 0, &NumberParseError{Col: rest[0].Pos, Word: rest[0].Text, Reason: "no digits after decimal point"}
	}
	d, ok := new(big.Rat).SetString("0." + ds.String())
	if !ok {
		panic("spoken: bad decimal digits " + ds.String())
	}
	m.group.Add(&m.group, d)
	m.last = classDecimal
	return j, nil
}

func noQuantity(tok Token) error {
	return &NumberParseError{Col: tok.Pos, Word: tok.Text, Reason: "no quantity before " + strconv.Quote(tok.Text)}
}

func ratInt(v int64) *big.Rat {
	return new(big.Rat).SetInt64(v)
}

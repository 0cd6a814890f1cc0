package spoken

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is one classified word or phrase of a sentence. Kind selects which of
// the other fields are meaningful.
type Token struct {
	Kind TokenKind
	// Text is the normalized source text of the token. For digit tokens, it
	// is the digits without any ordinal or am/pm suffix.
	Text string
	// Pos is the 1-based index of the token's first word in the sentence.
	Pos int
	// Value is the value of a number word or the denominator of a fraction
	// word.
	Value int64
	// Ordinal marks number words like "sixth".
	Ordinal bool
	// Plural marks fraction words like "fifths".
	Plural bool
	// Op is the operator of an operator token.
	Op Op

	class wordClass
	fn    Func
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind discriminates tokens.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenDigits is a run of digits, possibly with a decimal point or a
	// colon.
	TokenDigits
	// TokenWord is a cardinal or ordinal number word.
	TokenWord
	// TokenFraction is a word naming only a denominator, e.g. "half" or
	// "fifths".
	TokenFraction
	// TokenConjunction is "and".
	TokenConjunction
	// TokenArticle is "a" or "an".
	TokenArticle
	// TokenPoint is the decimal marker "point".
	TokenPoint
	// TokenOperator is an operator phrase.
	TokenOperator
	// TokenFunction is a function word.
	TokenFunction
	// TokenConstant is a constant word.
	TokenConstant
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenDigits:
		return "Digits"
	case TokenWord:
		return "Word"
	case TokenFraction:
		return "Fraction"
	case TokenConjunction:
		return "Conjunction"
	case TokenArticle:
		return "Article"
	case TokenPoint:
		return "Point"
	case TokenOperator:
		return "Operator"
	case TokenFunction:
		return "Function"
	case TokenConstant:
		return "Constant"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tokenize splits a sentence into tokens. Words that are not part of the
// vocabulary are dropped, except that a word next to a number or operator
// which is one edit away from a vocabulary word is reported as an
// UnknownWordError.
func Tokenize(text string, opts ...ParseOption) ([]Token, error) {
	p := newparsectx(opts)
	return tokenize(text, &p)
}

func tokenize(text string, p *parsectx) ([]Token, error) {
	s, err := normalize(text)
	if err != nil {
		return nil, &TokenizeError{Text: text}
	}
	words := split(s)
	if len(words) == 0 {
		return nil, &TokenizeError{Text: text}
	}
	l := lexer{p: p, words: words, sig: make([]bool, len(words))}
	for i := 0; i < len(words); {
		i += l.scan(i)
	}
	if err := l.check(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// normalize strips diacritics and lower-cases text.
func normalize(text string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Lower(language.English))
	s, _, err := transform.String(t, text)
	return s, err
}

// split separates normalized text into cleaned words. Dashes separate words
// unless one stands alone, in which case it is a minus sign.
func split(s string) []string {
	var words []string
	for _, f := range strings.Fields(s) {
		if f == "-" || f == "−" {
			words = append(words, "-")
			continue
		}
		for _, w := range strings.FieldsFunc(f, isDash) {
			if w = clean(w); w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

func isDash(r rune) bool {
	return r == '-' || r == '‐' || r == '–' || r == '—'
}

// symbols are the operator characters that stand alone as words.
const symbols = "+*/^×÷"

// clean strips punctuation from a word. Digit runs keep inner points, colons,
// and a leading point; thousands separators are removed.
func clean(w string) string {
	if len(w) <= 2 && strings.Trim(w, symbols) == "" {
		return w
	}
	if !strings.ContainsAny(w, "0123456789") {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, w)
	}
	w = strings.TrimRightFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	w = strings.TrimLeftFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' })
	for strings.HasPrefix(w, ".") && (len(w) == 1 || w[1] < '0' || w[1] > '9') {
		w = w[1:]
	}
	return strings.ReplaceAll(w, ",", "")
}

var digitRE = regexp.MustCompile(`^([0-9.:]*[0-9][0-9.:]*)(?:st|nd|rd|th|am|pm)?$`)

// digitWord returns the digits of a digit word without any suffix.
func digitWord(w string) (string, bool) {
	m := digitRE.FindStringSubmatch(w)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type lexer struct {
	p     *parsectx
	words []string
	toks  []Token
	// sig marks words that produced or belong to a token.
	sig []bool
	// power is set after an operator phrase that a later "power" closes.
	power bool
}

func (l *lexer) emit(tok Token, n int) {
	l.toks = append(l.toks, tok)
	for i := tok.Pos - 1; i < tok.Pos-1+n; i++ {
		l.sig[i] = true
	}
}

// scan classifies the word at i and returns the number of words used.
func (l *lexer) scan(i int) int {
	w := l.words[i]
	pos := i + 1
	if d, ok := digitWord(w); ok {
		l.emit(Token{Kind: TokenDigits, Text: d, Pos: pos}, 1)
		return 1
	}
	for n := min(maxPhrase, len(l.words)-i); n > 0; n-- {
		key := strings.Join(l.words[i:i+n], " ")
		if op, ok := operators[key]; ok {
			if key == "to the" && !l.numeric(i+2) {
				continue
			}
			l.emit(Token{Kind: TokenOperator, Text: key, Pos: pos, Op: op}, n)
			if d := postfixPowers[key]; d != "" {
				l.emit(Token{Kind: TokenDigits, Text: d, Pos: pos}, 1)
			}
			l.power = powerOpeners[key]
			return n
		}
		if fn := l.p.funcs[key]; fn != nil {
			kind := TokenConstant
			if fn.CanCall(1) {
				kind = TokenFunction
			}
			l.emit(Token{Kind: kind, Text: key, Pos: pos, fn: fn}, n)
			return n
		}
	}
	if v, ok := cardinals[w]; ok {
		l.emit(Token{Kind: TokenWord, Text: w, Pos: pos, Value: v.value, class: v.class}, 1)
		return 1
	}
	if v, ok := ordinals[w]; ok {
		l.emit(Token{Kind: TokenWord, Text: w, Pos: pos, Value: v.value, Ordinal: true, class: v.class}, 1)
		return 1
	}
	if v, ok := fractions[w]; ok {
		l.emit(Token{Kind: TokenFraction, Text: w, Pos: pos, Value: v.den, Plural: v.plural}, 1)
		return 1
	}
	switch w {
	case "and":
		l.emit(Token{Kind: TokenConjunction, Text: w, Pos: pos}, 1)
	case "a", "an":
		l.emit(Token{Kind: TokenArticle, Text: w, Pos: pos}, 1)
	case "point":
		l.emit(Token{Kind: TokenPoint, Text: w, Pos: pos}, 1)
	case "power", "powers":
		if l.power {
			// Closes "to the ... power"; belongs to the operator.
			l.power = false
			l.sig[i] = true
		}
	}
	return 1
}

// numeric reports whether the word at i can begin an exponent.
func (l *lexer) numeric(i int) bool {
	if i >= len(l.words) {
		return false
	}
	w := l.words[i]
	if NumberWord(w) || w == "negative" {
		return true
	}
	return l.p.funcs[w] != nil
}

// check looks for misspelled vocabulary next to significant words.
func (l *lexer) check() error {
	if l.p.lenient {
		return nil
	}
	for i, w := range l.words {
		if l.sig[i] || len(w) < 4 || ordinary[w] {
			continue
		}
		if !(i > 0 && l.sig[i-1]) && !(i+1 < len(l.words) && l.sig[i+1]) {
			continue
		}
		if s := l.p.suggest(w); s != "" {
			return &UnknownWordError{Col: i + 1, Word: w, Suggestion: s}
		}
	}
	return nil
}

// suggest finds the least vocabulary word one edit away from w, ignoring
// plurals. The result is empty if there is none.
func (p *parsectx) suggest(w string) string {
	best := ""
	try := func(v string) {
		if len(v) < 4 || v == w+"s" || w == v+"s" || !oneEdit(w, v) {
			return
		}
		if best == "" || v < best {
			best = v
		}
	}
	for _, v := range vocabulary {
		try(v)
	}
	for k, fn := range p.funcs {
		if fn != nil && !strings.Contains(k, " ") {
			try(k)
		}
	}
	return best
}

// oneEdit reports whether a and b differ by exactly one inserted, deleted, or
// substituted byte.
func oneEdit(a, b string) bool {
	if a == b {
		return false
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > 1 {
		return false
	}
	i := 0
	for i < len(a) && a[i] == b[i] {
		i++
	}
	if len(a) == len(b) {
		return a[i+1:] == b[i+1:]
	}
	return a[i:] == b[i+1:]
}

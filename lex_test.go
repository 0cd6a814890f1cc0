package spoken

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Token
	}{
		{"cardinal", "seven", []Token{{Kind: TokenWord, Text: "seven", Pos: 1, Value: 7}}},
		{"dash", "Twenty-Sixth", []Token{
			{Kind: TokenWord, Text: "twenty", Pos: 1, Value: 20},
			{Kind: TokenWord, Text: "sixth", Pos: 2, Value: 6, Ordinal: true},
		}},
		{"space", "twenty sixth", []Token{
			{Kind: TokenWord, Text: "twenty", Pos: 1, Value: 20},
			{Kind: TokenWord, Text: "sixth", Pos: 2, Value: 6, Ordinal: true},
		}},
		{"fraction", "two and a quarter", []Token{
			{Kind: TokenWord, Text: "two", Pos: 1, Value: 2},
			{Kind: TokenConjunction, Text: "and", Pos: 2},
			{Kind: TokenArticle, Text: "a", Pos: 3},
			{Kind: TokenFraction, Text: "quarter", Pos: 4, Value: 4},
		}},
		{"plural", "three fifths", []Token{
			{Kind: TokenWord, Text: "three", Pos: 1, Value: 3},
			{Kind: TokenFraction, Text: "fifths", Pos: 2, Value: 5, Plural: true},
		}},
		{"power", "fifteen to the eleven point five power", []Token{
			{Kind: TokenWord, Text: "fifteen", Pos: 1, Value: 15},
			{Kind: TokenOperator, Text: "to the", Pos: 2, Op: OpPow},
			{Kind: TokenWord, Text: "eleven", Pos: 4, Value: 11},
			{Kind: TokenPoint, Text: "point", Pos: 5},
			{Kind: TokenWord, Text: "five", Pos: 6, Value: 5},
		}},
		{"squared", "five squared", []Token{
			{Kind: TokenWord, Text: "five", Pos: 1, Value: 5},
			{Kind: TokenOperator, Text: "squared", Pos: 2, Op: OpPow},
			{Kind: TokenDigits, Text: "2", Pos: 2},
		}},
		{"digits", "1,000,000 plus 2.5", []Token{
			{Kind: TokenDigits, Text: "1000000", Pos: 1},
			{Kind: TokenOperator, Text: "plus", Pos: 2, Op: OpAdd},
			{Kind: TokenDigits, Text: "2.5", Pos: 3},
		}},
		{"symbols", "ten - 3 × 2", []Token{
			{Kind: TokenWord, Text: "ten", Pos: 1, Value: 10},
			{Kind: TokenOperator, Text: "-", Pos: 2, Op: OpSub},
			{Kind: TokenDigits, Text: "3", Pos: 3},
			{Kind: TokenOperator, Text: "×", Pos: 4, Op: OpMul},
			{Kind: TokenDigits, Text: "2", Pos: 5},
		}},
		{"phrase-func", "the square root of nine", []Token{
			{Kind: TokenFunction, Text: "square root", Pos: 2},
			{Kind: TokenWord, Text: "nine", Pos: 5, Value: 9},
		}},
		{"constant", "two pie", []Token{
			{Kind: TokenWord, Text: "two", Pos: 1, Value: 2},
			{Kind: TokenConstant, Text: "pie", Pos: 2},
		}},
		{"filler", "let's go to the park at 5pm", []Token{
			{Kind: TokenDigits, Text: "5", Pos: 7},
		}},
		{"ordinal-digits", "the 26th", []Token{
			{Kind: TokenDigits, Text: "26", Pos: 2},
		}},
		{"time", "10:30", []Token{
			{Kind: TokenDigits, Text: "10:30", Pos: 1},
		}},
		{"diacritics", "FÏVE", []Token{
			{Kind: TokenWord, Text: "five", Pos: 1, Value: 5},
		}},
		{"punctuation", "five, six.", []Token{
			{Kind: TokenWord, Text: "five", Pos: 1, Value: 5},
			{Kind: TokenWord, Text: "six", Pos: 2, Value: 6},
		}},
		{"no-numbers", "hello there", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			if diff := cmp.Diff(c.want, got, cmpopts.IgnoreUnexported(Token{}), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("wrong tokens for %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, src := range []string{"", "   \t\n", "?!"} {
		_, err := Tokenize(src)
		var te *TokenizeError
		if !errors.As(err, &te) {
			t.Errorf("%q gave %#v, not *TokenizeError", src, err)
		}
	}
}

func TestTokenizeUnknownWord(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		sugg string
	}{
		{"operator", "five plas three", 2, "plus"},
		{"number", "sevnteen three", 1, "seventeen"},
		{"function", "tangnt two", 1, "tangent"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Tokenize(c.src)
			var ue *UnknownWordError
			if !errors.As(err, &ue) {
				t.Fatalf("%q gave %#v, not *UnknownWordError", c.src, err)
			}
			if ue.Col != c.col {
				t.Errorf("wrong position: want %d, got %d", c.col, ue.Col)
			}
			if ue.Suggestion != c.sugg {
				t.Errorf("wrong suggestion: want %q, got %q", c.sugg, ue.Suggestion)
			}
		})
	}
}

func TestTokenizeOrdinaryWords(t *testing.T) {
	for _, src := range []string{
		"one hour plus two",
		"add your five to six",
		"that's fine, five plus two",
		"what is seven times even three",
		"eight at night",
	} {
		if _, err := Tokenize(src); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
	// Misspellings that are not ordinary words are still reported.
	_, err := Tokenize("sevn plus two")
	var ue *UnknownWordError
	if !errors.As(err, &ue) || ue.Suggestion != "seven" {
		t.Errorf("sevn plus two gave %#v", err)
	}
}

func TestOrdinaryNotVocabulary(t *testing.T) {
	p := newparsectx(nil)
	for w := range ordinary {
		if NumberWord(w) || p.funcs[w] != nil {
			t.Errorf("%q is vocabulary", w)
		}
		if _, ok := operators[w]; ok {
			t.Errorf("%q is an operator", w)
		}
	}
}

func TestTokenizeLenient(t *testing.T) {
	got, err := Tokenize("five plas three", AllowUnknownWords())
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: TokenWord, Text: "five", Pos: 1, Value: 5},
		{Kind: TokenWord, Text: "three", Pos: 3, Value: 3},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Token{})); diff != "" {
		t.Errorf("wrong tokens (-want +got):\n%s", diff)
	}
}

func TestTokenizeDisabledFunc(t *testing.T) {
	got, err := Tokenize("two pi", ParseFunc("pi", nil))
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{{Kind: TokenWord, Text: "two", Pos: 1, Value: 2}}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Token{})); diff != "" {
		t.Errorf("wrong tokens (-want +got):\n%s", diff)
	}
}

func TestOneEdit(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"plus", "plus", false},
		{"plas", "plus", true},
		{"plu", "plus", true},
		{"pluss", "plus", true},
		{"xplus", "plus", true},
		{"plsu", "plus", false},
		{"pl", "plus", false},
		{"", "a", true},
	}
	for _, c := range cases {
		if got := oneEdit(c.a, c.b); got != c.want {
			t.Errorf("oneEdit(%q, %q): want %t, got %t", c.a, c.b, c.want, got)
		}
	}
}

func TestVocabularyClasses(t *testing.T) {
	for w, v := range cardinals {
		if v.class == classNone || v.class > classScale {
			t.Errorf("cardinal %q has bad class %d", w, v.class)
		}
		if !NumberWord(w) {
			t.Errorf("cardinal %q is not a number word", w)
		}
	}
	for w, v := range ordinals {
		if v.class == classNone || v.class > classScale {
			t.Errorf("ordinal %q has bad class %d", w, v.class)
		}
	}
	for w, f := range fractions {
		if f.den < 2 {
			t.Errorf("fraction %q has denominator %d", w, f.den)
		}
	}
	for w := range operators {
		if _, ok := globalfuncs[w]; ok {
			t.Errorf("%q is both an operator and a function", w)
		}
	}
}

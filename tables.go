package spoken

import "strings"

// wordClass is the grammatical role of a number word within a phrase. The
// interpreter also uses it to remember what the last consumed item was.
type wordClass int8

const (
	classNone    wordClass = iota
	classUnit              // zero through nine
	classTeen              // ten through nineteen
	classTens              // twenty, thirty, ..., ninety
	classHundred           // hundred
	classScale             // thousand, million, ...
	classDigits            // a digit literal; interpreter state only
	classDecimal           // digits after "point"; interpreter state only
)

type numword struct {
	value int64
	class wordClass
}

// cardinals maps cardinal number words to their values.
var cardinals = map[string]numword{
	"zero":  {0, classUnit},
	"one":   {1, classUnit},
	"two":   {2, classUnit},
	"three": {3, classUnit},
	"four":  {4, classUnit},
	"five":  {5, classUnit},
	"six":   {6, classUnit},
	"seven": {7, classUnit},
	"eight": {8, classUnit},
	"nine":  {9, classUnit},

	"ten":       {10, classTeen},
	"eleven":    {11, classTeen},
	"twelve":    {12, classTeen},
	"thirteen":  {13, classTeen},
	"fourteen":  {14, classTeen},
	"fifteen":   {15, classTeen},
	"sixteen":   {16, classTeen},
	"seventeen": {17, classTeen},
	"eighteen":  {18, classTeen},
	"nineteen":  {19, classTeen},

	"twenty":  {20, classTens},
	"thirty":  {30, classTens},
	"forty":   {40, classTens},
	"fifty":   {50, classTens},
	"sixty":   {60, classTens},
	"seventy": {70, classTens},
	"eighty":  {80, classTens},
	"ninety":  {90, classTens},

	"hundred":     {100, classHundred},
	"thousand":    {1e3, classScale},
	"million":     {1e6, classScale},
	"billion":     {1e9, classScale},
	"trillion":    {1e12, classScale},
	"quadrillion": {1e15, classScale},
	"quintillion": {1e18, classScale},
}

// ordinals maps ordinal number words to their values. Ordinals of three and
// up double as singular fraction denominators: "one third", "a fifth".
var ordinals = map[string]numword{
	"first":   {1, classUnit},
	"second":  {2, classUnit},
	"third":   {3, classUnit},
	"fourth":  {4, classUnit},
	"fifth":   {5, classUnit},
	"sixth":   {6, classUnit},
	"seventh": {7, classUnit},
	"eighth":  {8, classUnit},
	"ninth":   {9, classUnit},

	"tenth":       {10, classTeen},
	"eleventh":    {11, classTeen},
	"twelfth":     {12, classTeen},
	"thirteenth":  {13, classTeen},
	"fourteenth":  {14, classTeen},
	"fifteenth":   {15, classTeen},
	"sixteenth":   {16, classTeen},
	"seventeenth": {17, classTeen},
	"eighteenth":  {18, classTeen},
	"nineteenth":  {19, classTeen},

	"twentieth":  {20, classTens},
	"thirtieth":  {30, classTens},
	"fortieth":   {40, classTens},
	"fiftieth":   {50, classTens},
	"sixtieth":   {60, classTens},
	"seventieth": {70, classTens},
	"eightieth":  {80, classTens},
	"ninetieth":  {90, classTens},

	"hundredth":  {100, classHundred},
	"thousandth": {1e3, classScale},
	"millionth":  {1e6, classScale},
	"billionth":  {1e9, classScale},
	"trillionth": {1e12, classScale},
}

type fracword struct {
	den    int64
	plural bool
}

// fractions maps words that only ever name a denominator. Plurals of the
// ordinals are added at init.
var fractions = buildFractions()

func buildFractions() map[string]fracword {
	m := map[string]fracword{
		"half":     {2, false},
		"halves":   {2, true},
		"quarter":  {4, false},
		"quarters": {4, true},
	}
	for w, v := range ordinals {
		if v.value < 3 {
			continue
		}
		m[w+"s"] = fracword{v.value, true}
	}
	return m
}

// Op is an arithmetic operator named by one or more words.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	// OpNeg is the prefix "negative". It never joins two terms.
	OpNeg
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpMod:
		return "mod"
	case OpPow:
		return "^"
	case OpNeg:
		return "neg"
	default:
		return "none"
	}
}

// operators maps operator phrases to operators. Phrases of several words are
// matched longest first.
var operators = map[string]Op{
	"plus":                   OpAdd,
	"minus":                  OpSub,
	"times":                  OpMul,
	"multiplied by":          OpMul,
	"divided by":             OpDiv,
	"over":                   OpDiv,
	"mod":                    OpMod,
	"modulo":                 OpMod,
	"to the power of":        OpPow,
	"raised to the power of": OpPow,
	"raised to the":          OpPow,
	"raised to":              OpPow,
	"to the":                 OpPow,
	"squared":                OpPow,
	"cubed":                  OpPow,
	"negative":               OpNeg,

	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"×": OpMul,
	"/": OpDiv,
	"÷": OpDiv,
	"^": OpPow,
}

// powerOpeners are the operator phrases whose exponent is closed by a later
// "power", as in "to the fifth power".
var powerOpeners = map[string]bool{
	"to the":        true,
	"raised to the": true,
}

// postfixPowers are the operator words that carry their own exponent.
var postfixPowers = map[string]string{
	"squared": "2",
	"cubed":   "3",
}

// maxPhrase is the most words in any operator or function phrase.
const maxPhrase = 5

// NumberWord reports whether a single lower-case word belongs to the number
// vocabulary: cardinal, ordinal, and fraction words, "and", "a", "an", and
// "point". Digit strings are number words too. Callers that isolate numeric
// substrings from longer sentences can use it to find the extent of a phrase.
func NumberWord(w string) bool {
	if _, ok := cardinals[w]; ok {
		return true
	}
	if _, ok := ordinals[w]; ok {
		return true
	}
	if _, ok := fractions[w]; ok {
		return true
	}
	switch w {
	case "and", "a", "an", "point":
		return true
	}
	_, ok := digitWord(w)
	return ok
}

// vocabulary lists the single words that the unknown-word check compares
// against, not including function words.
var vocabulary = buildVocabulary()

func buildVocabulary() []string {
	seen := make(map[string]bool)
	var v []string
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			v = append(v, w)
		}
	}
	for w := range cardinals {
		add(w)
	}
	for w := range ordinals {
		add(w)
	}
	for w := range fractions {
		add(w)
	}
	for w := range operators {
		for _, f := range strings.Fields(w) {
			add(f)
		}
	}
	add("power")
	add("point")
	return v
}

// ordinary are common English words within one edit of the vocabulary. They
// are filler, never misspellings.
var ordinary = map[string]bool{
	// zero, four, five, seven
	"hero": true, "hour": true, "your": true, "pour": true, "tour": true,
	"sour": true, "dour": true, "foul": true, "flour": true,
	"fine": true, "fire": true, "file": true, "give": true, "hive": true,
	"live": true, "dive": true, "jive": true,
	"even": true, "seen": true, "sever": true, "elven": true,
	// three, eight, nine
	"threw": true, "thee": true, "tree": true,
	"sight": true, "light": true, "fight": true, "might": true, "night": true,
	"right": true, "tight": true, "bight": true, "weight": true, "height": true,
	"mine": true, "line": true, "wine": true, "dine": true, "pine": true,
	"vine": true, "none": true, "nice": true,
	// tens, scales, ordinals
	"fort": true, "forte": true, "thirsty": true, "nifty": true, "mighty": true,
	"bullion": true, "fist": true, "firs": true, "filth": true, "tent": true,
	"teeth": true,
	// fractions
	"hall": true, "halt": true, "hale": true, "halo": true, "calf": true,
	"halve": true, "valves": true, "calves": true, "quartet": true,
	// operators
	"plum": true, "plug": true, "plush": true, "minds": true, "mines": true,
	"tiles": true, "tires": true, "timed": true, "timer": true, "dimes": true,
	"limes": true, "tides": true, "tines": true, "oven": true, "ever": true,
	"lover": true, "cover": true, "rover": true, "hover": true, "mover": true,
	"overt": true, "module": true, "tower": true, "lower": true, "mower": true,
	"poker": true, "cower": true, "powder": true, "raise": true, "raises": true,
	"praised": true, "raided": true, "square": true, "squares": true,
	"cube": true, "cubes": true, "cured": true, "paint": true, "joint": true,
	"print": true, "pint": true,
	// functions
	"sing": true, "sign": true, "site": true, "side": true, "size": true,
	"sane": true, "sink": true, "since": true, "shine": true, "spine": true,
	"swine": true, "singe": true, "sinew": true,
}

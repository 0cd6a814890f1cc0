package dates

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var months = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sep":       time.September,
	"sept":      time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// relative days are words naming a day by its distance from today.
var relative = map[string]int{
	"today":     0,
	"tonight":   0,
	"tomorrow":  1,
	"yesterday": -1,
}

// parts of the day, with the hour each implies when no time is given.
var parts = map[string]int{
	"morning":   9,
	"afternoon": 15,
	"evening":   19,
	"tonight":   20,
	"night":     20,
}

// spans are the units of date offsets, as days, months, and years.
var spans = map[string][3]int{
	"day":        {1, 0, 0},
	"days":       {1, 0, 0},
	"week":       {7, 0, 0},
	"weeks":      {7, 0, 0},
	"fortnight":  {14, 0, 0},
	"fortnights": {14, 0, 0},
	"month":      {0, 1, 0},
	"months":     {0, 1, 0},
	"year":       {0, 0, 1},
	"years":      {0, 0, 1},
}

// fields splits a sentence into lower-case words. Dashes separate words, and
// punctuation around each word is dropped.
func fields(text string) []string {
	text = cases.Lower(language.English).String(text)
	var r []string
	for _, w := range strings.FieldsFunc(text, func(c rune) bool { return unicode.IsSpace(c) || c == '-' || c == '–' || c == '—' }) {
		w = strings.TrimRight(strings.Trim(w, `,?!;:"()`), ".")
		if w != "" {
			r = append(r, w)
		}
	}
	return r
}

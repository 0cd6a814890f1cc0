// Package dates finds the date and time a sentence refers to, as in "remind
// me on January twenty sixth" or "let's go to the park at 12:51pm tomorrow".
//
// Days may be named relative to today ("tomorrow", "next Friday", "a week
// from January 26") or on the calendar, with the day of the month written in
// digits or words. Times of day are read from forms like "5pm", "17:30",
// "at five thirty", and "noon".
package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/zephyrtronium/spoken"
)

// Resolver finds dates and times in sentences.
type Resolver struct {
	// Now returns the current time. Relative dates count from its day, and
	// results are in its location. If Now is nil, time.Now is used.
	Now func() time.Time
}

// Resolve finds the date and time in text relative to the current time.
func Resolve(text string) (time.Time, error) {
	return Resolver{}.Resolve(text)
}

// Resolve finds the date and time in text. A sentence with a time but no
// date refers to today. A date with no time is at midnight, unless a part of
// the day like "morning" is named.
func (r Resolver) Resolve(text string) (time.Time, error) {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	words := fields(text)
	day, dok := find(words, today)
	c, cok := clock(words)
	if !dok && !cok {
		return time.Time{}, &NoDateError{Text: text}
	}
	if !dok {
		day = today
	}
	pod := partOfDay(words)
	h, m := 0, 0
	switch {
	case cok:
		h, m = c.hour, c.min
		if c.bare && pod >= 12 && h < 12 {
			h += 12
		}
	case pod > 0:
		h = pod
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// NoDateError is an error indicating a sentence that names no date or time.
type NoDateError struct {
	Text string
}

func (err *NoDateError) Error() string {
	return "no date or time in " + strconv.Quote(err.Text)
}

// find locates the day words refer to.
func find(words []string, today time.Time) (time.Time, bool) {
	if t, ok := offset(words, today); ok {
		return t, true
	}
	if t, ok := calendar(words, today); ok {
		return t, true
	}
	if t, ok := weekday(words, today); ok {
		return t, true
	}
	for i, w := range words {
		if n, ok := relative[w]; ok {
			return today.AddDate(0, 0, n), true
		}
		if i+1 >= len(words) {
			break
		}
		switch w {
		case "this":
			if _, ok := parts[words[i+1]]; ok {
				return today, true
			}
		case "next", "last":
			if span, ok := spans[words[i+1]]; ok {
				n := 1
				if w == "last" {
					n = -1
				}
				return shift(today, span, n), true
			}
		}
	}
	return time.Time{}, false
}

// offset finds a day given as a distance from another, like "a week from
// January 26", "three days ago", or "in two weeks".
func offset(words []string, today time.Time) (time.Time, bool) {
	for i, w := range words {
		switch w {
		case "from", "after", "before":
			if i == 0 {
				continue
			}
			span, ok := spans[words[i-1]]
			if !ok {
				continue
			}
			n, ok := count(words[:i-1])
			if !ok {
				continue
			}
			base, ok := find(words[i+1:], today)
			if !ok {
				base = today
			}
			if w == "before" {
				n = -n
			}
			return shift(base, span, n), true
		case "ago":
			if i == 0 {
				continue
			}
			span, ok := spans[words[i-1]]
			if !ok {
				continue
			}
			n, ok := count(words[:i-1])
			if !ok {
				continue
			}
			return shift(today, span, -n), true
		case "in":
			j := i + 1
			for j < len(words) && spoken.NumberWord(words[j]) {
				j++
			}
			if j == i+1 || j >= len(words) {
				continue
			}
			span, ok := spans[words[j]]
			if !ok {
				continue
			}
			n, ok := count(words[i+1 : j])
			if !ok {
				continue
			}
			return shift(today, span, n), true
		}
	}
	return time.Time{}, false
}

// count reads a whole number from the number words that end words. A lone
// article is one, as is the absence of any number words.
func count(words []string) (int, bool) {
	j := len(words)
	for j > 0 && spoken.NumberWord(words[j-1]) {
		j--
	}
	if j == len(words) {
		return 1, true
	}
	for s := j; s < len(words); s++ {
		run := words[s:]
		if len(run) == 1 && (run[0] == "a" || run[0] == "an") {
			return 1, true
		}
		if n, ok := whole(run); ok {
			return n, true
		}
	}
	return 0, false
}

// whole interprets words as a nonnegative whole number.
func whole(words []string) (int, bool) {
	q, err := spoken.InterpretRat(strings.Join(words, " "))
	if err != nil || !q.IsInt() || q.Sign() < 0 || !q.Num().IsInt64() {
		return 0, false
	}
	return int(q.Num().Int64()), true
}

func shift(t time.Time, span [3]int, n int) time.Time {
	return t.AddDate(n*span[2], n*span[1], n*span[0])
}

// calendar finds a month and day, as "January 26", "January twenty sixth,
// 2014", or "the 26th of January". Without a year, the day is in the current
// year.
func calendar(words []string, today time.Time) (time.Time, bool) {
	for i, w := range words {
		m, ok := months[w]
		if !ok {
			continue
		}
		if d, n, ok := dayAfter(words[i+1:]); ok {
			y := today.Year()
			if k := i + 1 + n; k < len(words) {
				if yr, ok := year(words[k]); ok {
					y = yr
				}
			}
			if t, ok := mkdate(y, m, d, today.Location()); ok {
				return t, true
			}
		}
		j := i
		if j > 0 && words[j-1] == "of" {
			j--
		}
		if d, ok := dayBefore(words[:j]); ok {
			y := today.Year()
			if i+1 < len(words) {
				if yr, ok := year(words[i+1]); ok {
					y = yr
				}
			}
			if t, ok := mkdate(y, m, d, today.Location()); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// dayAfter reads a day of the month from the start of words, returning the
// number of words used.
func dayAfter(words []string) (int, int, bool) {
	skip := 0
	if len(words) > 0 && words[0] == "the" {
		skip = 1
	}
	k := skip
	for k < len(words) && spoken.NumberWord(words[k]) {
		k++
	}
	for e := k; e > skip; e-- {
		if d, ok := whole(words[skip:e]); ok && d >= 1 && d <= 31 {
			return d, e, true
		}
	}
	return 0, 0, false
}

// dayBefore reads a day of the month from the end of words.
func dayBefore(words []string) (int, bool) {
	j := len(words)
	for j > 0 && spoken.NumberWord(words[j-1]) {
		j--
	}
	for s := j; s < len(words); s++ {
		if d, ok := whole(words[s:]); ok && d >= 1 && d <= 31 {
			return d, true
		}
	}
	return 0, false
}

func year(w string) (int, bool) {
	if len(w) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(w)
	return y, err == nil && y >= 1000
}

// mkdate creates a date, rejecting days past the end of the month.
func mkdate(y int, m time.Month, d int, loc *time.Location) (time.Time, bool) {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return t, t.Day() == d
}

// weekday finds a day of the week. A bare weekday is the next one on or
// after today. "next" skips a week past that, and "last" is the most recent
// one before today.
func weekday(words []string, today time.Time) (time.Time, bool) {
	for i, w := range words {
		wd, ok := weekdays[w]
		if !ok {
			continue
		}
		ahead := (int(wd) - int(today.Weekday()) + 7) % 7
		if i > 0 {
			switch words[i-1] {
			case "next":
				ahead += 7
			case "last":
				ahead -= 7
			}
		}
		return today.AddDate(0, 0, ahead), true
	}
	return time.Time{}, false
}

// partOfDay returns the hour implied by a word like "morning", or 0.
func partOfDay(words []string) int {
	for _, w := range words {
		if h, ok := parts[w]; ok {
			return h
		}
	}
	return 0
}

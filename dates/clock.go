package dates

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zephyrtronium/spoken"
)

// timeOfDay is a time read from a sentence.
type timeOfDay struct {
	hour, min int
	// bare is set when the hour had no am or pm, so a part of the day may
	// move it into the afternoon.
	bare bool
}

var (
	meridiemRE = regexp.MustCompile(`(?:^| )(\d{1,2})(?::(\d{2}))? ?([ap])\.?m(?: |$)`)
	clockRE    = regexp.MustCompile(`(?:^| )(\d{1,2}):(\d{2})(?: |$)`)
)

// clock finds a time of day in words.
func clock(words []string) (timeOfDay, bool) {
	s := strings.Join(words, " ")
	if m := meridiemRE.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if h >= 1 && h <= 12 && minute < 60 {
			return timeOfDay{hour: meridiem(h, m[3] == "p"), min: minute}, true
		}
	}
	if m := clockRE.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if h < 24 && minute < 60 {
			return timeOfDay{hour: h, min: minute, bare: h < 12}, true
		}
	}
	for i, w := range words {
		switch w {
		case "noon", "midday":
			return timeOfDay{hour: 12}, true
		case "midnight":
			return timeOfDay{}, true
		case "at":
			if c, ok := spokenTime(words[i+1:]); ok {
				return c, true
			}
		}
	}
	return timeOfDay{}, false
}

// spokenTime reads a time like "five", "five pm", "five thirty", or "ten
// o'clock" from the start of words.
func spokenTime(words []string) (timeOfDay, bool) {
	k := 0
	for k < len(words) && spoken.NumberWord(words[k]) && words[k] != "a" && words[k] != "an" && words[k] != "and" {
		k++
	}
	if k == 0 {
		return timeOfDay{}, false
	}
	h, ok := whole(words[:1])
	if !ok || h > 23 {
		return timeOfDay{}, false
	}
	minute := 0
	if k > 1 {
		if minute, ok = whole(words[1:k]); !ok || minute > 59 {
			return timeOfDay{}, false
		}
	}
	c := timeOfDay{hour: h, min: minute, bare: h < 12}
	if k < len(words) {
		switch words[k] {
		case "am", "a.m":
			if h < 1 || h > 12 {
				return timeOfDay{}, false
			}
			c = timeOfDay{hour: meridiem(h, false), min: minute}
		case "pm", "p.m":
			if h < 1 || h > 12 {
				return timeOfDay{}, false
			}
			c = timeOfDay{hour: meridiem(h, true), min: minute}
		}
	}
	return c, true
}

// meridiem converts a 12-hour clock hour to 24 hours.
func meridiem(h int, pm bool) int {
	h %= 12
	if pm {
		h += 12
	}
	return h
}

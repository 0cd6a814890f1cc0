package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/spoken/dates"
)

// wednesday is the fixed current time for tests.
var wednesday = time.Date(2014, time.January, 22, 10, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want time.Time
	}{
		{"exact-words", "Remind me on January Twenty Sixth", day(2014, time.January, 26)},
		{"exact-words-dash", "Remind me on January Twenty-Sixth", day(2014, time.January, 26)},
		{"exact-nums", "Remind me on January 26", day(2014, time.January, 26)},
		{"week-from", "Do x y and z a week from January 26", day(2014, time.February, 2)},
		{"next-friday", "Next Friday, go to the grocery store", day(2014, time.January, 31)},
		{"tomorrow", "Tomorrow morning, go to the grocery store", at(2014, time.January, 23, 9, 0)},
		{"today", "Send me an email some time today if you can", day(2014, time.January, 22)},
		{"this", "This morning, I went to the gym", at(2014, time.January, 22, 9, 0)},
		{"exact-time", "Let's go to the park at 12:51pm tomorrow", at(2014, time.January, 23, 12, 51)},
		{"day-of-month", "the 4th of July", day(2014, time.July, 4)},
		{"year", "March 3, 2015", day(2015, time.March, 3)},
		{"ago", "three days ago", day(2014, time.January, 19)},
		{"in", "in two weeks", day(2014, time.February, 5)},
		{"day-after", "the day after tomorrow", day(2014, time.January, 24)},
		{"months-from", "two months from today", day(2014, time.March, 22)},
		{"last", "last Monday", day(2014, time.January, 20)},
		{"bare-weekday", "friday", day(2014, time.January, 24)},
		{"same-weekday", "wednesday", day(2014, time.January, 22)},
		{"next-week", "next week", day(2014, time.January, 29)},
		{"evening", "dinner at seven in the evening", at(2014, time.January, 22, 19, 0)},
		{"noon", "lunch at noon on friday", at(2014, time.January, 24, 12, 0)},
		{"clock", "meet at 9:15", at(2014, time.January, 22, 9, 15)},
		{"spoken-pm", "call at five thirty pm", at(2014, time.January, 22, 17, 30)},
		{"dotted-pm", "pick up at 5 p.m.", at(2014, time.January, 22, 17, 0)},
		{"twelve-am", "the alarm is at 12am", at(2014, time.January, 22, 0, 0)},
		{"tonight", "tonight", at(2014, time.January, 22, 20, 0)},
		{"midnight", "yesterday at midnight", at(2014, time.January, 21, 0, 0)},
	}
	r := dates.Resolver{Now: func() time.Time { return wednesday }}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := r.Resolve(c.src)
			require.NoError(t, err, c.src)
			assert.True(t, c.want.Equal(got), "%q: want %v, got %v", c.src, c.want, got)
		})
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, h, mm int) time.Time {
	return time.Date(y, m, d, h, mm, 0, 0, time.UTC)
}

func TestResolveNoDate(t *testing.T) {
	r := dates.Resolver{Now: func() time.Time { return wednesday }}
	for _, src := range []string{"", "what is two plus two", "February thirtieth", "at the park"} {
		_, err := r.Resolve(src)
		var nd *dates.NoDateError
		if assert.ErrorAs(t, err, &nd, src) {
			assert.Equal(t, src, nd.Text)
		}
	}
}

func TestResolveLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	// Still the 21st in this zone.
	r := dates.Resolver{Now: func() time.Time { return time.Date(2014, time.January, 21, 23, 0, 0, 0, loc) }}
	got, err := r.Resolve("tomorrow at 8am")
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 22, got.Day())
	assert.Equal(t, 8, got.Hour())
}

func TestResolveDefaultNow(t *testing.T) {
	got, err := dates.Resolve("today")
	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, now.YearDay(), got.YearDay())
}

func TestNextWeekday(t *testing.T) {
	// "next <weekday>" is always between 7 and 13 days away.
	for d := 0; d < 7; d++ {
		now := wednesday.AddDate(0, 0, d)
		r := dates.Resolver{Now: func() time.Time { return now }}
		got, err := r.Resolve("next friday")
		require.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday())
		days := got.Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24
		assert.GreaterOrEqual(t, days, 7.0)
		assert.Less(t, days, 14.0)
	}
}

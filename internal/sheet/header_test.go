package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantDate    string
		wantWeekday string
	}{
		{"date with glyph and suffix", "12/28 (日)抵達", "12/28", "週日"},
		{"date with weekday only", "1/3 (六)", "1/3", "週六"},
		{"monday glyph", "12/29 (一)貓與牛舌", "12/29", "週一"},
		{"no date falls back to raw header", "No Date Here", "No Date Here", WeekdayUnknown},
		{"date without glyph", "12/30 出發", "12/30", WeekdayUnknown},
		{"glyph outside parentheses ignored", "12/31 日", "12/31", WeekdayUnknown},
		{"first date wins", "12/28 和 12/29 (五)", "12/28", "週五"},
		{"empty header", "", "", WeekdayUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, weekday := ParseHeader(tt.header)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantWeekday, weekday)
		})
	}
}

func TestParseHeaderAllWeekdayGlyphs(t *testing.T) {
	want := map[string]string{
		"一": "週一", "二": "週二", "三": "週三", "四": "週四",
		"五": "週五", "六": "週六", "日": "週日",
	}
	for glyph, label := range want {
		_, weekday := ParseHeader("1/1 (" + glyph + ")")
		assert.Equal(t, label, weekday, "glyph %s", glyph)
	}
}

package sheet

import "regexp"

// WeekdayUnknown is returned for headers without a recognizable weekday glyph
const WeekdayUnknown = "unknown"

var (
	dateTokenRe    = regexp.MustCompile(`\d{1,2}/\d{1,2}`)
	weekdayGlyphRe = regexp.MustCompile(`\(([一二三四五六日])\)`)
)

// weekdayNames maps the single-glyph weekday set to canonical labels.
// This mapping is a fixed contract consumers may rely on.
var weekdayNames = map[string]string{
	"一": "週一",
	"二": "週二",
	"三": "週三",
	"四": "週四",
	"五": "週五",
	"六": "週六",
	"日": "週日",
}

// ParseHeader splits a date-column header such as "12/28 (日)抵達" into its
// M/D date token and a canonical weekday label. When no date substring is
// found the raw header is used as the token; a missing glyph yields
// WeekdayUnknown. Best-effort, never fails.
func ParseHeader(header string) (dateToken, weekday string) {
	dateToken = header
	if m := dateTokenRe.FindString(header); m != "" {
		dateToken = m
	}

	weekday = WeekdayUnknown
	if m := weekdayGlyphRe.FindStringSubmatch(header); m != nil {
		if name, ok := weekdayNames[m[1]]; ok {
			weekday = name
		}
	}
	return dateToken, weekday
}

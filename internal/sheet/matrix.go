package sheet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

// TimeColumn is the distinguished header holding each row's time label
const TimeColumn = "時間"

// DefaultTripTitle is used until a real date range (or an override) exists
const DefaultTripTitle = "Trip Planner"

// Row is one spreadsheet row keyed by column header
type Row map[string]string

// Matrix is a fully materialized spreadsheet: rows keyed by header plus the
// original left-to-right header order, which a bare map would lose.
type Matrix struct {
	Headers []string
	Rows    []Row
}

// ParseMatrix converts matrix rows into day buckets plus trip metadata.
// It never fails: empty input degrades to an empty itinerary with default
// metadata. Day buckets follow the sheet's column order, not chronological
// order, and metadata is derived from the first and last bucket in that
// order.
func ParseMatrix(m Matrix) models.ParseResult {
	result := models.ParseResult{
		Itinerary: []models.Day{},
		Metadata:  models.TripMetadata{Title: DefaultTripTitle},
	}
	if len(m.Rows) == 0 {
		return result
	}

	dateKeys := dateColumns(m)
	eventsByDate := make(map[string][]models.ParsedEvent, len(dateKeys))

	for rowIdx, row := range m.Rows {
		timeVal := row[TimeColumn]
		// No trimming before this check: a whitespace-only time label is
		// treated as present.
		if timeVal == "" {
			continue
		}

		for _, dateKey := range dateKeys {
			content := row[dateKey]
			if strings.TrimSpace(content) == "" {
				continue
			}
			title := strings.TrimSpace(content)
			eventsByDate[dateKey] = append(eventsByDate[dateKey], models.ParsedEvent{
				ID:      fmt.Sprintf("sheet-%d-%s", rowIdx, dateKey),
				Time:    strings.TrimSpace(timeVal),
				Title:   title,
				Options: ParseOptions(title),
				Type:    InferType(content),
				Fixed:   true,
			})
		}
	}

	for _, dateKey := range dateKeys {
		dayEvents := eventsByDate[dateKey]

		// Coarse sort on the leading digits of the time label. "8:00" and
		// "8:30" order equal; the stable sort keeps their row order.
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return timeOrdinal(dayEvents[i].Time) < timeOrdinal(dayEvents[j].Time)
		})

		date, weekday := ParseHeader(dateKey)
		result.Itinerary = append(result.Itinerary, models.Day{
			Date:      date,
			DayOfWeek: weekday,
			Events:    mergeConsecutive(dayEvents),
		})
	}

	if len(result.Itinerary) > 0 {
		result.Metadata.StartDate = result.Itinerary[0].Date
		result.Metadata.EndDate = result.Itinerary[len(result.Itinerary)-1].Date
		result.Metadata.Title = fmt.Sprintf("%s - %s Trip",
			result.Metadata.StartDate, result.Metadata.EndDate)
	}

	return result
}

// dateColumns returns every header except the time column and empty strings,
// in sheet order. When the caller supplied no header order (rows built by
// hand), the first row's keys are sorted for determinism.
func dateColumns(m Matrix) []string {
	headers := m.Headers
	if headers == nil {
		for key := range m.Rows[0] {
			headers = append(headers, key)
		}
		sort.Strings(headers)
	}

	var dateKeys []string
	for _, key := range headers {
		if key != TimeColumn && key != "" {
			dateKeys = append(dateKeys, key)
		}
	}
	return dateKeys
}

// timeOrdinal parses the leading digit run of a time label, so "8:00" and
// "8:30" both order as 8. Minutes never participate in ordering; the merge
// pass below is defined in terms of this coarse order. Labels without a
// leading digit order first.
func timeOrdinal(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	n, _ := strconv.Atoi(s[:i])
	return n
}

// mergeConsecutive collapses adjacent-in-sorted-order slots with identical
// titles into a single event spanning a time range. Comparison is exact
// string equality against the immediately preceding slot only; there is no
// maximum-gap bound.
func mergeConsecutive(events []models.ParsedEvent) []models.ParsedEvent {
	merged := make([]models.ParsedEvent, 0, len(events))
	var current *models.ParsedEvent

	for i := range events {
		ev := events[i]
		if current == nil {
			current = &ev
			continue
		}
		if ev.Title == current.Title {
			current.LastTimeBlock = ev.Time
			if current.Description == "" && ev.Description != "" {
				current.Description = ev.Description
			}
			continue
		}
		merged = append(merged, finalizeEvent(*current))
		current = &ev
	}
	if current != nil {
		merged = append(merged, finalizeEvent(*current))
	}
	return merged
}

// finalizeEvent derives the display time once a run is complete
func finalizeEvent(ev models.ParsedEvent) models.ParsedEvent {
	if ev.LastTimeBlock != "" {
		ev.DisplayTime = ev.Time + " - " + ev.LastTimeBlock
	} else {
		ev.DisplayTime = ev.Time
	}
	return ev
}

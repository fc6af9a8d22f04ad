package models

// Day groups the merged events of one date column
type Day struct {
	Date      string        `json:"date"`
	DayOfWeek string        `json:"day_of_week"`
	Events    []ParsedEvent `json:"events"`
}

// TripMetadata describes the whole trip, derived from the first and last
// date column in sheet order
type TripMetadata struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ParseResult is the full output of one matrix transformation pass
type ParseResult struct {
	Itinerary []Day        `json:"itinerary"`
	Metadata  TripMetadata `json:"metadata"`
}

// TripStats summarizes an itinerary for the statistics panel
type TripStats struct {
	TotalDays      int `json:"total_days"`
	TotalEvents    int `json:"total_events"`
	FoodCount      int `json:"food_count"`
	TransportCount int `json:"transport_count"`
}

// Stats counts days, events and the food/transport breakdown
func (r *ParseResult) Stats() TripStats {
	stats := TripStats{}
	if r == nil {
		return stats
	}
	stats.TotalDays = len(r.Itinerary)
	for _, day := range r.Itinerary {
		stats.TotalEvents += len(day.Events)
		for _, ev := range day.Events {
			switch ev.Type {
			case EventTypeFood:
				stats.FoodCount++
			case EventTypeTransport:
				stats.TransportCount++
			}
		}
	}
	return stats
}

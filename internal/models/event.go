package models

// EventType is the coarse category inferred from a cell's text
type EventType string

// Event type constants
const (
	EventTypeFood        EventType = "food"
	EventTypeTransport   EventType = "transport"
	EventTypeHotel       EventType = "hotel"
	EventTypeShopping    EventType = "shopping"
	EventTypeSightseeing EventType = "sightseeing"
)

// Option is one labelled choice parsed from a title's bracket block,
// e.g. "午餐 [{A: 拉麵店}, {B: 壽司店}]"
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParsedEvent is one merged time slot produced by the matrix transformer.
// All fields are core-owned; anything the presentation layer wants to attach
// afterwards goes through PresentationOverrides instead of mutating this.
type ParsedEvent struct {
	ID          string    `json:"id"`
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Options     []Option  `json:"options,omitempty"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	Location    string    `json:"location"`
	Fixed       bool      `json:"fixed"`

	// LastTimeBlock is the time of the final slot in a consecutive run of
	// identical titles; empty when the event covers a single slot.
	LastTimeBlock string `json:"last_time_block,omitempty"`

	// DisplayTime is either Time alone or "Time - LastTimeBlock" for a
	// merged range.
	DisplayTime string `json:"display_time"`
}

// PresentationOverrides carries fields the presentation layer may supply
// after parsing (notes, manual location, image). The core never fills these.
type PresentationOverrides struct {
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
}

// DisplayEvent is a ParsedEvent with presentation overrides applied
type DisplayEvent struct {
	ParsedEvent
	Image string `json:"image,omitempty"`
}

// Apply merges overrides into a copy of the event. Parsed fields survive
// unless the override supplies a non-empty replacement.
func (e ParsedEvent) Apply(o PresentationOverrides) DisplayEvent {
	out := DisplayEvent{ParsedEvent: e, Image: o.Image}
	if o.Description != "" {
		out.Description = o.Description
	}
	if o.Location != "" {
		out.Location = o.Location
	}
	return out
}

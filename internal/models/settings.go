package models

import "time"

// Settings is the persisted sheet configuration. SheetURL is stored in
// export form (already resolved through the URL resolver).
type Settings struct {
	SheetURL  string    `json:"sheet_url"`
	TripTitle string    `json:"trip_title,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

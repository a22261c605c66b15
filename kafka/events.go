package kafka

import "time"

// FavouriteToggledEvent is emitted whenever a device flips a favourite or
// tasted marker. Consumers must tolerate duplicates; the toggle itself is the
// source of truth and the event stream is advisory.
type FavouriteToggledEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	DeviceID  string    `json:"device_id"`
	FlavourID int       `json:"flavour_id"`
	Marker    string    `json:"marker"`
	Marked    bool      `json:"marked"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeFavouriteToggled = "favourite.toggled"
)

// Kafka topics
const (
	TopicFavouriteToggled = "favourite-toggled"
)

package entities

import "time"

// InfoZone shows a message when the player steps into its cell.
type InfoZone struct {
	ID       string
	Message  string
	Duration time.Duration
	ShowOnce bool
	shown    bool
}

// NewInfoZone creates a zone
func NewInfoZone(id, message string, d time.Duration, once bool) *InfoZone {
	return &InfoZone{ID: id, Message: message, Duration: d, ShowOnce: once}
}

// Enter is called when the player moves into the zone. It returns the
// message to show, or ok=false when a show-once zone has already fired.
func (z *InfoZone) Enter() (message string, d time.Duration, ok bool) {
	if z.ShowOnce && z.shown {
		return "", 0, false
	}
	z.shown = true
	return z.Message, z.Duration, true
}

// Shown reports whether the zone has fired at least once
func (z *InfoZone) Shown() bool {
	return z.shown
}

package message

import "time"

// Default mutation windows. Undo erases content entirely, so its window is
// deliberately shorter than edit's.
const (
	DefaultEditWindow    = 15 * time.Minute
	DefaultUndoWindow    = 2 * time.Minute
	DefaultMaxBodyLength = 4000
)

// WithinWindow reports whether a mutation is still allowed: strictly less
// than window after creation, so the window boundary itself is expired.
func WithinWindow(now, createdAt time.Time, window time.Duration) bool {
	return now.Sub(createdAt) < window
}

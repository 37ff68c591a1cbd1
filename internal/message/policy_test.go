package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		window time.Duration
		want   bool
	}{
		{
			name:   "just inside edit window",
			now:    createdAt.Add(DefaultEditWindow - time.Millisecond),
			window: DefaultEditWindow,
			want:   true,
		},
		{
			name:   "exactly at edit window boundary",
			now:    createdAt.Add(DefaultEditWindow),
			window: DefaultEditWindow,
			want:   false,
		},
		{
			name:   "just past edit window",
			now:    createdAt.Add(DefaultEditWindow + time.Millisecond),
			window: DefaultEditWindow,
			want:   false,
		},
		{
			name:   "just inside undo window",
			now:    createdAt.Add(DefaultUndoWindow - time.Millisecond),
			window: DefaultUndoWindow,
			want:   true,
		},
		{
			name:   "exactly at undo window boundary",
			now:    createdAt.Add(DefaultUndoWindow),
			window: DefaultUndoWindow,
			want:   false,
		},
		{
			name:   "immediately after creation",
			now:    createdAt,
			window: DefaultUndoWindow,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinWindow(tt.now, createdAt, tt.window))
		})
	}
}

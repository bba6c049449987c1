package model

import "time"

// Timestamps is embedded by value in entities to satisfy TimestampAware.
// A zero time means "not set".
type Timestamps struct {
	createdAt time.Time
	updatedAt time.Time
}

// Touch sets updatedAt to now, and createdAt too on first use.
func (t *Timestamps) Touch(now time.Time) {
	if t.createdAt.IsZero() {
		t.createdAt = now
	}
	t.updatedAt = now
}

// Timestamp is Touch with the current time.
func (t *Timestamps) Timestamp() {
	t.Touch(time.Now())
}

// SetCreatedAt overrides createdAt, for rehydrating stored entities.
// A zero time is ignored.
func (t *Timestamps) SetCreatedAt(at time.Time) {
	if at.IsZero() {
		return
	}
	t.createdAt = at
}

func (t *Timestamps) CreatedAt() time.Time { return t.createdAt }
func (t *Timestamps) UpdatedAt() time.Time { return t.updatedAt }

package reaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var classifyNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ts(d time.Duration) string {
	return classifyNow.Add(-d).Format(time.RFC3339)
}

func TestClassify(t *testing.T) {
	idleTimeout := 12 * time.Hour

	tests := []struct {
		name       string
		meta       map[string]string
		shouldStop bool
		reason     string
	}{
		{
			name:       "idle past threshold",
			meta:       map[string]string{"last-active-at": ts(13 * time.Hour)},
			shouldStop: true,
			reason:     "Idle for 13.0 hours",
		},
		{
			name:       "active within threshold",
			meta:       map[string]string{"last-active-at": ts(11 * time.Hour)},
			shouldStop: false,
			reason:     "Still active",
		},
		{
			name:       "exactly at threshold is kept",
			meta:       map[string]string{"last-active-at": ts(12 * time.Hour)},
			shouldStop: false,
			reason:     "Still active",
		},
		{
			name:       "no activity tracking falls back to age",
			meta:       map[string]string{"created-at": ts(13 * time.Hour)},
			shouldStop: true,
			reason:     "No activity tracking, age: 13.0 hours",
		},
		{
			name:       "young instance without activity tracking",
			meta:       map[string]string{"created-at": ts(2 * time.Hour)},
			shouldStop: false,
			reason:     "Still active",
		},
		{
			name:       "malformed last-active-at never stops",
			meta:       map[string]string{"last-active-at": "not-a-date"},
			shouldStop: false,
			reason:     "Still active",
		},
		{
			name: "malformed last-active-at falls through to created-at",
			meta: map[string]string{
				"last-active-at": "not-a-date",
				"created-at":     ts(20 * time.Hour),
			},
			shouldStop: true,
			reason:     "No activity tracking, age: 20.0 hours",
		},
		{
			name:       "no metadata at all",
			meta:       nil,
			shouldStop: false,
			reason:     "Still active",
		},
		{
			name: "recent activity wins over old age",
			meta: map[string]string{
				"last-active-at": ts(1 * time.Hour),
				"created-at":     ts(100 * time.Hour),
			},
			shouldStop: false,
			reason:     "Still active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newInstance("dev-test", tt.meta)
			result := Classify(inst, classifyNow, idleTimeout)
			assert.Equal(t, tt.shouldStop, result.ShouldStop)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

func TestClassify_NilInstanceMetadata(t *testing.T) {
	result := Classify(nil, classifyNow, 12*time.Hour)
	assert.False(t, result.ShouldStop)
	assert.Equal(t, "Still active", result.Reason)
}

func TestClassify_OffsetNaiveTimestamp(t *testing.T) {
	// The provisioner sometimes writes timestamps without a zone suffix;
	// those are read as UTC.
	raw := classifyNow.Add(-13 * time.Hour).Format("2006-01-02T15:04:05")
	inst := newInstance("dev-test", map[string]string{"last-active-at": raw})

	result := Classify(inst, classifyNow, 12*time.Hour)
	assert.True(t, result.ShouldStop)
}

func TestClassify_FractionalHoursInReason(t *testing.T) {
	inst := newInstance("dev-test", map[string]string{
		"last-active-at": ts(12*time.Hour + 30*time.Minute),
	})

	result := Classify(inst, classifyNow, 12*time.Hour)
	assert.True(t, result.ShouldStop)
	assert.Equal(t, "Idle for 12.5 hours", result.Reason)
}

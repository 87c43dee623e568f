package reaper

import (
	"time"

	"google.golang.org/api/compute/v1"
)

// Metadata keys written by the provisioning pipeline.
const (
	metaLastActiveAt = "last-active-at"
	metaCreatedAt    = "created-at"
	metaUsername     = "username"
)

// MetadataValue returns the value of the first metadata entry whose key
// matches exactly. A missing key is a normal state, not an error.
func MetadataValue(instance *compute.Instance, key string) (string, bool) {
	if instance == nil || instance.Metadata == nil {
		return "", false
	}
	for _, item := range instance.Metadata.Items {
		if item == nil || item.Key != key {
			continue
		}
		if item.Value == nil {
			return "", true
		}
		return *item.Value, true
	}
	return "", false
}

// Username returns the owning user of an instance, or "unknown" when the
// metadata entry is missing or empty.
func Username(instance *compute.Instance) string {
	v, ok := MetadataValue(instance, metaUsername)
	if !ok || v == "" {
		return "unknown"
	}
	return v
}

// metadataTime parses a timestamp metadata entry. A malformed value is
// indistinguishable from an absent one: classification must fall back
// conservatively instead of failing the run.
func metadataTime(instance *compute.Instance, key string) (time.Time, bool) {
	raw, ok := MetadataValue(instance, key)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// offset-naive timestamps are read as UTC
		t, err = time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

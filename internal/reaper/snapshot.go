package reaper

import "strings"

const (
	snapshotNamePrefix = "dev-snapshot-"

	// GCP label values are capped at 63 characters.
	maxLabelLength = 63
)

// SnapshotName maps a username to its stable snapshot name. The mapping is
// deterministic, which is what makes "at most one snapshot per user" hold:
// the name is the identity.
func SnapshotName(username string) string {
	return snapshotNamePrefix + sanitizeUsername(username)
}

// UserLabel returns the snapshot "user" label value for a username,
// truncated to the label length limit.
func UserLabel(username string) string {
	s := sanitizeUsername(username)
	if len(s) > maxLabelLength {
		s = s[:maxLabelLength]
	}
	return s
}

// sanitizeUsername lowercases and squashes everything outside
// [a-z0-9-] to a dash. Idempotent: sanitized input passes through
// unchanged.
func sanitizeUsername(username string) string {
	lowered := strings.ToLower(username)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

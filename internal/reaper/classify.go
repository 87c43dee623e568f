package reaper

import (
	"fmt"
	"time"

	"google.golang.org/api/compute/v1"
)

// Classification is the stop/keep decision for one instance
type Classification struct {
	ShouldStop bool
	Reason     string
}

// Classify decides whether an instance has been idle long enough to stop.
//
// The primary signal is the last-active-at metadata timestamp. When that is
// missing or unparseable, created-at stands in: an environment nobody ever
// touched still ages out. The threshold comparison is strict, so an
// instance exactly at the boundary is kept.
func Classify(instance *compute.Instance, now time.Time, idleTimeout time.Duration) Classification {
	if lastActive, ok := metadataTime(instance, metaLastActiveAt); ok {
		idle := now.Sub(lastActive)
		if idle > idleTimeout {
			return Classification{
				ShouldStop: true,
				Reason:     fmt.Sprintf("Idle for %.1f hours", idle.Hours()),
			}
		}
		return Classification{Reason: "Still active"}
	}

	if createdAt, ok := metadataTime(instance, metaCreatedAt); ok {
		age := now.Sub(createdAt)
		if age > idleTimeout {
			return Classification{
				ShouldStop: true,
				Reason:     fmt.Sprintf("No activity tracking, age: %.1f hours", age.Hours()),
			}
		}
	}

	return Classification{Reason: "Still active"}
}

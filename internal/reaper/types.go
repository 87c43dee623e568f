// Package reaper stops idle dev environment instances: it snapshots the
// instance's disk, waits for the snapshot to land, and only then deletes
// the instance. User data survives in the snapshot.
package reaper

import (
	"context"
	"time"

	"google.golang.org/api/compute/v1"
)

// ComputeAPI is the slice of the compute control plane this package needs.
// *gcp.Client satisfies it; tests substitute a mock.
type ComputeAPI interface {
	ListDevEnvironments(ctx context.Context) ([]*compute.Instance, error)
	DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error)
	InsertSnapshot(ctx context.Context, snapshot *compute.Snapshot) (*compute.Operation, error)
	DeleteInstance(ctx context.Context, name string) (*compute.Operation, error)
	GetZoneOperation(ctx context.Context, name string) (*compute.Operation, error)
	GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error)
	ProjectID() string
	Zone() string
}

// EnvironmentRecord identifies one dev environment in a run summary
type EnvironmentRecord struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// RunSummary is the outcome of one cleanup pass. Every listed instance
// lands in exactly one of the three buckets.
type RunSummary struct {
	Timestamp time.Time           `json:"timestamp"`
	Stopped   []EnvironmentRecord `json:"stopped"`
	Kept      []EnvironmentRecord `json:"kept"`
	Failed    []EnvironmentRecord `json:"failed"`
	Summary   string              `json:"summary"`
}

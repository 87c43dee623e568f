package reaper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"

	"github.com/teableio/devreaper/internal/logger"
)

// Stopper executes the stop sequence for one instance: clear the user's
// previous snapshot, snapshot the disk, and only after the snapshot has
// confirmed success, delete the instance.
type Stopper struct {
	api    ComputeAPI
	waiter *Waiter
	log    logger.Logger
}

// NewStopper creates a stop sequencer
func NewStopper(api ComputeAPI, waiter *Waiter, log logger.Logger) *Stopper {
	return &Stopper{api: api, waiter: waiter, log: log}
}

// Stop snapshots the instance's disk and deletes the instance. Failure to
// create the snapshot aborts the sequence with the instance untouched; a
// snapshot that already landed is retained even if the instance deletion
// afterwards fails.
func (s *Stopper) Stop(ctx context.Context, instanceName, username string) error {
	snapshotName := SnapshotName(username)
	log := s.log.WithFields(map[string]interface{}{
		"instance": instanceName,
		"snapshot": snapshotName,
	})

	// Best effort: the previous stop's snapshot occupies the name.
	s.deleteOldSnapshot(ctx, snapshotName, log)

	log.Info("creating snapshot")
	snapshot := &compute.Snapshot{
		Name:        snapshotName,
		SourceDisk:  fmt.Sprintf("projects/%s/zones/%s/disks/%s", s.api.ProjectID(), s.api.Zone(), instanceName),
		Description: fmt.Sprintf("Auto-saved snapshot for %s's dev environment", username),
		Labels: map[string]string{
			"purpose": "dev-env-snapshot",
			"user":    UserLabel(username),
		},
	}
	op, err := s.api.InsertSnapshot(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", snapshotName, err)
	}
	if err := s.waiter.Wait(ctx, op.Name, GlobalScope); err != nil {
		return fmt.Errorf("creating snapshot %s: %w", snapshotName, err)
	}
	log.Info("snapshot created")

	log.Info("deleting instance")
	op, err = s.api.DeleteInstance(ctx, instanceName)
	if err != nil {
		return fmt.Errorf("deleting instance %s: %w", instanceName, err)
	}
	if err := s.waiter.Wait(ctx, op.Name, ZoneScope); err != nil {
		return fmt.Errorf("deleting instance %s: %w", instanceName, err)
	}
	log.Info("instance deleted")

	return nil
}

// deleteOldSnapshot clears a prior snapshot with the same name. Not
// finding one is the common case and is ignored; any other failure is
// worth a warning but never blocks the stop.
func (s *Stopper) deleteOldSnapshot(ctx context.Context, name string, log logger.Logger) {
	op, err := s.api.DeleteSnapshot(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return
		}
		log.Warn(fmt.Sprintf("could not delete old snapshot: %v", err))
		return
	}
	if err := s.waiter.Wait(ctx, op.Name, GlobalScope); err != nil {
		log.Warn(fmt.Sprintf("could not delete old snapshot: %v", err))
		return
	}
	log.Info("old snapshot deleted")
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

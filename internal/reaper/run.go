package reaper

import (
	"context"
	"fmt"
	"time"

	"github.com/teableio/devreaper/internal/logger"
)

// Runner drives one cleanup pass over every dev environment in the zone.
type Runner struct {
	api         ComputeAPI
	stopper     *Stopper
	idleTimeout time.Duration
	log         logger.Logger

	now func() time.Time
}

// NewRunner creates a runner with the given idle threshold
func NewRunner(api ComputeAPI, stopper *Stopper, idleTimeout time.Duration, log logger.Logger) *Runner {
	return &Runner{
		api:         api,
		stopper:     stopper,
		idleTimeout: idleTimeout,
		log:         log,
		now:         time.Now,
	}
}

// Run lists the dev environments, classifies each one, and stops the idle
// ones, strictly in listing order. A failed stop lands the instance in the
// failed bucket and the pass continues; one bad instance never aborts the
// rest.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	now := r.now().UTC()
	r.log.WithFields(map[string]interface{}{
		"project":      r.api.ProjectID(),
		"zone":         r.api.Zone(),
		"idle_timeout": r.idleTimeout.String(),
	}).Info("starting cleanup")

	instances, err := r.api.ListDevEnvironments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dev environments: %w", err)
	}
	r.log.WithField("count", len(instances)).Info("found dev environments")

	stopped := []EnvironmentRecord{}
	kept := []EnvironmentRecord{}
	failed := []EnvironmentRecord{}

	for _, instance := range instances {
		classification := Classify(instance, now, r.idleTimeout)
		username := Username(instance)
		record := EnvironmentRecord{
			Name:     instance.Name,
			Username: username,
			Reason:   classification.Reason,
		}
		log := r.log.WithFields(map[string]interface{}{
			"instance": instance.Name,
			"user":     username,
			"reason":   classification.Reason,
		})

		if !classification.ShouldStop {
			log.Info("keeping environment")
			kept = append(kept, record)
			continue
		}

		log.Info("stopping environment")
		if err := r.stopper.Stop(ctx, instance.Name, username); err != nil {
			log.Error("stop failed", err)
			record.Reason = err.Error()
			failed = append(failed, record)
			continue
		}
		stopped = append(stopped, record)
	}

	summary := &RunSummary{
		Timestamp: now,
		Stopped:   stopped,
		Kept:      kept,
		Failed:    failed,
		Summary:   fmt.Sprintf("Stopped %d, kept %d environment(s)", len(stopped), len(kept)),
	}
	r.log.Info("cleanup complete: " + summary.Summary)

	return summary, nil
}

package reaper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/compute/v1"
)

// Scope selects which operations endpoint a wait polls.
type Scope int

const (
	// ZoneScope covers instance operations.
	ZoneScope Scope = iota
	// GlobalScope covers snapshot operations.
	GlobalScope
)

const operationDone = "DONE"

// ErrWaitTimeout reports that an operation did not reach a terminal state
// within the waiter's bound.
var ErrWaitTimeout = errors.New("timed out waiting for operation")

// OperationError is a terminal operation that completed with an error
// payload attached by the control plane.
type OperationError struct {
	Operation string
	Detail    string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s failed: %s", e.Operation, e.Detail)
}

// Waiter polls asynchronous compute operations until they settle.
type Waiter struct {
	api      ComputeAPI
	interval time.Duration
	timeout  time.Duration
}

// NewWaiter builds a waiter polling at interval, giving up after timeout.
// Non-positive values fall back to 2s / 15m.
func NewWaiter(api ComputeAPI, interval, timeout time.Duration) *Waiter {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	return &Waiter{api: api, interval: interval, timeout: timeout}
}

// Wait blocks until the named operation reports DONE. A DONE operation
// carrying an error payload returns *OperationError; exceeding the bound
// returns an error wrapping ErrWaitTimeout.
func (w *Waiter) Wait(ctx context.Context, name string, scope Scope) error {
	deadline := time.Now().Add(w.timeout)

	for {
		op, err := w.get(ctx, name, scope)
		if err != nil {
			return fmt.Errorf("polling operation %s: %w", name, err)
		}

		if op.Status == operationDone {
			if op.Error != nil && len(op.Error.Errors) > 0 {
				return &OperationError{Operation: name, Detail: operationErrorDetail(op)}
			}
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("operation %s: %w", name, ErrWaitTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

func (w *Waiter) get(ctx context.Context, name string, scope Scope) (*compute.Operation, error) {
	if scope == ZoneScope {
		return w.api.GetZoneOperation(ctx, name)
	}
	return w.api.GetGlobalOperation(ctx, name)
}

func operationErrorDetail(op *compute.Operation) string {
	parts := make([]string, 0, len(op.Error.Errors))
	for _, e := range op.Error.Errors {
		if e == nil {
			continue
		}
		if e.Code != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Code, e.Message))
		} else {
			parts = append(parts, e.Message)
		}
	}
	return strings.Join(parts, "; ")
}

package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"

	apperrors "github.com/teableio/devreaper/internal/errors"
)

// devEnvFilter selects the instances this tool is allowed to touch.
const devEnvFilter = `labels.purpose="dev-env"`

// Client wraps the compute control plane for a single project/zone
type Client struct {
	projectID      string
	zone           string
	computeService *compute.Service
}

// ClientConfig holds configuration for the GCP client
type ClientConfig struct {
	ProjectID       string
	Zone            string
	CredentialsFile string
}

// NewClient creates a new GCP client with authentication
func NewClient(ctx context.Context, config ClientConfig) (*Client, error) {
	// Set up authentication options
	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	} else {
		// Use Application Default Credentials
		creds, err := google.FindDefaultCredentials(ctx, compute.ComputeScope)
		if err != nil {
			return nil, apperrors.GCPAuthenticationError(err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	computeService, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	if config.ProjectID == "" {
		return nil, apperrors.ProjectConfigurationError()
	}

	return &Client{
		projectID:      config.ProjectID,
		zone:           config.Zone,
		computeService: computeService,
	}, nil
}

// ProjectID returns the configured project ID
func (c *Client) ProjectID() string {
	return c.projectID
}

// Zone returns the configured zone
func (c *Client) Zone() string {
	return c.zone
}

// ListDevEnvironments returns every instance in the zone labeled as a dev
// environment. The whole result set is materialized before returning;
// ordering is whatever the backend gives us.
func (c *Client) ListDevEnvironments(ctx context.Context) ([]*compute.Instance, error) {
	var instances []*compute.Instance

	call := c.computeService.Instances.List(c.projectID, c.zone).Filter(devEnvFilter)
	err := call.Pages(ctx, func(page *compute.InstanceList) error {
		instances = append(instances, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list dev environments: %w", err)
	}

	return instances, nil
}

// DeleteSnapshot starts deletion of the named snapshot and returns the
// global operation handle.
func (c *Client) DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error) {
	return c.computeService.Snapshots.Delete(c.projectID, name).Context(ctx).Do()
}

// InsertSnapshot starts creation of a snapshot and returns the global
// operation handle.
func (c *Client) InsertSnapshot(ctx context.Context, snapshot *compute.Snapshot) (*compute.Operation, error) {
	return c.computeService.Snapshots.Insert(c.projectID, snapshot).Context(ctx).Do()
}

// DeleteInstance starts deletion of the named instance and returns the
// zone operation handle.
func (c *Client) DeleteInstance(ctx context.Context, name string) (*compute.Operation, error) {
	return c.computeService.Instances.Delete(c.projectID, c.zone, name).Context(ctx).Do()
}

// GetZoneOperation fetches the current state of a zone-scoped operation
func (c *Client) GetZoneOperation(ctx context.Context, name string) (*compute.Operation, error) {
	return c.computeService.ZoneOperations.Get(c.projectID, c.zone, name).Context(ctx).Do()
}

// GetGlobalOperation fetches the current state of a project-global operation
func (c *Client) GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error) {
	return c.computeService.GlobalOperations.Get(c.projectID, name).Context(ctx).Do()
}

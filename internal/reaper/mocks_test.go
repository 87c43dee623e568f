package reaper

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/compute/v1"
)

// MockComputeAPI is a mock implementation of the ComputeAPI interface
type MockComputeAPI struct {
	mock.Mock
}

func (m *MockComputeAPI) ListDevEnvironments(ctx context.Context) ([]*compute.Instance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*compute.Instance), args.Error(1)
}

func (m *MockComputeAPI) DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Operation), args.Error(1)
}

func (m *MockComputeAPI) InsertSnapshot(ctx context.Context, snapshot *compute.Snapshot) (*compute.Operation, error) {
	args := m.Called(ctx, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Operation), args.Error(1)
}

func (m *MockComputeAPI) DeleteInstance(ctx context.Context, name string) (*compute.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Operation), args.Error(1)
}

func (m *MockComputeAPI) GetZoneOperation(ctx context.Context, name string) (*compute.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Operation), args.Error(1)
}

func (m *MockComputeAPI) GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Operation), args.Error(1)
}

func (m *MockComputeAPI) ProjectID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockComputeAPI) Zone() string {
	args := m.Called()
	return args.String(0)
}

// newInstance builds a test instance with the given metadata entries.
func newInstance(name string, meta map[string]string) *compute.Instance {
	items := make([]*compute.MetadataItems, 0, len(meta))
	for k, v := range meta {
		value := v
		items = append(items, &compute.MetadataItems{Key: k, Value: &value})
	}
	return &compute.Instance{
		Name:     name,
		Metadata: &compute.Metadata{Items: items},
	}
}

func doneOperation(name string) *compute.Operation {
	return &compute.Operation{Name: name, Status: "DONE"}
}

func failedOperation(name, code, message string) *compute.Operation {
	return &compute.Operation{
		Name:   name,
		Status: "DONE",
		Error: &compute.OperationError{
			Errors: []*compute.OperationErrorErrors{
				{Code: code, Message: message},
			},
		},
	}
}

package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeAuthentication ErrorType = "Authentication"
	ErrorTypeConfiguration  ErrorType = "Configuration"
	ErrorTypeNetwork        ErrorType = "Network"
)

// ReaperError represents a user-friendly error with actionable guidance
type ReaperError struct {
	Type      ErrorType
	Message   string
	Cause     string
	Solutions []string
	Verify    string
}

// Error implements the error interface
func (e *ReaperError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nError: %s\n", e.Message))

	if e.Cause != "" {
		sb.WriteString(fmt.Sprintf("Cause: %s\n", e.Cause))
	}

	if len(e.Solutions) > 0 {
		sb.WriteString("\nSolutions:\n")
		for _, solution := range e.Solutions {
			sb.WriteString(fmt.Sprintf("  %s\n", solution))
		}
	}

	if e.Verify != "" {
		sb.WriteString(fmt.Sprintf("\nVerify: %s\n", e.Verify))
	}

	return sb.String()
}

// New creates a new ReaperError
func New(errType ErrorType, message string) *ReaperError {
	return &ReaperError{
		Type:    errType,
		Message: message,
	}
}

// WithCause adds cause information
func (e *ReaperError) WithCause(cause string) *ReaperError {
	e.Cause = cause
	return e
}

// WithSolutions adds solution steps
func (e *ReaperError) WithSolutions(solutions ...string) *ReaperError {
	e.Solutions = append(e.Solutions, solutions...)
	return e
}

// WithVerify adds a verification command
func (e *ReaperError) WithVerify(verify string) *ReaperError {
	e.Verify = verify
	return e
}

// GCPAuthenticationError creates a GCP authentication error with guidance
func GCPAuthenticationError(originalErr error) *ReaperError {
	err := New(ErrorTypeAuthentication, "GCP authentication failed")

	if originalErr != nil {
		errStr := originalErr.Error()
		if strings.Contains(errStr, "could not find default credentials") {
			err.WithCause("Application default credentials not found")
		} else {
			err.WithCause(originalErr.Error())
		}
	}

	err.WithSolutions(
		`gcloud auth application-default login`,
		`export GOOGLE_APPLICATION_CREDENTIALS="/path/to/key.json"`,
	)
	err.WithVerify("gcloud auth list")

	return err
}

// ProjectConfigurationError creates a project configuration error
func ProjectConfigurationError() *ReaperError {
	err := New(ErrorTypeConfiguration, "GCP project not configured")

	err.WithSolutions(
		`export GCP_PROJECT_ID="your-project-id"`,
		`gcloud config set project your-project-id`,
	)
	err.WithVerify("gcloud config get-value project")

	return err
}

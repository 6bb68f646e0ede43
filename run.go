package adgen

import (
	"context"
	"time"
)

// Run records one generation: the request, the marketing brief, and the raw
// asset response. Parsed documents are not stored; call Parse on Response.
type Run struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Services     []string  `json:"services,omitempty"`
	WebsiteOnly  bool      `json:"websiteOnly"`
	Model        string    `json:"model"`
	Brief        string    `json:"brief"`
	Response     string    `json:"response"`
	ResponseHash string    `json:"responseHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	if r.Response == "" {
		return Errorf(EINVALID, "run response required")
	}
	return nil
}

// Document parses the stored response.
func (r *Run) Document() *Document {
	return Parse(r.Response)
}

// RunService represents a service for managing generation runs.
type RunService interface {
	// CreateRun stores a new run and sets its ID, hash and timestamp.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter exports runs as human-readable reports.
type ReportWriter interface {
	// WriteRun writes the report for run and returns where it was written.
	WriteRun(ctx context.Context, run *Run) (string, error)
}

// RunBuilder produces a run for a brief request: it generates the brief and
// the ad assets and records the result.
type RunBuilder interface {
	Build(ctx context.Context, req BriefRequest) (*Run, error)
}

package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusOffered   = "offered"
)

// ApplicationStatuses lists every status. Any status may follow any other.
var ApplicationStatuses = []string{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewed,
	ApplicationStatusInterview,
	ApplicationStatusRejected,
	ApplicationStatusOffered,
}

// Application represents a job application from a candidate
type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_id"`
	CandidateID   int64     `json:"candidate_id"`
	Status        string    `json:"status"`
	AppliedDate   time.Time `json:"applied_date"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	ResumeVersion string    `json:"resume_version"`
}

func (a *Application) GetID() int64   { return a.ID }
func (a *Application) SetID(id int64) { a.ID = id }

// GetStatus is used by the status histogram and filter
func (a Application) GetStatus() string { return a.Status }

// ApplicationDetail is an application joined with its job and candidate.
// Job and Candidate are nil when the referenced record does not exist.
type ApplicationDetail struct {
	Application
	Job       *Job       `json:"job"`
	Candidate *Candidate `json:"candidate"`
}

// StatusCounts is the status histogram of the applications view
type StatusCounts struct {
	All       int `json:"all"`
	Submitted int `json:"submitted"`
	Reviewed  int `json:"reviewed"`
	Interview int `json:"interview"`
	Rejected  int `json:"rejected"`
	Offered   int `json:"offered"`
}

type ApplicationList struct {
	Applications []ApplicationDetail `json:"applications"`
	Counts       StatusCounts        `json:"counts"`
	Status       string              `json:"status"`
}

// ExportFile is a rendered export document
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	GetAll(ctx context.Context) ([]ApplicationDetail, error)
	GetByID(ctx context.Context, id int64) (*ApplicationDetail, error)
	Create(ctx context.Context, app *Application) error
	Update(ctx context.Context, id int64, patch map[string]any) (*Application, error)
	Delete(ctx context.Context, id int64) (*Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	ListApplications(ctx context.Context, status string) (*ApplicationList, error)
	GetApplication(ctx context.Context, id int64) (*ApplicationDetail, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) (*Application, error)
	DeleteApplication(ctx context.Context, id int64) (*Application, error)
	ExportApplications(ctx context.Context, status, format string) (*ExportFile, error)
}

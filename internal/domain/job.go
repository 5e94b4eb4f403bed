package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidPatch = errors.New("invalid patch")
	ErrStaleQuery   = errors.New("query superseded by a newer request")
)

// Job type constants
const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
	JobTypeRemote   = "Remote"
	JobTypeHybrid   = "Hybrid"
)

// JobTypes lists every job type in display order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeHybrid}

// Experience level constants
const (
	ExperienceEntry     = "Entry Level"
	ExperienceMid       = "Mid Level"
	ExperienceSenior    = "Senior Level"
	ExperienceExecutive = "Executive"
)

var ExperienceLevels = []string{ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive}

type SalaryRange struct {
	Min int64 `json:"min" validate:"gte=0"`
	Max int64 `json:"max" validate:"gtefield=Min"`
}

type Job struct {
	ID              int64       `json:"id"`
	CompanyID       int64       `json:"company_id" validate:"required"`
	Title           string      `json:"title" validate:"not_blank,max=200"`
	Description     string      `json:"description" validate:"max=5000"`
	Location        string      `json:"location" validate:"not_blank,max=200"`
	Type            string      `json:"type" validate:"job_type"`
	ExperienceLevel string      `json:"experience_level,omitempty" validate:"omitempty,experience_level"`
	SalaryRange     SalaryRange `json:"salary_range"`
	Requirements    []string    `json:"requirements" validate:"dive,not_blank"`
	PostedDate      time.Time   `json:"posted_date"`

	// Denormalized copy of the owning company, attached on read
	Company *CompanySummary `json:"company,omitempty"`
}

func (j *Job) GetID() int64   { return j.ID }
func (j *Job) SetID(id int64) { j.ID = id }

// JobFilter holds the job search predicates. Zero values are no-ops,
// including a salary bound of 0.
type JobFilter struct {
	Query            string   `json:"q,omitempty"`
	Location         string   `json:"location,omitempty"`
	MinSalary        *int64   `json:"min_salary,omitempty"`
	MaxSalary        *int64   `json:"max_salary,omitempty"`
	JobTypes         []string `json:"job_types,omitempty"`
	ExperienceLevels []string `json:"experience_levels,omitempty"`
}

// IsEmpty reports whether no predicate is active.
func (f JobFilter) IsEmpty() bool {
	return f.Query == "" && f.Location == "" && isZeroBound(f.MinSalary) && isZeroBound(f.MaxSalary) &&
		len(f.JobTypes) == 0 && len(f.ExperienceLevels) == 0
}

func isZeroBound(p *int64) bool { return p == nil || *p == 0 }

// SortKey selects the job ordering
type SortKey string

const (
	SortRecent     SortKey = "recent"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
	SortTitle      SortKey = "title"
)

// ParseSortKey validates a user supplied sort key. Empty input means SortRecent.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "":
		return SortRecent, true
	case SortRecent, SortSalaryHigh, SortSalaryLow, SortTitle:
		return SortKey(s), true
	}
	return "", false
}

// JobSearch is the complete state of a job search view.
// Changing the filter or the sort key always returns to the first page.
type JobSearch struct {
	Filter JobFilter `json:"filter"`
	Sort   SortKey   `json:"sort"`
	Page   int       `json:"page"`
}

func NewJobSearch() JobSearch {
	return JobSearch{Sort: SortRecent, Page: 1}
}

func (s JobSearch) WithFilter(f JobFilter) JobSearch {
	s.Filter = f
	s.Page = 1
	return s
}

func (s JobSearch) WithSort(k SortKey) JobSearch {
	s.Sort = k
	s.Page = 1
	return s
}

func (s JobSearch) WithPage(page int) JobSearch {
	s.Page = page
	return s
}

// PaginatedResult is one page of an ordered collection
type PaginatedResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type JobRepository interface {
	GetAll(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, id int64, patch map[string]any, check Check[Job]) (*Job, error)
	Delete(ctx context.Context, id int64) (*Job, error)
}

type JobUsecase interface {
	SearchJobs(ctx context.Context, sessionID string, search JobSearch) (*PaginatedResult[Job], error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, job *Job) error
	UpdateJob(ctx context.Context, id int64, patch map[string]any) (*Job, error)
	DeleteJob(ctx context.Context, id int64) (*Job, error)
	ApplyToJob(ctx context.Context, jobID int64, coverLetter string) (*Application, error)
}

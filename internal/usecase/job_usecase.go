package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// ApplyDefaults fills in the applicant of a one-click application
type ApplyDefaults struct {
	CandidateID   int64
	ResumeVersion string
}

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	appRepo     domain.ApplicationRepository
	seq         *query.Sequencer
	validate    *validator.Validate
	pageSize    int
	defaults    ApplyDefaults
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	appRepo domain.ApplicationRepository,
	seq *query.Sequencer,
	validate *validator.Validate,
	pageSize int,
	defaults ApplyDefaults,
) domain.JobUsecase {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
		seq:         seq,
		validate:    validate,
		pageSize:    pageSize,
		defaults:    defaults,
	}
}

// SearchJobs runs filter, sort and paginate in that order over a fresh
// snapshot. When the same session issued a newer search while this one
// waited on the store, the older result is dropped with ErrStaleQuery.
func (u *jobUsecase) SearchJobs(ctx context.Context, sessionID string, search domain.JobSearch) (*domain.PaginatedResult[domain.Job], error) {
	var token uint64
	if sessionID != "" {
		token = u.seq.Issue(sessionID)
	}

	jobs, err := u.jobRepo.GetAll(ctx)
	if sessionID != "" && !u.seq.Complete(sessionID, token) {
		logger.Log.Debug("Dropping superseded job search", "session_id", sessionID)
		return nil, apperror.Conflict("Search was superseded by a newer request", domain.ErrStaleQuery)
	}
	if err != nil {
		return nil, storeError(err, "Jobs not found")
	}

	sorted := query.SortJobs(query.FilterJobs(jobs, search.Filter), search.Sort)
	page := query.Paginate(sorted, u.pageSize, search.Page)
	return &page, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return validationError(err)
	}
	if _, err := u.companyRepo.GetByID(ctx, job.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Company does not exist")
		}
		return storeError(err, "Company not found")
	}

	job.PostedDate = time.Now().UTC()
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return storeError(err, "Job not found")
	}
	logger.Log.Info("Job created", "job_id", job.ID, "company_id", job.CompanyID)
	return nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, patch map[string]any) (*domain.Job, error) {
	if len(patch) == 0 {
		return nil, apperror.BadRequest("Nothing to update")
	}
	job, err := u.jobRepo.Update(ctx, id, patch, validated[domain.Job](u.validate))
	if err != nil {
		return nil, storeError(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "Job not found")
	}
	logger.Log.Info("Job deleted", "job_id", id)
	return job, nil
}

// ApplyToJob submits an application for the default candidate. An empty
// cover letter is stored as absent.
func (u *jobUsecase) ApplyToJob(ctx context.Context, jobID int64, coverLetter string) (*domain.Application, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, storeError(err, "Job not found")
	}

	app := &domain.Application{
		JobID:         jobID,
		CandidateID:   u.defaults.CandidateID,
		Status:        domain.ApplicationStatusSubmitted,
		AppliedDate:   time.Now().UTC(),
		ResumeVersion: u.defaults.ResumeVersion,
	}
	if letter := strings.TrimSpace(coverLetter); letter != "" {
		app.CoverLetter = &letter
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, storeError(err, "Application not found")
	}
	logger.Log.Info("Application submitted", "application_id", app.ID, "job_id", jobID)
	return app, nil
}

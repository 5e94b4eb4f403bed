package repository

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
)

type applicationRepo struct {
	apps       domain.Collection[domain.Application]
	jobs       domain.JobRepository
	candidates domain.Collection[domain.Candidate]
}

// NewApplicationRepository joins applications with their job (company
// attached) and candidate on every read.
func NewApplicationRepository(apps domain.Collection[domain.Application], jobs domain.JobRepository, candidates domain.Collection[domain.Candidate]) domain.ApplicationRepository {
	return &applicationRepo{apps: apps, jobs: jobs, candidates: candidates}
}

func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.ApplicationDetail, error) {
	apps, err := r.apps.All(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := r.jobs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := r.candidates.All(ctx)
	if err != nil {
		return nil, err
	}

	jobByID := make(map[int64]*domain.Job, len(jobs))
	for i := range jobs {
		jobByID[jobs[i].ID] = &jobs[i]
	}
	candidateByID := make(map[int64]*domain.Candidate, len(candidates))
	for i := range candidates {
		candidateByID[candidates[i].ID] = &candidates[i]
	}

	details := make([]domain.ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		details = append(details, domain.ApplicationDetail{
			Application: app,
			Job:         jobByID[app.JobID],
			Candidate:   candidateByID[app.CandidateID],
		})
	}
	return details, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.ApplicationDetail, error) {
	app, err := r.apps.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.ApplicationDetail{Application: *app}
	job, err := r.jobs.GetByID(ctx, app.JobID)
	switch {
	case err == nil:
		detail.Job = job
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}
	candidate, err := r.candidates.Get(ctx, app.CandidateID)
	switch {
	case err == nil:
		detail.Candidate = candidate
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}
	return detail, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return r.apps.Insert(ctx, app)
}

func (r *applicationRepo) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Application, error) {
	return r.apps.Merge(ctx, id, patch)
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) (*domain.Application, error) {
	return r.apps.Remove(ctx, id)
}

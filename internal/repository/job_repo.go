// Package repository implements the entity repositories on top of a
// domain.Collection, so the same code serves the memory and postgres stores.
package repository

import (
	"context"
	"errors"
	"maps"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/document"
)

type jobRepo struct {
	jobs      domain.Collection[domain.Job]
	companies domain.Collection[domain.Company]
}

func NewJobRepository(jobs domain.Collection[domain.Job], companies domain.Collection[domain.Company]) domain.JobRepository {
	return &jobRepo{jobs: jobs, companies: companies}
}

// GetAll returns every job with its company attached. Jobs whose company
// no longer exists keep a nil Company.
func (r *jobRepo) GetAll(ctx context.Context) ([]domain.Job, error) {
	jobs, err := r.jobs.All(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := r.companies.All(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.CompanySummary, len(companies))
	for i := range companies {
		byID[companies[i].ID] = companies[i].Summary()
	}
	for i := range jobs {
		jobs[i].Company = byID[jobs[i].CompanyID]
	}
	return jobs, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := r.jobs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.attach(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	job.Company = nil
	if err := r.jobs.Insert(ctx, job); err != nil {
		return err
	}
	return r.attach(ctx, job)
}

func (r *jobRepo) Update(ctx context.Context, id int64, patch map[string]any, check domain.Check[domain.Job]) (*domain.Job, error) {
	// The company copy is derived on read and never stored
	patch = maps.Clone(patch)
	delete(patch, "company")

	job, err := r.jobs.Mutate(ctx, id, func(j *domain.Job) error {
		return mergeChecked(j, patch, check)
	})
	if err != nil {
		return nil, err
	}
	if err := r.attach(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) (*domain.Job, error) {
	return r.jobs.Remove(ctx, id)
}

// mergeChecked merges patch into record and runs check on the result
// before anything is written back.
func mergeChecked[T any, PT domain.Identifiable[T]](record *T, patch map[string]any, check domain.Check[T]) error {
	merged, err := document.Merge[T, PT](record, patch)
	if err != nil {
		return err
	}
	if check != nil {
		if err := check(merged); err != nil {
			return err
		}
	}
	*record = *merged
	return nil
}

func (r *jobRepo) attach(ctx context.Context, job *domain.Job) error {
	company, err := r.companies.Get(ctx, job.CompanyID)
	if errors.Is(err, domain.ErrNotFound) {
		job.Company = nil
		return nil
	}
	if err != nil {
		return err
	}
	job.Company = company.Summary()
	return nil
}

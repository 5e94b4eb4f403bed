package repository

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type candidateRepo struct {
	candidates domain.Collection[domain.Candidate]
}

func NewCandidateRepository(candidates domain.Collection[domain.Candidate]) domain.CandidateRepository {
	return &candidateRepo{candidates: candidates}
}

func (r *candidateRepo) GetAll(ctx context.Context) ([]domain.Candidate, error) {
	return r.candidates.All(ctx)
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	return r.candidates.Get(ctx, id)
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return r.candidates.Insert(ctx, candidate)
}

func (r *candidateRepo) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Candidate, error) {
	return r.candidates.Merge(ctx, id, patch)
}

// Modify runs fn against the stored profile; nothing is saved if fn fails
func (r *candidateRepo) Modify(ctx context.Context, id int64, fn func(*domain.Candidate) error) (*domain.Candidate, error) {
	return r.candidates.Mutate(ctx, id, fn)
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	return r.candidates.Remove(ctx, id)
}

package repository

import (
	"context"
	"slices"
	"sync"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/document"
)

type companyRepo struct {
	companies domain.Collection[domain.Company]

	// serializes review id allocation across companies
	reviewMu sync.Mutex
}

func NewCompanyRepository(companies domain.Collection[domain.Company]) domain.CompanyRepository {
	return &companyRepo{companies: companies}
}

func (r *companyRepo) GetAll(ctx context.Context) ([]domain.Company, error) {
	return r.companies.All(ctx)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return r.companies.Get(ctx, id)
}

// Create stores the company without reviews; reviews are added one by one
// so that their ids stay unique.
func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	company.Reviews = []domain.Review{}
	return r.companies.Insert(ctx, company)
}

func (r *companyRepo) Update(ctx context.Context, id int64, patch map[string]any, check domain.Check[domain.Company]) (*domain.Company, error) {
	return r.companies.Mutate(ctx, id, func(c *domain.Company) error {
		reviews := c.Reviews
		merged, err := document.Merge(c, patch)
		if err != nil {
			return err
		}
		merged.Reviews = reviews
		if check != nil {
			if err := check(merged); err != nil {
				return err
			}
		}
		*c = *merged
		return nil
	})
}

func (r *companyRepo) Delete(ctx context.Context, id int64) (*domain.Company, error) {
	return r.companies.Remove(ctx, id)
}

func (r *companyRepo) GetReviews(ctx context.Context, companyID int64) ([]domain.Review, error) {
	company, err := r.companies.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.Reviews == nil {
		return []domain.Review{}, nil
	}
	return company.Reviews, nil
}

func (r *companyRepo) GetReview(ctx context.Context, reviewID int64) (*domain.Review, error) {
	companies, err := r.companies.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		for i := range c.Reviews {
			if c.Reviews[i].ID == reviewID {
				return &c.Reviews[i], nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

// AddReview appends the review with an id that is unique across all
// companies and writes that id back into review.
func (r *companyRepo) AddReview(ctx context.Context, companyID int64, review *domain.Review) error {
	r.reviewMu.Lock()
	defer r.reviewMu.Unlock()

	companies, err := r.companies.All(ctx)
	if err != nil {
		return err
	}
	var maxID int64
	for _, c := range companies {
		for _, rv := range c.Reviews {
			maxID = max(maxID, rv.ID)
		}
	}

	added, err := document.Clone(review)
	if err != nil {
		return err
	}
	added.ID = maxID + 1
	added.CompanyID = companyID
	_, err = r.companies.Mutate(ctx, companyID, func(c *domain.Company) error {
		c.Reviews = append(c.Reviews, *added)
		return nil
	})
	if err != nil {
		return err
	}
	review.ID = added.ID
	review.CompanyID = companyID
	return nil
}

func (r *companyRepo) UpdateReview(ctx context.Context, reviewID int64, patch map[string]any, check domain.Check[domain.Review]) (*domain.Review, error) {
	return r.mutateReview(ctx, reviewID, func(c *domain.Company, i int) error {
		merged, err := document.Merge(&c.Reviews[i], patch)
		if err != nil {
			return err
		}
		merged.CompanyID = c.ID
		merged.HelpfulVotes = c.Reviews[i].HelpfulVotes
		if check != nil {
			if err := check(merged); err != nil {
				return err
			}
		}
		c.Reviews[i] = *merged
		return nil
	})
}

func (r *companyRepo) DeleteReview(ctx context.Context, reviewID int64) (*domain.Review, error) {
	var removed domain.Review
	_, err := r.companies.MutateFirst(ctx, hasReview(reviewID), func(c *domain.Company) error {
		i := reviewIndex(c, reviewID)
		removed = c.Reviews[i]
		c.Reviews = slices.Delete(c.Reviews, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// VoteReview records one vote. Only a helpful vote raises the count.
func (r *companyRepo) VoteReview(ctx context.Context, reviewID int64, voteType string) (*domain.Review, error) {
	return r.mutateReview(ctx, reviewID, func(c *domain.Company, i int) error {
		if voteType == domain.VoteHelpful {
			c.Reviews[i].HelpfulVotes++
		}
		return nil
	})
}

func (r *companyRepo) mutateReview(ctx context.Context, reviewID int64, fn func(c *domain.Company, i int) error) (*domain.Review, error) {
	company, err := r.companies.MutateFirst(ctx, hasReview(reviewID), func(c *domain.Company) error {
		return fn(c, reviewIndex(c, reviewID))
	})
	if err != nil {
		return nil, err
	}
	return &company.Reviews[reviewIndex(company, reviewID)], nil
}

func hasReview(reviewID int64) func(*domain.Company) bool {
	return func(c *domain.Company) bool { return reviewIndex(c, reviewID) >= 0 }
}

func reviewIndex(c *domain.Company, reviewID int64) int {
	return slices.IndexFunc(c.Reviews, func(r domain.Review) bool { return r.ID == reviewID })
}

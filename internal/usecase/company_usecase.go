package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
	guard       domain.VoteGuard
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, jobRepo domain.JobRepository, guard domain.VoteGuard, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		guard:       guard,
		validate:    validate,
	}
}

// SearchCompanies filters the directory. Industries always come from the
// unfiltered list so the facet never shrinks.
func (u *companyUsecase) SearchCompanies(ctx context.Context, filter domain.CompanyFilter) (*domain.CompanySearchResult, error) {
	companies, err := u.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "Companies not found")
	}

	filter.Search = strings.TrimSpace(filter.Search)
	return &domain.CompanySearchResult{
		Companies:  query.FilterCompanies(companies, filter),
		Industries: query.Industries(companies),
		Total:      len(companies),
		Filtered:   filter.Search != "" || filter.Industry != "",
	}, nil
}

func (u *companyUsecase) GetCompanyDetails(ctx context.Context, id int64) (*domain.CompanyDetails, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Company not found")
	}
	jobs, err := u.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "Jobs not found")
	}

	return &domain.CompanyDetails{
		Company:       company,
		OpenPositions: query.JobsByCompany(jobs, id),
		ReviewSummary: query.SummarizeReviews(company.Reviews),
	}, nil
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	company.Name = strings.TrimSpace(company.Name)
	if err := u.validate.Struct(company); err != nil {
		return validationError(err)
	}
	if err := u.companyRepo.Create(ctx, company); err != nil {
		return storeError(err, "Company not found")
	}
	logger.Log.Info("Company created", "company_id", company.ID)
	return nil
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, id int64, patch map[string]any) (*domain.Company, error) {
	if len(patch) == 0 {
		return nil, apperror.BadRequest("Nothing to update")
	}
	company, err := u.companyRepo.Update(ctx, id, patch, func(c *domain.Company) error {
		c.Name = strings.TrimSpace(c.Name)
		return validated[domain.Company](u.validate)(c)
	})
	if err != nil {
		return nil, storeError(err, "Company not found")
	}
	return company, nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "Company not found")
	}
	logger.Log.Info("Company deleted", "company_id", id, "reviews", len(company.Reviews))
	return company, nil
}

// ListReviews returns the reviews with the selected rating, each flagged
// with whether sessionID already voted on it. The summary always covers
// every review of the company.
func (u *companyUsecase) ListReviews(ctx context.Context, sessionID string, companyID int64, rating domain.RatingFilter) (*domain.ReviewList, error) {
	reviews, err := u.companyRepo.GetReviews(ctx, companyID)
	if err != nil {
		return nil, storeError(err, "Company not found")
	}

	filtered := query.FilterReviewsByRating(reviews, rating)
	views := make([]domain.ReviewView, len(filtered))
	for i, r := range filtered {
		views[i] = domain.ReviewView{Review: r}
		if sessionID == "" {
			continue
		}
		voted, err := u.guard.HasVoted(ctx, sessionID, r.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		views[i].Voted = voted
	}

	return &domain.ReviewList{
		Reviews: views,
		Summary: query.SummarizeReviews(reviews),
		Rating:  rating,
	}, nil
}

func (u *companyUsecase) AddReview(ctx context.Context, companyID int64, input domain.ReviewInput) (*domain.Review, error) {
	input.Pros = compact(input.Pros)
	input.Cons = compact(input.Cons)
	input.OverallFeedback = strings.TrimSpace(input.OverallFeedback)
	input.EmployeeTitle = strings.TrimSpace(input.EmployeeTitle)
	input.WorkDuration = strings.TrimSpace(input.WorkDuration)
	if err := u.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	review := &domain.Review{
		Rating:          input.Rating,
		Pros:            input.Pros,
		Cons:            input.Cons,
		OverallFeedback: input.OverallFeedback,
		EmployeeTitle:   input.EmployeeTitle,
		WorkDuration:    input.WorkDuration,
		IsAnonymous:     input.IsAnonymous,
		Date:            time.Now().UTC(),
		HelpfulVotes:    0,
	}
	if err := u.companyRepo.AddReview(ctx, companyID, review); err != nil {
		return nil, storeError(err, "Company not found")
	}
	logger.Log.Info("Review added", "review_id", review.ID, "company_id", companyID)
	return review, nil
}

func (u *companyUsecase) UpdateReview(ctx context.Context, reviewID int64, patch map[string]any) (*domain.Review, error) {
	if len(patch) == 0 {
		return nil, apperror.BadRequest("Nothing to update")
	}
	if v, ok := patch["rating"]; ok {
		rating, ok := v.(float64)
		if !ok || rating != float64(int(rating)) || rating < 1 || rating > 5 {
			return nil, apperror.BadRequest("Rating: must be a whole number between 1 and 5")
		}
	}
	review, err := u.companyRepo.UpdateReview(ctx, reviewID, patch, u.checkReview)
	if err != nil {
		return nil, storeError(err, "Review not found")
	}
	return review, nil
}

// checkReview applies the new-review rules to an edited review
func (u *companyUsecase) checkReview(r *domain.Review) error {
	r.Pros = compact(r.Pros)
	r.Cons = compact(r.Cons)
	r.OverallFeedback = strings.TrimSpace(r.OverallFeedback)
	r.EmployeeTitle = strings.TrimSpace(r.EmployeeTitle)
	r.WorkDuration = strings.TrimSpace(r.WorkDuration)

	input := domain.ReviewInput{
		Rating:          r.Rating,
		Pros:            r.Pros,
		Cons:            r.Cons,
		OverallFeedback: r.OverallFeedback,
		EmployeeTitle:   r.EmployeeTitle,
		WorkDuration:    r.WorkDuration,
		IsAnonymous:     r.IsAnonymous,
	}
	if err := u.validate.Struct(input); err != nil {
		return validationError(err)
	}
	return nil
}

func (u *companyUsecase) DeleteReview(ctx context.Context, reviewID int64) (*domain.Review, error) {
	review, err := u.companyRepo.DeleteReview(ctx, reviewID)
	if err != nil {
		return nil, storeError(err, "Review not found")
	}
	return review, nil
}

// VoteReview counts at most one vote per session and review. The review
// must exist before the session's vote is spent, and the vote is only
// spent once it is stored. A repeated vote returns the review unchanged.
func (u *companyUsecase) VoteReview(ctx context.Context, sessionID string, reviewID int64, voteType string) (*domain.VoteResult, error) {
	if voteType == "" {
		voteType = domain.VoteHelpful
	}
	if voteType != domain.VoteHelpful && voteType != domain.VoteNotHelpful {
		return nil, apperror.BadRequest("Vote type must be helpful or not_helpful")
	}
	if sessionID == "" {
		return nil, apperror.BadRequest("A session is required to vote")
	}

	review, err := u.companyRepo.GetReview(ctx, reviewID)
	if err != nil {
		return nil, storeError(err, "Review not found")
	}

	first, err := u.guard.MarkVoted(ctx, sessionID, reviewID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !first {
		return &domain.VoteResult{Review: review, Counted: false}, nil
	}

	updated, err := u.companyRepo.VoteReview(ctx, reviewID, voteType)
	if err != nil {
		// The vote was not stored, so the session keeps it
		if uerr := u.guard.Unmark(context.WithoutCancel(ctx), sessionID, reviewID); uerr != nil {
			logger.Log.Error("Failed to release vote mark", "review_id", reviewID, "error", uerr)
		}
		return nil, storeError(err, "Review not found")
	}
	return &domain.VoteResult{Review: updated, Counted: true}, nil
}

// compact trims entries and drops the blank ones
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

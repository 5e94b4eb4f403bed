package domain

import (
	"context"
	"time"
)

// Company is a company profile. Reviews are owned by the company and
// never stored on their own.
type Company struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"not_blank,max=200"`
	Industry    string   `json:"industry" validate:"not_blank,max=100"`
	Size        string   `json:"size" validate:"max=50"`
	Description string   `json:"description" validate:"max=5000"`
	Culture     string   `json:"culture" validate:"max=2000"`
	Benefits    []string `json:"benefits" validate:"dive,not_blank"`
	Logo        *string  `json:"logo" validate:"omitempty,url"`
	Reviews     []Review `json:"reviews" validate:"-"`
}

func (c *Company) GetID() int64   { return c.ID }
func (c *Company) SetID(id int64) { c.ID = id }

// Summary returns the company without its reviews, as embedded in jobs.
func (c *Company) Summary() *CompanySummary {
	benefits := make([]string, len(c.Benefits))
	copy(benefits, c.Benefits)
	return &CompanySummary{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		Size:        c.Size,
		Description: c.Description,
		Benefits:    benefits,
		Logo:        c.Logo,
	}
}

// CompanySummary is the denormalized company copy attached to a job
type CompanySummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Logo        *string  `json:"logo"`
}

// Vote type constants
const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not_helpful"
)

type Review struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	Rating          int       `json:"rating"`
	Pros            []string  `json:"pros"`
	Cons            []string  `json:"cons"`
	OverallFeedback string    `json:"overall_feedback"`
	EmployeeTitle   string    `json:"employee_title"`
	WorkDuration    string    `json:"work_duration"`
	IsAnonymous     bool      `json:"is_anonymous"`
	Date            time.Time `json:"date"`
	HelpfulVotes    int       `json:"helpful_votes"`
}

func (r *Review) GetID() int64   { return r.ID }
func (r *Review) SetID(id int64) { r.ID = id }

// ReviewInput is the payload of a new review
type ReviewInput struct {
	Rating          int      `json:"rating" validate:"required,min=1,max=5"`
	Pros            []string `json:"pros" validate:"required,min=1,dive,not_blank"`
	Cons            []string `json:"cons" validate:"required,min=1,dive,not_blank"`
	OverallFeedback string   `json:"overall_feedback" validate:"not_blank,max=2000"`
	EmployeeTitle   string   `json:"employee_title" validate:"not_blank,max=100,no_emoji"`
	WorkDuration    string   `json:"work_duration" validate:"not_blank,max=50"`
	IsAnonymous     bool     `json:"is_anonymous"`
}

// RatingBucket is one bar of the star histogram
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type ReviewSummary struct {
	Total        int            `json:"total"`
	Average      float64        `json:"average"`
	Distribution []RatingBucket `json:"distribution"`
}

// RatingFilter selects reviews with one exact rating; RatingAll keeps every review.
type RatingFilter int

const RatingAll RatingFilter = 0

type CompanyFilter struct {
	Search   string `json:"search,omitempty"`
	Industry string `json:"industry,omitempty"`
}

type CompanySearchResult struct {
	Companies  []Company `json:"companies"`
	Industries []string  `json:"industries"`
	Total      int       `json:"total"`
	Filtered   bool      `json:"filtered"`
}

type CompanyDetails struct {
	Company       *Company      `json:"company"`
	OpenPositions []Job         `json:"open_positions"`
	ReviewSummary ReviewSummary `json:"review_summary"`
}

// ReviewView is a review as seen by one session
type ReviewView struct {
	Review
	Voted bool `json:"voted"`
}

type ReviewList struct {
	Reviews []ReviewView  `json:"reviews"`
	Summary ReviewSummary `json:"summary"`
	Rating  RatingFilter  `json:"rating"`
}

// VoteResult reports whether a vote changed anything. A repeated vote in
// the same session leaves the review untouched and Counted false.
type VoteResult struct {
	Review  *Review `json:"review"`
	Counted bool    `json:"counted"`
}

// VoteGuard records which reviews a session already voted on.
// MarkVoted returns true only for the first call per (session, review).
// Unmark releases a mark whose vote could not be stored.
type VoteGuard interface {
	MarkVoted(ctx context.Context, sessionID string, reviewID int64) (bool, error)
	HasVoted(ctx context.Context, sessionID string, reviewID int64) (bool, error)
	Unmark(ctx context.Context, sessionID string, reviewID int64) error
}

type CompanyRepository interface {
	GetAll(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, id int64, patch map[string]any, check Check[Company]) (*Company, error)
	Delete(ctx context.Context, id int64) (*Company, error)

	GetReviews(ctx context.Context, companyID int64) ([]Review, error)
	GetReview(ctx context.Context, reviewID int64) (*Review, error)
	AddReview(ctx context.Context, companyID int64, review *Review) error
	UpdateReview(ctx context.Context, reviewID int64, patch map[string]any, check Check[Review]) (*Review, error)
	DeleteReview(ctx context.Context, reviewID int64) (*Review, error)
	VoteReview(ctx context.Context, reviewID int64, voteType string) (*Review, error)
}

type CompanyUsecase interface {
	SearchCompanies(ctx context.Context, filter CompanyFilter) (*CompanySearchResult, error)
	GetCompanyDetails(ctx context.Context, id int64) (*CompanyDetails, error)
	CreateCompany(ctx context.Context, company *Company) error
	UpdateCompany(ctx context.Context, id int64, patch map[string]any) (*Company, error)
	DeleteCompany(ctx context.Context, id int64) (*Company, error)

	ListReviews(ctx context.Context, sessionID string, companyID int64, rating RatingFilter) (*ReviewList, error)
	AddReview(ctx context.Context, companyID int64, input ReviewInput) (*Review, error)
	UpdateReview(ctx context.Context, reviewID int64, patch map[string]any) (*Review, error)
	DeleteReview(ctx context.Context, reviewID int64) (*Review, error)
	VoteReview(ctx context.Context, sessionID string, reviewID int64, voteType string) (*VoteResult, error)
}

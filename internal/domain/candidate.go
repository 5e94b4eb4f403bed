package domain

import (
	"context"
)

type Experience struct {
	Title       string `json:"title" validate:"not_blank,max=100"`
	Company     string `json:"company" validate:"not_blank,max=100"`
	Duration    string `json:"duration" validate:"max=50"`
	Description string `json:"description" validate:"max=1000"`
}

type Education struct {
	Degree string `json:"degree" validate:"not_blank,max=100"`
	School string `json:"school" validate:"not_blank,max=100"`
	Year   string `json:"year" validate:"omitempty,numeric,len=4"`
	Field  string `json:"field" validate:"max=100"`
}

// Candidate is the job seeker profile. Skills never contain duplicates.
type Candidate struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name" validate:"required,valid_name,max=100"`
	Email             string       `json:"email" validate:"required,email"`
	Phone             string       `json:"phone" validate:"omitempty,valid_phone"`
	Resume            string       `json:"resume"`
	Skills            []string     `json:"skills" validate:"dive,not_blank"`
	Experience        []Experience `json:"experience" validate:"dive"`
	Education         []Education  `json:"education" validate:"dive"`
	PreferredLocation string       `json:"preferred_location" validate:"max=100"`
	ExpectedSalary    int64        `json:"expected_salary" validate:"gte=0"`
}

func (c *Candidate) GetID() int64   { return c.ID }
func (c *Candidate) SetID(id int64) { c.ID = id }

type CandidateRepository interface {
	GetAll(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, id int64, patch map[string]any) (*Candidate, error)
	Modify(ctx context.Context, id int64, fn func(*Candidate) error) (*Candidate, error)
	Delete(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
	UpdateCandidate(ctx context.Context, id int64, profile *Candidate) (*Candidate, error)
	AddSkill(ctx context.Context, id int64, skill string) (*Candidate, error)
	RemoveSkill(ctx context.Context, id int64, skill string) (*Candidate, error)
	AddExperience(ctx context.Context, id int64, exp Experience) (*Candidate, error)
	RemoveExperience(ctx context.Context, id int64, index int) (*Candidate, error)
	AddEducation(ctx context.Context, id int64, edu Education) (*Candidate, error)
	RemoveEducation(ctx context.Context, id int64, index int) (*Candidate, error)
}

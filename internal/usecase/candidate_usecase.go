package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Candidate not found")
	}
	return candidate, nil
}

// UpdateCandidate replaces the whole profile. The id always comes from the
// path and duplicate skills are dropped.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id int64, profile *domain.Candidate) (*domain.Candidate, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Skills = uniqueSkills(profile.Skills)
	if profile.Experience == nil {
		profile.Experience = []domain.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []domain.Education{}
	}
	if err := u.validate.Struct(profile); err != nil {
		return nil, validationError(err)
	}

	updated, err := u.repo.Modify(ctx, id, func(c *domain.Candidate) error {
		*c = *profile
		c.ID = id
		return nil
	})
	if err != nil {
		return nil, storeError(err, "Candidate not found")
	}
	return updated, nil
}

// AddSkill is a no-op when the trimmed skill is already listed
func (u *candidateUsecase) AddSkill(ctx context.Context, id int64, skill string) (*domain.Candidate, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill must not be blank")
	}
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		if !slices.Contains(c.Skills, skill) {
			c.Skills = append(c.Skills, skill)
		}
		return nil
	})
}

func (u *candidateUsecase) RemoveSkill(ctx context.Context, id int64, skill string) (*domain.Candidate, error) {
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		c.Skills = slices.DeleteFunc(c.Skills, func(s string) bool { return s == skill })
		return nil
	})
}

func (u *candidateUsecase) AddExperience(ctx context.Context, id int64, exp domain.Experience) (*domain.Candidate, error) {
	exp.Title = strings.TrimSpace(exp.Title)
	exp.Company = strings.TrimSpace(exp.Company)
	if err := u.validate.Struct(exp); err != nil {
		return nil, validationError(err)
	}
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		c.Experience = append(c.Experience, exp)
		return nil
	})
}

func (u *candidateUsecase) RemoveExperience(ctx context.Context, id int64, index int) (*domain.Candidate, error) {
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		if index < 0 || index >= len(c.Experience) {
			return indexError("Experience", index)
		}
		c.Experience = slices.Delete(c.Experience, index, index+1)
		return nil
	})
}

func (u *candidateUsecase) AddEducation(ctx context.Context, id int64, edu domain.Education) (*domain.Candidate, error) {
	edu.Degree = strings.TrimSpace(edu.Degree)
	edu.School = strings.TrimSpace(edu.School)
	if err := u.validate.Struct(edu); err != nil {
		return nil, validationError(err)
	}
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		c.Education = append(c.Education, edu)
		return nil
	})
}

func (u *candidateUsecase) RemoveEducation(ctx context.Context, id int64, index int) (*domain.Candidate, error) {
	return u.modify(ctx, id, func(c *domain.Candidate) error {
		if index < 0 || index >= len(c.Education) {
			return indexError("Education", index)
		}
		c.Education = slices.Delete(c.Education, index, index+1)
		return nil
	})
}

func (u *candidateUsecase) modify(ctx context.Context, id int64, fn func(*domain.Candidate) error) (*domain.Candidate, error) {
	candidate, err := u.repo.Modify(ctx, id, fn)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, storeError(err, "Candidate not found")
	}
	return candidate, nil
}

func indexError(section string, index int) error {
	return apperror.NotFound(fmt.Sprintf("%s entry %d not found", section, index))
}

func uniqueSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

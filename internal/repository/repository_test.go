package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository"
	"go-jobboard-backend/internal/repository/fixtures"
	"go-jobboard-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewStore(fixtures.MustLoad(), 0)
	require.NoError(t, err)
	return store
}

func TestJobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach the company on reads", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewJobRepository(s.Jobs, s.Companies)

		jobs, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 12)
		for _, j := range jobs {
			require.NotNil(t, j.Company, "job %d", j.ID)
			assert.Equal(t, j.CompanyID, j.Company.ID)
		}

		job, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Pixel Labs", job.Company.Name)
	})

	t.Run("Should leave the company nil once it is deleted", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewJobRepository(s.Jobs, s.Companies)
		_, err := s.Companies.Remove(ctx, 3)
		require.NoError(t, err)

		job, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, job.Company)
	})

	t.Run("Should never store the company copy", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewJobRepository(s.Jobs, s.Companies)

		job := &domain.Job{CompanyID: 1, Title: "SRE", Company: &domain.CompanySummary{Name: "Fake"}}
		require.NoError(t, repo.Create(ctx, job))
		assert.Equal(t, int64(13), job.ID)
		assert.Equal(t, "TechCorp", job.Company.Name)

		stored, err := s.Jobs.Get(ctx, 13)
		require.NoError(t, err)
		assert.Nil(t, stored.Company)

		updated, err := repo.Update(ctx, 13, map[string]any{"title": "Senior SRE", "company": map[string]any{"name": "Fake"}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Senior SRE", updated.Title)
		assert.Equal(t, "TechCorp", updated.Company.Name)
	})

	t.Run("Delete reports missing jobs", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewJobRepository(s.Jobs, s.Companies)
		_, err := repo.Delete(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCompanyRepositoryReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("Review ids are unique across companies", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		review := &domain.Review{Rating: 4, Pros: []string{"Nice"}, Cons: []string{"None"}}
		require.NoError(t, repo.AddReview(ctx, 3, review))
		assert.Equal(t, int64(6), review.ID)
		assert.Equal(t, int64(3), review.CompanyID)

		another := &domain.Review{Rating: 2}
		require.NoError(t, repo.AddReview(ctx, 1, another))
		assert.Equal(t, int64(7), another.ID)

		reviews, err := repo.GetReviews(ctx, 3)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, int64(6), reviews[0].ID)
	})

	t.Run("Concurrent reviews never share an id", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(companyID int64) {
				defer wg.Done()
				_ = repo.AddReview(ctx, companyID, &domain.Review{Rating: 3})
			}(int64(i%4 + 1))
		}
		wg.Wait()

		companies, err := repo.GetAll(ctx)
		require.NoError(t, err)
		seen := make(map[int64]bool)
		total := 0
		for _, c := range companies {
			for _, r := range c.Reviews {
				assert.False(t, seen[r.ID], "duplicate review id %d", r.ID)
				seen[r.ID] = true
				total++
			}
		}
		assert.Equal(t, 25, total)
	})

	t.Run("Adding to a missing company fails", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)
		err := repo.AddReview(ctx, 99, &domain.Review{Rating: 5})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Helpful votes increment and other votes do not", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		r, err := repo.VoteReview(ctx, 2, domain.VoteHelpful)
		require.NoError(t, err)
		assert.Equal(t, 5, r.HelpfulVotes)

		r, err = repo.VoteReview(ctx, 2, domain.VoteNotHelpful)
		require.NoError(t, err)
		assert.Equal(t, 5, r.HelpfulVotes)

		_, err = repo.VoteReview(ctx, 99, domain.VoteHelpful)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Update keeps the owner and vote count", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		r, err := repo.UpdateReview(ctx, 3, map[string]any{
			"overall_feedback": "Better now",
			"helpful_votes":    0,
			"company_id":       1,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Better now", r.OverallFeedback)
		assert.Equal(t, 7, r.HelpfulVotes)
		assert.Equal(t, int64(2), r.CompanyID)
	})

	t.Run("A failed check leaves the review as it was", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)
		errRejected := errors.New("rejected")

		var seen domain.Review
		_, err := repo.UpdateReview(ctx, 3, map[string]any{"overall_feedback": "Worse"}, func(r *domain.Review) error {
			seen = *r
			return errRejected
		})
		assert.ErrorIs(t, err, errRejected)
		assert.Equal(t, "Worse", seen.OverallFeedback, "the check sees the merged review")

		stored, err := repo.GetReview(ctx, 3)
		require.NoError(t, err)
		assert.NotEqual(t, "Worse", stored.OverallFeedback)
	})

	t.Run("Delete removes only that review", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		removed, err := repo.DeleteReview(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 5, removed.Rating)

		reviews, err := repo.GetReviews(ctx, 4)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, int64(5), reviews[0].ID)

		_, err = repo.GetReview(ctx, 4)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Company updates cannot touch reviews", func(t *testing.T) {
		s := newStore(t)
		repo := repository.NewCompanyRepository(s.Companies)

		c, err := repo.Update(ctx, 1, map[string]any{"name": "TechCorp Inc", "reviews": []any{}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "TechCorp Inc", c.Name)
		assert.Len(t, c.Reviews, 2)
	})
}

func TestApplicationRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	jobs := repository.NewJobRepository(s.Jobs, s.Companies)
	repo := repository.NewApplicationRepository(s.Applications, jobs, s.Candidates)

	t.Run("Should join job, company and candidate", func(t *testing.T) {
		details, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, details, 5)
		assert.Equal(t, "Senior Go Engineer", details[0].Job.Title)
		assert.Equal(t, "TechCorp", details[0].Job.Company.Name)
		assert.Equal(t, "Alex Morgan", details[0].Candidate.Name)
	})

	t.Run("Should tolerate a dangling job", func(t *testing.T) {
		_, err := s.Jobs.Remove(ctx, 4)
		require.NoError(t, err)

		detail, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, detail.Job)
		assert.NotNil(t, detail.Candidate)
	})

	t.Run("Should update the status only", func(t *testing.T) {
		app, err := repo.Update(ctx, 1, map[string]any{"status": domain.ApplicationStatusReviewed})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusReviewed, app.Status)
		assert.Equal(t, int64(1), app.JobID)
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	repo := repository.NewNotificationRepository(s.Notifications)

	count, err := repo.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	n, err := repo.MarkAsRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, n.Read)

	n, err = repo.MarkAsUnread(ctx, 4)
	require.NoError(t, err)
	assert.False(t, n.Read)

	count, _ = repo.GetUnreadCount(ctx)
	assert.Equal(t, 3, count)

	all, err := repo.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	count, _ = repo.GetUnreadCount(ctx)
	assert.Equal(t, 0, count)

	_, err = repo.MarkAsRead(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCandidateRepositoryModify(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	repo := repository.NewCandidateRepository(s.Candidates)

	c, err := repo.Modify(ctx, 1, func(c *domain.Candidate) error {
		c.Skills = append(c.Skills, "Rust")
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, c.Skills, "Rust")

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stored.Skills, 5)
}

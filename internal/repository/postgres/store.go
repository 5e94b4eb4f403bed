package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/fixtures"
	"go-jobboard-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT        NOT NULL,
	id         BIGINT      NOT NULL,
	body       JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
)`

// Collection names in the records table
const (
	CollectionJobs          = "jobs"
	CollectionCompanies     = "companies"
	CollectionApplications  = "applications"
	CollectionCandidates    = "candidates"
	CollectionNotifications = "notifications"
)

type Store struct {
	Jobs          *Collection[domain.Job, *domain.Job]
	Companies     *Collection[domain.Company, *domain.Company]
	Applications  *Collection[domain.Application, *domain.Application]
	Candidates    *Collection[domain.Candidate, *domain.Candidate]
	Notifications *Collection[domain.Notification, *domain.Notification]
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Jobs:          NewCollection[domain.Job](db, CollectionJobs),
		Companies:     NewCollection[domain.Company](db, CollectionCompanies),
		Applications:  NewCollection[domain.Application](db, CollectionApplications),
		Candidates:    NewCollection[domain.Candidate](db, CollectionCandidates),
		Notifications: NewCollection[domain.Notification](db, CollectionNotifications),
	}
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate records table: %w", err)
	}
	return nil
}

// Seed fills every empty collection from set
func (s *Store) Seed(ctx context.Context, set *fixtures.Set) error {
	seeds := []struct {
		name string
		fn   func() (bool, error)
	}{
		{CollectionJobs, func() (bool, error) { return s.Jobs.Seed(ctx, set.Jobs) }},
		{CollectionCompanies, func() (bool, error) { return s.Companies.Seed(ctx, set.Companies) }},
		{CollectionApplications, func() (bool, error) { return s.Applications.Seed(ctx, set.Applications) }},
		{CollectionCandidates, func() (bool, error) { return s.Candidates.Seed(ctx, set.Candidates) }},
		{CollectionNotifications, func() (bool, error) { return s.Notifications.Seed(ctx, set.Notifications) }},
	}
	for _, seed := range seeds {
		seeded, err := seed.fn()
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.name, err)
		}
		if seeded {
			logger.Log.Info("Seeded collection from fixtures", "collection", seed.name)
		}
	}
	return nil
}

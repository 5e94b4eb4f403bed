package memory

import (
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/fixtures"
)

// Store groups the five collections of one process
type Store struct {
	Jobs          *Collection[domain.Job, *domain.Job]
	Companies     *Collection[domain.Company, *domain.Company]
	Applications  *Collection[domain.Application, *domain.Application]
	Candidates    *Collection[domain.Candidate, *domain.Candidate]
	Notifications *Collection[domain.Notification, *domain.Notification]
}

// NewStore seeds a store from set. A nil set gives empty collections.
func NewStore(set *fixtures.Set, latency time.Duration) (*Store, error) {
	if set == nil {
		set = &fixtures.Set{}
	}

	var (
		s   Store
		err error
	)
	if s.Jobs, err = NewCollection[domain.Job](set.Jobs, latency); err != nil {
		return nil, err
	}
	if s.Companies, err = NewCollection[domain.Company](set.Companies, latency); err != nil {
		return nil, err
	}
	if s.Applications, err = NewCollection[domain.Application](set.Applications, latency); err != nil {
		return nil, err
	}
	if s.Candidates, err = NewCollection[domain.Candidate](set.Candidates, latency); err != nil {
		return nil, err
	}
	if s.Notifications, err = NewCollection[domain.Notification](set.Notifications, latency); err != nil {
		return nil, err
	}
	return &s, nil
}

package application

import "github.com/partsdesk/partsdesk/internal/domain"

// StatsService reports over the session collections.
type StatsService struct {
	store *Store
}

func NewStatsService(store *Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Compute() domain.Statistics {
	return domain.ComputeStatistics(s.store.Snapshot())
}

package services

import (
	"fmt"

	"refind/internal/domain"
	"refind/internal/match"
	"refind/internal/repos"
)

type MatchService struct {
	Items *repos.ItemRepo
}

func NewMatchService(items *repos.ItemRepo) *MatchService {
	return &MatchService{Items: items}
}

// FindMatches pulls every FOUND record and ranks it against the lost-item
// query. Read-only; safe to run concurrently with claims, which only means a
// surfaced candidate may already be gone by the time someone tries it.
func (s *MatchService) FindMatches(q match.Query) ([]domain.Match, error) {
	candidates, err := s.Items.ListByKind(domain.KindFound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return match.Rank(q, candidates), nil
}

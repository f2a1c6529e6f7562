package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"refind/internal/domain"
	"refind/internal/repos"
)

type ClaimService struct {
	Items *repos.ItemRepo
}

func NewClaimService(items *repos.ItemRepo) *ClaimService {
	return &ClaimService{Items: items}
}

// NormalizeCode strips stray non-digit characters from a human-entered claim
// code and cuts it to 6 digits.
func NormalizeCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}

// Claim verifies a (code, itemID) pair against the store and, on a verified
// match, retires the FOUND record. The repository delete is the only state
// transition: if a concurrent claim got there first the delete removes
// nothing and this caller gets ErrNotFound, never a stale success.
func (s *ClaimService) Claim(code, itemID string) (*domain.Item, error) {
	code = NormalizeCode(code)
	itemID = strings.TrimSpace(itemID)
	if len(code) != 6 {
		return nil, domain.Invalid("code", "enter the 6-digit claim code")
	}
	if itemID == "" {
		return nil, domain.Invalid("itemId", "enter the item ID")
	}

	it, err := s.Items.FindFoundByCodeAndID(code, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	removed, err := s.Items.DeleteByID(it.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !removed {
		// Lost the race to another claimant; the record is already gone.
		return nil, domain.ErrNotFound
	}
	return it, nil
}

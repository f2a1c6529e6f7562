package services

import (
	"refind/internal/domain"
	"refind/internal/repos"

	"github.com/google/uuid"
)

// ReportInput is a new lost or found report. Reporter identity is passed in
// explicitly by the caller; the service never reads session state itself.
type ReportInput struct {
	Title       string
	Description string
	Location    string
	Category    string
}

type ReportService struct {
	Items *repos.ItemRepo
}

func NewReportService(items *repos.ItemRepo) *ReportService {
	return &ReportService{Items: items}
}

// ReportLost files a standing LOST record. It has no terminal state here;
// resolution is left to the people the match list connects.
func (s *ReportService) ReportLost(rep *domain.Reporter, in ReportInput) (*domain.Item, error) {
	it := domain.Item{
		ID:          uuid.NewString(),
		Kind:        domain.KindLost,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
	}
	if rep != nil {
		it.ReporterContact = rep.Phone
		it.OwnerID = rep.ID
	}
	if err := s.Items.Insert(it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ReportFound issues a claim code, persists the record, then stamps the row's
// own id onto item_id for claim forms and QR payloads.
func (s *ReportService) ReportFound(rep *domain.Reporter, in ReportInput) (*domain.Item, error) {
	it := domain.Item{
		ID:          uuid.NewString(),
		Kind:        domain.KindFound,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		ClaimCode:   GenerateClaimCode(),
	}
	if rep != nil {
		it.ReporterContact = rep.Phone
		it.OwnerID = rep.ID
	}
	if err := s.Items.Insert(it); err != nil {
		return nil, err
	}
	if err := s.Items.StampItemID(it.ID); err != nil {
		return nil, err
	}
	it.ItemID = it.ID
	return &it, nil
}

// MyFound lists a finder's own outstanding FOUND records.
func (s *ReportService) MyFound(rep *domain.Reporter) ([]domain.Item, error) {
	if rep == nil {
		return nil, nil
	}
	return s.Items.ListFoundByOwner(rep.ID)
}

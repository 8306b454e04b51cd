package agency

import (
	"context"
	"strings"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// agencyService implements domain.AgencyService.
type agencyService struct {
	repo domain.AgencyRepository
}

// NewAgencyService creates a new AgencyService with the given repository.
func NewAgencyService(repo domain.AgencyRepository) domain.AgencyService {
	return &agencyService{repo: repo}
}

// Create validates CNPJ uniqueness among active agencies and persists the
// agency with its relations.
func (s *agencyService) Create(ctx context.Context, agency *domain.Agency) (*domain.Agency, error) {
	normalize(agency)
	if err := s.checkUnique(ctx, agency, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

// Get retrieves an active agency by ID.
func (s *agencyService) Get(ctx context.Context, id uint) (*domain.Agency, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of agencies.
func (s *agencyService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Agency], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active agency, applies changes, and persists them.
func (s *agencyService) Update(ctx context.Context, id uint, agency *domain.Agency) (*domain.Agency, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalize(agency)
	if err := s.checkUnique(ctx, agency, id); err != nil {
		return nil, err
	}

	existing.Name = agency.Name
	existing.TradeName = agency.TradeName
	existing.CNPJ = agency.CNPJ
	existing.Addresses = agency.Addresses
	existing.Contacts = agency.Contacts

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes an agency and its relations.
func (s *agencyService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted agency. Restoring an active agency is a
// validation error.
func (s *agencyService) Restore(ctx context.Context, id uint) (*domain.Agency, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "agency is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// checkUnique enforces CNPJ uniqueness among active agencies.
func (s *agencyService) checkUnique(ctx context.Context, agency *domain.Agency, excludeID uint) error {
	if agency.CNPJ == "" {
		return nil
	}
	exists, err := s.repo.ActiveExists(ctx, "cnpj", agency.CNPJ, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewAppError(domain.CodeAlreadyExists, "cnpj already registered", nil)
	}
	return nil
}

func normalize(agency *domain.Agency) {
	agency.Name = strings.TrimSpace(agency.Name)
	agency.TradeName = strings.TrimSpace(agency.TradeName)
	agency.CNPJ = strings.TrimSpace(agency.CNPJ)
}

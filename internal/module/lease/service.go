package lease

import (
	"context"
	"strings"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// leaseService implements domain.LeaseService. It checks that the referenced
// property and tenant exist and are active before persisting.
type leaseService struct {
	repo       domain.LeaseRepository
	properties domain.PropertyRepository
	tenants    domain.TenantRepository
}

// NewLeaseService creates a new LeaseService with the given repositories.
func NewLeaseService(repo domain.LeaseRepository, properties domain.PropertyRepository, tenants domain.TenantRepository) domain.LeaseService {
	return &leaseService{repo: repo, properties: properties, tenants: tenants}
}

// Create validates the lease and persists it.
func (s *leaseService) Create(ctx context.Context, lease *domain.Lease) (*domain.Lease, error) {
	if err := s.validate(ctx, lease, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// Get retrieves an active lease by ID.
func (s *leaseService) Get(ctx context.Context, id uint) (*domain.Lease, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of leases.
func (s *leaseService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Lease], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active lease, applies changes, and persists them.
func (s *leaseService) Update(ctx context.Context, id uint, lease *domain.Lease) (*domain.Lease, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, lease, id); err != nil {
		return nil, err
	}

	existing.ContractNumber = lease.ContractNumber
	existing.PropertyID = lease.PropertyID
	existing.TenantID = lease.TenantID
	existing.StartDate = lease.StartDate
	existing.EndDate = lease.EndDate
	existing.MonthlyRent = lease.MonthlyRent
	existing.DueDay = lease.DueDay
	existing.Property = nil
	existing.Tenant = nil

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft-deletes a lease.
func (s *leaseService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted lease. Restoring an active lease is a
// validation error.
func (s *leaseService) Restore(ctx context.Context, id uint) (*domain.Lease, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "lease is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// validate checks date ordering, contract-number uniqueness, and that the
// referenced property and tenant are active.
func (s *leaseService) validate(ctx context.Context, lease *domain.Lease, excludeID uint) error {
	lease.ContractNumber = strings.TrimSpace(lease.ContractNumber)

	if !lease.EndDate.After(lease.StartDate) {
		return domain.NewAppError(domain.CodeValidation, "end date must be after start date", nil)
	}
	if lease.DueDay < 1 || lease.DueDay > 31 {
		return domain.NewAppError(domain.CodeValidation, "due day must be between 1 and 31", nil)
	}

	if lease.ContractNumber != "" {
		exists, err := s.repo.ActiveExists(ctx, "contract_number", lease.ContractNumber, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, "contract number already registered", nil)
		}
	}

	if _, err := s.properties.GetByID(ctx, lease.PropertyID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "property not found", nil)
		}
		return err
	}
	if _, err := s.tenants.GetByID(ctx, lease.TenantID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "tenant not found", nil)
		}
		return err
	}
	return nil
}

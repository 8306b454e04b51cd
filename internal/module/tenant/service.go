package tenant

import (
	"context"
	"strings"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// tenantService implements domain.TenantService.
type tenantService struct {
	repo domain.TenantRepository
}

// NewTenantService creates a new TenantService with the given repository.
func NewTenantService(repo domain.TenantRepository) domain.TenantService {
	return &tenantService{repo: repo}
}

// Create validates natural-key uniqueness among active tenants and persists
// the tenant with its relations.
func (s *tenantService) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	normalize(tenant)
	if err := s.checkUnique(ctx, tenant, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Get retrieves an active tenant by ID.
func (s *tenantService) Get(ctx context.Context, id uint) (*domain.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of tenants.
func (s *tenantService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Tenant], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active tenant, applies changes, and persists them.
func (s *tenantService) Update(ctx context.Context, id uint, tenant *domain.Tenant) (*domain.Tenant, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalize(tenant)
	if err := s.checkUnique(ctx, tenant, id); err != nil {
		return nil, err
	}

	existing.Name = tenant.Name
	existing.InternalCode = tenant.InternalCode
	existing.CPF = tenant.CPF
	existing.CNPJ = tenant.CNPJ
	existing.Occupation = tenant.Occupation
	existing.MaritalStatus = tenant.MaritalStatus
	existing.Addresses = tenant.Addresses
	existing.Contacts = tenant.Contacts

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a tenant and its relations.
func (s *tenantService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted tenant. Restoring an active tenant is a
// validation error.
func (s *tenantService) Restore(ctx context.Context, id uint) (*domain.Tenant, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "tenant is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ContactSuggestions returns contact autocomplete entries for term.
func (s *tenantService) ContactSuggestions(ctx context.Context, term string) ([]domain.ContactSuggestion, error) {
	return s.repo.ContactSuggestions(ctx, strings.TrimSpace(term), suggestionLimit)
}

// checkUnique enforces CPF, CNPJ, and internal-code uniqueness among active
// tenants. Soft-deleted tenants never block reuse.
func (s *tenantService) checkUnique(ctx context.Context, tenant *domain.Tenant, excludeID uint) error {
	checks := []struct {
		column  string
		value   string
		message string
	}{
		{"cpf", tenant.CPF, "cpf already registered"},
		{"cnpj", tenant.CNPJ, "cnpj already registered"},
		{"internal_code", tenant.InternalCode, "internal code already registered"},
	}
	for _, check := range checks {
		if check.value == "" {
			continue
		}
		exists, err := s.repo.ActiveExists(ctx, check.column, check.value, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, check.message, nil)
		}
	}
	return nil
}

func normalize(tenant *domain.Tenant) {
	tenant.Name = strings.TrimSpace(tenant.Name)
	tenant.InternalCode = strings.TrimSpace(tenant.InternalCode)
	tenant.CPF = strings.TrimSpace(tenant.CPF)
	tenant.CNPJ = strings.TrimSpace(tenant.CNPJ)
	tenant.Occupation = strings.TrimSpace(tenant.Occupation)
	tenant.MaritalStatus = strings.TrimSpace(tenant.MaritalStatus)
}

package owner

import (
	"context"
	"strings"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// ownerService implements domain.OwnerService.
type ownerService struct {
	repo domain.OwnerRepository
}

// NewOwnerService creates a new OwnerService with the given repository.
func NewOwnerService(repo domain.OwnerRepository) domain.OwnerService {
	return &ownerService{repo: repo}
}

// Create validates natural-key uniqueness among active owners and persists
// the owner with its relations.
func (s *ownerService) Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	normalize(owner)
	if err := s.checkUnique(ctx, owner, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// Get retrieves an active owner by ID.
func (s *ownerService) Get(ctx context.Context, id uint) (*domain.Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of owners.
func (s *ownerService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Owner], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active owner, applies changes, and persists them.
func (s *ownerService) Update(ctx context.Context, id uint, owner *domain.Owner) (*domain.Owner, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalize(owner)
	if err := s.checkUnique(ctx, owner, id); err != nil {
		return nil, err
	}

	existing.Name = owner.Name
	existing.InternalCode = owner.InternalCode
	existing.CPF = owner.CPF
	existing.Occupation = owner.Occupation
	existing.MaritalStatus = owner.MaritalStatus
	existing.Addresses = owner.Addresses
	existing.Contacts = owner.Contacts

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes an owner and its relations.
func (s *ownerService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted owner. Restoring an active owner is a
// validation error, not a no-op.
func (s *ownerService) Restore(ctx context.Context, id uint) (*domain.Owner, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "owner is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ContactSuggestions returns contact autocomplete entries for term.
func (s *ownerService) ContactSuggestions(ctx context.Context, term string) ([]domain.ContactSuggestion, error) {
	return s.repo.ContactSuggestions(ctx, strings.TrimSpace(term), suggestionLimit)
}

// checkUnique enforces CPF and internal-code uniqueness among active owners.
// Soft-deleted owners never block reuse.
func (s *ownerService) checkUnique(ctx context.Context, owner *domain.Owner, excludeID uint) error {
	if owner.CPF != "" {
		exists, err := s.repo.ActiveExists(ctx, "cpf", owner.CPF, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, "cpf already registered", nil)
		}
	}
	if owner.InternalCode != "" {
		exists, err := s.repo.ActiveExists(ctx, "internal_code", owner.InternalCode, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, "internal code already registered", nil)
		}
	}
	return nil
}

func normalize(owner *domain.Owner) {
	owner.Name = strings.TrimSpace(owner.Name)
	owner.InternalCode = strings.TrimSpace(owner.InternalCode)
	owner.CPF = strings.TrimSpace(owner.CPF)
	owner.Occupation = strings.TrimSpace(owner.Occupation)
	owner.MaritalStatus = strings.TrimSpace(owner.MaritalStatus)
}

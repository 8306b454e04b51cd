package propertytype

import (
	"context"
	"strings"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// propertyTypeService implements domain.PropertyTypeService.
type propertyTypeService struct {
	repo domain.PropertyTypeRepository
}

// NewPropertyTypeService creates a new PropertyTypeService with the given repository.
func NewPropertyTypeService(repo domain.PropertyTypeRepository) domain.PropertyTypeService {
	return &propertyTypeService{repo: repo}
}

// Create validates description uniqueness among active property types and
// persists the type.
func (s *propertyTypeService) Create(ctx context.Context, pt *domain.PropertyType) (*domain.PropertyType, error) {
	pt.Description = strings.TrimSpace(pt.Description)
	if err := s.checkUnique(ctx, pt.Description, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// Get retrieves an active property type by ID.
func (s *propertyTypeService) Get(ctx context.Context, id uint) (*domain.PropertyType, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of property types.
func (s *propertyTypeService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.PropertyType], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active property type, applies changes, and persists them.
func (s *propertyTypeService) Update(ctx context.Context, id uint, pt *domain.PropertyType) (*domain.PropertyType, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pt.Description = strings.TrimSpace(pt.Description)
	if err := s.checkUnique(ctx, pt.Description, id); err != nil {
		return nil, err
	}

	existing.Description = pt.Description
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a property type.
func (s *propertyTypeService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted property type. Restoring an active type
// is a validation error.
func (s *propertyTypeService) Restore(ctx context.Context, id uint) (*domain.PropertyType, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "property type is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *propertyTypeService) checkUnique(ctx context.Context, description string, excludeID uint) error {
	exists, err := s.repo.ActiveExists(ctx, "description", description, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewAppError(domain.CodeAlreadyExists, "description already registered", nil)
	}
	return nil
}

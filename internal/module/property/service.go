package property

import (
	"context"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/storage"
)

// propertyService implements domain.PropertyService. Document uploads go
// through the storage pool; metadata rows are written only for files whose
// upload succeeded.
type propertyService struct {
	repo     domain.PropertyRepository
	types    domain.PropertyTypeRepository
	owners   domain.OwnerRepository
	agencies domain.AgencyRepository
	uploads  *storage.UploadPool
}

// NewPropertyService creates a new PropertyService with the given
// repositories and upload pool.
func NewPropertyService(
	repo domain.PropertyRepository,
	types domain.PropertyTypeRepository,
	owners domain.OwnerRepository,
	agencies domain.AgencyRepository,
	uploads *storage.UploadPool,
) domain.PropertyService {
	return &propertyService{
		repo:     repo,
		types:    types,
		owners:   owners,
		agencies: agencies,
		uploads:  uploads,
	}
}

// Create validates references and uniqueness, then persists the property with
// its addresses and values.
func (s *propertyService) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	normalize(property)
	if err := s.validate(ctx, property, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Get retrieves an active property by ID.
func (s *propertyService) Get(ctx context.Context, id uint) (*domain.Property, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of properties.
func (s *propertyService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Property], error) {
	return s.repo.List(ctx, params)
}

// Update loads the active property, applies changes, and persists them.
func (s *propertyService) Update(ctx context.Context, id uint, property *domain.Property) (*domain.Property, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalize(property)
	if err := s.validate(ctx, property, id); err != nil {
		return nil, err
	}

	existing.InternalCode = property.InternalCode
	existing.Title = property.Title
	existing.Description = property.Description
	existing.Bedrooms = property.Bedrooms
	existing.Bathrooms = property.Bathrooms
	existing.GarageSpaces = property.GarageSpaces
	existing.AreaM2 = property.AreaM2
	existing.TypeID = property.TypeID
	existing.OwnerID = property.OwnerID
	existing.AgencyID = property.AgencyID
	existing.Addresses = property.Addresses
	existing.Values = property.Values
	existing.Type = nil
	existing.Owner = nil
	existing.Agency = nil

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft-deletes a property and its relations.
func (s *propertyService) Delete(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Restore reactivates a soft-deleted property. Restoring an active property
// is a validation error.
func (s *propertyService) Restore(ctx context.Context, id uint) (*domain.Property, error) {
	existing, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Deleted() {
		return nil, domain.NewAppError(domain.CodeValidation, "property is not deleted", nil)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// AttachDocuments uploads the given files and records metadata rows for the
// ones that made it to storage. Failed uploads are reported by name; they
// never fail the whole batch.
func (s *propertyService) AttachDocuments(ctx context.Context, propertyID uint, uploads []domain.DocumentUpload) ([]domain.PropertyDocument, []string, error) {
	if len(uploads) == 0 {
		return nil, nil, nil
	}

	if _, err := s.repo.GetByID(ctx, propertyID); err != nil {
		return nil, nil, err
	}

	jobs := make([]storage.Upload, len(uploads))
	for i, up := range uploads {
		jobs[i] = storage.Upload{
			Key:         documentKey(propertyID, up.Name),
			ContentType: up.ContentType,
			Data:        up.Data,
		}
	}

	results := s.uploads.UploadAll(ctx, jobs)

	var docs []domain.PropertyDocument
	var failed []string
	for i, res := range results {
		if res.Err != nil {
			failed = append(failed, uploads[i].Name)
			continue
		}
		docs = append(docs, domain.PropertyDocument{
			Name:        uploads[i].Name,
			URL:         res.URL,
			ContentType: uploads[i].ContentType,
			SizeBytes:   int64(len(uploads[i].Data)),
		})
	}

	if err := s.repo.AddDocuments(ctx, propertyID, docs); err != nil {
		return nil, failed, err
	}
	return docs, failed, nil
}

// documentKey builds a collision-free storage key preserving the original
// file extension.
func documentKey(propertyID uint, name string) string {
	ext := strings.ToLower(path.Ext(name))
	return path.Join("properties", strconv.FormatUint(uint64(propertyID), 10), uuid.NewString()+ext)
}

// validate checks referenced records and internal-code uniqueness.
func (s *propertyService) validate(ctx context.Context, property *domain.Property, excludeID uint) error {
	if _, err := s.types.GetByID(ctx, property.TypeID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "property type not found", nil)
		}
		return err
	}
	if _, err := s.owners.GetByID(ctx, property.OwnerID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "owner not found", nil)
		}
		return err
	}
	if property.AgencyID != 0 {
		if _, err := s.agencies.GetByID(ctx, property.AgencyID); err != nil {
			if domain.IsNotFound(err) {
				return domain.NewAppError(domain.CodeValidation, "agency not found", nil)
			}
			return err
		}
	}

	if property.InternalCode != "" {
		exists, err := s.repo.ActiveExists(ctx, "internal_code", property.InternalCode, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewAppError(domain.CodeAlreadyExists, "internal code already registered", nil)
		}
	}
	return nil
}

func normalize(property *domain.Property) {
	property.InternalCode = strings.TrimSpace(property.InternalCode)
	property.Title = strings.TrimSpace(property.Title)
	property.Description = strings.TrimSpace(property.Description)
}

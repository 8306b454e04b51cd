package property

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/storage"
)

// fakePropertyRepo stubs domain.PropertyRepository and records AddDocuments
// calls.
type fakePropertyRepo struct {
	properties map[uint]*domain.Property
	nextID     uint
	takenCodes map[string]bool
	addedDocs  []domain.PropertyDocument
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		properties: make(map[uint]*domain.Property),
		nextID:     1,
		takenCodes: make(map[string]bool),
	}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *domain.Property) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uint) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok || p.Deleted() {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyRepo) GetAnyByID(_ context.Context, id uint) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Property], error) {
	return nil, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := f.properties[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := f.properties[id]
	if !ok || p.Deleted() {
		return domain.ErrNotFound
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

func (f *fakePropertyRepo) Restore(_ context.Context, id uint) error {
	p, ok := f.properties[id]
	if !ok || !p.Deleted() {
		return domain.ErrNotFound
	}
	p.DeletedAt = nil
	return nil
}

func (f *fakePropertyRepo) ActiveExists(_ context.Context, _, value string, _ uint) (bool, error) {
	return f.takenCodes[value], nil
}

func (f *fakePropertyRepo) AddDocuments(_ context.Context, _ uint, docs []domain.PropertyDocument) error {
	f.addedDocs = append(f.addedDocs, docs...)
	return nil
}

// fakeTypeRepo stubs domain.PropertyTypeRepository; only GetByID matters here.
type fakeTypeRepo struct{ known map[uint]bool }

func (f *fakeTypeRepo) GetByID(_ context.Context, id uint) (*domain.PropertyType, error) {
	if !f.known[id] {
		return nil, domain.ErrNotFound
	}
	pt := &domain.PropertyType{Description: "Apartamento"}
	pt.ID = id
	return pt, nil
}
func (f *fakeTypeRepo) Create(context.Context, *domain.PropertyType) error { return nil }
func (f *fakeTypeRepo) GetAnyByID(context.Context, uint) (*domain.PropertyType, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeTypeRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.PropertyType], error) {
	return nil, nil
}
func (f *fakeTypeRepo) Update(context.Context, *domain.PropertyType) error { return nil }
func (f *fakeTypeRepo) SoftDelete(context.Context, uint) error             { return nil }
func (f *fakeTypeRepo) Restore(context.Context, uint) error                { return nil }
func (f *fakeTypeRepo) ActiveExists(context.Context, string, string, uint) (bool, error) {
	return false, nil
}

// fakeOwnerRepo stubs domain.OwnerRepository; only GetByID matters here.
type fakeOwnerRepo struct{ known map[uint]bool }

func (f *fakeOwnerRepo) GetByID(_ context.Context, id uint) (*domain.Owner, error) {
	if !f.known[id] {
		return nil, domain.ErrNotFound
	}
	o := &domain.Owner{Name: "Maria"}
	o.ID = id
	return o, nil
}
func (f *fakeOwnerRepo) Create(context.Context, *domain.Owner) error { return nil }
func (f *fakeOwnerRepo) GetAnyByID(context.Context, uint) (*domain.Owner, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeOwnerRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Owner], error) {
	return nil, nil
}
func (f *fakeOwnerRepo) Update(context.Context, *domain.Owner) error { return nil }
func (f *fakeOwnerRepo) SoftDelete(context.Context, uint) error      { return nil }
func (f *fakeOwnerRepo) Restore(context.Context, uint) error         { return nil }
func (f *fakeOwnerRepo) ActiveExists(context.Context, string, string, uint) (bool, error) {
	return false, nil
}
func (f *fakeOwnerRepo) ContactSuggestions(context.Context, string, int) ([]domain.ContactSuggestion, error) {
	return nil, nil
}

// fakeAgencyRepo stubs domain.AgencyRepository; only GetByID matters here.
type fakeAgencyRepo struct{ known map[uint]bool }

func (f *fakeAgencyRepo) GetByID(_ context.Context, id uint) (*domain.Agency, error) {
	if !f.known[id] {
		return nil, domain.ErrNotFound
	}
	a := &domain.Agency{Name: "Imobiliária Central"}
	a.ID = id
	return a, nil
}
func (f *fakeAgencyRepo) Create(context.Context, *domain.Agency) error { return nil }
func (f *fakeAgencyRepo) GetAnyByID(context.Context, uint) (*domain.Agency, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeAgencyRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Agency], error) {
	return nil, nil
}
func (f *fakeAgencyRepo) Update(context.Context, *domain.Agency) error { return nil }
func (f *fakeAgencyRepo) SoftDelete(context.Context, uint) error       { return nil }
func (f *fakeAgencyRepo) Restore(context.Context, uint) error          { return nil }
func (f *fakeAgencyRepo) ActiveExists(context.Context, string, string, uint) (bool, error) {
	return false, nil
}

// failKeyStorage fails uploads whose key contains a marker substring.
type failKeyStorage struct{ failExt string }

func (f *failKeyStorage) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if f.failExt != "" && strings.HasSuffix(key, f.failExt) {
		return "", errors.New("storage unavailable")
	}
	return "/documents/" + key, nil
}

func newTestService(repo *fakePropertyRepo, store storage.Storage) domain.PropertyService {
	return NewPropertyService(
		repo,
		&fakeTypeRepo{known: map[uint]bool{1: true}},
		&fakeOwnerRepo{known: map[uint]bool{1: true}},
		&fakeAgencyRepo{known: map[uint]bool{1: true}},
		storage.NewUploadPool(store, 2, time.Second),
	)
}

func validProperty() *domain.Property {
	return &domain.Property{
		InternalCode: "IM-001",
		Title:        "Apartamento Centro",
		TypeID:       1,
		OwnerID:      1,
	}
}

func TestServiceCreate_Success(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})

	created, err := svc.Create(context.Background(), validProperty())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestServiceCreate_UnknownReferences(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})
	ctx := context.Background()

	p := validProperty()
	p.TypeID = 99
	if _, err := svc.Create(ctx, p); !domain.IsValidation(err) {
		t.Errorf("unknown type error = %v; want validation error", err)
	}

	p = validProperty()
	p.OwnerID = 99
	if _, err := svc.Create(ctx, p); !domain.IsValidation(err) {
		t.Errorf("unknown owner error = %v; want validation error", err)
	}

	p = validProperty()
	p.AgencyID = 99
	if _, err := svc.Create(ctx, p); !domain.IsValidation(err) {
		t.Errorf("unknown agency error = %v; want validation error", err)
	}

	// Agency is optional; zero means none.
	p = validProperty()
	p.AgencyID = 0
	if _, err := svc.Create(ctx, p); err != nil {
		t.Errorf("Create() without agency error = %v", err)
	}
}

func TestServiceCreate_DuplicateInternalCode(t *testing.T) {
	repo := newFakePropertyRepo()
	repo.takenCodes["IM-001"] = true
	svc := newTestService(repo, &failKeyStorage{})

	_, err := svc.Create(context.Background(), validProperty())
	if !domain.IsAlreadyExists(err) {
		t.Errorf("Create() duplicate code error = %v; want already exists", err)
	}
}

func TestAttachDocuments_AllSucceed(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validProperty())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	docs, failed, err := svc.AttachDocuments(ctx, created.ID, []domain.DocumentUpload{
		{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("deed")},
		{Name: "plan.png", ContentType: "image/png", Data: []byte("plan")},
	})
	if err != nil {
		t.Fatalf("AttachDocuments() error = %v", err)
	}
	if len(failed) != 0 {
		t.Errorf("failed = %v; want none", failed)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d; want 2", len(docs))
	}
	if docs[0].Name != "deed.pdf" || docs[0].URL == "" || docs[0].SizeBytes != 4 {
		t.Errorf("doc = %+v; want name, URL, and size recorded", docs[0])
	}
	if len(repo.addedDocs) != 2 {
		t.Errorf("persisted docs = %d; want 2", len(repo.addedDocs))
	}
}

func TestAttachDocuments_PartialFailure(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{failExt: ".png"})
	ctx := context.Background()

	created, err := svc.Create(ctx, validProperty())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	docs, failed, err := svc.AttachDocuments(ctx, created.ID, []domain.DocumentUpload{
		{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("deed")},
		{Name: "plan.png", ContentType: "image/png", Data: []byte("plan")},
	})
	if err != nil {
		t.Fatalf("AttachDocuments() error = %v", err)
	}
	if len(failed) != 1 || failed[0] != "plan.png" {
		t.Errorf("failed = %v; want [plan.png]", failed)
	}
	if len(docs) != 1 || docs[0].Name != "deed.pdf" {
		t.Errorf("docs = %+v; want only the pdf", docs)
	}
	if len(repo.addedDocs) != 1 {
		t.Errorf("persisted docs = %d; want only the successful one", len(repo.addedDocs))
	}
}

func TestAttachDocuments_UnknownProperty(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})

	_, _, err := svc.AttachDocuments(context.Background(), 999, []domain.DocumentUpload{
		{Name: "deed.pdf", Data: []byte("x")},
	})
	if !domain.IsNotFound(err) {
		t.Errorf("AttachDocuments() error = %v; want not found", err)
	}
}

func TestAttachDocuments_EmptyBatch(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})

	docs, failed, err := svc.AttachDocuments(context.Background(), 999, nil)
	if err != nil || docs != nil || failed != nil {
		t.Errorf("empty batch should be a no-op, got docs=%v failed=%v err=%v", docs, failed, err)
	}
}

func TestServiceRestore_ActivePropertyIsValidationError(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestService(repo, &failKeyStorage{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validProperty())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Restore(ctx, created.ID); !domain.IsValidation(err) {
		t.Errorf("Restore() of active property error = %v; want validation error", err)
	}
}

package lease

import (
	"context"
	"testing"
	"time"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// fakeLeaseRepo is an in-memory domain.LeaseRepository.
type fakeLeaseRepo struct {
	leases map[uint]*domain.Lease
	nextID uint
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: make(map[uint]*domain.Lease), nextID: 1}
}

func (f *fakeLeaseRepo) Create(_ context.Context, lease *domain.Lease) error {
	lease.ID = f.nextID
	f.nextID++
	cp := *lease
	f.leases[lease.ID] = &cp
	return nil
}

func (f *fakeLeaseRepo) GetByID(_ context.Context, id uint) (*domain.Lease, error) {
	l, ok := f.leases[id]
	if !ok || l.Deleted() {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaseRepo) GetAnyByID(_ context.Context, id uint) (*domain.Lease, error) {
	l, ok := f.leases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeaseRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Lease], error) {
	return nil, nil
}

func (f *fakeLeaseRepo) Update(_ context.Context, lease *domain.Lease) error {
	if _, ok := f.leases[lease.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *lease
	f.leases[lease.ID] = &cp
	return nil
}

func (f *fakeLeaseRepo) SoftDelete(_ context.Context, id uint) error {
	l, ok := f.leases[id]
	if !ok || l.Deleted() {
		return domain.ErrNotFound
	}
	now := time.Now()
	l.DeletedAt = &now
	return nil
}

func (f *fakeLeaseRepo) Restore(_ context.Context, id uint) error {
	l, ok := f.leases[id]
	if !ok || !l.Deleted() {
		return domain.ErrNotFound
	}
	l.DeletedAt = nil
	return nil
}

func (f *fakeLeaseRepo) ActiveExists(_ context.Context, _, value string, excludeID uint) (bool, error) {
	for _, l := range f.leases {
		if !l.Deleted() && l.ContractNumber == value && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// fakePropertyRepo stubs domain.PropertyRepository; only GetByID matters here.
type fakePropertyRepo struct{ known map[uint]bool }

func (f *fakePropertyRepo) GetByID(_ context.Context, id uint) (*domain.Property, error) {
	if !f.known[id] {
		return nil, domain.ErrNotFound
	}
	p := &domain.Property{Title: "Apartamento Centro"}
	p.ID = id
	return p, nil
}
func (f *fakePropertyRepo) Create(context.Context, *domain.Property) error { return nil }
func (f *fakePropertyRepo) GetAnyByID(context.Context, uint) (*domain.Property, error) {
	return nil, domain.ErrNotFound
}
func (f *fakePropertyRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Property], error) {
	return nil, nil
}
func (f *fakePropertyRepo) Update(context.Context, *domain.Property) error { return nil }
func (f *fakePropertyRepo) SoftDelete(context.Context, uint) error         { return nil }
func (f *fakePropertyRepo) Restore(context.Context, uint) error            { return nil }
func (f *fakePropertyRepo) ActiveExists(context.Context, string, string, uint) (bool, error) {
	return false, nil
}
func (f *fakePropertyRepo) AddDocuments(context.Context, uint, []domain.PropertyDocument) error {
	return nil
}

// fakeTenantRepo stubs domain.TenantRepository; only GetByID matters here.
type fakeTenantRepo struct{ known map[uint]bool }

func (f *fakeTenantRepo) GetByID(_ context.Context, id uint) (*domain.Tenant, error) {
	if !f.known[id] {
		return nil, domain.ErrNotFound
	}
	tn := &domain.Tenant{Name: "Pedro Lima"}
	tn.ID = id
	return tn, nil
}
func (f *fakeTenantRepo) Create(context.Context, *domain.Tenant) error { return nil }
func (f *fakeTenantRepo) GetAnyByID(context.Context, uint) (*domain.Tenant, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeTenantRepo) List(context.Context, domain.ListParams) (*domain.PageResult[domain.Tenant], error) {
	return nil, nil
}
func (f *fakeTenantRepo) Update(context.Context, *domain.Tenant) error { return nil }
func (f *fakeTenantRepo) SoftDelete(context.Context, uint) error       { return nil }
func (f *fakeTenantRepo) Restore(context.Context, uint) error          { return nil }
func (f *fakeTenantRepo) ActiveExists(context.Context, string, string, uint) (bool, error) {
	return false, nil
}
func (f *fakeTenantRepo) ContactSuggestions(context.Context, string, int) ([]domain.ContactSuggestion, error) {
	return nil, nil
}

func newTestService() (domain.LeaseService, *fakeLeaseRepo) {
	repo := newFakeLeaseRepo()
	svc := NewLeaseService(
		repo,
		&fakePropertyRepo{known: map[uint]bool{1: true}},
		&fakeTenantRepo{known: map[uint]bool{1: true}},
	)
	return svc, repo
}

func validLease() *domain.Lease {
	return &domain.Lease{
		ContractNumber: "CT-2024-001",
		PropertyID:     1,
		TenantID:       1,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent:    2500,
		DueDay:         5,
	}
}

func TestServiceCreate_Success(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validLease())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestServiceCreate_DateOrdering(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	l := validLease()
	l.EndDate = l.StartDate
	if _, err := svc.Create(ctx, l); !domain.IsValidation(err) {
		t.Errorf("equal dates error = %v; want validation error", err)
	}

	l = validLease()
	l.EndDate = l.StartDate.AddDate(0, 0, -1)
	if _, err := svc.Create(ctx, l); !domain.IsValidation(err) {
		t.Errorf("inverted dates error = %v; want validation error", err)
	}
}

func TestServiceCreate_DueDayRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, day := range []int{0, 32, -1} {
		l := validLease()
		l.DueDay = day
		if _, err := svc.Create(ctx, l); !domain.IsValidation(err) {
			t.Errorf("due day %d error = %v; want validation error", day, err)
		}
	}
}

func TestServiceCreate_DuplicateContractNumber(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validLease()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err := svc.Create(ctx, validLease())
	if !domain.IsAlreadyExists(err) {
		t.Errorf("duplicate contract error = %v; want already exists", err)
	}
}

func TestServiceCreate_UnknownReferences(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	l := validLease()
	l.PropertyID = 99
	if _, err := svc.Create(ctx, l); !domain.IsValidation(err) {
		t.Errorf("unknown property error = %v; want validation error", err)
	}

	l = validLease()
	l.TenantID = 99
	if _, err := svc.Create(ctx, l); !domain.IsValidation(err) {
		t.Errorf("unknown tenant error = %v; want validation error", err)
	}
}

func TestServiceUpdate_KeepsOwnContractNumber(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validLease())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	changed := validLease()
	changed.MonthlyRent = 2800
	updated, err := svc.Update(ctx, created.ID, changed)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.MonthlyRent != 2800 {
		t.Errorf("MonthlyRent = %v; want 2800", updated.MonthlyRent)
	}
}

func TestServiceRestore_ActiveLeaseIsValidationError(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validLease())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Restore(ctx, created.ID); !domain.IsValidation(err) {
		t.Errorf("Restore() of active lease error = %v; want validation error", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	restored, err := svc.Restore(ctx, created.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.Deleted() {
		t.Error("restored lease should be active")
	}
}

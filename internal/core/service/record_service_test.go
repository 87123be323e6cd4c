package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

type stubRecordRepo struct {
	nextID  int64
	records map[int64]*domain.Record
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[int64]*domain.Record)}
}

func cloneRecord(rec *domain.Record) *domain.Record {
	if rec == nil {
		return nil
	}
	clone := *rec
	return &clone
}

func (r *stubRecordRepo) ListAll(_ context.Context) ([]domain.Record, error) {
	ids := make([]int64, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.records[id])
	}
	return out, nil
}

func (r *stubRecordRepo) Get(_ context.Context, id int64) (*domain.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (r *stubRecordRepo) Create(_ context.Context, f ports.RecordFields) (*domain.Record, error) {
	r.nextID++
	rec := &domain.Record{
		ID:        r.nextID,
		CreatedAt: time.Now().UTC(),
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
	}
	r.records[rec.ID] = cloneRecord(rec)
	return rec, nil
}

func (r *stubRecordRepo) Update(_ context.Context, id int64, f ports.RecordFields) (*domain.Record, error) {
	existing, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	rec := &domain.Record{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
	}
	r.records[id] = cloneRecord(rec)
	return rec, nil
}

func (r *stubRecordRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func janeFields() ports.RecordFields {
	return ports.RecordFields{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "5551234567",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
	}
}

func TestRecordService_CreateThenGet(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())
	before := time.Now().UTC()

	created, err := svc.Create(context.Background(), janeFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.Before(before) {
		t.Fatalf("created_at %v earlier than call time %v", created.CreatedAt, before)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *got != *created {
		t.Fatalf("Get returned %+v, want %+v", got, created)
	}
}

func TestRecordService_Create_FreshIdentifiers(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	first, err := svc.Create(context.Background(), janeFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := svc.Create(context.Background(), janeFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
}

func TestRecordService_Update_KeepsIdentity(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), janeFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	fields := janeFields()
	fields.City = "Chicago"
	updated, err := svc.Update(context.Background(), created.ID, fields)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed: %d -> %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.City != "Chicago" {
		t.Fatalf("update not reflected, city = %q", got.City)
	}
}

func TestRecordService_Update_NotFound(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), 42, janeFields()); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordService_DeleteThenGet_NotFound(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), janeFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordService_List_InsertionOrder(t *testing.T) {
	svc := NewRecordService(newStubRecordRepo(), zerolog.Nop())

	names := []string{"Alpha", "Bravo", "Charlie"}
	for _, name := range names {
		fields := janeFields()
		fields.FirstName = name
		if _, err := svc.Create(context.Background(), fields); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("expected %d records, got %d", len(names), len(records))
	}
	for i, name := range names {
		if records[i].FirstName != name {
			t.Fatalf("position %d: got %q, want %q", i, records[i].FirstName, name)
		}
	}
}

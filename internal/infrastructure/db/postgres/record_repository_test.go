package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

var recordColumns = []string{
	"id", "created_at", "first_name", "last_name", "email",
	"phone", "address", "city", "state", "zip_code",
}

func testFields() ports.RecordFields {
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

func TestRecordRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, created_at, first_name, last_name, email, phone,")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			int64(7), createdAt, "Jane", "Doe", "jane@x.com",
			"5551234567", "1 Main St", "Springfield", "IL", "62704",
		))

	repo := NewRecordRepository(db)
	rec, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.ID != 7 || rec.FirstName != "Jane" || rec.ZipCode != "62704" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at: %v", rec.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordRepository_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, created_at, first_name, last_name, email, phone,")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	repo := NewRecordRepository(db)
	if _, err := repo.Get(context.Background(), 99); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO records")).
		WithArgs("Jane", "Doe", "jane@x.com", "5551234567", "1 Main St", "Springfield", "IL", "62704").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	repo := NewRecordRepository(db)
	rec, err := repo.Create(context.Background(), testFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", rec.ID)
	}
	if !rec.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at: %v", rec.CreatedAt)
	}
	if rec.FirstName != "Jane" || rec.City != "Springfield" {
		t.Fatalf("fields not carried over: %+v", rec)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE records")).
		WithArgs("Jane", "Doe", "jane@x.com", "5551234567", "1 Main St", "Springfield", "IL", "62704", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	repo := NewRecordRepository(db)
	if _, err := repo.Update(context.Background(), 42, testFields()); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRecordRepository(db)
	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRecordRepository(db)
	if err := repo.Delete(context.Background(), 99); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM records")).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(int64(1), createdAt, "Jane", "Doe", "jane@x.com", "5551234567", "1 Main St", "Springfield", "IL", "62704").
			AddRow(int64(2), createdAt, "John", "Roe", "john@x.com", "5557654321", "2 Oak Ave", "Peoria", "IL", "61602"))

	repo := NewRecordRepository(db)
	records, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 1 || records[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", records)
	}
}

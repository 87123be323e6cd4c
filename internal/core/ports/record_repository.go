package ports

import (
	"context"

	"github.com/crmdesk/crm-system/internal/core/domain"
)

// RecordFields carries the user-editable attributes of a customer record.
// ID and CreatedAt are deliberately absent: the store owns both.
type RecordFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// RecordRepository defines persistence operations for customer records.
// Every operation taking an id returns domain.ErrRecordNotFound when the
// id does not resolve to an existing record.
type RecordRepository interface {
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id int64) (*domain.Record, error)
	// Create inserts a new record and returns it with the assigned
	// identifier and creation timestamp.
	Create(ctx context.Context, fields RecordFields) (*domain.Record, error)
	// Update replaces all editable fields of an existing record.
	Update(ctx context.Context, id int64, fields RecordFields) (*domain.Record, error)
	Delete(ctx context.Context, id int64) error
}

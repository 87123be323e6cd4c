package ports

import (
	"context"

	"github.com/crmdesk/crm-system/internal/core/domain"
)

// RecordService defines the use-case operations behind the record pages.
type RecordService interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id int64) (*domain.Record, error)
	Create(ctx context.Context, fields RecordFields) (*domain.Record, error)
	Update(ctx context.Context, id int64, fields RecordFields) (*domain.Record, error)
	Delete(ctx context.Context, id int64) error
}

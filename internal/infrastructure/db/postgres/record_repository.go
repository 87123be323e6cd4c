package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// RecordRepository implements ports.RecordRepository against PostgreSQL.
type RecordRepository struct{ db *sql.DB }

// NewRecordRepository creates a Postgres-backed record repository.
func NewRecordRepository(db *sql.DB) *RecordRepository { return &RecordRepository{db: db} }

func (r *RecordRepository) ListAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, first_name, last_name, email, phone,
		       address, city, state, zip_code
		FROM records
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.FirstName, &rec.LastName, &rec.Email,
			&rec.Phone, &rec.Address, &rec.City, &rec.State, &rec.ZipCode,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

func (r *RecordRepository) Get(ctx context.Context, id int64) (*domain.Record, error) {
	rec := &domain.Record{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, first_name, last_name, email, phone,
		       address, city, state, zip_code
		FROM records
		WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.CreatedAt, &rec.FirstName, &rec.LastName, &rec.Email,
		&rec.Phone, &rec.Address, &rec.City, &rec.State, &rec.ZipCode,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, f ports.RecordFields) (*domain.Record, error) {
	rec := &domain.Record{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO records
			(first_name, last_name, email, phone, address, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, f.FirstName, f.LastName, f.Email, f.Phone,
		f.Address, f.City, f.State, f.ZipCode,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return rec, nil
}

func (r *RecordRepository) Update(ctx context.Context, id int64, f ports.RecordFields) (*domain.Record, error) {
	rec := &domain.Record{
		ID:        id,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
	}
	err := r.db.QueryRowContext(ctx, `
		UPDATE records
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    address = $5, city = $6, state = $7, zip_code = $8
		WHERE id = $9
		RETURNING created_at
	`, f.FirstName, f.LastName, f.Email, f.Phone,
		f.Address, f.City, f.State, f.ZipCode, id,
	).Scan(&rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

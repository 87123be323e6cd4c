package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// RecordService implements the customer-record use cases over a repository.
type RecordService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, logger zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, logger: logger}
}

func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	return s.repo.ListAll(ctx)
}

func (s *RecordService) Get(ctx context.Context, id int64) (*domain.Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *RecordService) Create(ctx context.Context, fields ports.RecordFields) (*domain.Record, error) {
	rec, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create record")
		return nil, err
	}

	s.logger.Info().Int64("record_id", rec.ID).Msg("record created")
	return rec, nil
}

func (s *RecordService) Update(ctx context.Context, id int64, fields ports.RecordFields) (*domain.Record, error) {
	rec, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Error().Err(err).Int64("record_id", id).Msg("failed to update record")
		}
		return nil, err
	}

	s.logger.Info().Int64("record_id", rec.ID).Msg("record updated")
	return rec, nil
}

func (s *RecordService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Error().Err(err).Int64("record_id", id).Msg("failed to delete record")
		}
		return err
	}

	s.logger.Info().Int64("record_id", id).Msg("record deleted")
	return nil
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ProgressService struct {
	repo repository.ProgressRepositoryI
}

func NewProgressService(progressRepo repository.ProgressRepositoryI) *ProgressService {
	if progressRepo == nil {
		log.Fatal("provided nil progressRepo")
	}
	return &ProgressService{
		repo: progressRepo,
	}
}

func (ps *ProgressService) CreateMetric(ctx context.Context, uid uuid.UUID, req *CreateProgressRequest) (*entity.ProgressMetric, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	m := entity.ProgressMetric{
		UserID:     uid,
		Metric:     req.Metric,
		Value:      req.Value,
		Unit:       req.Unit,
		MetricDate: req.MetricDate,
		Notes:      req.Notes,
	}
	id, err := ps.repo.Create(ctx, &m)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	metric, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return metric, nil
}

func (ps *ProgressService) GetMetric(ctx context.Context, metricID, userID uuid.UUID) (*entity.ProgressMetric, error) {
	metric, err := ps.repo.GetByID(ctx, metricID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	if metric.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return metric, nil
}

func (ps *ProgressService) GetUserMetrics(ctx context.Context, uid uuid.UUID, metric string, from, to time.Time, pagination PaginationOpts) ([]*entity.ProgressMetric, error) {
	metrics, err := ps.repo.GetByUserID(ctx, uid, repository.ProgressFilter{
		Metric: metric,
		From:   from,
		To:     to,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return metrics, nil
}

func (ps *ProgressService) UpdateMetric(ctx context.Context, metricID, userID uuid.UUID, req *UpdateProgressRequest) (*entity.ProgressMetric, error) {
	metric, err := ps.GetMetric(ctx, metricID, userID)
	if err != nil {
		return nil, err
	}
	if req.Metric != nil {
		metric.Metric = *req.Metric
	}
	if req.Value != nil {
		metric.Value = *req.Value
	}
	if req.Unit != nil {
		metric.Unit = *req.Unit
	}
	if req.MetricDate != nil {
		metric.MetricDate = *req.MetricDate
	}
	if req.Notes != nil {
		metric.Notes = *req.Notes
	}
	err = validateStruct(CreateProgressRequest{
		Metric:     metric.Metric,
		Value:      metric.Value,
		Unit:       metric.Unit,
		MetricDate: metric.MetricDate,
		Notes:      metric.Notes,
	})
	if err != nil {
		return nil, err
	}
	err = ps.repo.Update(ctx, metric)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return metric, nil
}

func (ps *ProgressService) DeleteMetric(ctx context.Context, metricID, userID uuid.UUID) error {
	_, err := ps.GetMetric(ctx, metricID, userID)
	if err != nil {
		return err
	}
	err = ps.repo.Delete(ctx, metricID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricNotFound) {
			return err
		}
		return errors.New("progress repository error: " + err.Error())
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	return &ProgressRepository{
		conn: NewPool(cfg),
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Create(ctx context.Context, metric *entity.ProgressMetric) (uuid.UUID, error) {
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO progress_metrics (user_id, metric, value, unit, metric_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		metric.UserID,
		metric.Metric,
		metric.Value,
		metric.Unit,
		metric.MetricDate,
		metric.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating progress metric db error: " + err.Error())
	}
	return id, nil
}

func (pr *ProgressRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressMetric, error) {
	var metric entity.ProgressMetric
	metric.ID = id
	row := pr.conn.QueryRow(ctx,
		`SELECT user_id, metric, value, unit, metric_date, notes, created_at
		FROM progress_metrics WHERE id = $1;`, id)
	err := row.Scan(&metric.UserID, &metric.Metric, &metric.Value, &metric.Unit, &metric.MetricDate, &metric.Notes, &metric.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMetricNotFound
		}
		return nil, errors.New("getting progress metric by id error: " + err.Error())
	}
	return &metric, nil
}

func (pr *ProgressRepository) GetByUserID(ctx context.Context, uid uuid.UUID, filter ProgressFilter) ([]*entity.ProgressMetric, error) {
	metrics := make([]*entity.ProgressMetric, 0)
	rows, err := pr.conn.Query(ctx,
		`SELECT id, user_id, metric, value, unit, metric_date, notes, created_at
		FROM progress_metrics
		WHERE user_id = $1
			AND ($2 = '' OR metric = $2)
			AND ($3::date IS NULL OR metric_date >= $3)
			AND ($4::date IS NULL OR metric_date <= $4)
		ORDER BY metric_date DESC, created_at DESC LIMIT $5 OFFSET $6;`,
		uid, filter.Metric, nullableDate(filter.From), nullableDate(filter.To), filter.Limit, filter.Offset)
	if err != nil {
		return nil, errors.New("getting progress metrics by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		m := entity.ProgressMetric{}
		err = rows.Scan(&m.ID, &m.UserID, &m.Metric, &m.Value, &m.Unit, &m.MetricDate, &m.Notes, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling progress metric error: " + err.Error())
		}
		metrics = append(metrics, &m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return metrics, nil
}

func (pr *ProgressRepository) Update(ctx context.Context, metric *entity.ProgressMetric) error {
	ct, err := pr.conn.Exec(ctx,
		`UPDATE progress_metrics SET metric = $1, value = $2, unit = $3, metric_date = $4, notes = $5
		WHERE id = $6;`,
		metric.Metric,
		metric.Value,
		metric.Unit,
		metric.MetricDate,
		metric.Notes,
		metric.ID,
	)
	if err != nil {
		return errors.New("error updating progress metric: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMetricNotFound
	}
	return nil
}

func (pr *ProgressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM progress_metrics WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting progress metric: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMetricNotFound
	}
	return nil
}

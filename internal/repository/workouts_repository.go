package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	return &WorkoutsRepository{
		conn: NewPool(cfg),
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx,
		`INSERT INTO workouts (user_id, activity_type, duration_min, calories_burned, workout_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		workout.UserID,
		workout.ActivityType,
		workout.DurationMin,
		workout.CaloriesBurned,
		workout.WorkoutDate,
		workout.Notes,
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
		return uuid.UUID{}, errors.New("creating workout db error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	workout.ID = id
	row := wr.conn.QueryRow(ctx,
		`SELECT user_id, activity_type, duration_min, calories_burned, workout_date, notes, created_at
		FROM workouts WHERE id = $1;`, id)
	err := row.Scan(
		&workout.UserID,
		&workout.ActivityType,
		&workout.DurationMin,
		&workout.CaloriesBurned,
		&workout.WorkoutDate,
		&workout.Notes,
		&workout.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout by id error: " + err.Error())
	}
	return &workout, nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, filter WorkoutFilter) ([]*entity.Workout, error) {
	workouts := make([]*entity.Workout, 0)
	rows, err := wr.conn.Query(ctx,
		`SELECT id, user_id, activity_type, duration_min, calories_burned, workout_date, notes, created_at
		FROM workouts
		WHERE user_id = $1
			AND ($2::date IS NULL OR workout_date >= $2)
			AND ($3::date IS NULL OR workout_date <= $3)
		ORDER BY workout_date DESC, created_at DESC LIMIT $4 OFFSET $5;`,
		uid, nullableDate(filter.From), nullableDate(filter.To), filter.Limit, filter.Offset)
	if err != nil {
		return nil, errors.New("getting workouts by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		w := entity.Workout{}
		err = rows.Scan(&w.ID, &w.UserID, &w.ActivityType, &w.DurationMin, &w.CaloriesBurned, &w.WorkoutDate, &w.Notes, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return workouts, nil
}

func (wr *WorkoutsRepository) Update(ctx context.Context, workout *entity.Workout) error {
	ct, err := wr.conn.Exec(ctx,
		`UPDATE workouts SET activity_type = $1, duration_min = $2, calories_burned = $3, workout_date = $4, notes = $5
		WHERE id = $6;`,
		workout.ActivityType,
		workout.DurationMin,
		workout.CaloriesBurned,
		workout.WorkoutDate,
		workout.Notes,
		workout.ID,
	)
	if err != nil {
		return errors.New("error updating workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func (wr *WorkoutsRepository) GetDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := wr.conn.Query(ctx,
		`SELECT DISTINCT workout_date FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting workout dates error: " + err.Error())
	}
	defer rows.Close()
	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errors.New("workout date row parsing error: " + err.Error())
		}
		dates = append(dates, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected workout dates rows error: " + rows.Err().Error())
	}
	return dates, nil
}

func (wr *WorkoutsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := wr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM workouts WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting workouts: " + err.Error())
	}
	return count, nil
}

// nullableDate maps the zero time to SQL NULL so open filter bounds don't
// constrain the query.
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

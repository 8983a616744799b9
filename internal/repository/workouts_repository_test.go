package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func testWorkout(uid uuid.UUID) *entity.Workout {
	return &entity.Workout{
		ID:             uuid.New(),
		UserID:         uid,
		ActivityType:   "running",
		DurationMin:    45,
		CaloriesBurned: 420,
		WorkoutDate:    time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Notes:          "morning run",
		CreatedAt:      time.Now(),
	}
}

func TestCreateWorkoutRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	workout := testWorkout(uuid.New())
	query := regexp.QuoteMeta(`INSERT INTO workouts (user_id, activity_type, duration_min, calories_burned, workout_date, notes)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`)
	args := []any{workout.UserID, workout.ActivityType, workout.DurationMin, workout.CaloriesBurned, workout.WorkoutDate, workout.Notes}
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(workout.ID))
		id, err := repo.Create(ctx, workout)
		assert.NoError(t, err)
		assert.Equal(t, workout.ID, id)
	})
	t.Run("fk violation", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, workout)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, workout)
		assert.Error(t, err)
	})
}

func TestGetWorkoutByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	workout := testWorkout(uuid.New())
	query := regexp.QuoteMeta(`SELECT user_id, activity_type, duration_min, calories_burned, workout_date, notes, created_at
			FROM workouts WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(workout.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "activity_type", "duration_min", "calories_burned", "workout_date", "notes", "created_at"}).
				AddRow(workout.UserID, workout.ActivityType, workout.DurationMin, workout.CaloriesBurned, workout.WorkoutDate, workout.Notes, workout.CreatedAt))
		result, err := repo.GetByID(ctx, workout.ID)
		assert.NoError(t, err)
		assert.Equal(t, *workout, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(workout.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, workout.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
}

func TestGetWorkoutsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	uid := uuid.New()
	first := testWorkout(uid)
	second := testWorkout(uid)
	second.WorkoutDate = first.WorkoutDate.AddDate(0, 0, -1)
	query := regexp.QuoteMeta(`SELECT id, user_id, activity_type, duration_min, calories_burned, workout_date, notes, created_at
			FROM workouts
			WHERE user_id = $1
				AND ($2::date IS NULL OR workout_date >= $2)
				AND ($3::date IS NULL OR workout_date <= $3)
			ORDER BY workout_date DESC, created_at DESC LIMIT $4 OFFSET $5;`)
	columns := []string{"id", "user_id", "activity_type", "duration_min", "calories_burned", "workout_date", "notes", "created_at"}
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, pgxmock.AnyArg(), pgxmock.AnyArg(), 10, 0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(first.ID, first.UserID, first.ActivityType, first.DurationMin, first.CaloriesBurned, first.WorkoutDate, first.Notes, first.CreatedAt).
				AddRow(second.ID, second.UserID, second.ActivityType, second.DurationMin, second.CaloriesBurned, second.WorkoutDate, second.Notes, second.CreatedAt))
		result, err := repo.GetByUserID(ctx, uid, repository.WorkoutFilter{Limit: 10})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, *first, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, pgxmock.AnyArg(), pgxmock.AnyArg(), 10, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid, repository.WorkoutFilter{Limit: 10})
		assert.Error(t, err)
	})
}

func TestGetWorkoutDates(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT DISTINCT workout_date FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC;`)
	t.Run("dates provided", func(t *testing.T) {
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		conn.ExpectQuery(query).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"workout_date"}).
				AddRow(day).
				AddRow(day.AddDate(0, 0, -1)))
		dates, err := repo.GetDates(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, dates, 2)
		assert.Equal(t, day, dates[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetDates(ctx, uid)
		assert.Error(t, err)
	})
}

func TestUpdateWorkoutRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	workout := testWorkout(uuid.New())
	query := regexp.QuoteMeta(`UPDATE workouts SET activity_type = $1, duration_min = $2, calories_burned = $3, workout_date = $4, notes = $5
			WHERE id = $6;`)
	args := []any{workout.ActivityType, workout.DurationMin, workout.CaloriesBurned, workout.WorkoutDate, workout.Notes, workout.ID}
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, workout)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, workout)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
}

func TestDeleteWorkoutRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWorkoutsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM workouts WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
}

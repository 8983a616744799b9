package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutsServiceIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	conn := repository.NewPool(dbCfg)
	us := service.NewUserService(repository.NewUsersRepoWithConn(conn))
	ws := service.NewWorkoutsService(repository.NewWorkoutsRepoWithConn(conn))
	ctx := context.Background()

	owner, err := us.Register(ctx, &service.RegisterRequest{
		Name:     "workout_owner",
		Email:    "workout_owner@example.com",
		Password: "test_password",
	})
	require.NoError(t, err)
	stranger, err := us.Register(ctx, &service.RegisterRequest{
		Name:     "stranger",
		Email:    "stranger@example.com",
		Password: "test_password",
	})
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	var workout *entity.Workout
	t.Run("created workout", func(t *testing.T) {
		workout, err = ws.CreateWorkout(ctx, owner.ID, &service.CreateWorkoutRequest{
			ActivityType:   "running",
			DurationMin:    45,
			CaloriesBurned: 420,
			WorkoutDate:    yesterday,
			Notes:          "evening run",
		})
		assert.NoError(t, err)
		assert.Equal(t, owner.ID, workout.UserID)
		assert.Equal(t, "running", workout.ActivityType)
		assert.NotEqual(t, uuid.UUID{}, workout.ID)
	})
	t.Run("error creating workout in future", func(t *testing.T) {
		_, err := ws.CreateWorkout(ctx, owner.ID, &service.CreateWorkoutRequest{
			ActivityType: "running",
			DurationMin:  30,
			WorkoutDate:  time.Now().AddDate(0, 0, 2),
		})
		assert.ErrorIs(t, err, errorvalues.ErrDateNotAllowed)
	})
	t.Run("error creating workout with invalid duration", func(t *testing.T) {
		_, err := ws.CreateWorkout(ctx, owner.ID, &service.CreateWorkoutRequest{
			ActivityType: "running",
			DurationMin:  0,
			WorkoutDate:  yesterday,
		})
		assert.Error(t, err)
	})
	t.Run("error creating workout for unexist user", func(t *testing.T) {
		_, err := ws.CreateWorkout(ctx, uuid.New(), &service.CreateWorkoutRequest{
			ActivityType: "running",
			DurationMin:  30,
			WorkoutDate:  yesterday,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("got workout", func(t *testing.T) {
		res, err := ws.GetWorkout(ctx, workout.ID, owner.ID)
		assert.NoError(t, err)
		assert.Equal(t, workout.ID, res.ID)
	})
	t.Run("error getting foreign workout", func(t *testing.T) {
		_, err := ws.GetWorkout(ctx, workout.ID, stranger.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("listed workouts", func(t *testing.T) {
		list, err := ws.GetUserWorkouts(ctx, owner.ID, time.Time{}, time.Time{}, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	})
	t.Run("date range excludes workout", func(t *testing.T) {
		from := time.Now().AddDate(0, 0, 1)
		list, err := ws.GetUserWorkouts(ctx, owner.ID, from, time.Time{}, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Len(t, list, 0)
	})
	t.Run("updated workout", func(t *testing.T) {
		notes := "updated notes"
		duration := 60
		res, err := ws.UpdateWorkout(ctx, workout.ID, owner.ID, &service.UpdateWorkoutRequest{
			DurationMin: &duration,
			Notes:       &notes,
		})
		assert.NoError(t, err)
		assert.Equal(t, 60, res.DurationMin)
		assert.Equal(t, notes, res.Notes)
		assert.Equal(t, workout.ActivityType, res.ActivityType)
	})
	t.Run("error updating to future date", func(t *testing.T) {
		future := time.Now().AddDate(0, 0, 3)
		_, err := ws.UpdateWorkout(ctx, workout.ID, owner.ID, &service.UpdateWorkoutRequest{
			WorkoutDate: &future,
		})
		assert.ErrorIs(t, err, errorvalues.ErrDateNotAllowed)
	})
	t.Run("error updating foreign workout", func(t *testing.T) {
		notes := "hijack"
		_, err := ws.UpdateWorkout(ctx, workout.ID, stranger.ID, &service.UpdateWorkoutRequest{
			Notes: &notes,
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error deleting foreign workout", func(t *testing.T) {
		err := ws.DeleteWorkout(ctx, workout.ID, stranger.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("deleted workout", func(t *testing.T) {
		err := ws.DeleteWorkout(ctx, workout.ID, owner.ID)
		assert.NoError(t, err)
	})
	t.Run("error deleting unexist workout", func(t *testing.T) {
		err := ws.DeleteWorkout(ctx, workout.ID, owner.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
}

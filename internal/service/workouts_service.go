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

type WorkoutsService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutsService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutsService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutsService{
		repo: workoutsRepo,
	}
}

func (ws *WorkoutsService) CreateWorkout(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.Workout, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if req.WorkoutDate.After(time.Now()) {
		return nil, errorvalues.ErrDateNotAllowed
	}
	w := entity.Workout{
		UserID:         uid,
		ActivityType:   req.ActivityType,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		WorkoutDate:    req.WorkoutDate,
		Notes:          req.Notes,
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutsService) GetWorkout(ctx context.Context, workoutID, userID uuid.UUID) (*entity.Workout, error) {
	workout, err := ws.repo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if workout.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return workout, nil
}

func (ws *WorkoutsService) GetUserWorkouts(ctx context.Context, uid uuid.UUID, from, to time.Time, pagination PaginationOpts) ([]*entity.Workout, error) {
	workouts, err := ws.repo.GetByUserID(ctx, uid, repository.WorkoutFilter{
		From:   from,
		To:     to,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ws *WorkoutsService) UpdateWorkout(ctx context.Context, workoutID, userID uuid.UUID, req *UpdateWorkoutRequest) (*entity.Workout, error) {
	workout, err := ws.GetWorkout(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if req.ActivityType != nil {
		workout.ActivityType = *req.ActivityType
	}
	if req.DurationMin != nil {
		workout.DurationMin = *req.DurationMin
	}
	if req.CaloriesBurned != nil {
		workout.CaloriesBurned = *req.CaloriesBurned
	}
	if req.WorkoutDate != nil {
		workout.WorkoutDate = *req.WorkoutDate
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}
	err = validateStruct(CreateWorkoutRequest{
		ActivityType:   workout.ActivityType,
		DurationMin:    workout.DurationMin,
		CaloriesBurned: workout.CaloriesBurned,
		WorkoutDate:    workout.WorkoutDate,
		Notes:          workout.Notes,
	})
	if err != nil {
		return nil, err
	}
	if workout.WorkoutDate.After(time.Now()) {
		return nil, errorvalues.ErrDateNotAllowed
	}
	err = ws.repo.Update(ctx, workout)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutsService) DeleteWorkout(ctx context.Context, workoutID, userID uuid.UUID) error {
	_, err := ws.GetWorkout(ctx, workoutID, userID)
	if err != nil {
		return err
	}
	err = ws.repo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}

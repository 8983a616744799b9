package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type GoalsService struct {
	repo repository.GoalsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalsService{
		repo: goalsRepo,
	}
}

func validGoalStatus(status string) bool {
	switch status {
	case entity.GoalStatusActive, entity.GoalStatusCompleted, entity.GoalStatusAbandoned:
		return true
	}
	return false
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	g := entity.Goal{
		UserID:       uid,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Deadline:     req.Deadline,
		Status:       entity.GoalStatusActive,
	}
	id, err := gs.repo.Create(ctx, &g)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID, status string, pagination PaginationOpts) ([]*entity.Goal, error) {
	if status != "" && !validGoalStatus(status) {
		return nil, errorvalues.ErrInvalidGoalStatus
	}
	goals, err := gs.repo.GetByUserID(ctx, uid, status, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error) {
	goal, err := gs.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if req.GoalType != nil {
		goal.GoalType = *req.GoalType
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Unit != nil {
		goal.Unit = *req.Unit
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}
	if req.Status != nil {
		if !validGoalStatus(*req.Status) {
			return nil, errorvalues.ErrInvalidGoalStatus
		}
		goal.Status = *req.Status
	}
	err = validateStruct(CreateGoalRequest{
		GoalType:     goal.GoalType,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Unit:         goal.Unit,
		Deadline:     goal.Deadline,
	})
	if err != nil {
		return nil, err
	}
	err = gs.repo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	_, err := gs.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}
	err = gs.repo.Delete(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

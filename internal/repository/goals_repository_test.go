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

func testGoal(uid uuid.UUID) *entity.Goal {
	return &entity.Goal{
		ID:           uuid.New(),
		UserID:       uid,
		GoalType:     "weight_loss",
		TargetValue:  10,
		CurrentValue: 4,
		Unit:         "kg",
		Deadline:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:       entity.GoalStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCreateGoalRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := testGoal(uuid.New())
	query := regexp.QuoteMeta(`INSERT INTO goals (user_id, goal_type, target_value, current_value, unit, deadline, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`)
	args := []any{goal.UserID, goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.Deadline, goal.Status}
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(goal.ID))
		id, err := repo.Create(ctx, goal)
		assert.NoError(t, err)
		assert.Equal(t, goal.ID, id)
	})
	t.Run("fk violation", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, goal)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, goal)
		assert.Error(t, err)
	})
}

func TestGetGoalByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := testGoal(uuid.New())
	query := regexp.QuoteMeta(`SELECT user_id, goal_type, target_value, current_value, unit, deadline, status, created_at, updated_at
			FROM goals WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "goal_type", "target_value", "current_value", "unit", "deadline", "status", "created_at", "updated_at"}).
				AddRow(goal.UserID, goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.Deadline, goal.Status, goal.CreatedAt, goal.UpdatedAt))
		result, err := repo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Equal(t, *goal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(goal.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestGetGoalsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	uid := uuid.New()
	goal := testGoal(uid)
	query := regexp.QuoteMeta(`SELECT id, user_id, goal_type, target_value, current_value, unit, deadline, status, created_at, updated_at
			FROM goals
			WHERE user_id = $1 AND ($2 = '' OR status = $2)
			ORDER BY created_at DESC LIMIT $3 OFFSET $4;`)
	columns := []string{"id", "user_id", "goal_type", "target_value", "current_value", "unit", "deadline", "status", "created_at", "updated_at"}
	t.Run("listed with status filter", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, entity.GoalStatusActive, 10, 0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(goal.ID, goal.UserID, goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.Deadline, goal.Status, goal.CreatedAt, goal.UpdatedAt))
		result, err := repo.GetByUserID(ctx, uid, entity.GoalStatusActive, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, *goal, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, "", 10, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid, "", 10, 0)
		assert.Error(t, err)
	})
}

func TestUpdateGoalRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := testGoal(uuid.New())
	query := regexp.QuoteMeta(`UPDATE goals SET goal_type = $1, target_value = $2, current_value = $3, unit = $4, deadline = $5, status = $6, updated_at = NOW()
			WHERE id = $7;`)
	args := []any{goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Unit, goal.Deadline, goal.Status, goal.ID}
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, goal)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, goal)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestDeleteGoalRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

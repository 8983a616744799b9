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

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	return &GoalsRepository{
		conn: NewPool(cfg),
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx,
		`INSERT INTO goals (user_id, goal_type, target_value, current_value, unit, deadline, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		goal.UserID,
		goal.GoalType,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Unit,
		goal.Deadline,
		goal.Status,
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
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goal entity.Goal
	goal.ID = id
	row := gr.conn.QueryRow(ctx,
		`SELECT user_id, goal_type, target_value, current_value, unit, deadline, status, created_at, updated_at
		FROM goals WHERE id = $1;`, id)
	err := row.Scan(
		&goal.UserID,
		&goal.GoalType,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.Unit,
		&goal.Deadline,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, status string, limit, offset int) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	rows, err := gr.conn.Query(ctx,
		`SELECT id, user_id, goal_type, target_value, current_value, unit, deadline, status, created_at, updated_at
		FROM goals
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4;`,
		uid, status, limit, offset)
	if err != nil {
		return nil, errors.New("getting goals by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g := entity.Goal{}
		err = rows.Scan(&g.ID, &g.UserID, &g.GoalType, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Deadline, &g.Status, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx,
		`UPDATE goals SET goal_type = $1, target_value = $2, current_value = $3, unit = $4, deadline = $5, status = $6, updated_at = NOW()
		WHERE id = $7;`,
		goal.GoalType,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Unit,
		goal.Deadline,
		goal.Status,
		goal.ID,
	)
	if err != nil {
		return errors.New("error updating goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

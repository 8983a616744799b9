package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user with all owned records (FK cascade)
	Delete(ctx context.Context, uid uuid.UUID) error
}

// WorkoutFilter narrows listing queries. Zero From/To mean an open bound.
type WorkoutFilter struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type WorkoutsRepositoryI interface {
	// Creates new workout. UserID, ActivityType, DurationMin, CaloriesBurned,
	// WorkoutDate and Notes are taken from the given record
	Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error)
	// Searches workout with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	// Lists workouts owned by user with uid, newest date first
	GetByUserID(ctx context.Context, uid uuid.UUID, filter WorkoutFilter) ([]*entity.Workout, error)
	// Updates workout by ID (ID in workout is necessary)
	Update(ctx context.Context, workout *entity.Workout) error
	// Deletes workout with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns distinct workout dates of the user, newest first. Feeds the
	// streak calculator
	GetDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Returns count of user's workouts
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type GoalsRepositoryI interface {
	// Creates new goal from the given record
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user with uid. Empty status means any status
	GetByUserID(ctx context.Context, uid uuid.UUID, status string, limit, offset int) ([]*entity.Goal, error)
	// Updates goal by ID (ID in goal is necessary)
	Update(ctx context.Context, goal *entity.Goal) error
	// Deletes goal with id
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgressFilter narrows listing queries. Empty Metric means any metric.
type ProgressFilter struct {
	Metric string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type ProgressRepositoryI interface {
	// Creates new progress metric from the given record
	Create(ctx context.Context, metric *entity.ProgressMetric) (uuid.UUID, error)
	// Searches metric with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressMetric, error)
	// Lists metrics owned by user with uid, newest date first
	GetByUserID(ctx context.Context, uid uuid.UUID, filter ProgressFilter) ([]*entity.ProgressMetric, error)
	// Updates metric by ID (ID in metric is necessary)
	Update(ctx context.Context, metric *entity.ProgressMetric) error
	// Deletes metric with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// NewPool creates a shared pgx pool, registers its shutdown and fatals on
// connectivity problems. Repositories share one pool through ...WithConn
// constructors.
func NewPool(cfg DBConfig) PgConnection {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgx pool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgx pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

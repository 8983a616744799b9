package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/llmclient"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CreateWorkoutRequest struct {
	ActivityType   string    `validate:"required,min=2,max=100"`
	DurationMin    int       `validate:"required,gt=0,lte=1440"`
	CaloriesBurned float64   `validate:"gte=0"`
	WorkoutDate    time.Time `validate:"required"`
	Notes          string    `validate:"max=2000"`
}

// UpdateWorkoutRequest carries partial edits; nil fields stay untouched.
type UpdateWorkoutRequest struct {
	ActivityType   *string
	DurationMin    *int
	CaloriesBurned *float64
	WorkoutDate    *time.Time
	Notes          *string
}

type WorkoutsServiceI interface {
	CreateWorkout(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.Workout, error)
	GetWorkout(ctx context.Context, workoutID, userID uuid.UUID) (*entity.Workout, error)
	GetUserWorkouts(ctx context.Context, uid uuid.UUID, from, to time.Time, pagination PaginationOpts) ([]*entity.Workout, error)
	UpdateWorkout(ctx context.Context, workoutID, userID uuid.UUID, req *UpdateWorkoutRequest) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID, userID uuid.UUID) error
}

type CreateGoalRequest struct {
	GoalType     string    `validate:"required,min=2,max=100"`
	TargetValue  float64   `validate:"required,gt=0"`
	CurrentValue float64   `validate:"gte=0"`
	Unit         string    `validate:"required,max=50"`
	Deadline     time.Time `validate:"required"`
}

// UpdateGoalRequest carries partial edits; nil fields stay untouched.
type UpdateGoalRequest struct {
	GoalType     *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Deadline     *time.Time
	Status       *string
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)
	GetUserGoals(ctx context.Context, uid uuid.UUID, status string, pagination PaginationOpts) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error
}

type CreateProgressRequest struct {
	Metric     string    `validate:"required,min=2,max=100"`
	Value      float64   `validate:"gte=0"`
	Unit       string    `validate:"required,max=50"`
	MetricDate time.Time `validate:"required"`
	Notes      string    `validate:"max=2000"`
}

// UpdateProgressRequest carries partial edits; nil fields stay untouched.
type UpdateProgressRequest struct {
	Metric     *string
	Value      *float64
	Unit       *string
	MetricDate *time.Time
	Notes      *string
}

type ProgressServiceI interface {
	CreateMetric(ctx context.Context, uid uuid.UUID, req *CreateProgressRequest) (*entity.ProgressMetric, error)
	GetMetric(ctx context.Context, metricID, userID uuid.UUID) (*entity.ProgressMetric, error)
	GetUserMetrics(ctx context.Context, uid uuid.UUID, metric string, from, to time.Time, pagination PaginationOpts) ([]*entity.ProgressMetric, error)
	UpdateMetric(ctx context.Context, metricID, userID uuid.UUID, req *UpdateProgressRequest) (*entity.ProgressMetric, error)
	DeleteMetric(ctx context.Context, metricID, userID uuid.UUID) error
}

type AnalyticsServiceI interface {
	// Summary statistics over the user's workouts of the last days
	GetSummary(ctx context.Context, uid uuid.UUID, days int) (*entity.WorkoutSummary, error)
	// Current and longest consecutive-day streaks over all history
	GetStreak(ctx context.Context, uid uuid.UUID) (*entity.WorkoutStreak, error)
	// Linear completion projections for the user's active goals
	GetGoalProjections(ctx context.Context, uid uuid.UUID) ([]entity.GoalProjection, error)
	// Full workout history as CSV
	ExportCSV(ctx context.Context, uid uuid.UUID) ([]byte, error)
}

type LLMClientI interface {
	ChatCompletion(ctx context.Context, messages []llmclient.Message, tools []llmclient.Tool) (*llmclient.Message, error)
}

type RetrieverI interface {
	Retrieve(ctx context.Context, query string, k int) ([]string, error)
}

type ToolUse struct {
	Tool   string `json:"tool"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

type ChatResult struct {
	Response  string    `json:"response"`
	ToolsUsed []ToolUse `json:"tools_used"`
}

type ChatServiceI interface {
	// Runs one chat turn for the user, with optional knowledge retrieval
	Chat(ctx context.Context, uid uuid.UUID, message string, useRAG bool) (*ChatResult, error)
	// Lists tool specs exposed to the model
	ToolSpecs() []llmclient.ToolSpec
	// Conversation history kept for the user
	Memory(uid uuid.UUID) []llmclient.Message
	ClearMemory(uid uuid.UUID)
}

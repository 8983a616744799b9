package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Workout struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	ActivityType   string    `json:"activity_type"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	WorkoutDate    time.Time `json:"workout_date"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

type Goal struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	GoalType     string    `json:"goal_type"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Unit         string    `json:"unit"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProgressMetric struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	MetricDate time.Time `json:"metric_date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorkoutStreak struct {
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	LastWorkoutDate *time.Time `json:"last_workout_date,omitempty"`
}

type WeeklyBucket struct {
	WeekStart   time.Time `json:"week_start"`
	Workouts    int       `json:"workouts"`
	DurationMin int       `json:"duration_min"`
	Calories    float64   `json:"calories"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WorkoutSummary struct {
	TotalWorkouts    int            `json:"total_workouts"`
	TotalDurationMin int            `json:"total_duration_min"`
	TotalCalories    float64        `json:"total_calories"`
	AvgDurationMin   float64        `json:"avg_duration_min"`
	AvgCalories      float64        `json:"avg_calories"`
	WorkoutsByType   map[string]int `json:"workouts_by_type"`
	WeeklyTrend      []WeeklyBucket `json:"weekly_trend"`
	Streak           WorkoutStreak  `json:"streak"`
	Achievements     []Achievement  `json:"achievements"`
}

type GoalProjection struct {
	GoalID        uuid.UUID  `json:"goal_id"`
	GoalType      string     `json:"goal_type"`
	ProgressPct   float64    `json:"progress_pct"`
	Projectable   bool       `json:"projectable"`
	DaysRemaining int        `json:"days_remaining,omitempty"`
	ProjectedDate *time.Time `json:"projected_date,omitempty"`
	Deadline      time.Time  `json:"deadline"`
	OnTrack       bool       `json:"on_track"`
}

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"log"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	analyticsFetchLimit = 1000
	trendWeeks          = 8
)

type AnalyticsService struct {
	workoutsRepo repository.WorkoutsRepositoryI
	goalsRepo    repository.GoalsRepositoryI
}

func NewAnalyticsService(workoutsRepo repository.WorkoutsRepositoryI, goalsRepo repository.GoalsRepositoryI) *AnalyticsService {
	if workoutsRepo == nil || goalsRepo == nil {
		log.Fatal("on analytics service provided nil repos")
	}
	return &AnalyticsService{
		workoutsRepo: workoutsRepo,
		goalsRepo:    goalsRepo,
	}
}

func (as *AnalyticsService) GetSummary(ctx context.Context, uid uuid.UUID, days int) (*entity.WorkoutSummary, error) {
	if days < 1 {
		days = 30
	}
	from := normalizeDay(time.Now()).AddDate(0, 0, -days)
	workouts, err := as.workoutsRepo.GetByUserID(ctx, uid, repository.WorkoutFilter{
		From:  from,
		Limit: analyticsFetchLimit,
	})
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}

	summary := entity.WorkoutSummary{
		WorkoutsByType: make(map[string]int),
		WeeklyTrend:    []entity.WeeklyBucket{},
		Achievements:   []entity.Achievement{},
	}
	dates := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		summary.TotalWorkouts++
		summary.TotalDurationMin += w.DurationMin
		summary.TotalCalories += w.CaloriesBurned
		summary.WorkoutsByType[w.ActivityType]++
		dates = append(dates, w.WorkoutDate)
	}
	if summary.TotalWorkouts > 0 {
		summary.AvgDurationMin = round2(float64(summary.TotalDurationMin) / float64(summary.TotalWorkouts))
		summary.AvgCalories = round2(summary.TotalCalories / float64(summary.TotalWorkouts))
	}
	summary.WeeklyTrend = weeklyTrend(workouts)
	summary.Streak = ComputeStreak(dates)
	summary.Achievements = achievements(workouts, summary.Streak.CurrentStreak)
	return &summary, nil
}

func (as *AnalyticsService) GetStreak(ctx context.Context, uid uuid.UUID) (*entity.WorkoutStreak, error) {
	dates, err := as.workoutsRepo.GetDates(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	streak := ComputeStreak(dates)
	return &streak, nil
}

func (as *AnalyticsService) GetGoalProjections(ctx context.Context, uid uuid.UUID) ([]entity.GoalProjection, error) {
	goals, err := as.goalsRepo.GetByUserID(ctx, uid, entity.GoalStatusActive, analyticsFetchLimit, 0)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	now := time.Now()
	projections := make([]entity.GoalProjection, 0, len(goals))
	for _, g := range goals {
		projections = append(projections, ProjectGoal(g, now))
	}
	return projections, nil
}

func (as *AnalyticsService) ExportCSV(ctx context.Context, uid uuid.UUID) ([]byte, error) {
	workouts, err := as.workoutsRepo.GetByUserID(ctx, uid, repository.WorkoutFilter{
		Limit: analyticsFetchLimit * 10,
	})
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	var buf bytes.Buffer
	wr := csv.NewWriter(&buf)
	wr.Write([]string{"date", "activity_type", "duration_min", "calories_burned", "notes"})
	for _, w := range workouts {
		wr.Write([]string{
			w.WorkoutDate.Format(time.DateOnly),
			w.ActivityType,
			strconv.Itoa(w.DurationMin),
			strconv.FormatFloat(w.CaloriesBurned, 'f', -1, 64),
			w.Notes,
		})
	}
	wr.Flush()
	if wr.Error() != nil {
		return nil, errors.New("writing csv error: " + wr.Error().Error())
	}
	return buf.Bytes(), nil
}

// weeklyTrend buckets workouts by the Monday their week starts on and keeps
// the most recent trendWeeks buckets, oldest first.
func weeklyTrend(workouts []*entity.Workout) []entity.WeeklyBucket {
	buckets := make(map[time.Time]*entity.WeeklyBucket)
	for _, w := range workouts {
		day := normalizeDay(w.WorkoutDate)
		offset := (int(day.Weekday()) + 6) % 7
		weekStart := day.AddDate(0, 0, -offset)
		b, ok := buckets[weekStart]
		if !ok {
			b = &entity.WeeklyBucket{WeekStart: weekStart}
			buckets[weekStart] = b
		}
		b.Workouts++
		b.DurationMin += w.DurationMin
		b.Calories += w.CaloriesBurned
	}
	trend := make([]entity.WeeklyBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Calories = round2(b.Calories)
		trend = append(trend, *b)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].WeekStart.Before(trend[j].WeekStart) })
	if len(trend) > trendWeeks {
		trend = trend[len(trend)-trendWeeks:]
	}
	return trend
}

func achievements(workouts []*entity.Workout, currentStreak int) []entity.Achievement {
	result := make([]entity.Achievement, 0)
	totalCalories := 0.0
	types := make(map[string]struct{})
	for _, w := range workouts {
		totalCalories += w.CaloriesBurned
		types[w.ActivityType] = struct{}{}
	}
	if len(workouts) >= 10 {
		result = append(result, entity.Achievement{Title: "Dedicated", Description: "10+ workouts completed"})
	}
	if len(workouts) >= 50 {
		result = append(result, entity.Achievement{Title: "Committed", Description: "50+ workouts completed"})
	}
	if len(workouts) >= 100 {
		result = append(result, entity.Achievement{Title: "Champion", Description: "100+ workouts completed"})
	}
	if totalCalories >= 5000 {
		result = append(result, entity.Achievement{Title: "Calorie Crusher", Description: "5000+ calories burned"})
	}
	if totalCalories >= 10000 {
		result = append(result, entity.Achievement{Title: "Fat Burner", Description: "10000+ calories burned"})
	}
	if len(types) >= 3 {
		result = append(result, entity.Achievement{Title: "Versatile", Description: "3+ different workout types"})
	}
	if currentStreak >= 7 {
		result = append(result, entity.Achievement{Title: "Week Warrior", Description: "7-day workout streak"})
	}
	if currentStreak >= 30 {
		result = append(result, entity.Achievement{Title: "Month Master", Description: "30-day workout streak"})
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package service

import (
	"math"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

// ProjectGoal linearly extrapolates when a goal will be reached from the
// progress rate measured since the goal was created. A goal with no measured
// rate (nothing logged yet, or no elapsed time) is reported as not
// projectable instead of producing a division by zero. The progress
// percentage is clamped to [0, 100] for display; stored goal values are
// never touched.
func ProjectGoal(goal *entity.Goal, now time.Time) entity.GoalProjection {
	p := entity.GoalProjection{
		GoalID:   goal.ID,
		GoalType: goal.GoalType,
		Deadline: goal.Deadline,
	}
	if goal.TargetValue > 0 {
		p.ProgressPct = goal.CurrentValue / goal.TargetValue * 100
	}
	if p.ProgressPct > 100 {
		p.ProgressPct = 100
	}
	if p.ProgressPct < 0 {
		p.ProgressPct = 0
	}
	p.ProgressPct = math.Round(p.ProgressPct*10) / 10

	if goal.CurrentValue >= goal.TargetValue {
		// Already met: on track no matter what the rate was.
		p.ProgressPct = 100
		p.Projectable = true
		p.OnTrack = true
		d := normalizeDay(now)
		p.ProjectedDate = &d
		return p
	}

	elapsedDays := now.Sub(goal.CreatedAt).Hours() / 24
	if elapsedDays <= 0 || goal.CurrentValue <= 0 {
		// Cannot project without a measured rate of change.
		return p
	}
	rate := goal.CurrentValue / elapsedDays
	remaining := goal.TargetValue - goal.CurrentValue
	days := int(math.Ceil(remaining / rate))
	projected := normalizeDay(now).AddDate(0, 0, days)

	p.Projectable = true
	p.DaysRemaining = days
	p.ProjectedDate = &projected
	p.OnTrack = !projected.After(goal.Deadline)
	return p
}

package service

import (
	"sort"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

// normalizeDay drops the time-of-day part so streak math works on calendar
// days regardless of how the date came out of the driver.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak reports the current and longest consecutive-day workout
// streaks. The current streak is anchored at the most recent workout day and
// counts backwards while every previous day has a workout; any gap longer
// than one day ends a run. Empty input means no streak at all.
func ComputeStreak(dates []time.Time) entity.WorkoutStreak {
	if len(dates) == 0 {
		return entity.WorkoutStreak{}
	}
	uniq := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		uniq[normalizeDay(d)] = struct{}{}
	}
	days := make([]time.Time, 0, len(uniq))
	for d := range uniq {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	last := days[0]
	current := 0
	longest := 0
	run := 1
	firstRun := true
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			run++
			continue
		}
		if firstRun {
			current = run
			firstRun = false
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if firstRun {
		current = run
	}
	if run > longest {
		longest = run
	}
	return entity.WorkoutStreak{
		CurrentStreak:   current,
		LongestStreak:   longest,
		LastWorkoutDate: &last,
	}
}

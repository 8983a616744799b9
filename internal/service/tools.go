package service

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/llmclient"
)

// ChatTool couples a tool spec shown to the model with the function run when
// the model calls it. Run receives the raw JSON arguments string.
type ChatTool struct {
	Spec llmclient.Tool
	Run  func(ctx context.Context, uid uuid.UUID, args string) (string, error)
}

// FitnessTools builds the tool set the chat agent can call to look up the
// user's own data.
func FitnessTools(analytics AnalyticsServiceI) []ChatTool {
	return []ChatTool{
		{
			Spec: llmclient.Tool{
				Type: "function",
				Function: llmclient.ToolSpec{
					Name:        "workout_stats",
					Description: "Summary statistics of the user's workouts over the last 30 days: totals, averages, counts by activity type, weekly trend and achievements.",
				},
			},
			Run: func(ctx context.Context, uid uuid.UUID, _ string) (string, error) {
				summary, err := analytics.GetSummary(ctx, uid, 30)
				if err != nil {
					return "", errors.New("getting workout stats error: " + err.Error())
				}
				return marshalToolResult(summary)
			},
		},
		{
			Spec: llmclient.Tool{
				Type: "function",
				Function: llmclient.ToolSpec{
					Name:        "goal_progress",
					Description: "Progress and projected completion dates for the user's active goals.",
				},
			},
			Run: func(ctx context.Context, uid uuid.UUID, _ string) (string, error) {
				projections, err := analytics.GetGoalProjections(ctx, uid)
				if err != nil {
					return "", errors.New("getting goal progress error: " + err.Error())
				}
				return marshalToolResult(projections)
			},
		},
		{
			Spec: llmclient.Tool{
				Type: "function",
				Function: llmclient.ToolSpec{
					Name:        "workout_streak",
					Description: "The user's current and longest consecutive-day workout streaks.",
				},
			},
			Run: func(ctx context.Context, uid uuid.UUID, _ string) (string, error) {
				streak, err := analytics.GetStreak(ctx, uid)
				if err != nil {
					return "", errors.New("getting workout streak error: " + err.Error())
				}
				return marshalToolResult(streak)
			},
		},
	}
}

func marshalToolResult(v any) (string, error) {
	data, err := sonic.ConfigDefault.Marshal(v)
	if err != nil {
		return "", errors.New("marshalling tool result error: " + err.Error())
	}
	return string(data), nil
}

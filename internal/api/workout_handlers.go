package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type CreateWorkoutRequest struct {
	ActivityType   string    `json:"activity_type"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	WorkoutDate    time.Time `json:"workout_date"`
	Notes          string    `json:"notes"`
}

type UpdateWorkoutRequest struct {
	ActivityType   *string    `json:"activity_type"`
	DurationMin    *int       `json:"duration_min"`
	CaloriesBurned *float64   `json:"calories_burned"`
	WorkoutDate    *time.Time `json:"workout_date"`
	Notes          *string    `json:"notes"`
}

type GetWorkoutsResponse struct {
	UserID   string            `json:"uid"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Workouts []*entity.Workout `json:"workouts"`
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutsService.CreateWorkout(ctx, uid, &service.CreateWorkoutRequest{
		ActivityType:   req.ActivityType,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		WorkoutDate:    req.WorkoutDate,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDateNotAllowed):
			logger.Error("create workout error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "workout date can't be in the future", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create workout: user doesn't exist", nil)
		default:
			logger.Error("create workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create workout", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout created")
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	from, to, err := parseDateRange(r)
	if err != nil {
		logger.Error("get workouts error: invalid date range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range, expected YYYY-MM-DD", nil)
		return
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workouts, err := s.workoutsService.GetUserWorkouts(ctx, uid, from, to, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting workouts list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Workouts: workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutsService.GetWorkout(ctx, id, uid)
	if err != nil {
		writeWorkoutError(w, logger, "get workout error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout provided")
}

func (s *Server) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req UpdateWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutsService.UpdateWorkout(ctx, id, uid, &service.UpdateWorkoutRequest{
		ActivityType:   req.ActivityType,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		WorkoutDate:    req.WorkoutDate,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDateNotAllowed):
			logger.Error("update workout error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "workout date can't be in the future", nil)
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update workout error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("update workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't update workout", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout updated")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutsService.DeleteWorkout(ctx, id, uid)
	if err != nil {
		writeWorkoutError(w, logger, "workout deletion error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("workout deleted")
}

func writeWorkoutError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(prefix + ": unexist workout")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal workout error", nil)
	}
}

// parseDateRange reads optional from/to query parameters in YYYY-MM-DD form.
// Absent parameters come back as zero times.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(time.DateOnly, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(time.DateOnly, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

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

type CreateProgressRequest struct {
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	MetricDate time.Time `json:"metric_date"`
	Notes      string    `json:"notes"`
}

type UpdateProgressRequest struct {
	Metric     *string    `json:"metric"`
	Value      *float64   `json:"value"`
	Unit       *string    `json:"unit"`
	MetricDate *time.Time `json:"metric_date"`
	Notes      *string    `json:"notes"`
}

type GetProgressResponse struct {
	UserID  string                   `json:"uid"`
	Page    int                      `json:"page"`
	Limit   int                      `json:"limit"`
	Metrics []*entity.ProgressMetric `json:"metrics"`
}

func (s *Server) CreateProgressMetric(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create metric error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create metric error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metric, err := s.progressService.CreateMetric(ctx, uid, &service.CreateProgressRequest{
		Metric:     req.Metric,
		Value:      req.Value,
		Unit:       req.Unit,
		MetricDate: req.MetricDate,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create metric error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create metric: user doesn't exist", nil)
		default:
			logger.Error("create metric error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create metric", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, metric)
	logger.Info("progress metric created")
}

func (s *Server) GetProgressMetrics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get metrics error: unauthorized")
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
		logger.Error("get metrics error: invalid date range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range, expected YYYY-MM-DD", nil)
		return
	}
	metricName := r.URL.Query().Get("metric")
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	metrics, err := s.progressService.GetUserMetrics(ctx, uid, metricName, from, to, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting metrics list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting metrics list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetProgressResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Metrics: metrics,
	})
	logger.Info("progress metrics provided")
}

func (s *Server) GetProgressMetric(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get metric error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get metric error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid metric id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metric, err := s.progressService.GetMetric(ctx, id, uid)
	if err != nil {
		writeMetricError(w, logger, "get metric error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metric)
	logger.Info("progress metric provided")
}

func (s *Server) UpdateProgressMetric(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update metric error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update metric error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid metric id in path value", nil)
		return
	}
	var req UpdateProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update metric error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metric, err := s.progressService.UpdateMetric(ctx, id, uid, &service.UpdateProgressRequest{
		Metric:     req.Metric,
		Value:      req.Value,
		Unit:       req.Unit,
		MetricDate: req.MetricDate,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrMetricNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update metric error: unexist metric")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "metric doesn't exist", nil)
		default:
			logger.Error("update metric error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't update metric", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metric)
	logger.Info("progress metric updated")
}

func (s *Server) DeleteProgressMetric(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("metric deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("metric deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid metric id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.progressService.DeleteMetric(ctx, id, uid)
	if err != nil {
		writeMetricError(w, logger, "metric deletion error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("progress metric deleted")
}

func writeMetricError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrMetricNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(prefix + ": unexist metric")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "metric doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal metric error", nil)
	}
}

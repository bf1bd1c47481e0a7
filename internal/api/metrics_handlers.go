package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/httputil"
)

const detectTimeout = 30 * time.Second

type ListMetricsResponse struct {
	ChallengeID string                         `json:"challenge_id"`
	Days        []entity.DailyChallengeMetrics `json:"days"`
}

type PatternsResponse struct {
	ChallengeID string                   `json:"challenge_id"`
	Patterns    []entity.BehaviorPattern `json:"patterns"`
	// Set when some detectors failed to store their result
	Partial bool   `json:"partial,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

func (s *Server) RecalculateDay(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("recalculate day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("recalculate day error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		lg.Warn("recalculate day error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	metrics, err := s.metricsService.RecalculateDay(ctx, uid, id, date)
	if err != nil {
		writeServiceError(w, lg, "recalculate day", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metrics)
	lg.Info("day recalculated", "challenge_id", id.String(), "date", date.Format(entity.DateLayout))
}

func (s *Server) ListMetrics(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("list metrics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("list metrics error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	days, err := s.metricsService.ListMetrics(ctx, uid, id)
	if err != nil {
		writeServiceError(w, lg, "list metrics", err)
		return
	}
	if days == nil {
		days = []entity.DailyChallengeMetrics{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListMetricsResponse{
		ChallengeID: id.String(),
		Days:        days,
	})
}

func (s *Server) UpdateReflection(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("update reflection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("update reflection error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		lg.Warn("update reflection error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	var req entity.Reflection
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		lg.Warn("update reflection error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.metricsService.UpdateReflection(ctx, uid, id, date, req); err != nil {
		writeServiceError(w, lg, "update reflection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DetectPatterns(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("detect patterns error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("detect patterns error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), detectTimeout)
	defer cancel()
	patterns, err := s.patternService.DetectPatterns(ctx, uid, id)
	if err != nil && patterns == nil {
		writeServiceError(w, lg, "detect patterns", err)
		return
	}
	resp := PatternsResponse{
		ChallengeID: id.String(),
		Patterns:    patterns,
	}
	if err != nil {
		lg.Warn("some detectors failed", "error", err.Error())
		resp.Partial = true
		resp.Errors = err.Error()
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	lg.Info("patterns detected", "challenge_id", id.String(), "count", len(patterns))
}

func (s *Server) ListPatterns(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("list patterns error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("list patterns error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	patterns, err := s.patternService.ListPatterns(ctx, uid, id)
	if err != nil {
		writeServiceError(w, lg, "list patterns", err)
		return
	}
	if patterns == nil {
		patterns = []entity.BehaviorPattern{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PatternsResponse{
		ChallengeID: id.String(),
		Patterns:    patterns,
	})
}

func (s *Server) GetDayMetrics(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("get day metrics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("get day metrics error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		lg.Warn("get day metrics error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	metrics, err := s.metricsService.GetDayMetrics(ctx, uid, id, date)
	if err != nil {
		writeServiceError(w, lg, "get day metrics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metrics)
}

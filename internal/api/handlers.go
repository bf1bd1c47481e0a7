package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/httputil"
	"github.com/limbo/progressly/pkg/logger"
)

const requestTimeout = 10 * time.Second

type CreateChallengeRequest struct {
	Name               string                      `json:"name"`
	StartDate          string                      `json:"start_date"`
	DurationDays       int                         `json:"duration_days"`
	Commitments        []service.CommitmentRequest `json:"commitments"`
	IdentityStatement  string                      `json:"identity_statement"`
	WhyStatement       string                      `json:"why_statement"`
	ObstaclePrediction string                      `json:"obstacle_prediction"`
	SuccessThreshold   *int                        `json:"success_threshold,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type LogActivityRequest struct {
	Name       string `json:"name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	CategoryID string `json:"category_id"`
	Date       string `json:"date"`
}

type ListActivitiesResponse struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Activities []entity.Activity `json:"activities"`
}

type ListCategoriesResponse struct {
	Categories []entity.Category `json:"categories"`
}

// writeServiceError maps service sentinels onto HTTP statuses. Anything not
// listed is logged as an internal error.
func writeServiceError(w http.ResponseWriter, lg *logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidClock),
		errors.Is(err, errorvalues.ErrInvalidStatus),
		errors.Is(err, errorvalues.ErrInvalidReflection),
		errors.Is(err, errorvalues.ErrDateOutsideChallenge):
		lg.Warn(op+" error: bad request", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrChallengeNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner):
		lg.Warn(op + " error: challenge not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrCategoryNotFound):
		lg.Warn(op + " error: category not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrMetricsNotFound):
		lg.Warn(op + " error: metrics not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no metrics for this day", nil)
	case errors.Is(err, errorvalues.ErrCategoryExists):
		lg.Warn(op + " error: category exists")
		httputil.WriteErrorResponse(w, http.StatusConflict, "category with this name already exists", nil)
	case errors.Is(err, errorvalues.ErrActiveChallengeExists):
		lg.Warn(op + " error: active challenge exists")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user already has an active challenge", nil)
	default:
		lg.Error(op+" error: service error", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(entity.DateLayout, s, time.UTC)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChallengeRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		lg.Warn("create challenge error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		lg.Warn("create challenge error: invalid start date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
		Name:               req.Name,
		StartDate:          start,
		DurationDays:       req.DurationDays,
		Commitments:        req.Commitments,
		IdentityStatement:  req.IdentityStatement,
		WhyStatement:       req.WhyStatement,
		ObstaclePrediction: req.ObstaclePrediction,
		SuccessThreshold:   req.SuccessThreshold,
	})
	if err != nil {
		writeServiceError(w, lg, "create challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	lg.Info("challenge created", "challenge_id", challenge.ID.String())
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	challenge, err := s.challengesService.GetChallenge(ctx, uid, id)
	if err != nil {
		writeServiceError(w, lg, "get challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
}

func (s *Server) GetActiveChallenge(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("get active challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	challenge, err := s.challengesService.GetActiveChallenge(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "get active challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
}

func (s *Server) UpdateChallengeStatus(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("update status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lg.Warn("update status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	var req UpdateStatusRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		lg.Warn("update status error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.challengesService.UpdateStatus(ctx, uid, id, entity.ChallengeStatus(req.Status)); err != nil {
		writeServiceError(w, lg, "update status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	lg.Info("challenge status updated", "challenge_id", id.String(), "status", req.Status)
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("create category error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.CreateCategoryRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		lg.Warn("create category error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	category, err := s.categoriesService.CreateCategory(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, lg, "create category", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, category)
	lg.Info("category created", "category_id", category.ID.String())
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("list categories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	categories, err := s.categoriesService.ListCategories(ctx, uid)
	if err != nil {
		writeServiceError(w, lg, "list categories", err)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListCategoriesResponse{Categories: categories})
}

func (s *Server) LogActivity(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("log activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogActivityRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		lg.Warn("log activity error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		lg.Warn("log activity error: invalid category id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		lg.Warn("log activity error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activity, err := s.activitiesService.LogActivity(ctx, uid, &service.LogActivityRequest{
		Name:       req.Name,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		CategoryID: categoryID,
		Date:       date,
	})
	if err != nil {
		writeServiceError(w, lg, "log activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	lg.Info("activity logged", "activity_id", activity.ID.String())
}

func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	lg := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		lg.Error("list activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		lg.Warn("list activities error: invalid from")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be YYYY-MM-DD", nil)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		lg.Warn("list activities error: invalid to")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must be YYYY-MM-DD", nil)
		return
	}
	if to.Before(from) {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "to is before from", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activities, err := s.activitiesService.ListActivities(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, lg, "list activities", err)
		return
	}
	if activities == nil {
		activities = []entity.Activity{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListActivitiesResponse{
		From:       from.Format(entity.DateLayout),
		To:         to.Format(entity.DateLayout),
		Activities: activities,
	})
}

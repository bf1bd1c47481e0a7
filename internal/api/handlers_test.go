package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/progressly/internal/api"
	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/internal/service/mocks"
	"github.com/limbo/progressly/pkg/entity"
	jwtservice "github.com/limbo/progressly/pkg/jwt_service"
)

const jwtSecret = "test-secret"

var uid = uuid.New()

type testServer struct {
	serv       *api.Server
	challenges *mocks.MockChallengesServiceI
	activities *mocks.MockActivitiesServiceI
	categories *mocks.MockCategoriesServiceI
	metrics    *mocks.MockMetricsServiceI
	patterns   *mocks.MockPatternServiceI
	token      string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	ts := &testServer{
		challenges: mocks.NewMockChallengesServiceI(ctrl),
		activities: mocks.NewMockActivitiesServiceI(ctrl),
		categories: mocks.NewMockCategoriesServiceI(ctrl),
		metrics:    mocks.NewMockMetricsServiceI(ctrl),
		patterns:   mocks.NewMockPatternServiceI(ctrl),
	}
	jwtSvc := jwtservice.New(jwtSecret)
	token, err := jwtSvc.GenerateToken(uid)
	require.NoError(t, err)
	ts.token = token
	ts.serv = api.New(&api.ServicesList{
		ChallengesService: ts.challenges,
		ActivitiesService: ts.activities,
		CategoriesService: ts.categories,
		MetricsService:    ts.metrics,
		PatternService:    ts.patterns,
		JwtService:        jwtSvc,
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+ts.token)
	rr := httptest.NewRecorder()
	ts.serv.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	ts.serv.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t)
	t.Run("no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/active", nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("foreign signature", func(t *testing.T) {
		other, err := jwtservice.New("another-secret").GenerateToken(uid)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/active", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("valid token", func(t *testing.T) {
		ts.challenges.EXPECT().GetActiveChallenge(gomock.Any(), uid).
			Return(&entity.Challenge{ID: uuid.New(), UserID: uid}, nil)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/active", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer a b", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", tc.header)
		token, err := api.GetTokenFromHeader(req)
		if !tc.ok {
			assert.Error(t, err, tc.header)
			continue
		}
		assert.NoError(t, err, tc.header)
		assert.Equal(t, tc.token, token)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/active", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	ts.serv.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, rr.Body.String(), `"request_id":"req-42"`)
}

func TestCreateChallenge(t *testing.T) {
	body := api.CreateChallengeRequest{
		Name:         "30 days of code",
		StartDate:    "2024-01-01",
		DurationDays: 30,
		Commitments: []service.CommitmentRequest{{
			Habit:     "code",
			Category:  "Coding",
			Target:    entity.NumericTarget(2),
			Frequency: service.FrequencyRequest{Type: "daily"},
		}},
	}
	t.Run("created", func(t *testing.T) {
		ts := newTestServer(t)
		id := uuid.New()
		ts.challenges.EXPECT().CreateChallenge(gomock.Any(), uid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.CreateChallengeRequest) (*entity.Challenge, error) {
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), req.StartDate)
				assert.Len(t, req.Commitments, 1)
				return &entity.Challenge{ID: id, UserID: uid, Name: req.Name}, nil
			})
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges", body)
		require.Equal(t, http.StatusCreated, rr.Code)
		var got entity.Challenge
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, id, got.ID)
	})
	t.Run("active exists", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().CreateChallenge(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrActiveChallengeExists)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges", body)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("validation", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().CreateChallenge(gomock.Any(), uid, gomock.Any()).
			Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("name is required")))
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("bad start date", func(t *testing.T) {
		ts := newTestServer(t)
		bad := body
		bad.StartDate = "01/01/2024"
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges", bad)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("service failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().CreateChallenge(gomock.Any(), uid, gomock.Any()).
			Return(nil, errors.New("mocked error"))
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges", body)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetChallenge(t *testing.T) {
	id := uuid.New()
	t.Run("found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().GetChallenge(gomock.Any(), uid, id).
			Return(&entity.Challenge{ID: id, UserID: uid}, nil)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("other owner", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().GetChallenge(gomock.Any(), uid, id).
			Return(nil, errorvalues.ErrWrongOwner)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("invalid id", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateChallengeStatus(t *testing.T) {
	id := uuid.New()
	t.Run("updated", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().UpdateStatus(gomock.Any(), uid, id, entity.ChallengeAbandoned).Return(nil)
		rr := ts.do(t, http.MethodPatch, "/api/v1/challenges/"+id.String()+"/status", api.UpdateStatusRequest{Status: "abandoned"})
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("unknown status", func(t *testing.T) {
		ts := newTestServer(t)
		ts.challenges.EXPECT().UpdateStatus(gomock.Any(), uid, id, entity.ChallengeStatus("paused")).
			Return(errorvalues.ErrInvalidStatus)
		rr := ts.do(t, http.MethodPatch, "/api/v1/challenges/"+id.String()+"/status", api.UpdateStatusRequest{Status: "paused"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogActivity(t *testing.T) {
	categoryID := uuid.New()
	body := api.LogActivityRequest{
		Name:       "deep work",
		StartTime:  "09:00",
		EndTime:    "10:30",
		CategoryID: categoryID.String(),
		Date:       "2024-01-05",
	}
	t.Run("logged", func(t *testing.T) {
		ts := newTestServer(t)
		ts.activities.EXPECT().LogActivity(gomock.Any(), uid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.LogActivityRequest) (*entity.Activity, error) {
				assert.Equal(t, categoryID, req.CategoryID)
				assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), req.Date)
				return &entity.Activity{ID: uuid.New(), UserID: uid, Name: req.Name}, nil
			})
		rr := ts.do(t, http.MethodPost, "/api/v1/activities", body)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("unknown category", func(t *testing.T) {
		ts := newTestServer(t)
		ts.activities.EXPECT().LogActivity(gomock.Any(), uid, gomock.Any()).
			Return(nil, errorvalues.ErrCategoryNotFound)
		rr := ts.do(t, http.MethodPost, "/api/v1/activities", body)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("invalid category id", func(t *testing.T) {
		ts := newTestServer(t)
		bad := body
		bad.CategoryID = "coding"
		rr := ts.do(t, http.MethodPost, "/api/v1/activities", bad)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListActivities(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		ts := newTestServer(t)
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
		ts.activities.EXPECT().ListActivities(gomock.Any(), uid, from, to).Return(nil, nil)
		rr := ts.do(t, http.MethodGet, "/api/v1/activities?from=2024-01-01&to=2024-01-07", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var got api.ListActivitiesResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
		assert.NotNil(t, got.Activities)
		assert.Empty(t, got.Activities)
	})
	t.Run("missing from", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/api/v1/activities?to=2024-01-07", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("reversed range", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/api/v1/activities?from=2024-01-07&to=2024-01-01", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ts := newTestServer(t)
		id := uuid.New()
		ts.categories.EXPECT().CreateCategory(gomock.Any(), uid, &service.CreateCategoryRequest{Name: "Music", Color: "#112233"}).
			Return(&entity.Category{ID: id, UserID: &uid, Name: "Music", Color: "#112233"}, nil)
		rr := ts.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Music", "color": "#112233"})
		require.Equal(t, http.StatusCreated, rr.Code)
		var got entity.Category
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Music", got.Name)
	})
	t.Run("duplicate name", func(t *testing.T) {
		ts := newTestServer(t)
		ts.categories.EXPECT().CreateCategory(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrCategoryExists)
		rr := ts.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Music"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("invalid name", func(t *testing.T) {
		ts := newTestServer(t)
		ts.categories.EXPECT().CreateCategory(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rr := ts.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("empty body", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodPost, "/api/v1/categories", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListCategories(t *testing.T) {
	ts := newTestServer(t)
	ts.categories.EXPECT().ListCategories(gomock.Any(), uid).Return([]entity.Category{
		{ID: uuid.New(), Name: "Coding", Color: "#4F7CAC"},
		{ID: uuid.New(), UserID: &uid, Name: "Music", Color: "#112233"},
	}, nil)
	rr := ts.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got api.ListCategoriesResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Categories, 2)
	assert.Nil(t, got.Categories[0].UserID)
	require.NotNil(t, got.Categories[1].UserID)
	assert.Equal(t, uid, *got.Categories[1].UserID)
}

func TestGetDayMetrics(t *testing.T) {
	id := uuid.New()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	t.Run("stored", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().GetDayMetrics(gomock.Any(), uid, id, date).
			Return(&entity.DailyChallengeMetrics{ChallengeID: id, Date: date, DayNumber: 5, OverallCompletionPct: 60}, nil)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var got entity.DailyChallengeMetrics
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 5, got.DayNumber)
		assert.Equal(t, 60.0, got.OverallCompletionPct)
	})
	t.Run("not computed yet", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().GetDayMetrics(gomock.Any(), uid, id, date).Return(nil, errorvalues.ErrMetricsNotFound)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("invalid date", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String()+"/metrics/05-01-2024", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecalculateDay(t *testing.T) {
	id := uuid.New()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	t.Run("recalculated", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().RecalculateDay(gomock.Any(), uid, id, date).
			Return(&entity.DailyChallengeMetrics{ChallengeID: id, Date: date, DayNumber: 5, OverallCompletionPct: 75}, nil)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var got entity.DailyChallengeMetrics
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 5, got.DayNumber)
		assert.Equal(t, 75.0, got.OverallCompletionPct)
	})
	t.Run("outside challenge", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().RecalculateDay(gomock.Any(), uid, id, date).
			Return(nil, errorvalues.ErrDateOutsideChallenge)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("invalid date", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/metrics/yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListMetrics(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t)
	ts.metrics.EXPECT().ListMetrics(gomock.Any(), uid, id).
		Return([]entity.DailyChallengeMetrics{{ChallengeID: id, DayNumber: 1}, {ChallengeID: id, DayNumber: 2}}, nil)
	rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String()+"/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got api.ListMetricsResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got.Days, 2)
}

func TestUpdateReflection(t *testing.T) {
	id := uuid.New()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	energy := 4
	mood := "good"
	reflection := entity.Reflection{Mood: &mood, EnergyLevel: &energy}
	t.Run("stored", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().UpdateReflection(gomock.Any(), uid, id, date, reflection).Return(nil)
		rr := ts.do(t, http.MethodPatch, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05/reflection", reflection)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("no metrics yet", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().UpdateReflection(gomock.Any(), uid, id, date, gomock.Any()).
			Return(errorvalues.ErrMetricsNotFound)
		rr := ts.do(t, http.MethodPatch, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05/reflection", reflection)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("energy out of range", func(t *testing.T) {
		ts := newTestServer(t)
		ts.metrics.EXPECT().UpdateReflection(gomock.Any(), uid, id, date, gomock.Any()).
			Return(errorvalues.ErrInvalidReflection)
		rr := ts.do(t, http.MethodPatch, "/api/v1/challenges/"+id.String()+"/metrics/2024-01-05/reflection", reflection)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDetectPatterns(t *testing.T) {
	id := uuid.New()
	weak := *entity.NewBehaviorPattern(id, entity.WeakDayPattern{Day: "Monday", AvgCompletion: 50, SampleSize: 3}, 30)
	t.Run("all detectors stored", func(t *testing.T) {
		ts := newTestServer(t)
		ts.patterns.EXPECT().DetectPatterns(gomock.Any(), uid, id).Return([]entity.BehaviorPattern{weak}, nil)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/patterns", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"weak_day"`)
		assert.NotContains(t, rr.Body.String(), `"partial"`)
	})
	t.Run("partial failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.patterns.EXPECT().DetectPatterns(gomock.Any(), uid, id).
			Return([]entity.BehaviorPattern{weak}, errors.New("strong_time: patterns repository error: mocked"))
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/patterns", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"partial":true`)
	})
	t.Run("unknown challenge", func(t *testing.T) {
		ts := newTestServer(t)
		ts.patterns.EXPECT().DetectPatterns(gomock.Any(), uid, id).Return(nil, errorvalues.ErrChallengeNotFound)
		rr := ts.do(t, http.MethodPost, "/api/v1/challenges/"+id.String()+"/patterns", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListPatterns(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t)
	ts.patterns.EXPECT().ListPatterns(gomock.Any(), uid, id).Return(nil, nil)
	rr := ts.do(t, http.MethodGet, "/api/v1/challenges/"+id.String()+"/patterns", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"patterns":[]`)
}

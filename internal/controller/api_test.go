package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/testbank/internal/dto"
	"github.com/prepforge/testbank/internal/model"
	"github.com/prepforge/testbank/internal/repository"
	"github.com/prepforge/testbank/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "testbank.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Test{}, &model.Result{}))

	testRepo := repository.NewTestRepository(db)
	resultRepo := repository.NewResultRepository(db)
	testCtrl := NewTestController(service.NewTestService(testRepo, resultRepo))
	resultCtrl := NewResultController(service.NewResultService(resultRepo))
	healthCtrl := NewHealthController(db)

	router := gin.New()
	RegisterRoutes(router, testCtrl, resultCtrl, healthCtrl)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func testPayload(id string) dto.TestCreateDTO {
	return dto.TestCreateDTO{
		TestID:   id,
		Name:     "Math",
		Subject:  "Math",
		Duration: 60,
		Questions: []dto.QuestionDTO{
			{ID: 1, QuestionEn: "What is 2 + 2?", Options: []string{"3", "4"}, CorrectAnswer: 1},
		},
	}
}

func TestGetUnknownTestReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodGet, "/api/tests/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Test not found", resp.Message)
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route not found", resp.Message)
}

func TestCreateGetUpdateDeleteTest(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/api/tests", testPayload("t1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.TestResponse
	decodeBody(t, rec, &created)
	assert.True(t, created.Success)
	assert.Equal(t, "Test created successfully", created.Message)
	assert.Equal(t, "t1", created.Test.TestID)

	rec = performRequest(t, router, http.MethodGet, "/api/tests/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.TestResponse
	decodeBody(t, rec, &fetched)
	assert.Equal(t, "Math", fetched.Test.Name)
	require.Len(t, fetched.Test.Questions, 1)
	assert.Equal(t, []string{"3", "4"}, fetched.Test.Questions[0].Options)

	rec = performRequest(t, router, http.MethodPut, "/api/tests/t1", dto.TestUpdateDTO{
		Name: "Math (revised)", Subject: "Math", Duration: 45,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated dto.TestResponse
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Math (revised)", updated.Test.Name)
	assert.Equal(t, 45, updated.Test.Duration)

	rec = performRequest(t, router, http.MethodDelete, "/api/tests/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(t, router, http.MethodGet, "/api/tests/t1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDuplicateTestReturns409(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/api/tests", testPayload("t1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(t, router, http.MethodPost, "/api/tests", testPayload("t1"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp dto.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Test with this id already exists", resp.Message)

	var list dto.TestListResponse
	rec = performRequest(t, router, http.MethodGet, "/api/tests", nil)
	decodeBody(t, rec, &list)
	assert.Len(t, list.Tests, 1)
}

func TestInitDataSeedsOnlyOnce(t *testing.T) {
	router := newTestRouter(t)

	seed := []dto.TestCreateDTO{testPayload("t1"), testPayload("t2"), testPayload("t3")}

	rec := performRequest(t, router, http.MethodPost, "/api/init-data", seed)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.MessageResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Initialized database with 3 tests", resp.Message)

	rec = performRequest(t, router, http.MethodPost, "/api/init-data", seed)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Database already contains 3 tests", resp.Message)

	var list dto.TestListResponse
	rec = performRequest(t, router, http.MethodGet, "/api/tests", nil)
	decodeBody(t, rec, &list)
	assert.Len(t, list.Tests, 3)
}

func TestSubmitResultAndFetchByAttemptID(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/api/results", map[string]interface{}{
		"testId":         "t1",
		"totalQuestions": 10,
		"correctAnswers": 7,
		"wrongAnswers":   2,
		"skipped":        1,
		"score":          26,
		"percentage":     70,
		"timeTaken":      "42:10",
		"answers":        map[string]int{"1": 2},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var submitted dto.ResultResponse
	decodeBody(t, rec, &submitted)
	assert.True(t, submitted.Success)
	assert.Equal(t, "Result saved successfully", submitted.Message)
	assert.Regexp(t, `^attempt-\d+-[0-9a-z]{9}$`, submitted.Result.AttemptID)

	rec = performRequest(t, router, http.MethodGet, "/api/results/"+submitted.Result.AttemptID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched dto.ResultResponse
	decodeBody(t, rec, &fetched)
	assert.Equal(t, "t1", fetched.Result.TestID)
	assert.Equal(t, float64(70), fetched.Result.Percentage)
}

func TestGetUnknownResultReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodGet, "/api/results/attempt-0-aaaaaaaaa", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Result not found", resp.Message)
}

func TestResultsByTestWithStats(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/api/tests", testPayload("t1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, percentage := range []float64{70, 90} {
		rec = performRequest(t, router, http.MethodPost, "/api/results", map[string]interface{}{
			"testId":      "t1",
			"percentage":  percentage,
			"completedAt": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = performRequest(t, router, http.MethodGet, "/api/results/test/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TestResultsResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, dto.StatsDTO{Attempts: 2, Best: 90, Last: 90, Average: 80}, resp.Stats)
}

func TestHistoryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, sub := range []struct {
		testID     string
		percentage float64
	}{{"t1", 70}, {"t1", 90}, {"t2", 40}} {
		rec := performRequest(t, router, http.MethodPost, "/api/results", map[string]interface{}{
			"testId":      sub.testID,
			"percentage":  sub.percentage,
			"completedAt": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := performRequest(t, router, http.MethodGet, "/api/results/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HistoryResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.History, 2)
	assert.Equal(t, 2, resp.History["t1"].Attempts)
	assert.Equal(t, float64(90), resp.History["t1"].Best)
	assert.Equal(t, float64(90), resp.History["t1"].Last)
	assert.Equal(t, 1, resp.History["t2"].Attempts)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, "Test series API is running", resp.Message)
}

func TestDeleteCascadeVisibleThroughAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := performRequest(t, router, http.MethodPost, "/api/tests", testPayload("t1"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(t, router, http.MethodPost, "/api/results", map[string]interface{}{
		"testId": "t1", "percentage": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(t, router, http.MethodDelete, "/api/tests/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(t, router, http.MethodGet, "/api/results/test/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TestResultsResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Stats.Attempts)
}

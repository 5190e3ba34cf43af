package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"astgym/gym-ai/internal/catalog"
	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/generation"
	"astgym/gym-ai/internal/logger"
	"astgym/gym-ai/internal/repository"
	"astgym/gym-ai/internal/repository/memory"
	"astgym/gym-ai/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubGenerator struct {
	program *domain.WorkoutProgram
	err     error
}

func (g stubGenerator) Generate(context.Context, generation.Request) (*domain.WorkoutProgram, error) {
	return g.program, g.err
}

type stubAnalyzer struct {
	err error
}

func (a stubAnalyzer) Analyze(context.Context, domain.UserPhysicalStats) (*domain.HealthAnalysis, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &domain.HealthAnalysis{BMI: 24.7, BodyType: "Mezomorf"}, nil
}

type testServer struct {
	router *gin.Engine
	store  *repository.AppStore
}

func newTestServer(t *testing.T, gen stubGenerator, analyzer stubAnalyzer, auth service.AuthService) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load()
	require.NoError(t, err)
	store := repository.NewAppStore(memory.NewKVStore())

	router := gin.New()
	router.Use(RequestLogger(logger.Nop()))
	SetupRoutes(router, Services{
		Auth:      auth,
		Program:   service.NewProgramService(store, gen, cat, nil),
		Log:       service.NewWorkoutLogService(store),
		Profile:   service.NewProfileService(store, analyzer),
		Dashboard: service.NewDashboardService(store),
	})
	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

var generatedProgram = &domain.WorkoutProgram{
	ID:          "gen-1",
	ProgramName: "Test",
	Days: []domain.WorkoutDay{{DayName: "Gün 1", Exercises: []domain.Exercise{{
		Name:  "Squat",
		Sets:  "3",
		Reps:  "10",
		Guide: &domain.ExerciseGuide{HowTo: "Bilgi yok", VideoLinks: []domain.VideoLink{{Title: "Squat", URI: "https://youtube.com/shorts/x"}}},
	}}}},
	CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
}

var generateBody = gin.H{"goal": "Kas Kazanımı", "level": "Orta Seviye", "daysPerWeek": 3, "equipment": "Dambıl"}

func TestPing(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGenerateProgram(t *testing.T) {
	s := newTestServer(t, stubGenerator{program: generatedProgram}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/programs/generate", generateBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got domain.WorkoutProgram
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "gen-1", got.ID)
	assert.Len(t, got.Days[0].Exercises[0].Guide.VideoLinks, 1)

	w = s.do(t, http.MethodGet, "/api/v1/program", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateProgram_GenerationErrorIs502(t *testing.T) {
	s := newTestServer(t, stubGenerator{err: generation.ErrGenerationParse}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/programs/generate", generateBody)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decodeError(t, w), "not valid JSON")

	w = s.do(t, http.MethodGet, "/api/v1/program", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateProgram_Validation(t *testing.T) {
	s := newTestServer(t, stubGenerator{program: generatedProgram}, stubAnalyzer{}, nil)

	for _, body := range []gin.H{
		{"level": "Orta Seviye", "daysPerWeek": 3},
		{"goal": "x", "level": "y", "daysPerWeek": 0},
		{"goal": "x", "level": "y", "daysPerWeek": 8},
	} {
		w := s.do(t, http.MethodPost, "/api/v1/programs/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprint(body))
	}
}

func TestGenerateProgram_NarrativeStillNeedsFormFields(t *testing.T) {
	s := newTestServer(t, stubGenerator{program: generatedProgram}, stubAnalyzer{}, nil)
	narrative := strings.Repeat("Haftada üç gün spor salonuna gidiyorum, dizimde eski bir sakatlık var. ", 2)

	w := s.do(t, http.MethodPost, "/api/v1/programs/generate", gin.H{"narrative": narrative})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/programs/generate", gin.H{
		"goal": "Kas Kazanımı", "level": "Orta Seviye", "daysPerWeek": 3, "narrative": narrative,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestStaticPrograms(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/programs/static", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []catalog.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = s.do(t, http.MethodPost, "/api/v1/programs/static/"+list[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/programs/static/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/program", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodGet, "/api/v1/program", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogs(t *testing.T) {
	s := newTestServer(t, stubGenerator{program: generatedProgram}, stubAnalyzer{}, nil)
	entry := gin.H{"dayIndex": 0, "exercises": []gin.H{{"name": "Squat", "weight": 60, "reps": 8}}}

	w := s.do(t, http.MethodPost, "/api/v1/logs", entry)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/programs/generate", generateBody).Code)

	w = s.do(t, http.MethodPost, "/api/v1/logs", entry)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/logs", gin.H{"dayIndex": 5, "exercises": entry["exercises"]})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/logs", gin.H{"dayIndex": 0, "exercises": []gin.H{{"name": "Squat", "reps": 0}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []domain.WorkoutLogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "Gün 1", logs[0].DayName)
}

func TestProfileAndDashboard(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"onboardingRequired":true`)

	w = s.do(t, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	stats := gin.H{"age": 28, "gender": "male", "height": 180, "weight": 80, "waist": 84, "neck": 38}
	w = s.do(t, http.MethodPost, "/api/v1/profile", gin.H{"name": "Sefa", "stats": stats})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Contains(t, w.Body.String(), `"onboardingRequired":false`)

	w = s.do(t, http.MethodPost, "/api/v1/profile", gin.H{"stats": gin.H{"age": 0}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfile_AnalysisFailureIs502(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{err: generation.ErrAnalysisEmptyResponse}, nil)
	stats := gin.H{"age": 30, "gender": "female", "height": 165, "weight": 60, "waist": 70, "neck": 32, "hip": 98}

	w := s.do(t, http.MethodPost, "/api/v1/profile", gin.H{"stats": stats})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("owner-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService(string(hash), "test-secret", time.Hour)
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{}, auth)

	w := s.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header is missing", decodeError(t, w))

	w = s.do(t, http.MethodGet, "/api/v1/dashboard", nil, "Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/token", gin.H{"passphrase": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/token", gin.H{"passphrase": "owner-pass"})
	require.Equal(t, http.StatusOK, w.Code)
	var tok TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.Token)

	w = s.do(t, http.MethodGet, "/api/v1/dashboard", nil, "Authorization", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthDisabledHasNoTokenRoute(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubAnalyzer{}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/auth/token", gin.H{"passphrase": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

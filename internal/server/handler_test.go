package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/adapters/api"
	"studyflow/internal/adapters/storage"
	"studyflow/internal/domain"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.SQLiteRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := gin.New()
	NewHandler(store).RegisterRoutes(router)
	return router, store
}

func doJSONRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func endedSession(start time.Time, minutes int) domain.Session {
	subject := "Algebra"
	return domain.NewSession(&subject, start).Ended(start.Add(time.Duration(minutes) * time.Minute))
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSONRequest(t, router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUploadSession_StoresSessionAndReflections(t *testing.T) {
	router, store := newTestRouter(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := endedSession(start, 25)
	reflection, err := domain.NewReflection(session.ID, "Exercises 1-10", domain.CompletionComplete, 4, start.Add(26*time.Minute))
	require.NoError(t, err)

	rec := doJSONRequest(t, router, http.MethodPost, "/api/sessions", api.SessionUpload{
		Session:     api.NewSessionPayload(session),
		Reflections: []api.ReflectionPayload{api.NewReflectionPayload(reflection)},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ack api.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.OK)

	ctx := context.Background()
	stored, err := store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
	require.NotNil(t, stored.EndedAt)

	reflections, err := store.FetchReflections(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, reflections, 1)
	assert.Equal(t, reflection.ID, reflections[0].ID)
}

func TestUploadSession_LastWriteWins(t *testing.T) {
	router, store := newTestRouter(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	running := domain.NewSession(nil, start)

	rec := doJSONRequest(t, router, http.MethodPost, "/api/sessions", api.SessionUpload{Session: api.NewSessionPayload(running)})
	require.Equal(t, http.StatusOK, rec.Code)

	ended := running.Ended(start.Add(time.Hour))
	rec = doJSONRequest(t, router, http.MethodPost, "/api/sessions", api.SessionUpload{Session: api.NewSessionPayload(ended)})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := store.GetSession(context.Background(), running.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.EndedAt)
}

func TestUploadSession_Validation(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := endedSession(start, 5)

	tests := []struct {
		name string
		body any
	}{
		{"malformed body", "not an object"},
		{"missing id", api.SessionUpload{Session: api.SessionPayload{StartedAt: start}}},
		{"missing start", api.SessionUpload{Session: api.SessionPayload{ID: "s1"}}},
		{"invalid reflection", api.SessionUpload{
			Session: api.NewSessionPayload(session),
			Reflections: []api.ReflectionPayload{{
				ID: "r1", SessionID: session.ID, Completion: "complete", Difficulty: 7,
			}},
		}},
		{"foreign reflection", api.SessionUpload{
			Session: api.NewSessionPayload(session),
			Reflections: []api.ReflectionPayload{{
				ID: "r1", SessionID: "other", Completion: "complete", Difficulty: 3,
			}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := doJSONRequest(t, router, http.MethodPost, "/api/sessions", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUploadReflection(t *testing.T) {
	router, store := newTestRouter(t)
	reflection, err := domain.NewReflection("s1", "Flashcards", domain.CompletionNone, 2, time.Now())
	require.NoError(t, err)

	rec := doJSONRequest(t, router, http.MethodPost, "/api/reflections", api.NewReflectionPayload(reflection))

	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := store.FetchReflections(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUploadReflection_InvalidCompletion(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSONRequest(t, router, http.MethodPost, "/api/reflections", api.ReflectionPayload{
		ID: "r1", SessionID: "s1", Completion: "mostly", Difficulty: 3,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid completion status")
}

func TestScoreReflection(t *testing.T) {
	router, store := newTestRouter(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := endedSession(start, 30)
	require.NoError(t, store.SaveSession(context.Background(), session))

	known, err := domain.NewReflection(session.ID, "Essay", domain.CompletionComplete, 5, start)
	require.NoError(t, err)
	unknown, err := domain.NewReflection("never-uploaded", "Essay", domain.CompletionComplete, 1, start)
	require.NoError(t, err)

	tests := []struct {
		name       string
		reflection domain.Reflection
		expected   float64
	}{
		{"uses stored duration", known, domain.CalculateEfficiency(domain.CompletionComplete, 5, 30)},
		{"assumes ten minutes", unknown, 31.97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSONRequest(t, router, http.MethodPost, "/api/reflections/score", api.NewReflectionPayload(tt.reflection))

			require.Equal(t, http.StatusOK, rec.Code)
			var resp api.ScoreResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.InDelta(t, tt.expected, resp.Score, 0.001)
		})
	}
}

package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"compound-words/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{"a", "b", "c", "dog", "dogabc"}

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := store.InitDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func newTestRouter(t *testing.T, db *sql.DB) http.Handler {
	t.Helper()
	return HandlerFromMux(NewServer(testWords, db, 2), chi.NewRouter())
}

func TestServer_CreateCompounds(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     any
		withDB          bool
		closeDB         bool
		expectedStatus  int
		expectedError   string
		expectedResults []string
	}{
		{
			name:            "Success",
			requestBody:     CompoundReq{Words: []string{"a", "b", "c", "dog", "dogabc"}, Target: 6},
			withDB:          true,
			expectedStatus:  http.StatusOK,
			expectedResults: []string{"dog+a+b+c=dogabc"},
		},
		{
			name:            "Success_WithoutDB",
			requestBody:     CompoundReq{Words: []string{"ab", "abab"}, Target: 4},
			expectedStatus:  http.StatusOK,
			expectedResults: []string{"ab+ab=abab"},
		},
		{
			name:            "Success_DuplicateAndEmptyWords",
			requestBody:     CompoundReq{Words: []string{"ab", "", "c", "ab", "abc"}, Target: 3},
			expectedStatus:  http.StatusOK,
			expectedResults: []string{"ab+c=abc"},
		},
		{
			name:            "Success_NoResults",
			requestBody:     CompoundReq{Words: []string{"x", "yyy"}, Target: 3},
			expectedStatus:  http.StatusOK,
			expectedResults: []string{},
		},
		{
			name:           "BadRequest_InvalidJSON",
			requestBody:    "{invalid-json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "BadRequest_NoWords",
			requestBody:    CompoundReq{Words: []string{""}, Target: 3},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "at least one word",
		},
		{
			name:           "UnprocessableEntity_InvalidTarget",
			requestBody:    CompoundReq{Words: []string{"a", "b", "c", "dog"}, Target: 6},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "Invalid target length",
		},
		{
			name:           "InternalServerError_DBError",
			requestBody:    CompoundReq{Words: []string{"a", "b", "ab"}, Target: 2},
			withDB:         true,
			closeDB:        true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to save run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var db *sql.DB
			if tt.withDB {
				db = setupTestDB(t)
				if tt.closeDB {
					db.Close()
				}
			}
			s := NewServer(nil, db, 2).(*Server)

			var body []byte
			var err error
			if reqStr, ok := tt.requestBody.(string); ok {
				body = []byte(reqStr)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/compounds", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			s.CreateCompounds(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Contains(t, errResp["error"], tt.expectedError)
				return
			}

			var run CompoundRun
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
			assert.Equal(t, tt.expectedResults, run.Results)
			if tt.withDB {
				require.NotNil(t, run.RunId)
				_, err := uuid.Parse(*run.RunId)
				assert.NoError(t, err)
			} else {
				assert.Nil(t, run.RunId)
			}
		})
	}
}

func TestServer_FindCompounds(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedStatus  int
		expectedResults []string
	}{
		{
			name:            "Success",
			query:           "?target=6",
			expectedStatus:  http.StatusOK,
			expectedResults: []string{"dog+a+b+c=dogabc"},
		},
		{
			name:           "MissingTarget",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "NonNumericTarget",
			query:          "?target=six",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "UnknownTargetLength",
			query:          "?target=4",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, nil)

			req := httptest.NewRequest(http.MethodGet, "/compounds"+tt.query, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus == http.StatusOK {
				var run CompoundRun
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
				assert.Equal(t, 6, run.Target)
				assert.Equal(t, len(testWords), run.VocabularySize)
				assert.Equal(t, tt.expectedResults, run.Results)
			}
		})
	}
}

func TestServer_Runs(t *testing.T) {
	db := setupTestDB(t)
	h := newTestRouter(t, db)

	// Store a run through the search endpoint.
	req := httptest.NewRequest(http.MethodGet, "/compounds?target=6", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var created CompoundRun
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.NotNil(t, created.RunId)

	t.Run("ListRuns", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs?limit=5", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var runs []RunSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, *created.RunId, runs[0].RunId)
		assert.Equal(t, 6, runs[0].Target)
	})

	t.Run("ListRuns_InvalidLimit", func(t *testing.T) {
		for _, q := range []string{"?limit=0", "?limit=abc"} {
			req := httptest.NewRequest(http.MethodGet, "/runs"+q, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("GetRun", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/"+*created.RunId, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var run CompoundRun
		require.NoError(t, json.NewDecoder(w.Body).Decode(&run))
		assert.Equal(t, created.Results, run.Results)
		assert.Equal(t, 6, run.Target)
	})

	t.Run("GetRun_NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetRun_InvalidID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/not-a-uuid", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_RunsWithoutDB(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, path := range []string{"/runs", "/runs/" + uuid.New().String()} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestServer_GetRun_DBError(t *testing.T) {
	db := setupTestDB(t)
	db.Close()
	s := NewServer(nil, db, 1).(*Server)

	req := httptest.NewRequest(http.MethodGet, "/runs/x", nil)
	w := httptest.NewRecorder()
	s.GetRun(w, req, uuid.New().String())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

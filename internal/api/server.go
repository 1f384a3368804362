package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"compound-words/internal/compound"
	"compound-words/internal/store"
	"compound-words/internal/wordlist"

	"github.com/google/uuid"
)

const defaultRunsLimit = 20

// Server answers compound word searches and serves stored runs.
type Server struct {
	words   []string
	db      *sql.DB
	workers int
}

// NewServer creates a server over a preloaded vocabulary. db may be nil,
// in which case runs are not stored.
func NewServer(words []string, db *sql.DB, workers int) ServerInterface {
	return &Server{
		words:   words,
		db:      db,
		workers: workers,
	}
}

// FindCompounds searches the preloaded vocabulary.
func (s *Server) FindCompounds(w http.ResponseWriter, r *http.Request, params FindCompoundsParams) {
	s.search(w, r, s.words, params.Target)
}

// CreateCompounds searches the vocabulary sent in the request body.
func (s *Server) CreateCompounds(w http.ResponseWriter, r *http.Request) {
	var req CompoundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d := wordlist.NewDeduper()
	for _, word := range req.Words {
		if word != "" {
			d.Add(word)
		}
	}
	if len(d.Words()) == 0 {
		writeError(w, http.StatusBadRequest, "Request must contain at least one word")
		return
	}

	s.search(w, r, d.Words(), req.Target)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, words []string, target int) {
	start := time.Now()

	results, err := compound.ProcessLines(r.Context(), words, target, compound.Options{Workers: s.workers})
	if errors.Is(err, compound.ErrInvalidTarget) {
		writeError(w, http.StatusUnprocessableEntity, "Invalid target length: "+err.Error())
		return
	}
	if err != nil {
		log.Printf("search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	sort.Strings(results)
	if results == nil {
		results = []string{}
	}

	run := CompoundRun{
		Target:         target,
		VocabularySize: len(words),
		Results:        results,
	}

	if s.db != nil {
		runID, err := store.SaveRun(s.db, store.RunInput{
			TargetLength:   target,
			VocabularySize: len(words),
			Results:        results,
		})
		if err != nil {
			log.Printf("failed to save run: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save run")
			return
		}
		run.RunId = &runID
	}

	log.Printf("target=%d words=%d results=%d took=%s", target, len(words), len(results), time.Since(start).Round(time.Millisecond))

	writeJSON(w, http.StatusOK, run)
}

// ListRuns returns the most recent stored runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request, params ListRunsParams) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "Run history is disabled")
		return
	}

	limit := defaultRunsLimit
	if params.Limit != nil {
		if *params.Limit <= 0 {
			writeError(w, http.StatusBadRequest, "Limit must be greater than 0")
			return
		}
		limit = *params.Limit
	}

	runs, err := store.ListRuns(s.db, limit)
	if err != nil {
		log.Printf("failed to list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list runs")
		return
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, RunSummary{
			RunId:          run.ID,
			Target:         run.TargetLength,
			VocabularySize: run.VocabularySize,
			CreatedAt:      run.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetRun returns one stored run with its results.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request, runId string) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "Run history is disabled")
		return
	}

	if _, err := uuid.Parse(runId); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid run id")
		return
	}

	run, err := store.GetRun(s.db, runId)
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "Run not found")
		return
	}
	if err != nil {
		log.Printf("failed to get run %s: %v", runId, err)
		writeError(w, http.StatusInternalServerError, "Failed to get run")
		return
	}

	writeJSON(w, http.StatusOK, CompoundRun{
		RunId:          &run.ID,
		Target:         run.TargetLength,
		VocabularySize: run.VocabularySize,
		Results:        run.Results,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

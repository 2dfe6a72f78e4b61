package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/veridex/veridex/internal/model"
	"github.com/veridex/veridex/internal/pipeline"
)

// Checker runs one check end to end under the kind the caller declared.
// Satisfied by pipeline.Pipeline.
type Checker interface {
	CheckKind(ctx context.Context, input string, kind model.InputKind) (*model.Report, error)
}

// Server exposes the checker over HTTP
type Server struct {
	checker Checker
	config  model.ServerConfig
	verbose bool
}

// New creates a new server
func New(checker Checker, config model.ServerConfig, verbose bool) *Server {
	return &Server{
		checker: checker,
		config:  config,
		verbose: verbose,
	}
}

// analyzeRequest is the POST /api/analyze body. Exactly one of Text or URL
// must be set.
type analyzeRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP handler, exposed separately for tests
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Run starts the server and shuts it down when the context is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "listening on %s\n", s.config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	req.URL = strings.TrimSpace(req.URL)

	// The field the caller used is binding: text is never re-detected as
	// a URL and fetched
	var input string
	var kind model.InputKind
	switch {
	case req.Text != "" && req.URL != "":
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "provide either text or url, not both"})
		return
	case req.Text != "":
		input, kind = req.Text, model.KindText
	case req.URL != "":
		input, kind = req.URL, model.KindURL
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "provide text or url"})
		return
	}

	report, err := s.checker.CheckKind(r.Context(), input, kind)
	if err != nil {
		if s.verbose {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		}
		switch {
		case errors.Is(err, pipeline.ErrAcquire):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		case errors.Is(err, pipeline.ErrClassify):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

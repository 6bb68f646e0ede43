// Package chi serves adgen over HTTP using the chi router: parsing model
// responses, generating ad assets, and browsing stored runs.
package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/adgen"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxRequestBody caps request bodies. Model responses are a few kilobytes.
const MaxRequestBody = 1 << 20

// Server is the HTTP API for adgen.
//
// Builder may be nil, in which case run generation answers 503. Token, when
// set, is required as a bearer token on every /api route.
type Server struct {
	router  chi.Router
	builder adgen.RunBuilder
	runs    adgen.RunService
	token   string
	logger  *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(builder adgen.RunBuilder, runs adgen.RunService, token string, logger *slog.Logger) *Server {
	s := &Server{
		builder: builder,
		runs:    runs,
		token:   token,
		logger:  logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.token != "" {
			r.Use(bearerAuth(s.token))
		}

		r.Post("/parse", s.handleParse)

		r.Post("/runs", s.handleCreateRun)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
		r.Get("/runs/{id}/report", s.handleRunReport)
		r.Delete("/runs/{id}", s.handleDeleteRun)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorStatus maps application error codes to HTTP status codes.
var errorStatus = map[string]int{
	adgen.ECONFLICT:    http.StatusConflict,
	adgen.EINVALID:     http.StatusBadRequest,
	adgen.ENOTFOUND:    http.StatusNotFound,
	adgen.EUNAVAILABLE: http.StatusServiceUnavailable,
	adgen.EINTERNAL:    http.StatusInternalServerError,
}

// writeError writes err as a JSON error body. Internal errors are logged
// and their details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := adgen.ErrorCode(err)
	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	msg := adgen.ErrorMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err,
		)
		msg = "internal error"
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

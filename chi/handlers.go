package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/fs"
	"github.com/go-chi/chi/v5"
)

// runResponse is the JSON form of a run: the stored fields plus the parsed
// document.
type runResponse struct {
	*adgen.Run
	Document *adgen.Document `json:"document"`
}

func newRunResponse(run *adgen.Run) runResponse {
	return runResponse{Run: run, Document: run.Document()}
}

// handleParse parses a raw model response sent as the request body.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBody))
	if err != nil {
		s.writeError(w, r, bodyError(err))
		return
	}
	writeJSON(w, http.StatusOK, adgen.Parse(string(body)))
}

// handleCreateRun generates ad assets for the brief request in the body.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	if s.builder == nil {
		s.writeError(w, r, adgen.Errorf(adgen.EUNAVAILABLE, "generation is not configured"))
		return
	}

	var req adgen.BriefRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, bodyError(err))
		return
	}

	run, err := s.builder.Build(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/runs/"+run.ID)
	writeJSON(w, http.StatusCreated, newRunResponse(run))
}

// handleListRuns lists stored runs, newest first. Query parameters: url,
// limit, offset.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := adgen.RunFilter{Limit: 20}
	if u := q.Get("url"); u != "" {
		normalized, err := adgen.NormalizeURL(u)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		filter.URL = &normalized
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, adgen.Errorf(adgen.EINVALID, "%s must be a non-negative integer", name))
			return
		}
		*dst = n
	}

	runs, err := s.runs.FindRuns(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if runs == nil {
		runs = []*adgen.Run{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.runs.FindRunByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newRunResponse(run))
}

// handleRunReport renders a stored run as Markdown, or as HTML with
// ?format=html.
func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	run, err := s.runs.FindRunByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var report, contentType string
	switch format := r.URL.Query().Get("format"); format {
	case "", "md", "markdown":
		report, err = fs.FormatReport(run)
		contentType = "text/markdown; charset=utf-8"
	case "html":
		report, err = fs.FormatHTMLReport(run)
		contentType = "text/html; charset=utf-8"
	default:
		err = adgen.Errorf(adgen.EINVALID, "unknown report format %q", format)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = io.WriteString(w, report)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := s.runs.DeleteRun(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bodyError classifies a failure to read or decode a request body.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return adgen.Errorf(adgen.EINVALID, "request body exceeds %d bytes", tooLarge.Limit)
	}
	return adgen.Errorf(adgen.EINVALID, "invalid request body: %v", err)
}

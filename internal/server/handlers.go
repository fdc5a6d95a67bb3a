package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anchorkit/anchorkit/pkg/buildinfo"
	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/errors"
	"github.com/anchorkit/anchorkit/pkg/pipeline"
	"github.com/anchorkit/anchorkit/pkg/store"
)

// resolveRequest is the body of POST /v1/resolve.
type resolveRequest struct {
	Document *document.Document `json:"document"`
	Options  pipeline.Options   `json:"options"`
}

// resolveResponse is the body of successful resolve calls. Artifacts
// are base64-encoded by the JSON encoding of []byte.
type resolveResponse struct {
	DocHash   string              `json:"doc_hash,omitempty"`
	Viewport  document.Viewport   `json:"viewport"`
	Elements  []document.Resolved `json:"elements"`
	Artifacts map[string][]byte   `json:"artifacts,omitempty"`
	CacheInfo pipeline.CacheInfo  `json:"cache_info"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}
	if req.Document == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing document"))
		return
	}
	s.resolve(w, r, req.Document, req.Options)
}

func (s *Server) handleResolveDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var opts pipeline.Options
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
			return
		}
	}
	s.resolve(w, r, doc, opts)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request, doc *document.Document, opts pipeline.Options) {
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options: %v", err))
		return
	}
	result, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		DocHash:   result.DocHash,
		Viewport:  result.Viewport,
		Elements:  result.Resolved,
		Artifacts: result.Artifacts,
		CacheInfo: result.CacheInfo,
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": ids})
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := document.Read(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if doc.ID == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidDocument, "missing document id"))
		return
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := document.Read(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// The path id is authoritative.
	doc.ID = chi.URLParam(r, "id")
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func statusFor(err error) (int, errors.Code) {
	if stderrors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, errors.ErrCodeDocumentNotFound
	}

	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeDocumentNotFound,
		errors.ErrCodeElementNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound, code
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidElement, errors.ErrCodeInvalidUnit,
		errors.ErrCodeInvalidAnchor, errors.ErrCodeInvalidViewport,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest, code
	case errors.ErrCodeStore, errors.ErrCodeStoreClosed:
		return http.StatusBadGateway, code
	case "":
		return http.StatusInternalServerError, errors.ErrCodeInternal
	default:
		return http.StatusInternalServerError, code
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

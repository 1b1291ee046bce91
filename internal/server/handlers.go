package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tmorimoto/writedesk/internal/pipeline"
	"github.com/tmorimoto/writedesk/internal/prompt"
	"github.com/tmorimoto/writedesk/internal/session"
)

// CorrectionRequest represents the JSON body for POST /corrections.
// Document uploads use multipart/form-data with "file" and "tone" fields
// instead.
type CorrectionRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone,omitempty" validate:"omitempty,oneof=Formal Assertive Negative Sarcastic Humorous Kafkaesque Gen-Z"`
}

// ReviewRequest represents the JSON body for POST /reviews.
type ReviewRequest struct {
	Text       string `json:"text"`
	Audience   string `json:"audience,omitempty" validate:"omitempty,oneof=General Technical Executive"`
	ReviewType string `json:"review_type,omitempty" validate:"omitempty,oneof=Summary Critique Methodology"`
}

// MessageRequest represents the JSON body for POST /sessions/{id}/messages.
type MessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// SessionResponse represents the response for session endpoints.
type SessionResponse struct {
	SessionID  string           `json:"session_id"`
	Transcript []session.Record `json:"transcript"`
}

// handleCorrection runs the grammar-correction pipeline for one request.
func (s *Server) handleCorrection(w http.ResponseWriter, r *http.Request) {
	var req CorrectionRequest
	in := pipeline.Input{}

	cleanup, err := s.decodeRequest(w, r, &req, func(form formFields) {
		req.Text = form.text
		req.Tone = form.value("tone")
		in.Path = form.path
	})
	if err != nil {
		s.errorResponse(w, decodeStatus(err), "Invalid request body: "+err.Error())
		return
	}
	defer cleanup()

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	in.Text = req.Text
	in.Tone, _ = prompt.ParseTone(req.Tone)

	result, err := s.corrector.Run(r.Context(), in)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleReview runs the paper-review pipeline for one request.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	in := pipeline.Input{}

	cleanup, err := s.decodeRequest(w, r, &req, func(form formFields) {
		req.Text = form.text
		req.Audience = form.value("audience")
		req.ReviewType = form.value("review_type")
		in.Path = form.path
	})
	if err != nil {
		s.errorResponse(w, decodeStatus(err), "Invalid request body: "+err.Error())
		return
	}
	defer cleanup()

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	in.Text = req.Text
	in.Audience, _ = prompt.ParseAudience(req.Audience)
	in.ReviewType, _ = prompt.ParseReviewType(req.ReviewType)

	result, err := s.reviewer.Run(r.Context(), in)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCreateSession opens a new chat session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, store := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID:  id.String(),
		Transcript: store.All(),
	})
}

// handlePostMessage sends one user message through the chat pipeline and
// returns the updated transcript.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	transcript, err := s.responder.Reply(r.Context(), store, req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID:  id.String(),
		Transcript: transcript,
	})
}

// handleGetTranscript returns the full ordered transcript of a session.
func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID:  id.String(),
		Transcript: store.All(),
	})
}

// handleEndSession destroys a session and its transcript.
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	s.sessions.End(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, *session.Store, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, nil, false
	}

	store, ok := s.sessions.Get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return uuid.Nil, nil, false
	}

	return id, store, true
}

// decodeStatus maps a body-decode failure to its HTTP status.
func decodeStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// formFields carries the multipart form content handed to a decode callback.
type formFields struct {
	text   string
	path   string
	values map[string]string
}

func (f formFields) value(key string) string {
	return f.values[key]
}

// decodeRequest decodes either a JSON body into dst or a multipart form via
// the onForm callback. Uploaded files are written to a temp file whose
// extension is preserved for format dispatch; the returned cleanup removes
// it. The body is capped at maxUploadBytes; ParseMultipartForm alone only
// bounds the in-memory portion, so without the cap oversized file parts
// would spill to disk unchecked.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any, onForm func(formFields)) (func(), error) {
	cleanup := func() {}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return cleanup, err
		}
		return cleanup, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return cleanup, err
	}

	form := formFields{
		text:   r.FormValue("text"),
		values: map[string]string{},
	}
	for key, vals := range r.MultipartForm.Value {
		if len(vals) > 0 {
			form.values[key] = vals[0]
		}
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		tmp, err := os.CreateTemp("", "writedesk-upload-*"+filepath.Ext(header.Filename))
		if err != nil {
			return cleanup, fmt.Errorf("failed to buffer upload: %w", err)
		}
		if _, err := io.Copy(tmp, file); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return cleanup, fmt.Errorf("failed to buffer upload: %w", err)
		}
		tmp.Close()

		form.path = tmp.Name()
		cleanup = func() { os.Remove(tmp.Name()) }
	} else if err != http.ErrMissingFile {
		return cleanup, err
	}

	onForm(form)
	return cleanup, nil
}

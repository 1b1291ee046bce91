package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorimoto/writedesk/internal/llm"
	"github.com/tmorimoto/writedesk/internal/pipeline"
)

func newTestServer(client llm.Client) *Server {
	return New(Config{Port: 0}, client)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(llm.NewFake())

	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestCorrectionEndpoint(t *testing.T) {
	fake := llm.NewFake("Corrected output.")
	s := newTestServer(fake)

	rec := doJSON(t, s, http.MethodPost, "/corrections", CorrectionRequest{
		Text: "teh text",
		Tone: "Formal",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result pipeline.CorrectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "teh text", result.Original)
	assert.Equal(t, "Corrected output.", result.Corrected)
	assert.Equal(t, 1, fake.Calls())
}

func TestCorrectionEndpoint_InvalidTone(t *testing.T) {
	fake := llm.NewFake("unused")
	s := newTestServer(fake)

	rec := doJSON(t, s, http.MethodPost, "/corrections", CorrectionRequest{
		Text: "some text",
		Tone: "Shakespearean",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fake.Calls())
}

func TestCorrectionEndpoint_EmptyInput(t *testing.T) {
	fake := llm.NewFake("unused")
	s := newTestServer(fake)

	rec := doJSON(t, s, http.MethodPost, "/corrections", CorrectionRequest{Text: ""})

	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.CorrectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Original)
	assert.Empty(t, result.Corrected)
	assert.Equal(t, 0, fake.Calls(), "empty input must not reach the completion client")
}

func TestCorrectionEndpoint_CompletionFailure(t *testing.T) {
	fake := llm.NewFailingFake(&llm.CompletionError{Model: "m", Err: errors.New("provider down")})
	s := newTestServer(fake)

	rec := doJSON(t, s, http.MethodPost, "/corrections", CorrectionRequest{Text: "hello"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "provider down")
}

func TestCorrectionEndpoint_MultipartUpload(t *testing.T) {
	fake := llm.NewFake("Corrected file content.")
	s := newTestServer(fake)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "input.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("raw file text"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("tone", "Humorous"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/corrections", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result pipeline.CorrectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "raw file text", result.Original)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].System, "humorous", "tone form field should reach the prompt builder")
}

func TestCorrectionEndpoint_OversizedUpload(t *testing.T) {
	fake := llm.NewFake("unused")
	s := newTestServer(fake)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "huge.txt")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), maxUploadBytes+1))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/corrections", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 0, fake.Calls(), "oversized upload must not reach the pipeline")
}

func TestReviewEndpoint(t *testing.T) {
	fake := llm.NewFake()
	fake.Respond = func(req llm.Request) (string, error) {
		if req.JSON {
			return `["sensor fusion"]`, nil
		}
		return "A study of sensor fusion.", nil
	}
	s := newTestServer(fake)

	rec := doJSON(t, s, http.MethodPost, "/reviews", ReviewRequest{
		Text:       "paper text",
		Audience:   "Technical",
		ReviewType: "Critique",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result pipeline.ReviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"sensor fusion"}, result.Keywords)
	assert.Contains(t, result.Highlighted, "<mark>sensor fusion</mark>")
	assert.Equal(t, 2, fake.Calls())
}

func TestSessionLifecycle(t *testing.T) {
	fake := llm.NewFake("hi there")
	s := newTestServer(fake)

	// Create
	rec := doJSON(t, s, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)
	assert.Empty(t, created.Transcript)

	// Post a message
	path := fmt.Sprintf("/sessions/%s/messages", created.SessionID)
	rec = doJSON(t, s, http.MethodPost, path, MessageRequest{Content: "hello"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var replied SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replied))
	require.Len(t, replied.Transcript, 2)
	assert.Equal(t, "user", string(replied.Transcript[0].Role))
	assert.Equal(t, "hello", replied.Transcript[0].Content)
	assert.Equal(t, "assistant", string(replied.Transcript[1].Role))
	assert.Equal(t, "hi there", replied.Transcript[1].Content)

	// Read the transcript back
	rec = doJSON(t, s, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, replied.Transcript, fetched.Transcript)

	// End the session
	rec = doJSON(t, s, http.MethodDelete, "/sessions/"+created.SessionID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionEndpoints_UnknownSession(t *testing.T) {
	s := newTestServer(llm.NewFake())

	rec := doJSON(t, s, http.MethodPost, "/sessions/00000000-0000-0000-0000-000000000000/messages",
		MessageRequest{Content: "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/sessions/not-a-uuid/messages", MessageRequest{Content: "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostMessage_MissingContent(t *testing.T) {
	s := newTestServer(llm.NewFake())

	rec := doJSON(t, s, http.MethodPost, "/sessions", nil)
	var created SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, s, http.MethodPost, "/sessions/"+created.SessionID+"/messages", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(llm.NewFake())

	req := httptest.NewRequest(http.MethodOptions, "/corrections", strings.NewReader(""))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicedesk/internal/practice"
)

func TestClient_CurrentStateUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current-practice-state", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Session-ID"))
		w.Write([]byte(`{"data":{"isModalOpen":true,"state":"OPEN_EVAL_MODAL","practice":{"id":7,"title":"Objection handling","status":"FINISHED","myRole":"SELLER"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	state, err := c.CurrentState(context.Background())
	require.NoError(t, err)

	assert.True(t, state.IsModalOpen)
	assert.Equal(t, practice.ScreenEval, state.State)
	require.NotNil(t, state.Practice)
	assert.Equal(t, 7, state.Practice.ID)
	assert.Equal(t, practice.RoleSeller, state.Practice.MyRole)
}

func TestClient_PracticeDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/practice/42", r.URL.Path)
		w.Write([]byte(`{"data":{"id":42,"title":"Demo pitch","status":"IN_PROGRESS","myRole":null}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	p, err := c.Practice(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, practice.RoleNone, p.MyRole)
}

func TestClient_StatusErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	_, err := c.CurrentState(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindStatus, KindOf(err))
}

func TestClient_DecodeErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	_, err := c.Practice(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestClient_UnavailableErrorKind(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "", nil)
	_, err := c.CurrentState(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "current-practice-state", apiErr.Op)
}

func TestClient_FinishPracticePosts(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	require.NoError(t, c.FinishPractice(context.Background(), 9))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/practice/9/finish", gotPath)
}

func TestClient_SubmitRecordingSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/practice/3/recording", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil)
	require.NoError(t, c.SubmitRecording(context.Background(), 3, "https://rec.example/v/3"))
}

package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"models": []}`))
		}))
	defer server.Close()

	out, err := Analyze(server.URL, 2, []byte("ATOM ..."))
	require.NoError(t, err)
	assert.Equal(t, "/analyze/2", gotPath)
	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, []byte("ATOM ..."), gotBody)
	assert.JSONEq(t, `{"models": []}`, string(out))
}

func TestAnalyzeTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
		}))
	defer server.Close()

	_, err := Analyze(server.URL+"/", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "/analyze/1", gotPath)
}

func TestAnalyzeNonSuccessIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
	defer server.Close()

	out, err := Analyze(server.URL, 1, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "500")
}

func TestDefaultURL(t *testing.T) {
	t.Setenv("RNAPOLIS_WS_URL", "http://localhost:9999/api")
	assert.Equal(t, "http://localhost:9999/api", DefaultURL())

	t.Setenv("RNAPOLIS_WS_URL", "")
	assert.NotEmpty(t, DefaultURL())
}

package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/papers"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/users"
)

func createServer(t *testing.T) (*httptest.Server, string) {
	artifactDir := t.TempDir()

	srv := NewServer(log.New("test"))
	users.RegisterHTTP(srv, users.NewService(users.NewInMemRepository()))
	papers.RegisterHTTP(srv, papers.NewService(artifactDir))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, artifactDir
}

func do(t *testing.T, method, url string, body interface{}) (int, []byte) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	ts, _ := createServer(t)

	creds := map[string]string{"email": "alice@paperwatch.io", "password": "s3cret"}

	code, body := do(t, "POST", ts.URL+"/register", creds)
	require.Equal(t, http.StatusOK, code, string(body))
	assert.JSONEq(t, `{"message": "User registered successfully"}`, string(body))

	// Duplicate registration: 400
	code, body = do(t, "POST", ts.URL+"/register", creds)
	assert.Equal(t, http.StatusBadRequest, code, string(body))

	code, body = do(t, "POST", ts.URL+"/login", creds)
	require.Equal(t, http.StatusOK, code, string(body))
	assert.JSONEq(t, `{"message": "Login successful", "email": "alice@paperwatch.io"}`, string(body))

	code, _ = do(t, "POST", ts.URL+"/login", map[string]string{"email": "alice@paperwatch.io", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAPI_Topics(t *testing.T) {
	ts, _ := createServer(t)

	do(t, "POST", ts.URL+"/register", map[string]string{"email": "alice@paperwatch.io", "password": "s3cret"})

	// Fresh user: empty list, no placeholder leaks
	code, body := do(t, "GET", ts.URL+"/topics/alice@paperwatch.io", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	// Unknown user: 404
	code, _ = do(t, "GET", ts.URL+"/topics/ghost@paperwatch.io", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, "POST", ts.URL+"/topics", map[string]string{"email": "alice@paperwatch.io", "topic": " AI "})
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, "GET", ts.URL+"/topics/alice@paperwatch.io", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["AI"]`, string(body))

	// Empty topic: 400
	code, _ = do(t, "POST", ts.URL+"/topics", map[string]string{"email": "alice@paperwatch.io", "topic": "  "})
	assert.Equal(t, http.StatusBadRequest, code)

	// Delete is exact-match
	code, _ = do(t, "DELETE", ts.URL+"/topics", map[string]string{"email": "alice@paperwatch.io", "topic": " AI "})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, "DELETE", ts.URL+"/topics", map[string]string{"email": "alice@paperwatch.io", "topic": "AI"})
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, "GET", ts.URL+"/topics/alice@paperwatch.io", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))
}

func TestAPI_Papers(t *testing.T) {
	ts, artifactDir := createServer(t)

	artifact := `[{"title": "SSD", "pdfUrl": "http://arxiv.org/pdf/1512.02325v5"}]`
	require.NoError(t, ioutil.WriteFile(filepath.Join(artifactDir, "3d-object-detection.json"), []byte(artifact), 0644))

	code, body := do(t, "GET", ts.URL+"/papers/3D%20Object%20Detection", nil)
	require.Equal(t, http.StatusOK, code, string(body))
	assert.JSONEq(t, artifact, string(body))

	code, _ = do(t, "GET", ts.URL+"/papers/unknown-topic", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_AdminData(t *testing.T) {
	ts, _ := createServer(t)

	do(t, "POST", ts.URL+"/register", map[string]string{"email": "alice@paperwatch.io", "password": "s3cret"})
	do(t, "POST", ts.URL+"/topics", map[string]string{"email": "alice@paperwatch.io", "topic": "AI"})

	code, body := do(t, "GET", ts.URL+"/admin/data", nil)
	require.Equal(t, http.StatusOK, code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "alice@paperwatch.io", rows[0]["email"])
	assert.Equal(t, "AI", rows[0]["topic"])
	assert.NotEmpty(t, rows[0]["password"])
}

type brokenRepository struct{}

func (r *brokenRepository) Get(email string) (*users.User, error) { return nil, errStoreDown }
func (r *brokenRepository) Upsert(*users.User) error              { return errStoreDown }
func (r *brokenRepository) List() ([]*users.User, error)          { return nil, errStoreDown }

var errStoreDown = fmt.Errorf("store is down")

func TestAPI_AdminData_ReadFailure(t *testing.T) {
	srv := NewServer(log.New("test"))
	users.RegisterHTTP(srv, users.NewService(&brokenRepository{}))

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// A registry read failure is reported inside a 200 body, the historical
	// contract of /admin/data
	code, body := do(t, "GET", ts.URL+"/admin/data", nil)
	require.Equal(t, http.StatusOK, code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Contains(t, resp["error"], "store is down")
}

func TestAPI_Root(t *testing.T) {
	ts, _ := createServer(t)

	code, body := do(t, "GET", ts.URL+"/", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message": "Topic Manager API"}`, string(body))

	code, _ = do(t, "GET", ts.URL+"/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

package faceapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

func TestProcessFilesSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/face-recognition/process", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(32<<20))
		headers := r.MultipartForm.File["files"]
		require.Len(t, headers, 2)
		assert.Equal(t, "a.jpg", headers[0].Filename)

		f, err := headers[1].Open()
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("frame-two"), data)

		json.NewEncoder(w).Encode(models.FaceRecognitionSummary{TotalFaces: 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	summary, err := c.ProcessFiles(context.Background(), []File{
		{Name: "a.jpg", Data: []byte("frame-one")},
		{Name: "b.jpg", Data: []byte("frame-two")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalFaces)
}

func TestProcessFilesRequiresFiles(t *testing.T) {
	c := NewClient("http://localhost:5000", time.Second)
	_, err := c.ProcessFiles(context.Background(), nil)
	assert.Error(t, err)
}

func TestAddPersonSendsPersonIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/face-database/add-person", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "STU00007", r.FormValue("person_id"))
		require.Len(t, r.MultipartForm.File["images"], 1)

		json.NewEncoder(w).Encode(models.AddPersonResult{EmbeddingsCount: 3})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	result, err := c.AddPerson(context.Background(), "STU00007", []File{{Name: "face.jpg", Data: []byte("x")}})
	require.NoError(t, err)
	assert.Equal(t, 3, result.EmbeddingsCount)
}

func TestAddPersonValidation(t *testing.T) {
	c := NewClient("http://localhost:5000", time.Second)

	_, err := c.AddPerson(context.Background(), "", []File{{Name: "face.jpg"}})
	assert.Error(t, err)

	_, err = c.AddPerson(context.Background(), "STU00001", nil)
	assert.Error(t, err)
}

func TestNonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.DetectDuplicates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestTimeoutIsBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := c.DetectDuplicates(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

package faceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// DefaultTimeout bounds a processing call to the external service; the
// upstream has no timeout of its own
const DefaultTimeout = 15 * time.Second

// File is one uploaded video/image to relay to the face service
type File struct {
	Name string
	Data []byte
}

// Client talks to the external face recognition/database service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ProcessFiles sends media files for face recognition. The context lets
// a superseding upload cancel an in-flight call.
func (c *Client) ProcessFiles(ctx context.Context, files []File) (*models.FaceRecognitionSummary, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to process")
	}

	body, contentType, err := multipartBody("files", files, nil)
	if err != nil {
		return nil, err
	}

	var summary models.FaceRecognitionSummary
	if err := c.post(ctx, "/api/face-recognition/process", body, contentType, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// AddPerson enrolls a person's images in the face database
func (c *Client) AddPerson(ctx context.Context, personID string, images []File) (*models.AddPersonResult, error) {
	if personID == "" {
		return nil, fmt.Errorf("person_id is required")
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to enroll")
	}

	body, contentType, err := multipartBody("images", images, map[string]string{"person_id": personID})
	if err != nil {
		return nil, err
	}

	var result models.AddPersonResult
	if err := c.post(ctx, "/api/face-database/add-person", body, contentType, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectDuplicates asks the face database for suspected duplicate
// identities
func (c *Client) DetectDuplicates(ctx context.Context) (*models.DuplicateReport, error) {
	var report models.DuplicateReport
	if err := c.post(ctx, "/api/face-database/detect-duplicates", nil, "application/json", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// post sends a POST request and decodes the JSON response into out.
// Any non-2xx status is an error; callers decide whether to fall back.
func (c *Client) post(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	if body == nil {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("face service request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("face service %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// multipartBody encodes files under the given field name plus any extra
// form fields
func multipartBody(fieldName string, files []File, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(fieldName, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write form file %s: %w", f.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/model"
)

// Request constants
const (
	// BasePath prefixes every backend resource.
	BasePath = "/api"

	// RequestIDHeader correlates client requests in backend logs.
	RequestIDHeader = "X-Request-ID"

	// Multipart field names for the upload operation.
	UploadFileField  = "audio_file"
	UploadTitleField = "title"

	// DefaultTimeout bounds a single request. The UI stays interactive while a
	// request is outstanding, so a generous bound is enough.
	DefaultTimeout = 30 * time.Second
)

// Client consumes the panel REST contract. All requests share one cookie jar
// so server-issued cookies, the anti-forgery cookie included, are replayed the
// way a browser's same-origin credential scope would.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        *cookiejar.Jar
	logger     zerolog.Logger
}

// NewClient creates a client for the backend at baseURL (scheme and host,
// without the /api prefix).
func NewClient(baseURL string, logger zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("server URL must start with http:// or https://, got %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: DefaultTimeout,
		},
		jar:    jar,
		logger: logger.With().Str("component", "api").Logger(),
	}, nil
}

// ImportCookies installs cookies from a raw `;`-delimited cookie header into
// the jar, decoding each value the same way the token accessor does. Used to
// seed a session captured outside the app.
func (c *Client) ImportCookies(header string) {
	var cookies []*http.Cookie
	for _, entry := range strings.Split(header, ";") {
		entry = strings.TrimSpace(entry)
		name, _, found := strings.Cut(entry, "=")
		if !found || name == "" {
			continue
		}
		value, ok := TokenFromCookies(entry, name)
		if !ok {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	if len(cookies) > 0 {
		c.jar.SetCookies(c.baseURL, cookies)
	}
}

// CSRFToken returns the anti-forgery token from the cookie jar, if present.
func (c *Client) CSRFToken() (string, bool) {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if cookie.Name == CSRFCookieName {
			return cookie.Value, true
		}
	}
	return "", false
}

// ListUsers fetches the full user collection.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, c.endpoint("/users/"), &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// UserDetails fetches one user's profile. A 404 is reported as
// ErrUserNotFound.
func (c *Client) UserDetails(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := c.getJSON(ctx, c.endpoint("/users/%d/details/", id), &user)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user details: %w", err)
	}
	return &user, nil
}

// ListAudioFiles fetches the audio collection for a user, in server order.
func (c *Client) ListAudioFiles(ctx context.Context, userID int64) ([]model.AudioFile, error) {
	var files []model.AudioFile
	if err := c.getJSON(ctx, c.endpoint("/users/%d/audio-files/", userID), &files); err != nil {
		return nil, fmt.Errorf("failed to load audio files: %w", err)
	}
	return files, nil
}

// UploadAudio submits a multipart upload for a user and returns the created
// audio file. The title field is included only when non-empty.
func (c *Client) UploadAudio(ctx context.Context, userID int64, upload Upload) (*model.AudioFile, error) {
	if upload.Content == nil {
		return nil, fmt.Errorf("no audio file content provided")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(UploadFileField, upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	if upload.Title != "" {
		if err := writer.WriteField(UploadTitleField, upload.Title); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	endpoint := c.endpoint("/users/%d/upload-audio/", userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.prepareRequest(req, true)

	c.logger.Debug().Str("url", endpoint).Str("filename", upload.Filename).Msg("uploading audio file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, newStatusError(resp)
	}

	var created model.AudioFile
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &created, nil
}

// DeleteAudio deletes one audio file by id.
func (c *Client) DeleteAudio(ctx context.Context, audioID int64) error {
	endpoint := c.endpoint("/audio/%d/", audioID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	c.prepareRequest(req, true)

	c.logger.Debug().Str("url", endpoint).Msg("deleting audio file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return newStatusError(resp)
	}
	return nil
}

// endpoint builds an absolute URL under the /api base path.
func (c *Client) endpoint(format string, args ...any) string {
	return c.baseURL.String() + BasePath + fmt.Sprintf(format, args...)
}

// prepareRequest attaches the request id and, for mutating requests, the
// anti-forgery header when a token is available.
func (c *Client) prepareRequest(req *http.Request, mutating bool) {
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if mutating {
		if token, ok := c.CSRFToken(); ok {
			req.Header.Set(CSRFHeader, token)
		}
	}
}

// getJSON performs a GET and decodes a 2xx JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.prepareRequest(req, false)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return newStatusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func is2xx(status int) bool {
	return status >= 200 && status <= 299
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/audiodeck/audio-panel/internal/model"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(serverURL, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient(%s) failed: %v", serverURL, err)
	}
	return client
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	if _, err := NewClient("not-a-url", zerolog.Nop()); err == nil {
		t.Error("Expected error for URL without scheme, got nil")
	}
	if _, err := NewClient("ftp://example.com", zerolog.Nop()); err == nil {
		t.Error("Expected error for non-http scheme, got nil")
	}
}

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Error("Expected request id header to be set")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Alice", "email": "alice@example.com", "audio_files_count": 2},
			{"id": 2, "name": "Bob", "email": "bob@example.com"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].Name != "Alice" || users[0].AudioFilesCount != 2 {
		t.Errorf("Unexpected first user: %+v", users[0])
	}
	// audio_files_count defaults to zero when the backend omits it.
	if users[1].AudioFilesCount != 0 {
		t.Errorf("Expected zero audio files count, got %d", users[1].AudioFilesCount)
	}
}

func TestListUsers_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.ListUsers(context.Background()); err == nil {
		t.Error("Expected error for 500 response, got nil")
	}
}

func TestUserDetails_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "User not found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.UserDetails(context.Background(), 999)
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

func TestUserDetails_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/7/details/" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 7, "name": "Carol", "email": "carol@example.com",
			"phone": "", "bio": "Sound designer",
			"audio_files_count": 1,
			"created_at": "2025-01-15T10:30:00Z",
			"audio_files": [{"id": 3, "audio_file": "audio_files/a.mp3", "audio_url": "http://x/a.mp3", "uploaded_at": "2025-02-01T08:00:00Z"}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	user, err := client.UserDetails(context.Background(), 7)
	if err != nil {
		t.Fatalf("UserDetails failed: %v", err)
	}
	if user.ID != 7 || user.Bio != "Sound designer" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.DisplayPhone() != model.NotProvidedPlaceholder {
		t.Errorf("Expected phone placeholder, got %s", user.DisplayPhone())
	}
	if len(user.AudioFiles) != 1 {
		t.Errorf("Expected 1 embedded audio file, got %d", len(user.AudioFiles))
	}
}

func TestListAudioFiles_PreservesOrderAndNullSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 2, "title": "newer", "audio_file": "audio_files/b.mp3", "audio_url": "http://x/b.mp3", "file_size": 1536, "uploaded_at": "2025-03-02T00:00:00Z"},
			{"id": 1, "title": "", "audio_file": "audio_files/a.mp3", "audio_url": "http://x/a.mp3", "file_size": null, "uploaded_at": "2025-03-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	files, err := client.ListAudioFiles(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListAudioFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].ID != 2 || files[1].ID != 1 {
		t.Error("Expected server response order to be preserved")
	}
	if files[0].DisplaySize() != "1.5 KB" {
		t.Errorf("Expected 1.5 KB, got %s", files[0].DisplaySize())
	}
	if files[1].FileSize != nil {
		t.Error("Expected null file_size to decode as nil")
	}
	if files[1].DisplayTitle() != "a.mp3" {
		t.Errorf("Expected path fallback title a.mp3, got %s", files[1].DisplayTitle())
	}
}

func TestUploadAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/7/details/":
			// Seed the anti-forgery cookie like the backend's first GET does.
			// Django issues the CSRF cookie with Path=/.
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok-1", Path: "/"})
			w.Write([]byte(`{"id": 7, "name": "Carol", "email": "c@example.com"}`))
		case "/api/users/7/upload-audio/":
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST, got %s", r.Method)
			}
			if got := r.Header.Get(CSRFHeader); got != "tok-1" {
				t.Errorf("Expected CSRF header tok-1, got %q", got)
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("Failed to parse multipart form: %v", err)
			}
			file, header, err := r.FormFile(UploadFileField)
			if err != nil {
				t.Fatalf("Missing %s field: %v", UploadFileField, err)
			}
			file.Close()
			if header.Filename != "take1.mp3" {
				t.Errorf("Expected filename take1.mp3, got %s", header.Filename)
			}
			if _, hasTitle := r.MultipartForm.Value[UploadTitleField]; hasTitle {
				t.Error("Empty title must be omitted from the form")
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 42, "title": "", "audio_file": "audio_files/take1.mp3", "audio_url": "http://x/take1.mp3", "uploaded_at": "2025-03-03T00:00:00Z"}`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	// First request stores the CSRF cookie in the jar.
	if _, err := client.UserDetails(ctx, 7); err != nil {
		t.Fatalf("UserDetails failed: %v", err)
	}
	if token, ok := client.CSRFToken(); !ok || token != "tok-1" {
		t.Fatalf("Expected CSRF token tok-1 in jar, got %q (found=%v)", token, ok)
	}

	created, err := client.UploadAudio(ctx, 7, Upload{
		Filename: "take1.mp3",
		Content:  strings.NewReader("fake audio bytes"),
	})
	if err != nil {
		t.Fatalf("UploadAudio failed: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("Expected created id 42, got %d", created.ID)
	}
}

func TestUploadAudio_ServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Unsupported audio format"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.UploadAudio(context.Background(), 7, Upload{
		Filename: "x.txt",
		Content:  strings.NewReader("nope"),
	})
	if err == nil {
		t.Fatal("Expected error for 400 response, got nil")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if apiErr.Message != "Unsupported audio format" {
		t.Errorf("Expected server message to be preserved, got %q", apiErr.Message)
	}
}

func TestDeleteAudio(t *testing.T) {
	var sawDelete bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/api/audio/42/" {
			sawDelete = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if err := client.DeleteAudio(context.Background(), 42); err != nil {
		t.Fatalf("DeleteAudio failed: %v", err)
	}
	if !sawDelete {
		t.Error("Expected DELETE request to be issued")
	}
}

func TestImportCookies(t *testing.T) {
	client := newTestClient(t, "http://localhost:8000")
	client.ImportCookies("sessionid=xyz; csrftoken=abc%20def")

	token, ok := client.CSRFToken()
	if !ok {
		t.Fatal("Expected imported CSRF token to be found")
	}
	if token != "abc def" {
		t.Errorf("Expected decoded token 'abc def', got %q", token)
	}
	// The jar must not invent a token that was never imported.
	fresh := newTestClient(t, "http://localhost:8000")
	if _, ok := fresh.CSRFToken(); ok {
		t.Error("Fresh client should have no CSRF token")
	}
}

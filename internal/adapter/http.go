package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesClient constructs an HTTP implementation of [NotesClient]
// bound to address ("host:port" or a full URL).
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPNotesClient(address string, timeout time.Duration, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid notes server address: %w", err)
	}

	return &httpNotesClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup POSTs creds to /signup and remembers the issued bearer token.
func (h *httpNotesClient) Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error) {
	var result models.SignupResponse

	resp, err := h.request(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	h.storeToken(resp)
	return result, nil
}

// Login POSTs creds to /login and remembers the issued bearer token.
func (h *httpNotesClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.storeToken(resp)
	return result, nil
}

// Logout POSTs to /logout. The server clears the session cookie; the stored
// bearer token is dropped on success.
func (h *httpNotesClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpNotesClient) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var result models.ProfileResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return result, nil
}

func (h *httpNotesClient) CreateNote(ctx context.Context, content json.RawMessage) (int64, error) {
	var result models.CreateNoteResponse

	resp, err := h.request(ctx).
		SetBody(models.CreateNoteRequest{Content: content}).
		SetResult(&result).
		Post("/createNewNote")
	if err != nil {
		return 0, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ID, nil
}

func (h *httpNotesClient) EditNote(ctx context.Context, noteID int64, content json.RawMessage) error {
	resp, err := h.request(ctx).
		SetBody(models.EditNoteRequest{ID: noteID, Content: content}).
		Post("/editNote")
	if err != nil {
		return fmt.Errorf("edit note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesClient) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := h.request(ctx).
		SetBody(models.DeleteNoteRequest{ID: noteID}).
		Post("/deleteNote")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.request(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var nr models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}
	return nr.Notes, nil
}

func (h *httpNotesClient) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpNotesClient) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpNotesClient) storeToken(resp *resty.Response) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		h.logger.Debug().Err(err).Msg("no bearer token in response, relying on session cookie")
		return
	}
	h.SetToken(token)
}

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/yoga-studio/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config configures [NewHTTPServerAdapter].
type Config struct {
	// HTTPAddress is the server address, with or without scheme
	// (e.g. "localhost:8080" or "https://studio.example.com").
	HTTPAddress string

	// RequestTimeout bounds every request. Zero means 15s.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg Config) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.SignupRequest) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&msg).
		Post("/api/auth/register")
	if err != nil {
		return msg, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return msg, err
	}

	return msg, nil
}

// Login stores the issued token via SetToken on success.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.JWTResponse, error) {
	var jwtResp models.JWTResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&jwtResp).
		Post("/api/auth/login")
	if err != nil {
		return jwtResp, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return jwtResp, err
	}

	h.SetToken(jwtResp.Token)
	return jwtResp, nil
}

func (h *httpServerAdapter) Sessions(ctx context.Context) ([]models.SessionDTO, error) {
	var sessions []models.SessionDTO
	err := h.do(h.authedRequest(ctx).SetResult(&sessions), http.MethodGet, "/api/session", "list sessions")
	return sessions, err
}

func (h *httpServerAdapter) Session(ctx context.Context, id int64) (models.SessionDTO, error) {
	var session models.SessionDTO
	err := h.do(h.authedRequest(ctx).SetResult(&session), http.MethodGet, sessionPath(id), "get session")
	return session, err
}

func (h *httpServerAdapter) CreateSession(ctx context.Context, session models.SessionDTO) (models.SessionDTO, error) {
	var created models.SessionDTO
	err := h.do(h.authedRequest(ctx).SetBody(session).SetResult(&created), http.MethodPost, "/api/session", "create session")
	return created, err
}

func (h *httpServerAdapter) UpdateSession(ctx context.Context, id int64, session models.SessionDTO) (models.SessionDTO, error) {
	var updated models.SessionDTO
	err := h.do(h.authedRequest(ctx).SetBody(session).SetResult(&updated), http.MethodPut, sessionPath(id), "update session")
	return updated, err
}

func (h *httpServerAdapter) DeleteSession(ctx context.Context, id int64) error {
	return h.do(h.authedRequest(ctx), http.MethodDelete, sessionPath(id), "delete session")
}

func (h *httpServerAdapter) Participate(ctx context.Context, sessionID, userID int64) error {
	return h.do(h.authedRequest(ctx), http.MethodPost, participationPath(sessionID, userID), "participate")
}

func (h *httpServerAdapter) CancelParticipation(ctx context.Context, sessionID, userID int64) error {
	return h.do(h.authedRequest(ctx), http.MethodDelete, participationPath(sessionID, userID), "cancel participation")
}

func (h *httpServerAdapter) Teachers(ctx context.Context) ([]models.TeacherDTO, error) {
	var teachers []models.TeacherDTO
	err := h.do(h.authedRequest(ctx).SetResult(&teachers), http.MethodGet, "/api/teacher", "list teachers")
	return teachers, err
}

func (h *httpServerAdapter) Teacher(ctx context.Context, id int64) (models.TeacherDTO, error) {
	var teacher models.TeacherDTO
	err := h.do(h.authedRequest(ctx).SetResult(&teacher), http.MethodGet, "/api/teacher/"+strconv.FormatInt(id, 10), "get teacher")
	return teacher, err
}

func (h *httpServerAdapter) User(ctx context.Context, id int64) (models.UserDTO, error) {
	var user models.UserDTO
	err := h.do(h.authedRequest(ctx).SetResult(&user), http.MethodGet, userPath(id), "get user")
	return user, err
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	return h.do(h.authedRequest(ctx), http.MethodDelete, userPath(id), "delete user")
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

// do executes req and maps transport and status errors. op names the
// operation in wrapped transport errors.
func (h *httpServerAdapter) do(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func sessionPath(id int64) string {
	return "/api/session/" + strconv.FormatInt(id, 10)
}

func participationPath(sessionID, userID int64) string {
	return sessionPath(sessionID) + "/participate/" + strconv.FormatInt(userID, 10)
}

func userPath(id int64) string {
	return "/api/user/" + strconv.FormatInt(id, 10)
}

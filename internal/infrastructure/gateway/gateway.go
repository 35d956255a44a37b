// Package gateway implements the client side of the remote file-tracking
// service's REST contract. It owns request construction, the User-Id header,
// and the mapping of HTTP statuses to domain errors; callers only ever see
// domain types.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

// Client talks to the remote service. It implements ports.Gateway.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	var sess domain.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Username: username, Password: password}, &sess)
	if err != nil {
		return domain.Session{}, err
	}
	if !sess.Complete() {
		return domain.Session{}, fmt.Errorf("login response missing identity fields: %+v", sess)
	}
	return sess, nil
}

type registerUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) RegisterUser(ctx context.Context, callerID, username, password, role string) (domain.User, error) {
	var user domain.User
	req := registerUserRequest{Username: username, Password: password, Role: role}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", callerID, req, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *Client) File(ctx context.Context, callerID, id string) (domain.File, error) {
	var file domain.File
	if err := c.do(ctx, http.MethodGet, "/api/files/"+url.PathEscape(id), callerID, nil, &file); err != nil {
		return domain.File{}, err
	}
	return file, nil
}

type createFileRequest struct {
	Title          string `json:"title"`
	Status         string `json:"status"`
	CurrentOfficer string `json:"currentOfficer"`
	CourseCode     string `json:"courseCode,omitempty"`
	ExamSession    string `json:"examSession,omitempty"`
}

func (c *Client) CreateFile(ctx context.Context, callerID string, file domain.File) (domain.File, error) {
	req := createFileRequest{
		Title:          file.Title,
		Status:         file.Status,
		CurrentOfficer: file.CurrentOfficer,
		CourseCode:     file.CourseCode,
		ExamSession:    file.ExamSession,
	}
	var created domain.File
	if err := c.do(ctx, http.MethodPost, "/api/files/register", callerID, req, &created); err != nil {
		return domain.File{}, err
	}
	return created, nil
}

func (c *Client) UpdateFile(ctx context.Context, callerID, id string, update ports.FileUpdate) (domain.File, error) {
	var updated domain.File
	if err := c.do(ctx, http.MethodPatch, "/api/files/"+url.PathEscape(id), callerID, update, &updated); err != nil {
		return domain.File{}, err
	}
	return updated, nil
}

func (c *Client) SearchFiles(ctx context.Context, callerID, query string) ([]domain.File, error) {
	var files []domain.File
	path := "/api/files/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, callerID, nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *Client) Users(ctx context.Context, callerID string, roles ...string) ([]domain.User, error) {
	path := "/api/users"
	if len(roles) > 0 {
		path += "?roles=" + url.QueryEscape(strings.Join(roles, ","))
	}
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, path, callerID, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AuditTrail(ctx context.Context, callerID, fileID string) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	if err := c.do(ctx, http.MethodGet, "/api/audit/"+url.PathEscape(fileID), callerID, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// do performs one request/response cycle. A non-empty callerID is sent as
// the User-Id header. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path, callerID string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if callerID != "" {
		req.Header.Set("User-Id", callerID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("remote call")

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("gateway: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// errorBody is the JSON error envelope the service renders.
type errorBody struct {
	Error string `json:"error"`
}

// statusError maps a non-success response to a domain error, keeping the
// service's own message when it sent one.
func statusError(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope errorBody
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
		msg = envelope.Error
	} else if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
		msg = trimmed
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = domain.ErrInvalidInput
	case http.StatusUnauthorized:
		sentinel = domain.ErrInvalidCredentials
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrUserExists
	default:
		return fmt.Errorf("gateway: server error (%d): %s", resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

package devserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

// Handler serves the file-tracking REST contract from the in-memory store.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	return c.JSON(http.StatusOK, user)
}

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin officer guest"`
}

func (h *Handler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.store.CreateUser(req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "user already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "registration failed"})
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetFile(c echo.Context) error {
	file, ok := h.store.FileByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "file not found"})
	}
	return c.JSON(http.StatusOK, file)
}

type createFileRequest struct {
	Title          string `json:"title"          validate:"required"`
	Status         string `json:"status"         validate:"required"`
	CurrentOfficer string `json:"currentOfficer" validate:"required"`
	CourseCode     string `json:"courseCode"`
	ExamSession    string `json:"examSession"`
}

func (h *Handler) CreateFile(c echo.Context) error {
	var req createFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	callerID, _ := c.Get("userID").(string)
	created := h.store.CreateFile(domain.File{
		Title:          req.Title,
		Status:         req.Status,
		CurrentOfficer: req.CurrentOfficer,
		CourseCode:     req.CourseCode,
		ExamSession:    req.ExamSession,
	}, callerID)
	return c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateFile(c echo.Context) error {
	var update ports.FileUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	callerID, _ := c.Get("userID").(string)
	updated, err := h.store.UpdateFile(c.Param("id"), update, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "file not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) SearchFiles(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "search query cannot be empty"})
	}
	return c.JSON(http.StatusOK, h.store.Search(query))
}

func (h *Handler) ListUsers(c echo.Context) error {
	var roles []string
	if raw := c.QueryParam("roles"); raw != "" {
		roles = strings.Split(raw, ",")
	}
	return c.JSON(http.StatusOK, h.store.UsersByRole(roles))
}

func (h *Handler) AuditTrail(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Audit(c.Param("fileId")))
}

// Liveness reports that the process is up.
func (h *Handler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

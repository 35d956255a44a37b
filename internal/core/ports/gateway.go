package ports

import (
	"context"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

// FileUpdate carries a partial file update. Nil fields are left untouched by
// the remote service.
type FileUpdate struct {
	Title          *string `json:"title,omitempty"`
	Status         *string `json:"status,omitempty"`
	CurrentOfficer *string `json:"currentOfficer,omitempty"`
	CourseCode     *string `json:"courseCode,omitempty"`
	ExamSession    *string `json:"examSession,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (u FileUpdate) Empty() bool {
	return u.Title == nil && u.Status == nil && u.CurrentOfficer == nil &&
		u.CourseCode == nil && u.ExamSession == nil
}

// Gateway is the client-side contract of the remote file-tracking service.
// Every call except Login carries the calling user's id, which the transport
// sends as the User-Id header.
type Gateway interface {
	Login(ctx context.Context, username, password string) (domain.Session, error)
	RegisterUser(ctx context.Context, callerID, username, password, role string) (domain.User, error)
	File(ctx context.Context, callerID, id string) (domain.File, error)
	CreateFile(ctx context.Context, callerID string, file domain.File) (domain.File, error)
	UpdateFile(ctx context.Context, callerID, id string, update FileUpdate) (domain.File, error)
	SearchFiles(ctx context.Context, callerID, query string) ([]domain.File, error)
	Users(ctx context.Context, callerID string, roles ...string) ([]domain.User, error)
	AuditTrail(ctx context.Context, callerID, fileID string) ([]domain.AuditLog, error)
}

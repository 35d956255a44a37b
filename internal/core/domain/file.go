package domain

import "time"

// File statuses as presented by the create and update forms.
const (
	StatusDraft      = "Draft"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// FileStatuses lists the selectable statuses in presentation order.
var FileStatuses = []string{StatusDraft, StatusInProgress, StatusCompleted}

// ValidFileStatus reports whether s is one of the known statuses.
func ValidFileStatus(s string) bool {
	for _, known := range FileStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// File is a tracked file record as served by the remote service.
type File struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	CurrentOfficer string    `json:"currentOfficer"`
	CourseCode     string    `json:"courseCode,omitempty"`
	ExamSession    string    `json:"examSession,omitempty"`
	CreatedBy      string    `json:"createdBy,omitempty"`
	Timestamp      time.Time `json:"timestamp,omitzero"`
}

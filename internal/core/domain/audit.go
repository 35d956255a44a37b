package domain

import "time"

// AuditLog is one entry of a file's audit trail.
type AuditLog struct {
	LogID     string    `json:"logId"`
	Action    string    `json:"action"`
	FileID    string    `json:"fileId"`
	UserID    string    `json:"userId"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

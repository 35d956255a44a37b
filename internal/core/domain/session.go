package domain

// Roles understood by the file-tracking service.
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
	RoleGuest   = "guest"
)

// Session is the authenticated identity held by the client for the lifetime
// of the process, or restored from durable storage across restarts. The three
// fields are either all empty (no session) or all populated; partial sessions
// must never be observable.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsZero reports whether no session is established.
func (s Session) IsZero() bool {
	return s.UserID == "" && s.Username == "" && s.Role == ""
}

// Complete reports whether all identity fields are populated.
func (s Session) Complete() bool {
	return s.UserID != "" && s.Username != "" && s.Role != ""
}

package ports

import "github.com/Aayush01055/File-tracking-system/internal/core/domain"

// SessionStore owns the current identity and keeps it mirrored in durable
// storage. In-memory state is authoritative for the lifetime of the process;
// persistence is best effort.
type SessionStore interface {
	// Restore reads the mirrored identity back from durable storage, adopts
	// it as the current session when complete, and returns it. An incomplete
	// mirror yields the empty session. Restore never writes.
	Restore() domain.Session
	// Login replaces the current session and mirrors it into storage.
	Login(identity domain.Session)
	// Logout resets the current session to empty and clears the mirror.
	Logout()
	// Current returns the session as of the last Restore/Login/Logout.
	Current() domain.Session
	// Generation increments on every Login and Logout. Callers that hold
	// results of a remote call across a session change compare generations
	// to decide whether the result is still for the active identity.
	Generation() uint64
}

// Notifier holds at most one live transient message and expires it after a
// fixed display duration. A new message replaces the current one and restarts
// the expiry clock.
type Notifier interface {
	Show(message string, kind domain.NotificationKind)
	Success(message string)
	Error(message string)
	Clear()
	// Current returns the live notification, if any.
	Current() (domain.Notification, bool)
}

// ViewRouter holds the active view and enforces the role→allowed-views
// matrix. It is a pure function of role and requested target; it performs no
// I/O.
type ViewRouter interface {
	// DefaultView picks and activates the initial view for a role.
	DefaultView(role string) domain.ViewID
	// SetView activates requested if the role allows it and returns the
	// active view. A disallowed request leaves the active view unchanged.
	SetView(requested domain.ViewID, role string) domain.ViewID
	// AllowedViews returns the role's reachable views in menu order.
	AllowedViews(role string) []domain.ViewID
	// Active returns the currently active view.
	Active() domain.ViewID
}

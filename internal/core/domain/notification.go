package domain

// NotificationKind classifies a transient status message.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient, auto-expiring status message shown to the
// user after an operation. At most one is live at a time.
type Notification struct {
	Message string
	Kind    NotificationKind
}

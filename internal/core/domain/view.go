package domain

// ViewID identifies one of the mutually-exclusive functional screens.
type ViewID string

const (
	ViewCreate   ViewID = "create"
	ViewUpdate   ViewID = "update"
	ViewRegister ViewID = "register"
	ViewTrack    ViewID = "track"
	ViewSearch   ViewID = "search"
	ViewAudit    ViewID = "audit"
)

// AllViews lists every view in menu presentation order.
var AllViews = []ViewID{ViewCreate, ViewUpdate, ViewRegister, ViewTrack, ViewSearch, ViewAudit}

// Title returns the human-readable name shown in the navigation menu.
func (v ViewID) Title() string {
	switch v {
	case ViewCreate:
		return "Create File"
	case ViewUpdate:
		return "Update File"
	case ViewRegister:
		return "Register User"
	case ViewTrack:
		return "Track File"
	case ViewSearch:
		return "Search Files"
	case ViewAudit:
		return "Audit Logs"
	}
	return string(v)
}

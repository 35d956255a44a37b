package service

import (
	"sync"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

// viewMatrix maps each role to the views it may open, in menu order.
// Roles the service has never issued fall back to the guest set.
var viewMatrix = map[string][]domain.ViewID{
	domain.RoleAdmin: {
		domain.ViewCreate, domain.ViewUpdate, domain.ViewRegister,
		domain.ViewTrack, domain.ViewSearch, domain.ViewAudit,
	},
	domain.RoleOfficer: {domain.ViewTrack, domain.ViewSearch},
	domain.RoleGuest:   {domain.ViewTrack, domain.ViewSearch},
}

// ViewRouter implements ports.ViewRouter. It holds the single active view.
// Navigation outside the role's allowed set is ignored without error and
// leaves the active view unchanged.
type ViewRouter struct {
	mu     sync.Mutex
	active domain.ViewID
}

func NewViewRouter() *ViewRouter {
	return &ViewRouter{}
}

// DefaultView activates and returns the initial view for role: create for
// admins, track for everyone else. Called once per session establishment.
func (r *ViewRouter) DefaultView(role string) domain.ViewID {
	v := domain.ViewTrack
	if role == domain.RoleAdmin {
		v = domain.ViewCreate
	}
	r.mu.Lock()
	r.active = v
	r.mu.Unlock()
	return v
}

// SetView activates requested if role allows it; otherwise the previously
// active view stays and is returned.
func (r *ViewRouter) SetView(requested domain.ViewID, role string) domain.ViewID {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range allowed(role) {
		if v == requested {
			r.active = requested
			break
		}
	}
	return r.active
}

// AllowedViews returns a copy of the role's reachable views in menu order.
func (r *ViewRouter) AllowedViews(role string) []domain.ViewID {
	views := allowed(role)
	out := make([]domain.ViewID, len(views))
	copy(out, views)
	return out
}

func (r *ViewRouter) Active() domain.ViewID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func allowed(role string) []domain.ViewID {
	if views, ok := viewMatrix[role]; ok {
		return views
	}
	return viewMatrix[domain.RoleGuest]
}

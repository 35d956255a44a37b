package devserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

type account struct {
	domain.User
	passwordHash []byte
}

// Store is the in-memory backing state of the development server. It exists
// so the client can be exercised without the production service; nothing is
// persisted across restarts.
type Store struct {
	mu    sync.Mutex
	users map[string]*account // keyed by username
	files map[string]*domain.File
	audit map[string][]domain.AuditLog // keyed by file id
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*account),
		files: make(map[string]*domain.File),
		audit: make(map[string][]domain.AuditLog),
	}
}

// Seed provisions the default accounts so the client is usable out of the
// box: admin/admin123 plus two officers with password officer123.
func (s *Store) Seed() {
	_, _ = s.CreateUser("admin", "admin123", domain.RoleAdmin)
	_, _ = s.CreateUser("njoroge", "officer123", domain.RoleOfficer)
	_, _ = s.CreateUser("wambui", "officer123", domain.RoleOfficer)
}

func (s *Store) CreateUser(username, password, role string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return domain.User{}, domain.ErrUserExists
	}
	acc := &account{
		User:         domain.User{UserID: uuid.NewString(), Username: username, Role: role},
		passwordHash: hash,
	}
	s.users[username] = acc
	return acc.User, nil
}

func (s *Store) Authenticate(username, password string) (domain.User, error) {
	s.mu.Lock()
	acc, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return acc.User, nil
}

func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.users {
		if acc.UserID == id {
			return acc.User, true
		}
	}
	return domain.User{}, false
}

// UsersByRole returns users whose role is in roles, or everyone when roles
// is empty, ordered by username.
func (s *Store) UsersByRole(roles []string) []domain.User {
	wanted := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		wanted[strings.TrimSpace(r)] = struct{}{}
	}

	s.mu.Lock()
	out := make([]domain.User, 0, len(s.users))
	for _, acc := range s.users {
		if len(wanted) > 0 {
			if _, ok := wanted[acc.Role]; !ok {
				continue
			}
		}
		out = append(out, acc.User)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func (s *Store) CreateFile(file domain.File, createdBy string) domain.File {
	file.ID = uuid.NewString()
	file.CreatedBy = createdBy
	file.Timestamp = time.Now().UTC()

	s.mu.Lock()
	s.files[file.ID] = &file
	s.mu.Unlock()

	s.recordAudit("CREATED", file.ID, createdBy, "file registered: "+file.Title)
	return file
}

func (s *Store) FileByID(id string) (domain.File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.files[id]; ok {
		return *f, true
	}
	return domain.File{}, false
}

func (s *Store) UpdateFile(id string, update ports.FileUpdate, userID string) (domain.File, error) {
	s.mu.Lock()
	f, ok := s.files[id]
	if !ok {
		s.mu.Unlock()
		return domain.File{}, domain.ErrNotFound
	}

	var changed []string
	apply := func(field string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			changed = append(changed, field)
		}
	}
	apply("title", &f.Title, update.Title)
	apply("status", &f.Status, update.Status)
	apply("currentOfficer", &f.CurrentOfficer, update.CurrentOfficer)
	apply("courseCode", &f.CourseCode, update.CourseCode)
	apply("examSession", &f.ExamSession, update.ExamSession)
	f.Timestamp = time.Now().UTC()
	result := *f
	s.mu.Unlock()

	s.recordAudit("UPDATED", id, userID, "changed: "+strings.Join(changed, ", "))
	return result, nil
}

// Search matches query case-insensitively against title and status, like the
// production service's title-or-status search.
func (s *Store) Search(query string) []domain.File {
	q := strings.ToLower(query)

	s.mu.Lock()
	out := make([]domain.File, 0)
	for _, f := range s.files {
		if strings.Contains(strings.ToLower(f.Title), q) || strings.Contains(strings.ToLower(f.Status), q) {
			out = append(out, *f)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (s *Store) Audit(fileID string) []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := s.audit[fileID]
	out := make([]domain.AuditLog, len(logs))
	copy(out, logs)
	return out
}

func (s *Store) recordAudit(action, fileID, userID, details string) {
	entry := domain.AuditLog{
		LogID:     uuid.NewString(),
		Action:    action,
		FileID:    fileID,
		UserID:    userID,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
	s.mu.Lock()
	s.audit[fileID] = append(s.audit[fileID], entry)
	s.mu.Unlock()
}

package stores

import (
	"context"
	"sync"

	"cityvoice-be/models"
)

// MemoryIssueStore keeps issues in a map. Used by tests and by demo
// mode; the mutex covers the single-admin read-modify-write sequences.
type MemoryIssueStore struct {
	mu     sync.Mutex
	issues map[string]models.Issue
	order  []string
}

func NewMemoryIssueStore() *MemoryIssueStore {
	return &MemoryIssueStore{issues: make(map[string]models.Issue)}
}

func (s *MemoryIssueStore) GetByID(_ context.Context, id string) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issue, ok := s.issues[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := issue
	return &out, nil
}

// List returns issues in insertion order so view ordering is stable.
func (s *MemoryIssueStore) List(_ context.Context) ([]models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issues := make([]models.Issue, 0, len(s.order))
	for _, id := range s.order {
		issues = append(issues, s.issues[id])
	}
	return issues, nil
}

func (s *MemoryIssueStore) Insert(_ context.Context, issue *models.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.issues[issue.ID]; !ok {
		s.order = append(s.order, issue.ID)
	}
	s.issues[issue.ID] = *issue
	return nil
}

func (s *MemoryIssueStore) Update(_ context.Context, issue *models.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.issues[issue.ID]; !ok {
		return ErrNotFound
	}
	s.issues[issue.ID] = *issue
	return nil
}

func (s *MemoryIssueStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.issues[id]; !ok {
		return ErrNotFound
	}
	delete(s.issues, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryUserStore keeps users in a map.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := user
	return &out, nil
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

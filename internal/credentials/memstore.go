package credentials

import (
	"sync"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// MemStore is an in-memory Store for tests and embedding.
type MemStore struct {
	mu       sync.RWMutex
	token    string
	user     *api.UserInfo
	campusID int64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) User() *api.UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *MemStore) SetUser(user *api.UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

func (s *MemStore) CampusID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campusID
}

func (s *MemStore) SetCampusID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campusID = id
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// DefaultPath is where credentials live unless overridden in config.
const DefaultPath = "~/.lessonctl/credentials.json"

// FileStore persists credentials as a JSON file with 0600 permissions.
// Writes go through a temp file plus rename so a crashed write never
// leaves a half-written credentials file behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileState struct {
	Token    string        `json:"token,omitempty"`
	User     *api.UserInfo `json:"user,omitempty"`
	CampusID int64         `json:"campusId,omitempty"`
}

// NewFileStore creates a store backed by the given path. A leading ~ is
// expanded to the user's home directory.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: ExpandPath(path)}
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.Token = token
	return s.save(st)
}

func (s *FileStore) User() *api.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().User
}

func (s *FileStore) SetUser(user *api.UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.User = user
	return s.save(st)
}

func (s *FileStore) CampusID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().CampusID
}

func (s *FileStore) SetCampusID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.CampusID = id
	return s.save(st)
}

// Clear removes the token and cached user but keeps the campus selector.
// Clearing an empty or missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	if st.Token == "" && st.User == nil {
		return nil
	}
	st.Token = ""
	st.User = nil
	return s.save(st)
}

// load reads the current state, degrading to an empty state on any read
// or decode failure. Reads must never surface errors to the request path.
func (s *FileStore) load() fileState {
	var st fileState
	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return fileState{}
	}
	return st
}

func (s *FileStore) save(st fileState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}

// Exists reports whether a credentials file is present at the store path.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return !errors.Is(err, fs.ErrNotExist)
}

// ExpandPath expands ~ to home directory in file paths.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[1:])
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// SystemService covers the settings-page operations that are not lookup
// values: backups today.
type SystemService struct {
	c *Client
}

// System returns the system service.
func (c *Client) System() *SystemService {
	return &SystemService{c: c}
}

// Backups lists the existing backup archives.
func (s *SystemService) Backups(ctx context.Context) ([]api.BackupInfo, error) {
	return request[[]api.BackupInfo](ctx, s.c, http.MethodGet, "/system/backup/list", nil, nil)
}

// CreateBackup asks the server to snapshot the database.
func (s *SystemService) CreateBackup(ctx context.Context) (*api.BackupInfo, error) {
	info, err := request[api.BackupInfo](ctx, s.c, http.MethodPost, "/system/backup/create", nil, nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// DeleteBackup removes a backup archive.
func (s *SystemService) DeleteBackup(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/system/backup/delete", q, nil)
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// StudentService manages student enrollment.
type StudentService struct {
	c *Client
}

// Students returns the student service.
func (c *Client) Students() *StudentService {
	return &StudentService{c: c}
}

// List returns one page of students matching the filters.
func (s *StudentService) List(ctx context.Context, p api.StudentListParams) (api.Page[api.Student], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setString(q, "keyword", p.Keyword)
	setString(q, "status", p.Status)
	setInt64(q, "courseId", p.CourseID)
	return request[api.Page[api.Student]](ctx, s.c, http.MethodGet, "/student/list", q, nil)
}

// SimpleList returns students of a campus as id/name pairs.
func (s *StudentService) SimpleList(ctx context.Context, campusID int64) ([]api.SimpleItem, error) {
	q := url.Values{}
	setInt64(q, "campusId", campusID)
	return request[[]api.SimpleItem](ctx, s.c, http.MethodGet, "/student/simple/list", q, nil)
}

// Get returns one student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*api.Student, error) {
	q := url.Values{}
	setInt64(q, "id", id)
	student, err := request[api.Student](ctx, s.c, http.MethodGet, "/student/detail", q, nil)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create enrolls a student.
func (s *StudentService) Create(ctx context.Context, req api.StudentRequest) (*api.Student, error) {
	student, err := request[api.Student](ctx, s.c, http.MethodPost, "/student/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update replaces a student record.
func (s *StudentService) Update(ctx context.Context, req api.StudentRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/student/update", nil, req)
}

// UpdateStatus changes the enrollment status (STUDYING, SUSPENDED,
// GRADUATED).
func (s *StudentService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.c.exec(ctx, http.MethodPost, "/student/updateStatus", nil, map[string]any{
		"id":     id,
		"status": status,
	})
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/student/delete", q, nil)
}

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// CourseService manages the course catalog. List results are served from
// a short-lived cache because the console re-issues identical catalog
// queries in quick succession; every mutation drops the cache.
type CourseService struct {
	c *Client
}

// Courses returns the course service.
func (c *Client) Courses() *CourseService {
	return &CourseService{c: c}
}

// List returns one page of courses. Identical queries inside the cache
// window short-circuit the network call.
func (s *CourseService) List(ctx context.Context, p api.CourseListParams) (api.Page[api.Course], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setString(q, "keyword", p.Keyword)
	setString(q, "status", p.Status)
	setInt64(q, "typeId", p.TypeID)
	setInt64(q, "coachId", p.CoachID)

	key := "/course/list?" + q.Encode()
	if cached, ok := s.c.courseCache.get(key); ok {
		return cached.(api.Page[api.Course]), nil
	}

	page, err := request[api.Page[api.Course]](ctx, s.c, http.MethodGet, "/course/list", q, nil)
	if err != nil {
		return page, err
	}
	s.c.courseCache.put(key, page)
	return page, nil
}

// SimpleList returns courses of a campus as id/name pairs.
func (s *CourseService) SimpleList(ctx context.Context, campusID int64) ([]api.SimpleItem, error) {
	q := url.Values{}
	setInt64(q, "campusId", campusID)
	return request[[]api.SimpleItem](ctx, s.c, http.MethodGet, "/course/simple/list", q, nil)
}

// Get returns one course by id.
func (s *CourseService) Get(ctx context.Context, id int64) (*api.Course, error) {
	q := url.Values{}
	setInt64(q, "id", id)
	course, err := request[api.Course](ctx, s.c, http.MethodGet, "/course/detail", q, nil)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create adds a course to the catalog.
func (s *CourseService) Create(ctx context.Context, req api.CourseRequest) (*api.Course, error) {
	course, err := request[api.Course](ctx, s.c, http.MethodPost, "/course/create", nil, req)
	if err != nil {
		return nil, err
	}
	s.c.courseCache.invalidate()
	return &course, nil
}

// Update replaces a course record.
func (s *CourseService) Update(ctx context.Context, req api.CourseRequest) error {
	if err := s.c.exec(ctx, http.MethodPost, "/course/update", nil, req); err != nil {
		return err
	}
	s.c.courseCache.invalidate()
	return nil
}

// UpdateStatus publishes or retires a course.
func (s *CourseService) UpdateStatus(ctx context.Context, id int64, status string) error {
	err := s.c.exec(ctx, http.MethodPost, "/course/updateStatus", nil, map[string]any{
		"id":     id,
		"status": status,
	})
	if err != nil {
		return err
	}
	s.c.courseCache.invalidate()
	return nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	if err := s.c.exec(ctx, http.MethodPost, "/course/delete", q, nil); err != nil {
		return err
	}
	s.c.courseCache.invalidate()
	return nil
}

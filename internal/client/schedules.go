package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// ScheduleService manages the fixed weekly lesson slots.
type ScheduleService struct {
	c *Client
}

// Schedules returns the schedule service.
func (c *Client) Schedules() *ScheduleService {
	return &ScheduleService{c: c}
}

// List returns one page of schedule slots matching the filters.
func (s *ScheduleService) List(ctx context.Context, p api.ScheduleListParams) (api.Page[api.ScheduleSlot], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setInt64(q, "coachId", p.CoachID)
	setInt64(q, "studentId", p.StudentID)
	setString(q, "weekday", p.Weekday)
	return request[api.Page[api.ScheduleSlot]](ctx, s.c, http.MethodGet, "/schedule/list", q, nil)
}

// Create adds a fixed slot.
func (s *ScheduleService) Create(ctx context.Context, req api.ScheduleRequest) (*api.ScheduleSlot, error) {
	slot, err := request[api.ScheduleSlot](ctx, s.c, http.MethodPost, "/schedule/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// Update moves or reassigns a slot.
func (s *ScheduleService) Update(ctx context.Context, req api.ScheduleRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/schedule/update", nil, req)
}

// Delete removes a slot.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/schedule/delete", q, nil)
}

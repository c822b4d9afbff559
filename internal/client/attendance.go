package client

import (
	"context"
	"net/http"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// AttendanceService manages lesson check-in records.
type AttendanceService struct {
	c *Client
}

// Attendance returns the attendance service.
func (c *Client) Attendance() *AttendanceService {
	return &AttendanceService{c: c}
}

// List returns one page of check-in records matching the filters.
func (s *AttendanceService) List(ctx context.Context, p api.AttendanceListParams) (api.Page[api.AttendanceRecord], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setInt64(q, "studentId", p.StudentID)
	setInt64(q, "coachId", p.CoachID)
	setString(q, "startDate", p.StartDate)
	setString(q, "endDate", p.EndDate)
	return request[api.Page[api.AttendanceRecord]](ctx, s.c, http.MethodGet, "/attendance/list", q, nil)
}

// Checkin records a student check-in and returns the stored record.
func (s *AttendanceService) Checkin(ctx context.Context, req api.CheckinRequest) (*api.AttendanceRecord, error) {
	record, err := request[api.AttendanceRecord](ctx, s.c, http.MethodPost, "/attendance/checkin", nil, req)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

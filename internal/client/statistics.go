package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// StatisticsService serves the aggregate statistics and the home
// dashboard.
type StatisticsService struct {
	c *Client
}

// Statistics returns the statistics service.
func (c *Client) Statistics() *StatisticsService {
	return &StatisticsService{c: c}
}

func statsQuery(p api.StatsParams) url.Values {
	q := url.Values{}
	setInt64(q, "campusId", p.CampusID)
	setString(q, "type", p.Type)
	setString(q, "startDate", p.StartDate)
	setString(q, "endDate", p.EndDate)
	return q
}

// Summary returns the headline numbers for a period.
func (s *StatisticsService) Summary(ctx context.Context, p api.StatsParams) (*api.StatsSummary, error) {
	summary, err := request[api.StatsSummary](ctx, s.c, http.MethodGet, "/statistics/summary", statsQuery(p), nil)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Finance returns the income/expense aggregates for a period.
func (s *StatisticsService) Finance(ctx context.Context, p api.StatsParams) (*api.StatsSummary, error) {
	summary, err := request[api.StatsSummary](ctx, s.c, http.MethodGet, "/statistics/finance", statsQuery(p), nil)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Dashboard returns today's numbers and the current lesson schedule.
func (s *StatisticsService) Dashboard(ctx context.Context, campusID int64) (*api.DashboardSummary, error) {
	q := url.Values{}
	setInt64(q, "campusId", campusID)
	summary, err := request[api.DashboardSummary](ctx, s.c, http.MethodGet, "/dashboard/summary", q, nil)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

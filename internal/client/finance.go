package client

import (
	"context"
	"net/http"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// FinanceService manages the income/expense ledger.
type FinanceService struct {
	c *Client
}

// Finance returns the finance service.
func (c *Client) Finance() *FinanceService {
	return &FinanceService{c: c}
}

// List returns one page of ledger entries matching the filters.
func (s *FinanceService) List(ctx context.Context, p api.FinanceListParams) (api.Page[api.FinanceRecord], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setString(q, "type", p.Type)
	setString(q, "keyword", p.Keyword)
	setString(q, "startDate", p.StartDate)
	setString(q, "endDate", p.EndDate)
	return request[api.Page[api.FinanceRecord]](ctx, s.c, http.MethodGet, "/finance/list", q, nil)
}

// Create adds a ledger entry and returns the stored record.
func (s *FinanceService) Create(ctx context.Context, req api.FinanceRequest) (*api.FinanceRecord, error) {
	record, err := request[api.FinanceRecord](ctx, s.c, http.MethodPost, "/finance/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

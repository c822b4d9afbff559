package client

import (
	"context"
	"net/http"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// PaymentService manages payment records (fees, renewals, refunds).
type PaymentService struct {
	c *Client
}

// Payments returns the payment service.
func (c *Client) Payments() *PaymentService {
	return &PaymentService{c: c}
}

// List returns one page of payments matching the filters.
func (s *PaymentService) List(ctx context.Context, p api.PaymentListParams) (api.Page[api.Payment], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setInt64(q, "studentId", p.StudentID)
	setString(q, "keyword", p.Keyword)
	setString(q, "payType", p.PayType)
	setString(q, "startDate", p.StartDate)
	setString(q, "endDate", p.EndDate)
	return request[api.Page[api.Payment]](ctx, s.c, http.MethodGet, "/payment/list", q, nil)
}

// Create records a payment and returns the stored record.
func (s *PaymentService) Create(ctx context.Context, req api.PaymentRequest) (*api.Payment, error) {
	payment, err := request[api.Payment](ctx, s.c, http.MethodPost, "/payment/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

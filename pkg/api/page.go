package api

import (
	"encoding/json"

	"github.com/gookit/goutil"
)

// Page is the canonical paginated list shape. The backend is inconsistent
// about pagination field names (pageNum vs page) and occasionally sends
// numbers as strings on older endpoints; UnmarshalJSON absorbs all of
// that so nothing downstream has to branch on field variants.
type Page[T any] struct {
	List     []T `json:"list"`
	Total    int `json:"total"`
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages,omitempty"`
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		List     []T `json:"list"`
		Total    any `json:"total"`
		PageNum  any `json:"pageNum"`
		Page     any `json:"page"`
		PageSize any `json:"pageSize"`
		Pages    any `json:"pages"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.List = raw.List
	p.Total = coerceInt(raw.Total)
	p.PageNum = coerceInt(raw.PageNum)
	if p.PageNum == 0 {
		p.PageNum = coerceInt(raw.Page)
	}
	p.PageSize = coerceInt(raw.PageSize)
	p.Pages = coerceInt(raw.Pages)
	return nil
}

// coerceInt converts float64, string or json.Number to int, returning 0
// for nil or anything unconvertible.
func coerceInt(v any) int {
	if v == nil {
		return 0
	}
	n, err := goutil.ToInt(v)
	if err != nil {
		return 0
	}
	return n
}

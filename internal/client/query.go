package client

import (
	"net/url"
	"strconv"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// Query building helpers. Optional filters are only appended when set so
// the backend never sees empty parameters.

func pageQuery(p api.PageParams) url.Values {
	q := url.Values{}
	setInt(q, "pageNum", p.PageNum)
	setInt(q, "pageSize", p.PageSize)
	return q
}

func setInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setInt64(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

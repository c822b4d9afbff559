package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Unmarshal_PageNumVariant(t *testing.T) {
	body := []byte(`{"list":[{"id":1,"name":"A"}],"total":42,"pageNum":2,"pageSize":10,"pages":5}`)

	var page Page[SimpleItem]
	require.NoError(t, json.Unmarshal(body, &page))

	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 2, page.PageNum)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 5, page.Pages)
	require.Len(t, page.List, 1)
	assert.Equal(t, "A", page.List[0].Name)
}

func TestPage_Unmarshal_PageVariant(t *testing.T) {
	// Older endpoints say "page" instead of "pageNum".
	body := []byte(`{"list":[],"total":3,"page":1,"pageSize":20}`)

	var page Page[SimpleItem]
	require.NoError(t, json.Unmarshal(body, &page))

	assert.Equal(t, 1, page.PageNum)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 20, page.PageSize)
}

func TestPage_Unmarshal_StringNumbers(t *testing.T) {
	// Some legacy endpoints serialize counters as strings.
	body := []byte(`{"list":[],"total":"15","pageNum":"2","pageSize":"10"}`)

	var page Page[SimpleItem]
	require.NoError(t, json.Unmarshal(body, &page))

	assert.Equal(t, 15, page.Total)
	assert.Equal(t, 2, page.PageNum)
	assert.Equal(t, 10, page.PageSize)
}

func TestPage_Unmarshal_MissingFields(t *testing.T) {
	var page Page[SimpleItem]
	require.NoError(t, json.Unmarshal([]byte(`{"list":null}`), &page))

	assert.Zero(t, page.Total)
	assert.Zero(t, page.PageNum)
	assert.Empty(t, page.List)
}

func TestEnvelope_OK(t *testing.T) {
	cases := []struct {
		code int
		ok   bool
	}{
		{0, true},
		{200, true},
		{201, false},
		{4001, false},
		{-1, false},
	}
	for _, tc := range cases {
		env := Envelope[any]{Code: tc.code}
		assert.Equal(t, tc.ok, env.OK(), "code %d", tc.code)
	}
}

func TestError_Error(t *testing.T) {
	err := NewError(4001, "校区不存在")
	assert.Equal(t, "api error [4001]: 校区不存在", err.Error())
	assert.False(t, err.IsTimeout())
	assert.False(t, err.IsUnauthorized())

	assert.True(t, NewError(CodeTimeout, "timed out").IsTimeout())
	assert.True(t, NewError(401, "expired").IsUnauthorized())
}

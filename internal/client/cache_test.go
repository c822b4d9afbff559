package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgzs6721/lessonctl/internal/credentials"
	"github.com/sgzs6721/lessonctl/pkg/api"
)

// fakeClock is an adjustable time source for cache tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newCacheTestClient(serverURL string, clock *fakeClock) *Client {
	c := newTestClient(serverURL, credentials.NewMemStore())
	c.now = clock.now
	c.courseCache = newListCache(30*time.Second, clock.now)
	return c
}

func TestCourseList_CacheHitWithinWindow(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"data":    map[string]any{"list": []map[string]any{{"id": 1, "name": "游泳"}}, "total": 1},
			"message": "ok",
		})
	}))
	defer server.Close()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := newCacheTestClient(server.URL, clock)
	params := api.CourseListParams{PageParams: api.PageParams{PageNum: 1, PageSize: 10}}

	first, err := c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	clock.advance(10 * time.Second)
	second, err := c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call inside the window must be served from cache")
	assert.Equal(t, first, second)
}

func TestCourseList_CacheExpiry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"data":    map[string]any{"list": []any{}, "total": 0},
			"message": "ok",
		})
	}))
	defer server.Close()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := newCacheTestClient(server.URL, clock)
	params := api.CourseListParams{PageParams: api.PageParams{PageNum: 1, PageSize: 10}}

	_, err := c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	clock.advance(31 * time.Second)
	_, err = c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "call after the window must hit the network again")
}

func TestCourseList_DifferentQueriesMiss(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"data":    map[string]any{"list": []any{}, "total": 0},
			"message": "ok",
		})
	}))
	defer server.Close()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := newCacheTestClient(server.URL, clock)

	_, err := c.Courses().List(context.Background(), api.CourseListParams{PageParams: api.PageParams{PageNum: 1, PageSize: 10}})
	require.NoError(t, err)
	_, err = c.Courses().List(context.Background(), api.CourseListParams{PageParams: api.PageParams{PageNum: 2, PageSize: 10}})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestCourseMutation_InvalidatesCache(t *testing.T) {
	var listCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/lesson/api/course/list" {
			listCalls++
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"data":    map[string]any{"list": []any{}, "total": 0},
			"message": "ok",
		})
	}))
	defer server.Close()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := newCacheTestClient(server.URL, clock)
	params := api.CourseListParams{PageParams: api.PageParams{PageNum: 1, PageSize: 10}}

	_, err := c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	_, err = c.Courses().Create(context.Background(), api.CourseRequest{Name: "篮球", CampusID: 1})
	require.NoError(t, err)

	_, err = c.Courses().List(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 2, listCalls, "mutation must drop the cached list")
}

func TestListCache_ZeroTTLDisables(t *testing.T) {
	cache := newListCache(0, time.Now)
	cache.put("k", 1)
	_, ok := cache.get("k")
	assert.False(t, ok)
}

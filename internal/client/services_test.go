package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgzs6721/lessonctl/internal/credentials"
	"github.com/sgzs6721/lessonctl/pkg/api"
)

func TestCampusService_List_UnwrapsData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lesson/api/campus/list", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageNum"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))

		json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]any{
				"list":     []map[string]any{{"id": 1, "name": "A"}},
				"total":    1,
				"pageNum":  1,
				"pageSize": 10,
			},
			"message": "ok",
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL, credentials.NewMemStore())
	page, err := c.Campuses().List(context.Background(), api.CampusListParams{
		PageParams: api.PageParams{PageNum: 1, PageSize: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.PageNum)
	assert.Equal(t, 10, page.PageSize)
	require.Len(t, page.List, 1)
	assert.Equal(t, int64(1), page.List[0].ID)
	assert.Equal(t, "A", page.List[0].Name)
}

func TestCampusService_List_OmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("keyword"), "empty keyword must not be sent")
		assert.False(t, q.Has("status"), "empty status must not be sent")
		json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": map[string]any{"list": []any{}, "total": 0}, "message": "ok"})
	}))
	defer server.Close()

	c := newTestClient(server.URL, credentials.NewMemStore())
	_, err := c.Campuses().List(context.Background(), api.CampusListParams{
		PageParams: api.PageParams{PageNum: 1, PageSize: 10},
	})
	require.NoError(t, err)
}

func TestAuthService_Login_StoresCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lesson/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "13800000000", req.Phone)

		json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]any{
				"accessToken": "tok-abc",
				"user":        map[string]any{"id": 7, "phone": req.Phone, "realName": "王教练"},
			},
			"message": "ok",
		})
	}))
	defer server.Close()

	creds := credentials.NewMemStore()
	c := newTestClient(server.URL, creds)

	res, err := c.Auth().Login(context.Background(), api.LoginRequest{
		Phone:    "13800000000",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", res.AccessToken)
	assert.Equal(t, "tok-abc", creds.Token())
	require.NotNil(t, creds.User())
	assert.Equal(t, int64(7), creds.User().ID)
}

func TestAuthService_Logout_ClearsEvenOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"message": "boom"})
	}))
	defer server.Close()

	creds := credentials.NewMemStore()
	creds.SetToken("tok-abc")
	c := newTestClient(server.URL, creds)

	err := c.Auth().Logout(context.Background())

	require.Error(t, err)
	assert.Empty(t, creds.Token(), "token must be cleared even when the logout call fails")
}

func TestStudentService_Create_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req api.StudentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "小明", req.Name)
		assert.Equal(t, int64(3), req.CampusID)

		json.NewEncoder(w).Encode(map[string]any{
			"code":    0,
			"data":    map[string]any{"id": 42, "name": req.Name, "campusId": req.CampusID},
			"message": "ok",
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL, credentials.NewMemStore())
	student, err := c.Students().Create(context.Background(), api.StudentRequest{
		Name:     "小明",
		CampusID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), student.ID)
}

package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/app"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/metrics"
	"github.com/MKhiriev/go-library-keeper/internal/mock"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "sign-key"
	testIssuer  = "library-client"
	testHashKey = "hash-key"
)

func libraryItems() []models.Metadata {
	return []models.Metadata{
		{ID: "1", Title: "Alpha", Alias: []string{}, Tags: []string{"rpg"}, ContentType: models.ContentTypeGame},
		{ID: "2", Title: "Beta", Alias: []string{}, Tags: []string{}, ContentType: models.ContentTypeNovel,
			Platform: models.SteamPlatform("620")},
	}
}

// newTestServer собирает роутер поверх настоящего LibraryStore с мок-шлюзом.
func newTestServer(t *testing.T, auth AuthSettings, hashKey string) (*httptest.Server, *mock.MockCommandGateway, service.LibraryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockCommandGateway(ctrl)
	store := service.NewLibraryStore(gw, nil, logger.Nop())

	gw.EXPECT().GetAll(gomock.Any()).Return(libraryItems(), nil)
	require.NoError(t, store.Reload(context.Background()))

	m := metrics.NewMetrics()
	h := NewHandler(store, m.Handler(), models.NewAppBuildInfo("v1.2.3", "", "abc"), auth, hashKey, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, gw, store
}

func get(t *testing.T, url string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeList(t *testing.T, r io.Reader) (uint64, int, []models.Metadata) {
	t.Helper()
	var body struct {
		Version uint64            `json:"version"`
		Total   int               `json:"total"`
		Items   []models.Metadata `json:"items"`
	}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body.Version, body.Total, body.Items
}

// ─────────────────────────────────────────────
// /api/library
// ─────────────────────────────────────────────

func TestListItems(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTitles []string
	}{
		{name: "all items", query: "", wantStatus: http.StatusOK, wantTitles: []string{"Alpha", "Beta"}},
		{name: "substring", query: "?q=Al", wantStatus: http.StatusOK, wantTitles: []string{"Alpha"}},
		{name: "platform id", query: "?q=620", wantStatus: http.StatusOK, wantTitles: []string{"Beta"}},
		{name: "regex", query: "?q=%5EB&regex=true", wantStatus: http.StatusOK, wantTitles: []string{"Beta"}},
		{name: "invalid regex", query: "?q=(&regex=1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv.URL+"/api/library/"+tt.query, nil)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != http.StatusOK {
				return
			}

			version, total, items := decodeList(t, resp.Body)
			assert.Equal(t, uint64(1), version)
			assert.Equal(t, 2, total)

			titles := make([]string, 0, len(items))
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestGetItem(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/api/library/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item models.Metadata
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "Beta", item.Title)
	assert.Equal(t, models.SteamPlatform("620"), item.Platform)

	resp = get(t, srv.URL+"/api/library/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, app.MsgItemNotFound, body.Error)
}

func TestReload(t *testing.T) {
	t.Run("without auth", func(t *testing.T) {
		srv, gw, store := newTestServer(t, AuthSettings{}, "")
		gw.EXPECT().GetAll(gomock.Any()).Return(libraryItems()[:1], nil)

		resp, err := http.Post(srv.URL+"/api/library/reload", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, store.Items(), 1)
	})

	t.Run("executor failure keeps cache", func(t *testing.T) {
		srv, gw, store := newTestServer(t, AuthSettings{}, "")
		gw.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("executor down"))

		resp, err := http.Post(srv.URL+"/api/library/reload", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Len(t, store.Items(), 2)
	})

	t.Run("auth required", func(t *testing.T) {
		srv, gw, _ := newTestServer(t, AuthSettings{SignKey: testSignKey, Issuer: testIssuer}, "")

		resp, err := http.Post(srv.URL+"/api/library/reload", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		token, err := utils.GenerateJWTToken(testIssuer, "tester", time.Minute, testSignKey)
		require.NoError(t, err)

		gw.EXPECT().GetAll(gomock.Any()).Return(libraryItems(), nil)

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/library/reload", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err = http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		srv, _, _ := newTestServer(t, AuthSettings{SignKey: testSignKey, Issuer: testIssuer}, "")

		token, err := utils.GenerateJWTToken(testIssuer, "tester", time.Minute, "other-key")
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/library/reload", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestResponseHashing(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, testHashKey)

	resp := get(t, srv.URL+"/api/library/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	signature := resp.Header.Get(utils.HashHeader)
	require.NotEmpty(t, signature)
	assert.True(t, utils.NewHasher(testHashKey).Verify(body, signature))
}

func TestResponseHashing_Disabled(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/api/library/1", nil)
	assert.Empty(t, resp.Header.Get(utils.HashHeader))
}

func TestGZip(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, testHashKey)

	// отключаем прозрачную распаковку, чтобы увидеть Content-Encoding
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/library/", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.True(t, utils.NewHasher(testHashKey).Verify(body, resp.Header.Get(utils.HashHeader)),
		"signature covers the uncompressed body")
}

func TestRequestID(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/healthz", http.Header{requestIDHeader: {"my-request"}})
	assert.Equal(t, "my-request", resp.Header.Get(requestIDHeader))

	resp = get(t, srv.URL+"/healthz", nil)
	_, err := uuid.Parse(resp.Header.Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_InContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetRequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(requestIDHeader, "abc")
	h.withRequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", got)
}

func TestCheckHTTPMethod(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp, err := http.Post(srv.URL+"/healthz", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

// ─────────────────────────────────────────────
// /healthz, /version, /metrics
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["items"])
}

func TestVersion(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/version", nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc", string(body))
}

func TestMetrics(t *testing.T) {
	srv, _, _ := newTestServer(t, AuthSettings{}, "")

	resp := get(t, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}

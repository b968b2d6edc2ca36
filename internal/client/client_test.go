package client

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntoineGS/tidymenu/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := New("")

	assert.Equal(t, DefaultBaseURL+DefaultEndpoint, c.URL())
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseURL  string
		endpoint string
		want     string
	}{
		{"default endpoint", "http://example.test", "", "http://example.test/menu"},
		{"trailing slash", "http://example.test/", "", "http://example.test/menu"},
		{"custom endpoint", "http://example.test", "/api/menu", "http://example.test/api/menu"},
		{"endpoint without slash", "http://example.test", "menu", "http://example.test/menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(tt.baseURL, WithEndpoint(tt.endpoint))
			assert.Equal(t, tt.want, c.URL())
		})
	}
}

func TestFetchMenu_Success(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMenuServer(t, testutil.SampleMenu())
	c := New(srv.URL)

	items, err := c.FetchMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 10)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.Equal(t, "pizza", items[0].Category)
	assert.InDelta(t, 10.5, items[0].Price, 0.001)
	assert.Equal(t, 1, srv.Hits())
}

func TestFetchMenu_DecodesWireFormat(t *testing.T) {
	t.Parallel()

	body := `[{"_id":"64f0","name":"Greek Salad","recipe":"Feta, olives","image":"https://img/x.png","category":"salad","price":12.5,"__v":0}]`
	srv := testutil.NewRawMenuServer(t, http.StatusOK, body)

	items, err := New(srv.URL).FetchMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "64f0", items[0].ID)
	assert.Equal(t, "Feta, olives", items[0].Recipe)
	assert.Equal(t, "https://img/x.png", items[0].Image)
}

func TestFetchMenu_NullBody(t *testing.T) {
	t.Parallel()

	srv := testutil.NewRawMenuServer(t, http.StatusOK, "null")

	items, err := New(srv.URL).FetchMenu(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetchMenu_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr    error
		name       string
		body       string
		status     int
		wantStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrUnexpectedStatus, wantStatus: 500},
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrUnexpectedStatus, wantStatus: 404},
		{name: "object body", status: http.StatusOK, body: `{"items":[]}`, wantErr: ErrMalformedBody, wantStatus: 200},
		{name: "truncated json", status: http.StatusOK, body: `[{"_id":"1"`, wantErr: ErrMalformedBody, wantStatus: 200},
		{name: "empty body", status: http.StatusOK, body: "", wantErr: ErrMalformedBody, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := testutil.NewRawMenuServer(t, tt.status, tt.body)

			items, err := New(srv.URL).FetchMenu(context.Background())
			require.Error(t, err)
			assert.Nil(t, items)
			assert.ErrorIs(t, err, tt.wantErr)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantStatus, fetchErr.Status)
			assert.Equal(t, srv.URL+"/menu", fetchErr.URL)
		})
	}
}

func TestFetchMenu_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).FetchMenu(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.Status)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestFetchMenu_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).FetchMenu(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchMenu_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMenuServer(t, testutil.SampleMenu())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).FetchMenu(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchMenu_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := testutil.NewMenuServer(t, testutil.SampleMenu())
	_, err := New(srv.URL, WithLogger(logger)).FetchMenu(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "menu fetched")
	assert.Contains(t, out, "items=10")
}

func TestFetchError_Message(t *testing.T) {
	t.Parallel()

	withStatus := &FetchError{URL: "http://x/menu", Status: 502, Err: ErrUnexpectedStatus}
	assert.Equal(t, "fetching http://x/menu: status 502: unexpected status", withStatus.Error())

	noStatus := &FetchError{URL: "http://x/menu", Err: errors.New("dial tcp: refused")}
	assert.Equal(t, "fetching http://x/menu: dial tcp: refused", noStatus.Error())
}

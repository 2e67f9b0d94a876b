package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/tripplanner/internal/logging"
	"github.com/dmitrijs2005/tripplanner/internal/server/config"
	"github.com/dmitrijs2005/tripplanner/internal/server/repositories/users"
	"github.com/dmitrijs2005/tripplanner/internal/server/services"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *resty.Client) {
	t.Helper()
	us := services.NewUserService(users.NewMemoryRepository(), &config.Config{SecretKey: "k", TokenValidity: time.Hour})
	s := NewServer(":0", logging.Nop(), us, time.Second)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	return srv, resty.New().SetBaseURL(srv.URL).SetHeader("Content-Type", "application/json")
}

func register(t *testing.T, c *resty.Client, email, password string) string {
	t.Helper()
	var out tokenResponse
	resp, err := c.R().SetBody(credentialsRequest{Email: email, Password: password}).SetResult(&out).Post("/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestPing(t *testing.T) {
	_, c := newTestServer(t)

	resp, err := c.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotEmpty(t, resp.Header().Get(HeaderRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	_, c := newTestServer(t)

	resp, err := c.R().SetHeader(HeaderRequestID, "req-42").Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header().Get(HeaderRequestID))
}

func TestRegister_Duplicate(t *testing.T) {
	_, c := newTestServer(t)
	register(t, c, "a@b.c", "pw")

	var out errorResponse
	resp, err := c.R().SetBody(credentialsRequest{Email: "a@b.c", Password: "x"}).SetError(&out).Post("/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())
	assert.Equal(t, "User exists", out.Error)
}

func TestRegister_MissingField(t *testing.T) {
	_, c := newTestServer(t)

	var out errorResponse
	resp, err := c.R().SetBody(map[string]string{"email": "a@b.c"}).SetError(&out).Post("/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "missing field: password", out.Error)
}

func TestRegister_BadJSON(t *testing.T) {
	_, c := newTestServer(t)

	var out errorResponse
	resp, err := c.R().SetBody(`{"email":`).SetError(&out).Post("/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.True(t, strings.HasPrefix(out.Error, "invalid request body"))
}

func TestLogin(t *testing.T) {
	_, c := newTestServer(t)
	register(t, c, "a@b.c", "pw")

	var ok tokenResponse
	resp, err := c.R().SetBody(credentialsRequest{Email: "a@b.c", Password: "pw"}).SetResult(&ok).Post("/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotEmpty(t, ok.Token)

	var bad errorResponse
	resp, err = c.R().SetBody(credentialsRequest{Email: "a@b.c", Password: "nope"}).SetError(&bad).Post("/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "Invalid credentials", bad.Error)
}

func TestGenerate_RequiresBearer(t *testing.T) {
	_, c := newTestServer(t)

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic abc"} {
		var out errorResponse
		r := c.R().SetBody(map[string]any{"destination": "Paris", "days": 2}).SetError(&out)
		if header != "" {
			r.SetHeader("Authorization", header)
		}
		resp, err := r.Post("/generate")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), header)
		assert.Equal(t, "unauthorized", out.Error, header)
	}
}

func TestGenerate(t *testing.T) {
	_, c := newTestServer(t)
	token := register(t, c, "a@b.c", "pw")

	tests := []struct {
		name string
		days any
		want int
	}{
		{"number", 3, 3},
		{"string", "3", 3},
		{"garbage", "abc", 2},
		{"absent", nil, 2},
		{"fractional", 2.9, 2},
		{"long trip", "400", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"destination": "Paris"}
			if tt.days != nil {
				body["days"] = tt.days
			}
			var out itineraryResponse
			resp, err := c.R().SetAuthToken(token).SetBody(body).SetResult(&out).Post("/generate")
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode())
			assert.Equal(t, tt.want, strings.Count(out.Itinerary, "\n"))
			assert.True(t, strings.HasPrefix(out.Itinerary, "Day 1: Paris - "))
		})
	}
}

func TestGenerate_TooManyDays(t *testing.T) {
	_, c := newTestServer(t)
	token := register(t, c, "a@b.c", "pw")

	var out errorResponse
	resp, err := c.R().SetAuthToken(token).SetBody(map[string]any{"destination": "Paris", "days": maxGenerateDays + 1}).SetError(&out).Post("/generate")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "days must not exceed 10000", out.Error)
}

func TestGenerate_MissingDestination(t *testing.T) {
	_, c := newTestServer(t)
	token := register(t, c, "a@b.c", "pw")

	var out errorResponse
	resp, err := c.R().SetAuthToken(token).SetBody(map[string]any{"days": 2}).SetError(&out).Post("/generate")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "missing field: destination", out.Error)
}

func TestServe_StopsOnCancel(t *testing.T) {
	us := services.NewUserService(users.NewMemoryRepository(), &config.Config{SecretKey: "k", TokenValidity: time.Hour})
	s := NewServer("127.0.0.1:0", logging.Nop(), us, time.Second)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, l) }()

	require.Eventually(t, func() bool {
		resp, err := resty.New().R().Get("http://" + l.Addr().String() + "/ping")
		return err == nil && resp.StatusCode() == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	s := NewServer("not-an-address", logging.Nop(), nil, time.Second)
	require.Error(t, s.Run(context.Background()))
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nfrund/voidinbox/internal/app"
	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/metrics"
	"github.com/nfrund/voidinbox/internal/modules/void"
	"github.com/nfrund/voidinbox/internal/registry"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/responder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{ draw float64 }

func (f fixedSource) Float64() float64 { return f.draw }
func (f fixedSource) IntN(int) int     { return 0 }

// setupIntegrationTest boots the full server with a responder whose every
// draw is draw.
func setupIntegrationTest(t *testing.T, draw float64) (*Server, *httptest.Server) {
	t.Helper()

	env := map[string]string{
		"VOID_REVEAL_INTERVAL": "1ms",
		"VOID_DWELL":           "50ms",
	}
	cfg, err := config.FromEnv(func(k string) string { return env[k] })
	require.NoError(t, err)

	pool, err := replies.New([]string{"The Void hums."})
	require.NoError(t, err)

	m := metrics.New()
	s, err := New(Dependencies{Config: cfg, Renderer: rendering.New(), Metrics: m})
	require.NoError(t, err)

	modules := app.NewModules(app.Dependencies{
		Renderer:         rendering.New(),
		Pool:             pool,
		Metrics:          m,
		ResponderOptions: []responder.Option{responder.WithSource(fixedSource{draw: draw})},
	})
	require.NoError(t, s.InitModules(context.Background(), modules, registry.New(cfg)))
	s.RegisterRoutes()

	ts := httptest.NewServer(s.E)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
		ts.Close()
	})
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIntegration_Health(t *testing.T) {
	_, ts := setupIntegrationTest(t, 1)

	resp, body := get(t, ts.URL+healthPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestIntegration_PageAndStatic(t *testing.T) {
	_, ts := setupIntegrationTest(t, 1)

	resp, body := get(t, ts.URL+void.PagePath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `ws-connect="/ws"`)
	assert.Contains(t, body, `id="void-message"`)

	resp, body = get(t, ts.URL+staticPath+"/void.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body)
}

func TestIntegration_SendAndMetrics(t *testing.T) {
	_, ts := setupIntegrationTest(t, 0)

	resp, err := http.Post(ts.URL+void.SendPath, "application/json", strings.NewReader(`{"message":"anyone there?"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var event void.ReplyEvent
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&event))
	assert.True(t, event.Replied)
	assert.Equal(t, "The Void hums.", event.Reply)

	resp2, err := http.Post(ts.URL+void.SendPath, "application/json", strings.NewReader(`{"message":"  "}`))
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	_, body := get(t, ts.URL+metricsPath)
	assert.Contains(t, body, `voidinbox_responses_total{outcome="replied"} 1`)
	assert.Contains(t, body, `voidinbox_responses_total{outcome="silent"} 0`)
	assert.Contains(t, body, "requests_total")
}

func TestIntegration_WebSocketRevealAndHide(t *testing.T) {
	_, ts := setupIntegrationTest(t, 0)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + void.SocketPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "hello?"}))

	read := func() string {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, p, err := conn.ReadMessage()
		require.NoError(t, err)
		return string(p)
	}

	var last string
	sawFull := false
	for !strings.Contains(last, "hidden") {
		last = read()
		require.Contains(t, last, `id="void-reply"`)
		if strings.Contains(last, "<p>The Void hums.</p>") {
			sawFull = true
		}
	}
	assert.True(t, sawFull, "the whole reply is shown before it hides")
}

package void

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/handlers"
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

type countingObserver struct{ replied, silent int }

func (o *countingObserver) ObserveResponse(replied bool) {
	if replied {
		o.replied++
	} else {
		o.silent++
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)
	return cfg
}

func TestVoidModule_RegisterUsesConfiguredProbability(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReplyProbability = 0.3
	reg := registry.New(cfg)

	m := New(Dependencies{Renderer: rendering.New()})
	require.NoError(t, m.Register(reg))

	r, ok := registry.Get(reg, KeyResponder)
	require.True(t, ok)
	assert.Equal(t, 0.3, r.Threshold())
	assert.Equal(t, replies.Default().All(), r.Pool().All())
}

func TestVoidModule_BootServesRoutesAndObserves(t *testing.T) {
	pool, err := replies.New([]string{"The Void blinks."})
	require.NoError(t, err)

	reg := registry.New(testConfig(t))
	observer := &countingObserver{}
	m := New(Dependencies{
		Renderer: rendering.New(),
		Pool:     pool,
		Observer: observer,
		Options:  []responder.Option{responder.WithSource(fixedSource{draw: 0})},
	})
	require.NoError(t, m.Register(reg))

	e := echo.New()
	e.Validator = handlers.NewValidator()
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PagePath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, SendPath, strings.NewReader(`{"message":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"replied":true,"reply":"The Void blinks."}`, rec.Body.String())
	assert.Equal(t, 1, observer.replied)
	assert.Equal(t, 0, observer.silent)
}

func TestVoidModule_BootWithoutRegister(t *testing.T) {
	m := New(Dependencies{Renderer: rendering.New()})
	err := m.Boot(context.Background(), echo.New().Group(""), registry.New(testConfig(t)))
	assert.Error(t, err)
}

func TestVoidModule_ShutdownBeforeBoot(t *testing.T) {
	assert.NoError(t, New(Dependencies{}).Shutdown(context.Background()))
}

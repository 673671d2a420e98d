package app_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/holidays/config"
	"github.com/Gunvolt24/holidays/internal/app"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/stretchr/testify/require"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковая фоновая задача, которая ждёт отмены контекста
type fakeJob struct {
	runCalls   int32
	closeCalls int32
	runErr     error
}

func (f *fakeJob) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	if f.runErr != nil {
		return f.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}
func (f *fakeJob) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fj := &fakeJob{}
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: srv,
		Jobs:       []ports.BackgroundJob{fj},
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	require.EqualValues(t, 1, atomic.LoadInt32(&fj.runCalls), "job.Run should be called")
	require.EqualValues(t, 1, atomic.LoadInt32(&fj.closeCalls), "job.Close should be called")
}

func TestAppRun_JobErrorStopsApp(t *testing.T) {
	boom := errors.New("scheduler failed")
	fj := &fakeJob{runErr: boom}
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		Jobs:       []ports.BackgroundJob{fj},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.Run(ctx)
	require.ErrorIs(t, err, boom)
	require.NoError(t, ctx.Err(), "app must stop before the outer deadline")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("HOLIDAY_APP_TEST")
	require.NoError(t, err)
	cfg.Source = "mock"
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	return cfg
}

func TestBootstrap_MockSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.WarmUp.Enabled = true
	cfg.WarmUp.Schedule = "@every 1h"

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.HTTPServer)
	require.Equal(t, "127.0.0.1:0", a.HTTPServer.Addr)
	require.Nil(t, a.MetricsServer)
	require.Len(t, a.Jobs, 1)
}

func TestBootstrap_APISourceAndMetricsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Source = "api"
	cfg.Metrics.Addr = "127.0.0.1:0"

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.MetricsServer)
	require.Empty(t, a.Jobs)
}

func TestBootstrap_APISourceRaisesShortTimeouts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Source = "api"
	cfg.HTTP.HandlerTimeout = 8 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	// 27s повторов + 1s запаса + 2s на запись ответа
	require.Equal(t, 30*time.Second, a.HTTPServer.WriteTimeout)
}

func TestHTTPTimeouts(t *testing.T) {
	cases := []struct {
		name                   string
		source                 string
		handlerIn, writeIn     time.Duration
		wantHandler, wantWrite time.Duration
	}{
		{"defaults cover retry budget", "api", 30 * time.Second, 35 * time.Second, 30 * time.Second, 35 * time.Second},
		{"short api timeouts raised", "api", 8 * time.Second, 10 * time.Second, 28 * time.Second, 30 * time.Second},
		{"mock keeps configured", "mock", 8 * time.Second, 10 * time.Second, 8 * time.Second, 10 * time.Second},
		{"disabled handler timeout", "api", 0, 10 * time.Second, 0, 10 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Source = tc.source
			cfg.HTTP.HandlerTimeout = tc.handlerIn
			cfg.HTTP.WriteTimeout = tc.writeIn

			handler, write := app.HTTPTimeouts(cfg)
			require.Equal(t, tc.wantHandler, handler)
			require.Equal(t, tc.wantWrite, write)
		})
	}
}

func TestBootstrap_InvalidWarmUpSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.WarmUp.Enabled = true
	cfg.WarmUp.Schedule = "not a cron"

	_, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.Error(t, err)
	cleanup()
}

func TestBootstrap_MissingWorkHolidaysFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkHolidaysFile = "/nonexistent/work.yaml"

	_, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.Error(t, err)
	cleanup()
}

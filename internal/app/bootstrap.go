package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/holidays/config"
	cachemem "github.com/Gunvolt24/holidays/internal/cache/memory"
	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/holidayapi"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/internal/provider"
	"github.com/Gunvolt24/holidays/internal/repo/static"
	"github.com/Gunvolt24/holidays/internal/scheduler"
	rest "github.com/Gunvolt24/holidays/internal/transport/http"
	"github.com/Gunvolt24/holidays/internal/usecase"
	"github.com/Gunvolt24/holidays/pkg/logger"
	"github.com/Gunvolt24/holidays/pkg/metrics"
	"github.com/Gunvolt24/holidays/pkg/telemetry"
	"github.com/Gunvolt24/holidays/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, фоновые задачи).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер API
	MetricsServer   *http.Server          // отдельный сервер /metrics (может быть nil)
	Jobs            []ports.BackgroundJob // фоновые задачи (прогрев кэша)
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Источник данных и провайдер с деградацией до mock.
	validator := validate.NewHolidayValidator()
	source := domain.ParseSource(cfg.Source)
	providerOpts := []provider.Option{
		provider.WithLogger(logg),
		provider.WithDataFile(cfg.DataFile),
		provider.WithValidator(validator),
	}
	if source == domain.SourceAPI {
		if !provider.HasValidAPIKey(cfg.APIKey) {
			logg.Warnf(ctx, "HOLIDAY_API_KEY is not set or demo, external API may reject requests")
		}
		client := holidayapi.NewClient(externalConfig(cfg), logg)
		providerOpts = append(providerOpts, provider.WithFetcher(client))
	}
	holidayProvider, err := provider.New(source, providerOpts...)
	if err != nil {
		_ = shutdownTrace(context.Background())
		closeLogger()
		return nil, func() {}, err
	}
	logg.Infof(ctx, "holiday data source=%s", holidayProvider.Source())

	// Таблица корпоративных праздников.
	workTable, err := static.LoadWorkHolidays(cfg.WorkHolidaysFile, validator)
	if err != nil {
		_ = shutdownTrace(context.Background())
		closeLogger()
		return nil, func() {}, err
	}

	// Сборка зависимостей доменного слоя.
	holidayCache := cachemem.NewStore[[]domain.RegularHoliday](
		cachemem.WithDefaultTTL(cfg.Cache.TTL),
		cachemem.WithSweepInterval(cfg.Cache.SweepInterval),
	)
	holidayService := usecase.NewHolidayService(holidayProvider, holidayCache, logg, cfg.Cache.TTL)
	workService := usecase.NewWorkHolidayService(workTable)

	// Прогрев кэша по расписанию.
	var jobs []ports.BackgroundJob
	if cfg.WarmUp.Enabled {
		job, jErr := scheduler.NewWarmUpJob(scheduler.WarmUpConfig{
			Schedule:   cfg.WarmUp.Schedule,
			Countries:  cfg.WarmUp.Countries,
			Timeout:    cfg.WarmUp.Timeout,
			RunOnStart: cfg.WarmUp.RunOnStart,
		}, holidayService, logg)
		if jErr != nil {
			_ = holidayCache.Close()
			_ = shutdownTrace(context.Background())
			closeLogger()
			return nil, func() {}, jErr
		}
		jobs = append(jobs, job)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	handlerTimeout, writeTimeout := HTTPTimeouts(cfg)
	if handlerTimeout != cfg.HTTP.HandlerTimeout {
		logg.Warnf(ctx, "HTTP handler timeout %s is shorter than external API retry budget, using %s",
			cfg.HTTP.HandlerTimeout, handlerTimeout)
	}
	httpHandler := rest.NewHandler(holidayService, workService, logg, handlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      writeTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		Jobs:            jobs,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		for _, job := range jobs {
			if err := job.Close(); err != nil {
				logg.Warnf(ctx, "background job close error: %v", err)
			}
		}
		if err := holidayCache.Close(); err != nil {
			logg.Warnf(ctx, "cache close error: %v", err)
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и фоновые задачи; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	errCh := make(chan error, len(a.Jobs)+2)
	var jobsWG sync.WaitGroup

	// Запуск фоновых задач.
	for _, job := range a.Jobs {
		jobsWG.Add(1)
		go func() {
			defer jobsWG.Done()
			if err := job.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Отдельный сервер метрик.
	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
		runErr = err
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка фоновых задач.
	cancelJobs()
	for _, job := range a.Jobs {
		if err := job.Close(); err != nil {
			a.Logger.Warnf(ctx, "background job close error: %v", err)
		}
	}
	jobsWG.Wait()

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}

// writeTimeoutSlack — запас WriteTimeout сверх таймаута обработчика на запись ответа.
const writeTimeoutSlack = 2 * time.Second

// HTTPTimeouts — таймаут обработчика и WriteTimeout сервера. Для источника api
// обработчик не обрывает клиента раньше, чем исчерпаны все повторы.
func HTTPTimeouts(cfg *config.Config) (handler, write time.Duration) {
	handler = cfg.HTTP.HandlerTimeout
	if domain.ParseSource(cfg.Source) == domain.SourceAPI && handler > 0 {
		handler = max(handler, externalConfig(cfg).RetryBudget()+time.Second)
	}
	write = cfg.HTTP.WriteTimeout
	if write > 0 && handler > 0 {
		write = max(write, handler+writeTimeoutSlack)
	}
	return handler, write
}

func externalConfig(cfg *config.Config) holidayapi.Config {
	return holidayapi.Config{
		BaseURL:    cfg.External.BaseURL,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.External.Timeout,
		MaxRetries: cfg.External.MaxRetries,
		BaseDelay:  cfg.External.BaseDelay,
		MaxDelay:   cfg.External.MaxDelay,
		RateLimit:  cfg.External.RateLimit,
		RateBurst:  cfg.External.RateBurst,
	}
}

// Package scheduler — фоновый прогрев кэша праздников по расписанию cron.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/metrics"
)

// Проверка, что WarmUpJob удовлетворяет интерфейсу фоновой задачи.
var _ ports.BackgroundJob = (*WarmUpJob)(nil)

// ErrNoCountries — прогрев настроен без стран.
var ErrNoCountries = errors.New("warm-up: no countries configured")

// warmer — зависимость на бизнес-логику прогрева.
type warmer interface {
	WarmUp(ctx context.Context, countries []string, year int) (int, error)
}

// WarmUpConfig — параметры задачи прогрева.
type WarmUpConfig struct {
	Schedule   string        // стандартное cron-выражение (5 полей) или @every/@daily
	Countries  []string      // страны для прогрева
	Timeout    time.Duration // ограничение одного прогона
	RunOnStart bool          // прогреть сразу при старте
}

// WarmUpJob — прогрев кэша текущим годом по расписанию.
type WarmUpJob struct {
	cron      *cron.Cron
	schedule  string
	countries []string
	timeout   time.Duration
	onStart   bool
	service   warmer
	log       ports.Logger
	clock     clockwork.Clock

	// runCtx отменяется при остановке: прогон по расписанию не держит shutdown
	runCtx    context.Context
	stopRuns  context.CancelFunc
	running   sync.Mutex
	closeOnce sync.Once
}

// Option — функциональная опция WarmUpJob.
type Option func(*WarmUpJob)

// WithClock — часы для определения текущего года.
func WithClock(clock clockwork.Clock) Option {
	return func(j *WarmUpJob) {
		if clock != nil {
			j.clock = clock
		}
	}
}

// NewWarmUpJob — конструктор. Некорректное расписание или пустой список стран — ошибка.
func NewWarmUpJob(cfg WarmUpConfig, service warmer, log ports.Logger, opts ...Option) (*WarmUpJob, error) {
	countries := make([]string, 0, len(cfg.Countries))
	for _, c := range cfg.Countries {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			countries = append(countries, c)
		}
	}
	if len(countries) == 0 {
		return nil, ErrNoCountries
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	j := &WarmUpJob{
		cron:      cron.New(),
		schedule:  cfg.Schedule,
		countries: countries,
		timeout:   timeout,
		onStart:   cfg.RunOnStart,
		service:   service,
		log:       log,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(j)
	}

	if _, err := j.cron.AddFunc(cfg.Schedule, func() { j.runOnce(j.runCtx) }); err != nil {
		return nil, fmt.Errorf("warm-up schedule %q: %w", cfg.Schedule, err)
	}
	j.runCtx, j.stopRuns = context.WithCancel(context.Background())
	return j, nil
}

// Run — запускает расписание и блокируется до отмены ctx.
// Отмена ctx прерывает текущий прогон и дожидается его выхода.
func (j *WarmUpJob) Run(ctx context.Context) error {
	j.log.Infof(ctx, "cache warm-up scheduled schedule=%q countries=%v", j.schedule, j.countries)

	if j.onStart {
		j.runOnce(ctx)
	}

	j.cron.Start()
	<-ctx.Done()
	j.stopRuns()
	<-j.cron.Stop().Done()
	return ctx.Err()
}

// Close — останавливает расписание. Вызывается при остановке приложения.
func (j *WarmUpJob) Close() error {
	j.closeOnce.Do(func() {
		j.stopRuns()
		<-j.cron.Stop().Done()
	})
	return nil
}

// runOnce — один прогон; параллельные прогоны не допускаются (пропуск).
func (j *WarmUpJob) runOnce(parent context.Context) {
	if !j.running.TryLock() {
		j.log.Warnf(parent, "cache warm-up skipped: previous run still in progress")
		return
	}
	defer j.running.Unlock()

	ctx, cancel := context.WithTimeout(parent, j.timeout)
	defer cancel()

	year := j.clock.Now().Year()
	warmed, err := j.service.WarmUp(ctx, j.countries, year)
	if err != nil {
		metrics.WarmUpRuns.WithLabelValues("error").Inc()
		j.log.Warnf(ctx, "cache warm-up failed year=%d warmed=%d: %v", year, warmed, err)
		return
	}
	metrics.WarmUpRuns.WithLabelValues("ok").Inc()
	j.log.Infof(ctx, "cache warm-up done year=%d months=%d", year, warmed)
}

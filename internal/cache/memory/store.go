package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports"
	"github.com/Gunvolt24/holidays/pkg/metrics"
)

const (
	// DefaultTTL — срок жизни записи, если при Set он не задан.
	DefaultTTL = 30 * 24 * time.Hour
	// DefaultSweepInterval — период фоновой очистки просроченных записей.
	DefaultSweepInterval = 5 * time.Minute
)

var _ ports.HolidayCache = (*Store[[]domain.RegularHoliday])(nil)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store — потокобезопасное хранилище ключ→значение с TTL на каждую запись.
// Просроченная запись не возвращается никогда, даже если фоновая очистка до неё ещё не дошла.
type Store[V any] struct {
	defaultTTL    time.Duration
	sweepInterval time.Duration
	clock         clockwork.Clock

	mu    sync.Mutex
	items map[string]entry[V]

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option — функциональная опция Store.
type Option func(*options)

type options struct {
	defaultTTL    time.Duration
	sweepInterval time.Duration
	clock         clockwork.Clock
}

// WithDefaultTTL — TTL для Set с ttl <= 0.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.defaultTTL = d
		}
	}
}

// WithSweepInterval — период фоновой очистки.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.sweepInterval = d
		}
	}
}

// WithClock — источник времени (в тестах — clockwork.FakeClock).
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// NewStore — создаёт хранилище и запускает фоновую очистку. Остановить — Close.
func NewStore[V any](opts ...Option) *Store[V] {
	o := options{
		defaultTTL:    DefaultTTL,
		sweepInterval: DefaultSweepInterval,
		clock:         clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[V]{
		defaultTTL:    o.defaultTTL,
		sweepInterval: o.sweepInterval,
		clock:         o.clock,
		items:         make(map[string]entry[V]),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	ticker := s.clock.NewTicker(s.sweepInterval)
	go s.sweep(ticker)
	return s
}

// Get — значение по ключу. Просроченная запись удаляется и считается промахом.
func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	ent, ok := s.items[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return zero, false
	}
	if expired(ent, now) {
		delete(s.items, key)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(s.items)))
		return zero, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.value, true
}

// Set — сохраняет значение; ttl <= 0 означает TTL по умолчанию. Существующая запись перезаписывается.
func (s *Store[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
	metrics.CacheOps.WithLabelValues("set").Inc()
	metrics.CacheSize.Set(float64(len(s.items)))
}

// Delete — удаляет запись; отсутствие ключа не ошибка.
func (s *Store[V]) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	metrics.CacheOps.WithLabelValues("deleted").Inc()
	metrics.CacheSize.Set(float64(len(s.items)))
}

// Clear — удаляет все записи; каждая учитывается как op="cleared".
func (s *Store[V]) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.items); n > 0 {
		metrics.CacheOps.WithLabelValues("cleared").Add(float64(n))
	}
	clear(s.items)
	metrics.CacheSize.Set(0)
}

// Has — есть ли непросроченная запись. Просроченная удаляется.
func (s *Store[V]) Has(_ context.Context, key string) bool {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.items[key]
	if !ok {
		return false
	}
	if expired(ent, now) {
		delete(s.items, key)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(s.items)))
		return false
	}
	return true
}

// Size — число непросроченных записей. Хранилище не изменяет.
func (s *Store[V]) Size() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, ent := range s.items {
		if !expired(ent, now) {
			n++
		}
	}
	return n
}

// DeleteExpired — один проход очистки; возвращает число удалённых записей.
func (s *Store[V]) DeleteExpired() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, ent := range s.items {
		if expired(ent, now) {
			delete(s.items, key)
			removed++
		}
	}
	if removed > 0 {
		metrics.CacheOps.WithLabelValues("swept").Add(float64(removed))
		metrics.CacheSize.Set(float64(len(s.items)))
	}
	return removed
}

// Close — останавливает фоновую очистку и дожидается её завершения. Идемпотентен.
func (s *Store[V]) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// ------вспомогательные функции------

func (s *Store[V]) sweep(ticker clockwork.Ticker) {
	defer close(s.done)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.Chan():
			s.DeleteExpired()
		}
	}
}

// expired — запись просрочена, начиная с момента expiresAt включительно.
func expired[V any](ent entry[V], now time.Time) bool {
	return !now.Before(ent.expiresAt)
}

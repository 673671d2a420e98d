package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/holidays/internal/cache/memory"
	"github.com/Gunvolt24/holidays/internal/domain"
	"github.com/Gunvolt24/holidays/internal/ports/mocks"
	"github.com/Gunvolt24/holidays/internal/provider"
	"github.com/Gunvolt24/holidays/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func holiday(id, date string) domain.RegularHoliday {
	return domain.RegularHoliday{ID: id, Name: id, Date: date, Country: "US", Category: domain.CategoryNational}
}

func TestCacheKey(t *testing.T) {
	require.Equal(t, "holidays:US:2025:03", usecase.CacheKey(" us ", 2025, 3))
	require.Equal(t, "holidays:IN:2025:12", usecase.CacheKey("IN", 2025, 12))
}

func TestFetchHolidays_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	cache := mocks.NewMockHolidayCache(ctrl)

	cached := []domain.RegularHoliday{holiday("ny", "2025-01-01")}
	cache.EXPECT().Get(gomock.Any(), "holidays:US:2025:01").Return(cached, true)

	svc := usecase.NewHolidayService(provider, cache, noopLogger{}, 0)

	got, err := svc.FetchHolidays(context.Background(), "us", 2025, 1)
	require.NoError(t, err)
	require.Equal(t, cached, got)
}

func TestFetchHolidays_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	cache := mocks.NewMockHolidayCache(ctrl)

	fetched := []domain.RegularHoliday{holiday("ny", "2025-01-01")}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "holidays:US:2025:01").Return(nil, false),
		provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 1).Return(fetched, nil),
		cache.EXPECT().Set(gomock.Any(), "holidays:US:2025:01", fetched, usecase.DefaultHolidayTTL),
	)
	provider.EXPECT().Source().Return(domain.SourceFile).AnyTimes()

	svc := usecase.NewHolidayService(provider, cache, noopLogger{}, 0)

	got, err := svc.FetchHolidays(context.Background(), "us", 2025, 1)
	require.NoError(t, err)
	require.Equal(t, fetched, got)
}

func TestFetchHolidays_EmptyResultIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 2).Return([]domain.RegularHoliday{}, nil).Times(1)
	provider.EXPECT().Source().Return(domain.SourceMock).AnyTimes()

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })

	svc := usecase.NewHolidayService(provider, store, noopLogger{}, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.FetchHolidays(ctx, "US", 2025, 2)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestFetchHolidays_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 1).
		Return([]domain.RegularHoliday{holiday("ny", "2025-01-01")}, nil).Times(1)
	provider.EXPECT().Source().Return(domain.SourceFile).AnyTimes()

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })

	svc := usecase.NewHolidayService(provider, store, noopLogger{}, time.Hour)
	ctx := context.Background()

	first, err := svc.FetchHolidays(ctx, "US", 2025, 1)
	require.NoError(t, err)

	// изменения вызывающего не должны попадать в кэш
	first[0].Name = "mutated"

	second, err := svc.FetchHolidays(ctx, "US", 2025, 1)
	require.NoError(t, err)
	require.Equal(t, "ny", second[0].Name)
}

func TestFetchHolidays_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	cache := mocks.NewMockHolidayCache(ctrl)

	boom := errors.New("boom")
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 1).Return(nil, boom)

	svc := usecase.NewHolidayService(provider, cache, noopLogger{}, 0)

	_, err := svc.FetchHolidays(context.Background(), "US", 2025, 1)
	require.ErrorIs(t, err, boom)
}

func TestFetchHolidays_CanceledContextNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	apiResult := []domain.RegularHoliday{holiday("ext_US_2025-01-01_new_year's_day", "2025-01-01")}
	fetcher := mocks.NewMockHolidayFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().FetchHolidays(gomock.Any(), "US", 2025, 1).
			DoAndReturn(func(ctx context.Context, _ string, _, _ int) ([]domain.RegularHoliday, error) {
				return nil, ctx.Err()
			}),
		fetcher.EXPECT().FetchHolidays(gomock.Any(), "US", 2025, 1).Return(apiResult, nil),
	)

	prov, err := provider.New(domain.SourceAPI, provider.WithFetcher(fetcher), provider.WithLogger(noopLogger{}))
	require.NoError(t, err)

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })

	svc := usecase.NewHolidayService(prov, store, noopLogger{}, time.Hour)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.FetchHolidays(canceled, "US", 2025, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, store.Has(context.Background(), usecase.CacheKey("US", 2025, 1)))

	got, err := svc.FetchHolidays(context.Background(), "US", 2025, 1)
	require.NoError(t, err)
	require.Equal(t, apiResult, got)
}

// blockingProvider — отвечает только когда все ожидаемые месяцы запрошены одновременно.
type blockingProvider struct {
	wg   sync.WaitGroup
	data map[int][]domain.RegularHoliday
}

func (p *blockingProvider) GetHolidays(_ context.Context, _ string, _, month int) ([]domain.RegularHoliday, error) {
	p.wg.Done()
	p.wg.Wait()
	return p.data[month], nil
}

func (p *blockingProvider) Source() domain.Source { return domain.SourceMock }

func TestFetchHolidaysForMonths_ConcurrentAndGroupedByDate(t *testing.T) {
	p := &blockingProvider{data: map[int][]domain.RegularHoliday{
		1: {holiday("ny", "2025-01-01"), holiday("ny-observed", "2025-01-01"), holiday("mlk", "2025-01-20")},
		2: {},
		3: {holiday("spring", "2025-03-20")},
	}}
	p.wg.Add(3)

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })
	svc := usecase.NewHolidayService(p, store, noopLogger{}, time.Hour)

	done := make(chan struct{})
	var (
		got map[string][]domain.RegularHoliday
		err error
	)
	go func() {
		defer close(done)
		got, err = svc.FetchHolidaysForMonths(context.Background(), "US", 2025, []int{1, 2, 3})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("months were not fetched concurrently")
	}

	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Len(t, got["2025-01-01"], 2)
	require.Equal(t, "ny", got["2025-01-01"][0].ID)
	require.Equal(t, "ny-observed", got["2025-01-01"][1].ID)
	require.Len(t, got["2025-01-20"], 1)
	require.Len(t, got["2025-03-20"], 1)
	require.Equal(t, 3, store.Size())
}

func TestFetchHolidaysForMonths_Error(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 1).Return([]domain.RegularHoliday{}, nil).AnyTimes()
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, 2).Return(nil, errors.New("down"))
	provider.EXPECT().Source().Return(domain.SourceAPI).AnyTimes()

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })
	svc := usecase.NewHolidayService(provider, store, noopLogger{}, time.Hour)

	_, err := svc.FetchHolidaysForMonths(context.Background(), "US", 2025, []int{1, 2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "month 2")
}

func TestClearCacheAndStats(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	cache := mocks.NewMockHolidayCache(ctrl)

	cache.EXPECT().Delete(gomock.Any(), "holidays:DE:2025:05")
	cache.EXPECT().Clear(gomock.Any())
	cache.EXPECT().Size().Return(7)

	svc := usecase.NewHolidayService(provider, cache, noopLogger{}, 2*time.Hour)
	ctx := context.Background()

	svc.ClearCache(ctx, "de", 2025, 5)
	svc.ClearAllCache(ctx)

	stats := svc.CacheStats()
	require.Equal(t, 7, stats.Size)
	require.Equal(t, 2*time.Hour, stats.TTL)
}

func TestWarmUp_SkipsFailedCountry(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockHolidayProvider(ctrl)
	provider.EXPECT().GetHolidays(gomock.Any(), "US", 2025, gomock.Any()).Return([]domain.RegularHoliday{}, nil).Times(12)
	provider.EXPECT().GetHolidays(gomock.Any(), "XX", 2025, gomock.Any()).Return(nil, errors.New("down")).MinTimes(1).MaxTimes(12)
	provider.EXPECT().Source().Return(domain.SourceMock).AnyTimes()

	store := memory.NewStore[[]domain.RegularHoliday]()
	t.Cleanup(func() { _ = store.Close() })
	svc := usecase.NewHolidayService(provider, store, noopLogger{}, time.Hour)

	warmed, err := svc.WarmUp(context.Background(), []string{"US", "XX"}, 2025)
	require.NoError(t, err)
	require.Equal(t, 12, warmed)
	require.Equal(t, 12, store.Size())
}

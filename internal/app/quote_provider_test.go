package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-quote/internal/domain"
	"github.com/jsamuelsen/daily-quote/internal/mocks"
)

var (
	march1 = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)
	hello  = domain.Quote{Content: "Hello", Author: "Ada"}
)

const helloJSON = `{"content":"Hello","author":"Ada"}`

// mapStore is an in-memory ports.QuoteStore that counts writes.
type mapStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (s *mapStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, domain.NewNotFoundError("cache entry", key)
	}

	return v, nil
}

func (s *mapStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	s.writes++

	return nil
}

func (s *mapStore) value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return string(s.data[key])
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProvider(t *testing.T, client *mocks.MockQuoteClient, store *mapStore, opts ...func(*QuoteProviderConfig)) *QuoteProvider {
	t.Helper()

	cfg := QuoteProviderConfig{
		Client: client,
		Store:  store,
		Logger: testLogger(),
		Now:    func() time.Time { return march1 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return NewQuoteProvider(cfg)
}

func TestNewQuoteProvider_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteProvider(QuoteProviderConfig{Store: newMapStore()})
	})
	assert.Panics(t, func() {
		NewQuoteProvider(QuoteProviderConfig{Client: mocks.NewMockQuoteClient(t)})
	})
}

func TestNewQuoteProvider_Defaults(t *testing.T) {
	p := NewQuoteProvider(QuoteProviderConfig{
		Client: mocks.NewMockQuoteClient(t),
		Store:  newMapStore(),
	})

	assert.Equal(t, DefaultFetchTimeout, p.fetchTimeout)
	assert.Equal(t, domain.DefaultIntentURL, p.intentURL)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.now)
	assert.NotNil(t, p.intn)
}

func TestLoadQuote_FirstLoadOfDay(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	display := mocks.NewMockDisplay(t)
	store := newMapStore()

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()

	var calls []string
	display.EXPECT().ShowLoading().Run(func() { calls = append(calls, "loading") }).Once()
	display.EXPECT().Render(hello).Run(func(domain.Quote) { calls = append(calls, "render") }).Once()

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) { c.Display = display })

	res, err := p.LoadQuote(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, hello, res.Quote)
	assert.Equal(t, domain.SourceNetwork, res.Source)
	assert.Equal(t, "dq:2024-03-01", res.Key)
	assert.NoError(t, res.FetchErr)
	assert.Equal(t, []string{"loading", "render"}, calls)
	assert.JSONEq(t, helloJSON, store.value("dq:2024-03-01"))

	assert.Equal(t, "“Hello”", res.Quote.Text())
	assert.Equal(t, "— Ada", res.Quote.Attribution())
}

func TestLoadQuote_SecondLoadUsesCache(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()

	p := newProvider(t, client, store)

	first, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	second, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, first.Quote, second.Quote)
	assert.Equal(t, domain.SourceCache, second.Source)
	assert.Equal(t, 1, store.writes)
	client.AssertNumberOfCalls(t, "GetRandomQuote", 1)
}

func TestLoadQuote_CacheHitDoesNotShowLoading(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	display := mocks.NewMockDisplay(t)
	store := newMapStore()
	store.data["dq:2024-03-01"] = []byte(helloJSON)

	display.EXPECT().Render(hello).Once()

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) { c.Display = display })

	res, err := p.LoadQuote(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceCache, res.Source)
	display.AssertNotCalled(t, "ShowLoading")
}

func TestLoadQuote_ForceNewOverwrites(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()
	store.data["dq:2024-03-01"] = []byte(helloJSON)

	fresh := domain.Quote{Content: "Fresh", Author: "Grace"}
	client.EXPECT().GetRandomQuote(mock.Anything).Return(fresh, nil).Once()

	p := newProvider(t, client, store)

	res, err := p.LoadQuote(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, fresh, res.Quote)
	assert.Equal(t, domain.SourceNetwork, res.Source)
	assert.JSONEq(t, `{"content":"Fresh","author":"Grace"}`, store.value("dq:2024-03-01"))
}

func TestLoadQuote_ForceNewFallsBackAndOverwrites(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()
	store.data["dq:2024-03-01"] = []byte(helloJSON)

	client.EXPECT().GetRandomQuote(mock.Anything).
		Return(domain.Quote{}, domain.NewUnavailableError("quote-service", "status 503")).Once()

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) {
		c.Rand = func(int) int { return 4 }
	})

	res, err := p.LoadQuote(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.Equal(t, "Aristotle", res.Quote.Author)
	assert.JSONEq(t, `{"content":"Well begun is half done.","author":"Aristotle"}`, store.value("dq:2024-03-01"))
}

func TestLoadQuote_FetchFailuresUseFallback(t *testing.T) {
	tests := []struct {
		name  string
		quote domain.Quote
		err   error
		check func(error) bool
	}{
		{
			name:  "service unavailable",
			err:   domain.NewUnavailableError("quote-service", "status 500"),
			check: domain.IsUnavailable,
		},
		{
			name:  "not found",
			err:   domain.NewNotFoundError("quote", ""),
			check: domain.IsNotFound,
		},
		{
			name:  "undecodable body",
			err:   domain.NewValidationError("body", "decoding response"),
			check: domain.IsValidation,
		},
		{
			name:  "empty content",
			quote: domain.Quote{Content: "  ", Author: "Ada"},
			check: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockQuoteClient(t)
			store := newMapStore()

			client.EXPECT().GetRandomQuote(mock.Anything).Return(tt.quote, tt.err).Once()

			p := newProvider(t, client, store, func(c *QuoteProviderConfig) {
				c.Rand = func(int) int { return 3 }
			})

			res, err := p.LoadQuote(context.Background(), false)

			require.NoError(t, err)
			assert.Equal(t, domain.SourceFallback, res.Source)
			assert.Equal(t, domain.FallbackQuote(3), res.Quote)
			require.Error(t, res.FetchErr)
			assert.True(t, tt.check(res.FetchErr), "unexpected fetch error: %v", res.FetchErr)
			assert.JSONEq(t, `{"content":"What we think, we become.","author":"Buddha"}`, store.value(res.Key))
		})
	}
}

func TestLoadQuote_TimeoutUsesFallback(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(ctx context.Context) (domain.Quote, error) {
			<-ctx.Done()
			return domain.Quote{}, ctx.Err()
		}).Once()

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) {
		c.FetchTimeout = 20 * time.Millisecond
	})

	start := time.Now()
	res, err := p.LoadQuote(context.Background(), false)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, domain.SourceFallback, res.Source)
	assert.True(t, domain.IsFallback(res.Quote))
	require.ErrorIs(t, res.FetchErr, context.DeadlineExceeded)
}

func TestLoadQuote_FillsMissingAuthor(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)

	client.EXPECT().GetRandomQuote(mock.Anything).
		Return(domain.Quote{Content: "Hello"}, nil).Once()

	p := newProvider(t, client, newMapStore())

	res, err := p.LoadQuote(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAuthor, res.Quote.Author)
}

func TestLoadQuote_UndecodableCacheEntryIsMiss(t *testing.T) {
	for name, raw := range map[string]string{
		"invalid json":  "{not json",
		"empty content": `{"content":"","author":"Ada"}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := mocks.NewMockQuoteClient(t)
			store := newMapStore()
			store.data["dq:2024-03-01"] = []byte(raw)

			client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()

			p := newProvider(t, client, store)

			res, err := p.LoadQuote(context.Background(), false)

			require.NoError(t, err)
			assert.Equal(t, domain.SourceNetwork, res.Source)
			assert.JSONEq(t, helloJSON, store.value("dq:2024-03-01"))
		})
	}
}

func TestLoadQuote_StoreReadErrorIsMiss(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := mocks.NewMockQuoteStore(t)

	store.EXPECT().Get(mock.Anything, "dq:2024-03-01").Return(nil, errors.New("permission denied"))
	store.EXPECT().Set(mock.Anything, "dq:2024-03-01", mock.Anything).Return(nil).Once()
	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()

	p := NewQuoteProvider(QuoteProviderConfig{
		Client: client,
		Store:  store,
		Logger: testLogger(),
		Now:    func() time.Time { return march1 },
	})

	res, err := p.LoadQuote(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, hello, res.Quote)
}

func TestLoadQuote_StoreWriteErrorIsReturned(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := mocks.NewMockQuoteStore(t)
	display := mocks.NewMockDisplay(t)

	store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domain.NewNotFoundError("cache entry", "dq:2024-03-01"))
	store.EXPECT().Set(mock.Anything, "dq:2024-03-01", mock.Anything).Return(errors.New("disk full")).Once()
	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	display.EXPECT().ShowLoading().Once()

	p := NewQuoteProvider(QuoteProviderConfig{
		Client:  client,
		Store:   store,
		Display: display,
		Logger:  testLogger(),
		Now:     func() time.Time { return march1 },
	})

	_, err := p.LoadQuote(context.Background(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	display.AssertNotCalled(t, "Render", mock.Anything)

	_, ok := p.Current()
	assert.False(t, ok)
}

func TestLoadQuote_CallerCancellationIsReturned(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(ctx context.Context) (domain.Quote, error) {
			cancel()
			return domain.Quote{}, ctx.Err()
		}).Once()

	p := newProvider(t, client, store)

	_, err := p.LoadQuote(ctx, true)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.writes)
}

func TestLoadQuote_CancelledCallerStillCachesSharedLoad(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	started := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(context.Context) (domain.Quote, error) {
			close(started)
			<-release

			return hello, nil
		}).Once()

	p := newProvider(t, client, store)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		_, err := p.LoadQuote(ctx, false)
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled load did not return")
	}

	close(release)

	assert.Eventually(t, func() bool {
		return store.value("dq:2024-03-01") == helloJSON
	}, time.Second, 10*time.Millisecond)
}

func TestLoadQuote_LeaderCancellationDoesNotFailJoinedLoads(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	started := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(context.Context) (domain.Quote, error) {
			close(started)
			<-release

			return hello, nil
		}).Once()

	p := newProvider(t, client, store)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)

	go func() {
		_, err := p.LoadQuote(leaderCtx, false)
		leaderErr <- err
	}()

	<-started

	type outcome struct {
		res domain.Result
		err error
	}

	follower := make(chan outcome, 1)

	go func() {
		res, err := p.LoadQuote(context.Background(), false)
		follower <- outcome{res, err}
	}()

	// Give the follower time to join the in-flight load.
	time.Sleep(50 * time.Millisecond)
	cancelLeader()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)

	select {
	case got := <-follower:
		require.NoError(t, got.err)
		assert.Equal(t, hello, got.res.Quote)
		assert.Equal(t, domain.SourceNetwork, got.res.Source)
	case <-time.After(time.Second):
		t.Fatal("joined load did not return")
	}

	assert.Equal(t, 1, store.writes)
}

func TestLoadQuote_NewDayFetchesAgain(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()
	now := march1

	tomorrow := domain.Quote{Content: "Tomorrow", Author: "Ada"}
	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	client.EXPECT().GetRandomQuote(mock.Anything).Return(tomorrow, nil).Once()

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) {
		c.Now = func() time.Time { return now }
	})

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)

	res, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "dq:2024-03-02", res.Key)
	assert.Equal(t, tomorrow, res.Quote)
	assert.JSONEq(t, helloJSON, store.value("dq:2024-03-01"))
}

func TestLoadQuote_ConcurrentLoadsShareOneFetch(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(context.Context) (domain.Quote, error) {
			time.Sleep(50 * time.Millisecond)
			return hello, nil
		}).Once()

	p := newProvider(t, client, store)

	const loaders = 8

	var wg sync.WaitGroup
	results := make([]domain.Result, loaders)

	for i := range loaders {
		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := p.LoadQuote(context.Background(), false)
			assert.NoError(t, err)
			results[i] = res
		}()
	}

	wg.Wait()

	for _, res := range results {
		assert.Equal(t, hello, res.Quote)
	}
	assert.Equal(t, 1, store.writes)
}

func TestLoadQuote_CancelSuperseded(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	store := newMapStore()

	fresh := domain.Quote{Content: "Fresh", Author: "Grace"}
	started := make(chan struct{})

	var calls atomic.Int32
	client.EXPECT().GetRandomQuote(mock.Anything).
		RunAndReturn(func(ctx context.Context) (domain.Quote, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-ctx.Done()

				return domain.Quote{}, ctx.Err()
			}

			return fresh, nil
		}).Times(2)

	p := newProvider(t, client, store, func(c *QuoteProviderConfig) {
		c.CancelSuperseded = true
	})

	firstErr := make(chan error, 1)
	go func() {
		_, err := p.LoadQuote(context.Background(), true)
		firstErr <- err
	}()

	<-started

	res, err := p.LoadQuote(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, fresh, res.Quote)

	select {
	case err := <-firstErr:
		require.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded load did not return")
	}

	current, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, fresh, current)
	assert.JSONEq(t, `{"content":"Fresh","author":"Grace"}`, store.value("dq:2024-03-01"))
	assert.Equal(t, 1, store.writes)
}

func TestLoadQuote_RecordsMetrics(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	client.EXPECT().GetRandomQuote(mock.Anything).
		Return(domain.Quote{}, domain.NewUnavailableError("quote-service", "down")).Once()

	p := newProvider(t, client, newMapStore(), func(c *QuoteProviderConfig) { c.Metrics = metrics })

	ctx := context.Background()
	_, err := p.LoadQuote(ctx, false)
	require.NoError(t, err)
	_, err = p.LoadQuote(ctx, false)
	require.NoError(t, err)
	_, err = p.LoadQuote(ctx, true)
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.loads.WithLabelValues("network")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.loads.WithLabelValues("cache")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.loads.WithLabelValues("fallback")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.fetchDuration))
}

func TestCopyCurrent(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	clipboard := mocks.NewMockClipboard(t)

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	clipboard.EXPECT().WriteText(mock.Anything, "“Hello” — Ada").Return(nil).Once()

	p := newProvider(t, client, newMapStore(), func(c *QuoteProviderConfig) { c.Clipboard = clipboard })

	assert.False(t, p.CopyCurrent(context.Background()), "nothing displayed yet")

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, p.CopyCurrent(context.Background()))
}

func TestCopyCurrent_FailureIsSilent(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	clipboard := mocks.NewMockClipboard(t)

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	clipboard.EXPECT().WriteText(mock.Anything, mock.Anything).Return(errors.New("no clipboard")).Once()

	p := newProvider(t, client, newMapStore(), func(c *QuoteProviderConfig) { c.Clipboard = clipboard })

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	assert.False(t, p.CopyCurrent(context.Background()))
}

func TestCopyCurrent_NoClipboard(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()

	p := newProvider(t, client, newMapStore())

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	assert.False(t, p.CopyCurrent(context.Background()))
}

func TestShareCurrent(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	sharer := mocks.NewMockSharer(t)

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	sharer.EXPECT().Share(mock.Anything, "“Hello” — Ada", "https://quotes.example.com/").Return().Once()

	p := newProvider(t, client, newMapStore(), func(c *QuoteProviderConfig) {
		c.Sharer = sharer
		c.PageURL = "https://quotes.example.com/"
	})

	p.ShareCurrent(context.Background())
	sharer.AssertNotCalled(t, "Share", mock.Anything, mock.Anything, mock.Anything)

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	p.ShareCurrent(context.Background())
}

func TestShareURL(t *testing.T) {
	p := newProvider(t, mocks.NewMockQuoteClient(t), newMapStore())

	assert.Equal(t,
		"https://twitter.com/intent/tweet?text=%E2%80%9CHello%E2%80%9D%20%E2%80%94%20Ada",
		p.ShareURL(hello))

	withPage := newProvider(t, mocks.NewMockQuoteClient(t), newMapStore(), func(c *QuoteProviderConfig) {
		c.PageURL = "https://quotes.example.com/today"
	})

	assert.Equal(t,
		"https://twitter.com/intent/tweet?text=%E2%80%9CHello%E2%80%9D%20%E2%80%94%20Ada&url=https%3A%2F%2Fquotes.example.com%2Ftoday",
		withPage.ShareURL(hello))

	assert.Equal(t,
		"https://twitter.com/intent/tweet?text=%E2%80%9CHello%E2%80%9D%20%E2%80%94%20Ada&url=https%3A%2F%2Fother.example.com",
		withPage.ShareURLFor(hello, "https://other.example.com"))
	assert.Equal(t, p.ShareURL(hello), withPage.ShareURLFor(hello, ""))
}

func TestSetDisplay(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	display := mocks.NewMockDisplay(t)

	client.EXPECT().GetRandomQuote(mock.Anything).Return(hello, nil).Once()
	display.EXPECT().Render(hello).Once()

	store := newMapStore()
	store.data["dq:2024-03-01"] = []byte(helloJSON)

	p := newProvider(t, client, store)
	p.SetDisplay(display)

	_, err := p.LoadQuote(context.Background(), false)
	require.NoError(t, err)

	p.SetDisplay(nil)

	_, err = p.LoadQuote(context.Background(), true)
	require.NoError(t, err)
}

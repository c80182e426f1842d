package tracker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"max.ks1230/btc-tracker/internal/clients/coindesk"
	appconfig "max.ks1230/btc-tracker/internal/config"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/model/storage"
	"max.ks1230/btc-tracker/internal/model/tracker/mock"
)

var (
	fixedNow    = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sampleQuote = price.Quote{UpdatedAt: "Jun 1, 2024 00:00:00 UTC", PriceUSD: 65000.5}
	errNetwork  = errors.New("connection reset by peer")
)

type testConfig struct {
	interval time.Duration
}

func (c testConfig) FetchInterval() time.Duration { return c.interval }
func (c testConfig) Timezone() string              { return "Asia/Kolkata" }
func (c testConfig) TimeLayout() string            { return "2/1/2006, 15:04:05" }

type testRetry struct {
	attempts int
}

func (r testRetry) MaxAttempts() int          { return r.attempts }
func (r testRetry) BaseDelay() time.Duration { return time.Millisecond }
func (r testRetry) MaxDelay() time.Duration  { return 2 * time.Millisecond }

func fixedClock() time.Time { return fixedNow }

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

func Test_OnOneCycle_ShouldPersistRecordFormattedInIST(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"time":{"updated":"Jun 1, 2024 00:00:00 UTC"},"bpi":{"USD":{"rate_float":65000.5}}}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte(`{"apiUrl": "`+srv.URL+`/price", "fetchInterval": 1000, "outputPath": "out.json"}`), 0o600))
	cfg, err := appconfig.Load(cfgPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	want := price.Record{Time: "Jun 1, 2024 00:00:00 UTC", BitcoinPriceUSD: 65000.5, FetchedAt: "1/6/2024, 05:30:00"}
	mirror := mock.NewRecordMirrorMock(m)
	mirror.NameMock.Expect().Return("kafka")
	mirror.PublishMock.
		Inspect(func(_ context.Context, rec price.Record) {
			assert.Equal(t, want, rec)
		}).
		Return(nil)
	logger, _ := newObservedLogger()

	p, err := NewPoller(
		coindesk.New(cfg.App()),
		storage.NewFileStorage(cfg.OutputFile(), logger),
		cfg.App(), cfg.Retry(), logger,
		WithClock(fixedClock),
		WithMirrors(mirror),
	)
	require.NoError(t, err)

	rec, err := p.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, want, rec)
	assert.Equal(t, uint64(1), mirror.PublishAfterCounter())

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"time":"Jun 1, 2024 00:00:00 UTC","bitcoinPriceUSD":65000.5,"fetchedAt":"1/6/2024, 05:30:00"}]`, string(data))
}

func Test_OnNetworkFailureInSecondCycle_ShouldStopAndKeepFirstRecord(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Set(quotesThenError(1, errNetwork))
	notifier := mock.NewFailureNotifierMock(m)
	notifier.NotifyFailureMock.Inspect(func(_ context.Context, cause error) {
		assert.True(t, errors.Is(cause, errNetwork))
	}).Return(nil)
	logger, logs := newObservedLogger()
	store := storage.NewFileStorage(filepath.Join(t.TempDir(), "out.json"), logger)

	var states []State
	p, err := NewPoller(source, store, testConfig{interval: time.Millisecond}, testRetry{attempts: 1}, logger,
		WithClock(fixedClock),
		WithNotifier(notifier),
		WithStateListener(func(s State) { states = append(states, s) }),
	)
	require.NoError(t, err)

	err = p.Run(context.Background())

	assert.True(t, errors.Is(err, errNetwork), "got %v", err)
	assert.Equal(t, Stopped, p.State())
	assert.Equal(t, []State{Running, Stopped}, states)
	assert.Equal(t, uint64(2), source.FetchPriceAfterCounter())
	assert.Equal(t, uint64(1), notifier.NotifyFailureAfterCounter())
	assert.Equal(t, 1, logs.FilterMessage("error in fetching and storing data, poller stopped").Len())

	records, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []price.Record{{Time: sampleQuote.UpdatedAt, BitcoinPriceUSD: 65000.5, FetchedAt: "1/6/2024, 05:30:00"}}, records)

	assert.Error(t, p.Run(context.Background()))
	assert.Equal(t, uint64(2), source.FetchPriceAfterCounter())
}

func Test_OnTransientFailure_ShouldRetryThenSucceed(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Set(errorsThenQuote(2, errNetwork))
	logger, logs := newObservedLogger()
	store := storage.NewFileStorage(filepath.Join(t.TempDir(), "out.json"), logger)

	p, err := NewPoller(source, store, testConfig{interval: time.Hour}, testRetry{attempts: 3}, logger, WithClock(fixedClock))
	require.NoError(t, err)

	rec, err := p.runWithRetry(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 65000.5, rec.BitcoinPriceUSD)
	assert.Equal(t, uint64(3), source.FetchPriceAfterCounter())
	assert.Equal(t, 2, logs.FilterMessage("cycle failed, retrying").Len())

	records, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func Test_OnExhaustedRetries_ShouldReturnLastError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Return(price.Quote{}, errNetwork)
	logger, _ := newObservedLogger()
	store := storage.NewFileStorage(filepath.Join(t.TempDir(), "out.json"), logger)

	p, err := NewPoller(source, store, testConfig{interval: time.Hour}, testRetry{attempts: 2}, logger)
	require.NoError(t, err)

	err = p.Run(context.Background())

	assert.True(t, errors.Is(err, errNetwork))
	assert.Equal(t, uint64(2), source.FetchPriceAfterCounter())

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_OnCancelledContext_ShouldStopWithoutError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Set(func(context.Context) (price.Quote, error) {
		cancel()
		return sampleQuote, nil
	})
	notifier := mock.NewFailureNotifierMock(m)
	logger, _ := newObservedLogger()
	store := storage.NewFileStorage(filepath.Join(t.TempDir(), "out.json"), logger)

	p, err := NewPoller(source, store, testConfig{interval: time.Hour}, testRetry{attempts: 3}, logger,
		WithClock(fixedClock),
		WithNotifier(notifier),
	)
	require.NoError(t, err)

	assert.NoError(t, p.Run(ctx))
	assert.Equal(t, Stopped, p.State())
	assert.Equal(t, uint64(0), notifier.NotifyFailureBeforeCounter())
}

func Test_OnMirrorFailure_ShouldStillRecord(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Return(sampleQuote, nil)
	broken := mock.NewRecordMirrorMock(m)
	broken.NameMock.Return("postgres")
	broken.PublishMock.Return(errors.New("connection refused"))
	healthy := mock.NewRecordMirrorMock(m)
	healthy.NameMock.Return("redis")
	healthy.PublishMock.Return(nil)
	logger, logs := newObservedLogger()
	store := storage.NewFileStorage(filepath.Join(t.TempDir(), "out.json"), logger)
	failuresBefore := testutil.ToFloat64(mirrorErrorsTotal.WithLabelValues("postgres"))

	p, err := NewPoller(source, store, testConfig{interval: time.Hour}, testRetry{attempts: 1}, logger,
		WithClock(fixedClock),
		WithMirrors(broken, healthy),
	)
	require.NoError(t, err)

	_, err = p.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), broken.PublishAfterCounter())
	assert.Equal(t, uint64(1), healthy.PublishAfterCounter())
	assert.Equal(t, 1, logs.FilterMessage("failed to mirror record").Len())
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(mirrorErrorsTotal.WithLabelValues("postgres")))

	records, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func Test_OnMalformedLog_ShouldFailCycle(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Return(sampleQuote, nil)
	mirror := mock.NewRecordMirrorMock(m)
	logger, _ := newObservedLogger()

	p, err := NewPoller(source, storage.NewFileStorage(path, logger), testConfig{interval: time.Hour}, testRetry{attempts: 1}, logger,
		WithMirrors(mirror),
	)
	require.NoError(t, err)

	_, err = p.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, uint64(0), mirror.PublishBeforeCounter())
}

func Test_OnUnwritableLog_ShouldCountStoreErrorAndStop(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	// a directory where the log file should be makes every write fail
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	source := mock.NewPriceSourceMock(m)
	source.FetchPriceMock.Return(sampleQuote, nil)
	mirror := mock.NewRecordMirrorMock(m)
	notifier := mock.NewFailureNotifierMock(m)
	notifier.NotifyFailureMock.Return(nil)
	logger, logs := newObservedLogger()

	p, err := NewPoller(source, storage.NewFileStorage(path, logger), testConfig{interval: time.Hour}, testRetry{attempts: 1}, logger,
		WithClock(fixedClock),
		WithMirrors(mirror),
		WithNotifier(notifier),
	)
	require.NoError(t, err)

	storeErrors := testutil.ToFloat64(cyclesTotal.WithLabelValues(resultStoreError))

	_, err = p.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist record")
	assert.Equal(t, storeErrors+1, testutil.ToFloat64(cyclesTotal.WithLabelValues(resultStoreError)))

	err = p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poller stopped")
	assert.Equal(t, Stopped, p.State())
	assert.Equal(t, storeErrors+2, testutil.ToFloat64(cyclesTotal.WithLabelValues(resultStoreError)))
	assert.Equal(t, uint64(2), source.FetchPriceAfterCounter())
	assert.Equal(t, uint64(0), mirror.PublishBeforeCounter())
	assert.Equal(t, uint64(1), notifier.NotifyFailureAfterCounter())
	assert.Equal(t, 1, logs.FilterMessage("error in fetching and storing data, poller stopped").Len())
}

func Test_OnUnknownTimezone_ShouldFailConstruction(t *testing.T) {
	_, err := NewPoller(nil, nil, badZoneConfig{}, testRetry{attempts: 1}, zap.NewNop())
	assert.Error(t, err)
}

type badZoneConfig struct {
	testConfig
}

func (badZoneConfig) Timezone() string { return "Mars/Olympus" }

// quotesThenError answers n fetches with sampleQuote and every later one with err.
func quotesThenError(n int, err error) func(context.Context) (price.Quote, error) {
	var calls int
	return func(context.Context) (price.Quote, error) {
		calls++
		if calls > n {
			return price.Quote{}, err
		}
		return sampleQuote, nil
	}
}

// errorsThenQuote fails n fetches with err and answers the rest with sampleQuote.
func errorsThenQuote(n int, err error) func(context.Context) (price.Quote, error) {
	var calls int
	return func(context.Context) (price.Quote, error) {
		calls++
		if calls <= n {
			return price.Quote{}, err
		}
		return sampleQuote, nil
	}
}

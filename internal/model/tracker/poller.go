package tracker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
)

const notifyTimeout = 5 * time.Second

type State int32

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

type priceSource interface {
	FetchPrice(ctx context.Context) (price.Quote, error)
}

type recordLog interface {
	Append(rec price.Record) error
}

// recordMirror receives a copy of every persisted record. Its failures are
// logged and never stop the poller.
type recordMirror interface {
	Name() string
	Publish(ctx context.Context, rec price.Record) error
}

type failureNotifier interface {
	NotifyFailure(ctx context.Context, cause error) error
}

type config interface {
	FetchInterval() time.Duration
	Timezone() string
	TimeLayout() string
}

type retryConfig interface {
	MaxAttempts() int
	BaseDelay() time.Duration
	MaxDelay() time.Duration
}

type Option func(p *Poller)

// WithClock replaces time.Now as the source of fetchedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		p.now = now
	}
}

func WithMirrors(mirrors ...recordMirror) Option {
	return func(p *Poller) {
		p.mirrors = append(p.mirrors, mirrors...)
	}
}

func WithNotifier(n failureNotifier) Option {
	return func(p *Poller) {
		p.notifier = n
	}
}

// WithStateListener registers f to be called on every state change.
func WithStateListener(f func(State)) Option {
	return func(p *Poller) {
		p.listeners = append(p.listeners, f)
	}
}

// Poller drives the fetch, append, persist, wait cycle.
type Poller struct {
	source    priceSource
	log       recordLog
	mirrors   []recordMirror
	notifier  failureNotifier
	listeners []func(State)
	logger    *zap.Logger

	now      func() time.Time
	location *time.Location
	layout   string
	interval time.Duration

	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration

	state atomic.Int32
}

func NewPoller(source priceSource, log recordLog, cfg config, retry retryConfig, logger *zap.Logger, opts ...Option) (*Poller, error) {
	loc, err := time.LoadLocation(cfg.Timezone())
	if err != nil {
		return nil, errors.Wrapf(err, "loading timezone %s", cfg.Timezone())
	}
	if cfg.FetchInterval() <= 0 {
		return nil, errors.Errorf("fetch interval must be positive, got %s", cfg.FetchInterval())
	}

	p := &Poller{
		source:      source,
		log:         log,
		logger:      logger,
		now:         time.Now,
		location:    loc,
		layout:      cfg.TimeLayout(),
		interval:    cfg.FetchInterval(),
		maxAttempts: retry.MaxAttempts(),
		baseDelay:   retry.BaseDelay(),
		maxDelay:    retry.MaxDelay(),
	}
	if p.maxAttempts < 1 {
		p.maxAttempts = 1
	}
	for _, opt := range opts {
		opt(p)
	}
	p.setState(Running)
	return p, nil
}

func (p *Poller) State() State {
	return State(p.state.Load())
}

func (p *Poller) setState(s State) {
	p.state.Store(int32(s))
	if s == Running {
		running.Set(1)
	} else {
		running.Set(0)
	}
	for _, f := range p.listeners {
		f(s)
	}
}

// Run loops until ctx is done, which returns nil, or until a cycle fails on
// every attempt, which returns the last error. The poller is Stopped either way.
func (p *Poller) Run(ctx context.Context) error {
	if p.State() == Stopped {
		return errors.New("poller already stopped")
	}
	defer p.setState(Stopped)

	p.logger.Info("Start polling price",
		zap.Duration("interval", p.interval),
		zap.Int("maxAttempts", p.maxAttempts))

	for {
		_, err := p.runWithRetry(ctx)
		if ctx.Err() != nil {
			p.logger.Info("Stop polling price")
			return nil
		}
		if err != nil {
			p.logger.Error("error in fetching and storing data, poller stopped", zap.Error(err))
			p.notifyFailure(err)
			return errors.Wrap(err, "poller stopped")
		}

		p.logger.Info("waiting before the next fetch", zap.Duration("interval", p.interval))
		if sleep(ctx, p.interval) != nil {
			p.logger.Info("Stop polling price")
			return nil
		}
	}
}

func (p *Poller) runWithRetry(ctx context.Context) (price.Record, error) {
	for attempt := 0; ; attempt++ {
		rec, err := p.RunOnce(ctx)
		if err == nil {
			return rec, nil
		}
		if attempt+1 >= p.maxAttempts || ctx.Err() != nil {
			return price.Record{}, err
		}

		delay := Backoff(attempt, p.baseDelay, p.maxDelay)
		p.logger.Warn("cycle failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay))
		retriesTotal.Inc()

		if err = sleep(ctx, delay); err != nil {
			return price.Record{}, err
		}
	}
}

// RunOnce executes a single cycle: fetch, build the record, append it to the
// log and hand it to the mirrors.
func (p *Poller) RunOnce(ctx context.Context) (price.Record, error) {
	cycleID := uuid.NewString()
	logger := p.logger.With(zap.String("cycle", cycleID))

	span, ctx := opentracing.StartSpanFromContext(ctx, "pollCycle")
	defer span.Finish()
	span.SetTag("cycle", cycleID)

	logger.Info("Fetching Bitcoin price")
	quote, err := p.fetch(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		cyclesTotal.WithLabelValues(resultFetchError).Inc()
		logger.Error("cannot fetch price", zap.Error(err))
		return price.Record{}, errors.Wrap(err, "fetch price")
	}

	rec := price.NewRecord(quote, p.now().In(p.location).Format(p.layout))

	if err = p.persist(ctx, rec); err != nil {
		ext.Error.Set(span, true)
		cyclesTotal.WithLabelValues(resultStoreError).Inc()
		return price.Record{}, errors.Wrap(err, "persist record")
	}

	p.mirror(ctx, logger, rec)

	cyclesTotal.WithLabelValues(resultOK).Inc()
	lastPriceUSD.Set(rec.BitcoinPriceUSD)
	logger.Info("price recorded",
		zap.String("time", rec.Time),
		zap.Float64("bitcoinPriceUSD", rec.BitcoinPriceUSD),
		zap.String("fetchedAt", rec.FetchedAt))
	return rec, nil
}

func (p *Poller) fetch(ctx context.Context) (price.Quote, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchPrice")
	defer span.Finish()

	start := time.Now()
	quote, err := p.source.FetchPrice(ctx)
	observeFetch(time.Since(start), err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return quote, err
}

func (p *Poller) persist(ctx context.Context, rec price.Record) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "persistRecord")
	defer span.Finish()

	err := p.log.Append(rec)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (p *Poller) mirror(ctx context.Context, logger *zap.Logger, rec price.Record) {
	for _, m := range p.mirrors {
		span, spanCtx := opentracing.StartSpanFromContext(ctx, "mirrorRecord")
		span.SetTag("mirror", m.Name())

		if err := m.Publish(spanCtx, rec); err != nil {
			ext.Error.Set(span, true)
			mirrorErrorsTotal.WithLabelValues(m.Name()).Inc()
			logger.Error("failed to mirror record", zap.String("mirror", m.Name()), zap.Error(err))
		}
		span.Finish()
	}
}

func (p *Poller) notifyFailure(cause error) {
	if p.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := p.notifier.NotifyFailure(ctx, cause); err != nil {
		p.logger.Error("failed to send failure notification", zap.Error(err))
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Package keepalive periodically calls the service's own status endpoint so an
// idle host does not put the instance to sleep.
package keepalive

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"resty.dev/v3"

	"bazar_api/internal/metrics"
)

// Interval between two pings. Not configurable.
const Interval = 5 * time.Minute

// Pinger issues a GET against a status URL on a fixed schedule.
// Failures are logged and counted, never returned to the scheduler.
type Pinger struct {
	url    string
	client *resty.Client
	logger *zap.Logger

	scheduler *cron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	once      sync.Once
}

// NewPinger creates a Pinger for the given status URL.
func NewPinger(url string, logger *zap.Logger) *Pinger {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pinger{
		url:       url,
		client:    resty.New(),
		logger:    logger,
		scheduler: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		ctx:       ctx,
		cancel:    cancel,
	}
	p.scheduler.Schedule(cron.Every(Interval), cron.FuncJob(func() {
		p.Ping(p.ctx)
	}))
	return p
}

// Start begins the schedule. The first ping fires one Interval after Start.
func (p *Pinger) Start() {
	p.logger.Info("self-ping scheduler started", zap.String("url", p.url), zap.Duration("interval", Interval))
	p.scheduler.Start()
}

// Stop halts the schedule, cancels an in-flight ping and waits for it to return.
func (p *Pinger) Stop() {
	p.once.Do(func() {
		p.cancel()
		<-p.scheduler.Stop().Done()
		if err := p.client.Close(); err != nil {
			p.logger.Warn("closing self-ping client", zap.Error(err))
		}
		p.logger.Info("self-ping scheduler stopped")
	})
}

// Ping performs one request and reports whether it got a non-error response.
func (p *Pinger) Ping(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		p.logger.Error("self-ping failed", zap.String("url", p.url), zap.Error(err))
		metrics.RecordPing(false)
		return false
	}

	if resp.IsError() {
		p.logger.Error("self-ping returned error status",
			zap.String("url", p.url),
			zap.Int("status", resp.StatusCode()),
		)
		metrics.RecordPing(false)
		return false
	}

	p.logger.Info("self-ping succeeded",
		zap.String("url", p.url),
		zap.Int("status", resp.StatusCode()),
		zap.String("body", resp.String()),
	)
	metrics.RecordPing(true)
	return true
}

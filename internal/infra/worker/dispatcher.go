package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
)

const (
	kickTopic = "outbox:kick"

	baseBackoff = 30 * time.Second
	maxBackoff  = 30 * time.Minute
)

var ErrUnsupportedJob = errs.New("unsupported notification job")

type JobQueue interface {
	ClaimDue(ctx context.Context, limit int32) ([]shared.NotificationJob, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

type Mailer interface {
	Send(ctx context.Context, topic string, n shared.EmailNotification) error
}

// Dispatcher drains notification_jobs. A cron schedule sweeps periodically and
// Kick requests an immediate sweep after a commit enqueued work.
type Dispatcher struct {
	queue  JobQueue
	mailer Mailer
	cfg    config.WorkerConfig
	clock  clock.Clock

	pool *ants.Pool
	bus  EventBus.Bus
	cron *cron.Cron

	sweeping atomic.Bool
	pending  atomic.Bool
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewDispatcher(queue JobQueue, mailer Mailer, cfg config.WorkerConfig, clk clock.Clock, loc *time.Location) (*Dispatcher, error) {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if loc == nil {
		loc = time.UTC
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create worker pool")
	}

	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		queue:  queue,
		mailer: mailer,
		cfg:    cfg,
		clock:  clk,
		pool:   pool,
		bus:    EventBus.New(),
		cron:   cron.New(cron.WithLocation(loc), cron.WithParser(config.ScheduleParser)),
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := d.cron.AddFunc(cfg.Schedule, d.sweep); err != nil {
		pool.Release()
		cancel()
		return nil, errs.Wrapf(err, "invalid worker schedule %q", cfg.Schedule)
	}
	if err := d.bus.SubscribeAsync(kickTopic, d.sweep, false); err != nil {
		pool.Release()
		cancel()
		return nil, errs.Wrap(err, "failed to subscribe kick handler")
	}

	return d, nil
}

func (d *Dispatcher) Start(context.Context) error {
	d.cron.Start()
	slog.Info("notification dispatcher started", "schedule", d.cfg.Schedule, "pool_size", d.cfg.PoolSize)
	return nil
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	stopped := d.cron.Stop()
	d.cancel()
	d.bus.WaitAsync()

	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
	d.pool.Release()
	slog.Info("notification dispatcher stopped")
	return nil
}

// Kick asks for a sweep without waiting for the next tick. It never blocks the
// caller; a kick racing the end of a running sweep is picked up by the next tick.
func (d *Dispatcher) Kick() {
	d.pending.Store(true)
	d.bus.Publish(kickTopic)
}

func (d *Dispatcher) sweep() {
	if !d.sweeping.CompareAndSwap(false, true) {
		return
	}
	defer d.sweeping.Store(false)

	for d.ctx.Err() == nil {
		d.pending.Store(false)
		if n := d.RunOnce(d.ctx); n < int(d.cfg.BatchSize) && !d.pending.Load() {
			return
		}
	}
}

// RunOnce claims one batch of due jobs, delivers them on the pool and returns
// how many were claimed.
func (d *Dispatcher) RunOnce(ctx context.Context) int {
	jobs, err := d.queue.ClaimDue(ctx, d.cfg.BatchSize)
	if err != nil {
		slog.Error("failed to claim notification jobs", "error", err)
		return 0
	}
	if len(jobs) == 0 {
		return 0
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		err := d.pool.Submit(func() {
			defer wg.Done()
			d.deliver(ctx, job)
		})
		if err != nil {
			wg.Done()
			d.settle(ctx, job, errs.Wrap(err, "worker pool rejected job"))
		}
	}
	wg.Wait()

	return len(jobs)
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) {
	d.settle(ctx, job, d.send(ctx, job))
}

func (d *Dispatcher) send(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != shared.JobKindEmail {
		return errs.Mark(errs.Newf("kind %q", job.Kind), ErrUnsupportedJob)
	}

	var n shared.EmailNotification
	if err := json.Unmarshal(job.Payload, &n); err != nil {
		return errs.Mark(errs.Wrap(err, "malformed payload"), ErrUnsupportedJob)
	}

	return d.mailer.Send(ctx, job.Topic, n)
}

// settle is detached from ctx so a sweep cancelled mid-delivery still records the outcome
func (d *Dispatcher) settle(ctx context.Context, job shared.NotificationJob, sendErr error) {
	ctx = context.WithoutCancel(ctx)
	now := d.clock.Now()

	if sendErr == nil {
		if err := d.queue.UpdateJobStatus(ctx, job.ID, shared.JobStatusSent, nil, now); err != nil {
			slog.Error("failed to mark job sent", "job_id", job.ID, "error", err)
		}
		return
	}

	msg := sendErr.Error()
	status := shared.JobStatusQueued
	runAt := now.Add(Backoff(job.Attempts))
	if job.Attempts >= d.cfg.MaxAttempts || errs.Is(sendErr, ErrUnsupportedJob) {
		status = shared.JobStatusFailed
		runAt = now
	}

	slog.Warn("notification delivery failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_status", status,
		"error", sendErr,
	)

	if err := d.queue.UpdateJobStatus(ctx, job.ID, status, &msg, runAt); err != nil {
		slog.Error("failed to reschedule job", "job_id", job.ID, "error", err)
	}
}

// Backoff is the delay before retry number attempts+1
func Backoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := baseBackoff
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

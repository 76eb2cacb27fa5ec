// Package reconcile keeps the local quote collection in step with the remote
// copy. A Reconciler performs one run at a time, a StatusBoard shows its
// outcome and a Scheduler decides when runs happen.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotesync/internal/app/reconcile"

	// flightKey is shared by every caller so concurrent triggers join one run.
	flightKey = "sync"
)

// Config contains the dependencies of a Reconciler.
type Config struct {
	Store  *app.QuoteStore
	Remote ports.QuoteRemote
	Status *StatusBoard

	// Policy selects the merge strategy. Defaults to domain.PolicyUnion.
	Policy domain.SyncPolicy

	// Concurrency bounds pushes during the pushing phase.
	Concurrency int

	Metrics *Metrics
	Logger  *slog.Logger
}

// Reconciler runs sync passes between the quote store and the remote.
// Runs never overlap: callers arriving while a run is in flight receive the
// result of that run.
type Reconciler struct {
	store       *app.QuoteStore
	remote      ports.QuoteRemote
	status      *StatusBoard
	policy      domain.SyncPolicy
	concurrency int
	metrics     *Metrics
	logger      *slog.Logger
	tracer      trace.Tracer

	flight  singleflight.Group
	running atomic.Bool
	phase   atomic.Value

	mu   sync.RWMutex
	last *domain.SyncResult

	// delivered holds every quote the remote accepted during this process.
	// A remote may accept a push without ever listing it, so these are not
	// pushed again.
	delivered domain.QuoteSet
}

// New creates a reconciler. It panics on an unknown policy.
func New(cfg Config) *Reconciler {
	policy := cfg.Policy
	if policy == "" {
		policy = domain.PolicyUnion
	}

	if policy != domain.PolicyUnion && policy != domain.PolicyServerWins {
		panic(fmt.Sprintf("reconcile: unknown policy %q", policy))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Reconciler{
		store:       cfg.Store,
		remote:      cfg.Remote,
		status:      cfg.Status,
		policy:      policy,
		concurrency: max(cfg.Concurrency, 1),
		metrics:     cfg.Metrics,
		logger:      logger.With(slog.String("component", "reconcile.Reconciler")),
		tracer:      otel.Tracer(instrumentationName),
	}
	r.phase.Store(PhaseIdle)

	return r
}

// Policy returns the configured merge policy.
func (r *Reconciler) Policy() domain.SyncPolicy {
	return r.policy
}

// Running reports whether a run is in flight.
func (r *Reconciler) Running() bool {
	return r.running.Load()
}

// Phase returns the current phase.
func (r *Reconciler) Phase() Phase {
	p, _ := r.phase.Load().(Phase)

	return p
}

// Last returns the result of the most recent finished run.
func (r *Reconciler) Last() (domain.SyncResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == nil {
		return domain.SyncResult{}, false
	}

	return *r.last, true
}

// Run performs a sync pass, or joins the pass already in flight. The pass
// is detached from ctx cancellation; the remote client's timeouts bound it.
func (r *Reconciler) Run(ctx context.Context) domain.SyncResult {
	detached := context.WithoutCancel(ctx)

	v, _, shared := r.flight.Do(flightKey, func() (any, error) {
		return r.run(detached), nil
	})

	if shared {
		r.logger.DebugContext(ctx, "joined sync run already in flight")
	}

	result, _ := v.(domain.SyncResult)

	return result
}

func (r *Reconciler) run(ctx context.Context) domain.SyncResult {
	r.running.Store(true)
	defer r.running.Store(false)

	ctx = logging.WithSyncRunID(logging.WithContext(ctx, r.logger), uuid.NewString())
	logger := logging.FromContext(ctx)

	ctx, span := r.tracer.Start(ctx, "sync.run",
		trace.WithAttributes(attribute.String("sync.policy", string(r.policy))),
	)
	defer span.End()

	result := domain.SyncResult{
		Policy:    r.policy,
		StartedAt: time.Now(),
	}

	r.status.Set(ctx, domain.SyncSyncing)

	err := r.execute(ctx, logger, &result)

	result.Duration = time.Since(result.StartedAt)

	if err != nil {
		r.enter(PhaseFailed)
		result.Status = domain.SyncFailed
		result.Failure = failureKind(err)
		result.Reason = err.Error()

		span.RecordError(err)
		span.SetStatus(codes.Error, result.Reason)
		logger.WarnContext(ctx, "sync failed",
			slog.String("failure", string(result.Failure)),
			slog.Any("error", err),
		)
	} else {
		r.enter(PhaseDone)
		result.Status = domain.SyncUpToDate

		if result.Changed() {
			result.Status = domain.SyncUpdated
		}

		logger.InfoContext(ctx, "sync finished",
			slog.String("status", string(result.Status)),
			slog.Int("pulled", result.Pulled),
			slog.Bool("replaced", result.Replaced),
			slog.Int("pushed", result.Pushed.Succeeded()),
			slog.Int("push_failed", result.Pushed.Failed()),
			slog.Duration("duration", result.Duration),
		)
	}

	span.SetAttributes(
		attribute.String("sync.status", string(result.Status)),
		attribute.Int("sync.pulled", result.Pulled),
		attribute.Int("sync.pushed", result.Pushed.Succeeded()),
	)

	r.status.Set(ctx, result.Status)
	r.metrics.observe(result, r.store.Len())

	r.mu.Lock()
	r.last = &result
	r.mu.Unlock()

	r.enter(PhaseIdle)

	return result
}

func (r *Reconciler) execute(ctx context.Context, logger *slog.Logger, result *domain.SyncResult) error {
	r.enter(PhaseFetching)

	remote, err := r.remote.FetchRemote(ctx)
	if err != nil {
		return &PhaseError{Phase: PhaseFetching, Cause: err}
	}

	logger.DebugContext(ctx, "fetched remote quotes", slog.Int("count", len(remote)))

	r.enter(PhaseMerging)

	if r.policy == domain.PolicyServerWins {
		replaced, err := r.store.Update(ctx, func(local domain.QuoteSet) (domain.QuoteSet, bool) {
			if sameSerialization(local, remote) {
				return local, false
			}

			return remote.Clone(), true
		})
		if err != nil {
			return &PhaseError{Phase: PhaseMerging, Cause: err}
		}

		result.Replaced = replaced

		return nil
	}

	_, err = r.store.Update(ctx, func(local domain.QuoteSet) (domain.QuoteSet, bool) {
		missing := remote.Missing(local)
		result.Pulled = len(missing)

		if len(missing) == 0 {
			return local, false
		}

		return append(local, missing...), true
	})
	if err != nil {
		result.Pulled = 0

		return &PhaseError{Phase: PhaseMerging, Cause: err}
	}

	r.enter(PhasePushing)

	r.mu.RLock()
	outgoing := r.store.Snapshot().Missing(remote).Missing(r.delivered)
	r.mu.RUnlock()

	for _, q := range outgoing {
		logger.Log(ctx, logging.LevelTrace, "pushing local-only quote", slog.String("category", q.Category))
	}

	result.Pushed = app.PushAll(ctx, r.remote, outgoing, r.concurrency)
	r.recordDelivered(result.Pushed)

	return nil
}

func (r *Reconciler) recordDelivered(batch domain.BatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range batch.Outcomes {
		if o.OK() && !r.delivered.Contains(o.Quote) {
			r.delivered = append(r.delivered, o.Quote)
		}
	}
}

func (r *Reconciler) enter(p Phase) {
	r.phase.Store(p)
}

// sameSerialization compares both sets as they would be written to storage.
func sameSerialization(a, b domain.QuoteSet) bool {
	if a == nil {
		a = domain.QuoteSet{}
	}

	if b == nil {
		b = domain.QuoteSet{}
	}

	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)

	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

func failureKind(err error) domain.FailureKind {
	switch {
	case errors.Is(err, domain.ErrStorage):
		return domain.FailureStorage
	case errors.Is(err, domain.ErrNetwork):
		return domain.FailureNetwork
	default:
		if phase, ok := FailedPhase(err); ok && phase == PhaseFetching {
			return domain.FailureNetwork
		}

		return domain.FailureStorage
	}
}

package supervisor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/repository"
)

const (
	restartBackoffInitial = 1 * time.Second
	restartBackoffMax     = 2 * time.Minute
	// uptime after which a worker is considered healthy again and its
	// backoff counter resets
	stableUptime = 10 * time.Minute
)

type workerState struct {
	spec        WorkerSpec
	fingerprint uint64
	proc        Proc

	startedAt time.Time
	restarts  int
	// zero means no restart is pending
	restartAt time.Time
}

// Supervisor keeps one worker process running per tenant with active bot
// credentials. Tenants whose credentials get rejected are parked until the
// credentials change; workers that die for any other reason are restarted
// with exponential backoff.
type Supervisor struct {
	provider   repository.Provider
	configRepo repository.BotConfig
	runner     Runner

	checkInterval   time.Duration
	stopGracePeriod time.Duration
	logger          *zap.Logger

	now func() time.Time

	workers map[int64]*workerState

	// fingerprint of the credentials each parked tenant failed with. The
	// reconcile goroutine writes it, FailedTenants may read it from
	// anywhere.
	failedMut sync.Mutex
	failed    map[int64]uint64
}

// NewSupervisor ...
func NewSupervisor(
	provider repository.Provider,
	configRepo repository.BotConfig,
	runner Runner,
	checkInterval time.Duration,
	stopGracePeriod time.Duration,
	logger *zap.Logger,
) *Supervisor {
	return &Supervisor{
		provider:   provider,
		configRepo: configRepo,
		runner:     runner,

		checkInterval:   checkInterval,
		stopGracePeriod: stopGracePeriod,
		logger:          logger,

		now: time.Now,

		workers: map[int64]*workerState{},
		failed:  map[int64]uint64{},
	}
}

// Run reconciles on a fixed interval until ctx is cancelled, then stops
// every worker.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	if err := s.Reconcile(ctx); err != nil {
		s.logger.Error("reconcile failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return
		case <-ticker.C:
			if err := s.Reconcile(ctx); err != nil {
				s.logger.Error("reconcile failed", zap.Error(err))
			}
		}
	}
}

// Reconcile makes the set of running workers match the set of active bot
// configs. It is the only method that mutates supervisor state and must be
// called from a single goroutine. FailedTenants is the one read allowed
// from other goroutines.
func (s *Supervisor) Reconcile(ctx context.Context) error {
	desired, err := s.listDesired(ctx)
	if err != nil {
		return err
	}

	s.collectExited()

	for tenantID, state := range s.workers {
		if _, ok := desired[tenantID]; ok {
			continue
		}
		s.logger.Info("stopping worker for removed tenant",
			zap.Int64("admin_user_id", tenantID))
		s.stopWorker(state)
		delete(s.workers, tenantID)
	}
	s.failedMut.Lock()
	for tenantID := range s.failed {
		if _, ok := desired[tenantID]; !ok {
			delete(s.failed, tenantID)
		}
	}
	s.failedMut.Unlock()

	for tenantID, spec := range desired {
		s.reconcileTenant(ctx, tenantID, spec)
	}

	workersRunning.Set(float64(len(s.workers)))
	s.failedMut.Lock()
	workersFailed.Set(float64(len(s.failed)))
	s.failedMut.Unlock()
	return nil
}

// FailedTenants returns the tenants currently parked for rejected
// credentials, sorted by tenant id.
func (s *Supervisor) FailedTenants() []int64 {
	s.failedMut.Lock()
	defer s.failedMut.Unlock()

	tenants := make([]int64, 0, len(s.failed))
	for tenantID := range s.failed {
		tenants = append(tenants, tenantID)
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i] < tenants[j] })
	return tenants
}

// Shutdown stops all workers in parallel, giving each the configured grace
// period before killing it.
func (s *Supervisor) Shutdown() {
	var wg sync.WaitGroup
	for tenantID, state := range s.workers {
		if state.proc == nil {
			continue
		}
		wg.Add(1)
		go func(state *workerState) {
			defer wg.Done()
			s.stopWorker(state)
		}(state)
		delete(s.workers, tenantID)
	}
	wg.Wait()
	workersRunning.Set(0)
}

func (s *Supervisor) listDesired(ctx context.Context) (map[int64]WorkerSpec, error) {
	ctx = s.provider.Readonly(ctx)
	configs, err := s.configRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	desired := map[int64]WorkerSpec{}
	for _, conf := range configs {
		desired[conf.AdminUserID] = SpecFromBotConfig(conf)
	}
	return desired, nil
}

// collectExited inspects workers whose process has exited since the last
// pass and decides between parking and scheduling a restart.
func (s *Supervisor) collectExited() {
	for tenantID, state := range s.workers {
		if state.proc == nil {
			continue
		}
		select {
		case <-state.proc.Done():
		default:
			continue
		}

		code := state.proc.ExitCode()
		state.proc = nil

		if code == ExitCodeCredentialRejected {
			s.logger.Warn("worker credentials rejected",
				zap.Int64("admin_user_id", tenantID))
			workerCredentialFailuresTotal.Inc()
			s.failedMut.Lock()
			s.failed[tenantID] = state.fingerprint
			s.failedMut.Unlock()
			delete(s.workers, tenantID)
			continue
		}

		if s.now().Sub(state.startedAt) >= stableUptime {
			state.restarts = 0
		}
		delay := restartDelay(state.restarts)
		state.restarts++
		state.restartAt = s.now().Add(delay)

		s.logger.Warn("worker exited, restart scheduled",
			zap.Int64("admin_user_id", tenantID),
			zap.Int("exit_code", code),
			zap.Duration("delay", delay),
		)
	}
}

func (s *Supervisor) reconcileTenant(ctx context.Context, tenantID int64, spec WorkerSpec) {
	fingerprint := spec.Fingerprint()

	s.failedMut.Lock()
	failedFingerprint, parked := s.failed[tenantID]
	if parked && failedFingerprint != fingerprint {
		// new credentials, give the tenant another chance
		delete(s.failed, tenantID)
		parked = false
	}
	s.failedMut.Unlock()
	if parked {
		return
	}

	state, ok := s.workers[tenantID]
	if ok && state.fingerprint != fingerprint {
		s.logger.Info("credentials changed, replacing worker",
			zap.Int64("admin_user_id", tenantID))
		s.stopWorker(state)
		delete(s.workers, tenantID)
		ok = false
	}

	if ok {
		if state.proc != nil {
			return
		}
		if s.now().Before(state.restartAt) {
			return
		}
		workerRestartsTotal.Inc()
		s.startWorker(ctx, tenantID, state)
		return
	}

	state = &workerState{
		spec:        spec,
		fingerprint: fingerprint,
	}
	s.workers[tenantID] = state
	s.startWorker(ctx, tenantID, state)
}

func (s *Supervisor) startWorker(ctx context.Context, tenantID int64, state *workerState) {
	proc, err := s.runner.Start(ctx, state.spec)
	if err != nil {
		delay := restartDelay(state.restarts)
		state.restarts++
		state.restartAt = s.now().Add(delay)
		s.logger.Error("starting worker failed",
			zap.Int64("admin_user_id", tenantID),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		return
	}
	state.proc = proc
	state.startedAt = s.now()
	state.restartAt = time.Time{}
}

// stopWorker terminates the process and waits up to the grace period
// before killing it.
func (s *Supervisor) stopWorker(state *workerState) {
	if state.proc == nil {
		return
	}
	proc := state.proc
	state.proc = nil

	_ = proc.Terminate()
	select {
	case <-proc.Done():
		return
	case <-time.After(s.stopGracePeriod):
	}

	_ = proc.Kill()
	<-proc.Done()
}

func restartDelay(restarts int) time.Duration {
	delay := restartBackoffInitial
	for i := 0; i < restarts; i++ {
		delay *= 2
		if delay >= restartBackoffMax {
			return restartBackoffMax
		}
	}
	return delay
}

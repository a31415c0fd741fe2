package engine

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/models"
)

// ScheduleSource is the storage collaborator: synchronous read-only
// snapshots of the active group and its schedules. The engine never writes.
type ScheduleSource interface {
	ActiveGroup(ctx context.Context) (*models.Group, error)
	ListSchedules(ctx context.Context, groupID string) ([]models.Schedule, error)
}

// CueDispatcher applies decided cues asynchronously. Implementations must
// not block the caller; failures are their own to log and swallow.
type CueDispatcher interface {
	Dispatch(cue Cue)
}

// StateSink receives the snapshot after every tick, e.g. a cache serving
// display clients that subscribe instead of polling. Implementations own
// their timeouts; the engine calls them off the tick path.
type StateSink interface {
	PutState(ctx context.Context, snap Snapshot)
}

// Metrics is the subset of instrumentation the engine reports into.
type Metrics interface {
	ObserveTick(duration time.Duration)
	CueFired(kind string)
	SetClassActive(active bool)
}

type nopMetrics struct{}

func (nopMetrics) ObserveTick(time.Duration) {}
func (nopMetrics) CueFired(string)           {}
func (nopMetrics) SetClassActive(bool)       {}

// Config tunes the engine cadences.
type Config struct {
	TickInterval     time.Duration
	ReselectInterval time.Duration
	BellCooldown     time.Duration
}

// Snapshot is the engine's externally visible state: the latest resolved
// timer state plus which schedule it was resolved against.
type Snapshot struct {
	State      models.TimerState `json:"state"`
	Schedule   *models.Schedule  `json:"schedule"`
	Occurrence Occurrence        `json:"occurrence"`
	Group      *models.Group     `json:"group"`
}

// Engine drives schedule resolution at a fixed cadence and turns resolved
// state into at-most-once audio cues. Each tick is a pure recomputation
// from the wall clock and a schedule snapshot; the trigger markers are the
// only state carried between ticks.
type Engine struct {
	clock    Clock
	source   ScheduleSource
	player   audio.Player
	dispatch CueDispatcher
	metrics  Metrics
	logger   *zap.Logger
	config   Config
	sink     StateSink

	mu        sync.RWMutex
	group     *models.Group
	schedule  *models.Schedule
	occ       Occurrence
	snap      Snapshot
	triggers  *Triggers
	wasActive bool

	cron   *cron.Cron
	cancel context.CancelFunc
	done   chan struct{}
}

// New constructs an engine. source, player and dispatch are required;
// metrics and logger may be nil.
func New(clock Clock, source ScheduleSource, player audio.Player, dispatch CueDispatcher, metrics Metrics, logger *zap.Logger, cfg Config) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.ReselectInterval <= 0 {
		cfg.ReselectInterval = time.Minute
	}
	// The boundary grace window only works if at least one tick lands
	// inside it.
	if cfg.TickInterval > endGraceSeconds*time.Second {
		cfg.TickInterval = endGraceSeconds * time.Second
	}

	return &Engine{
		clock:    clock,
		source:   source,
		player:   player,
		dispatch: dispatch,
		metrics:  metrics,
		logger:   logger,
		config:   cfg,
		triggers: NewTriggers(cfg.BellCooldown),
		done:     make(chan struct{}),
	}
}

// SetStateSink attaches an optional snapshot sink. Call before Start.
func (e *Engine) SetStateSink(sink StateSink) {
	e.sink = sink
}

// Start performs the initial selection and begins the tick cadence plus
// the coarse periodic re-selection that catches day rollover and any-day
// schedules becoming eligible.
func (e *Engine) Start(ctx context.Context) error {
	ctx, e.cancel = context.WithCancel(ctx)

	if err := e.reselect(ctx); err != nil {
		e.logger.Warn("initial schedule selection failed", zap.Error(err))
	}

	e.cron = cron.New()
	reselectEvery := cron.Every(e.config.ReselectInterval)
	e.cron.Schedule(reselectEvery, cron.FuncJob(func() {
		if err := e.reselect(ctx); err != nil {
			e.logger.Warn("periodic schedule re-selection failed", zap.Error(err))
		}
	}))
	e.cron.Start()

	go e.run(ctx)
	return nil
}

// Stop halts the tick cadence and clears the trigger markers. No cue fires
// after Stop returns.
func (e *Engine) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	if e.cron != nil {
		e.cron.Stop()
	}
	<-e.done

	e.mu.Lock()
	e.triggers.Reset()
	e.mu.Unlock()
}

// Reload re-runs schedule selection immediately. Editing handlers call it
// after any schedule or group mutation so the display reflects the change
// without waiting for the coarse re-check.
func (e *Engine) Reload(ctx context.Context) {
	if err := e.reselect(ctx); err != nil {
		e.logger.Warn("schedule reload failed", zap.Error(err))
	}
}

// Snapshot returns the latest resolved state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

// SetMuted forwards the display mute toggle to the audio collaborator.
func (e *Engine) SetMuted(muted bool) {
	e.player.SetMuted(muted)
}

// Muted reports the audio collaborator's mute state.
func (e *Engine) Muted() bool {
	return e.player.Muted()
}

func (e *Engine) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.config.TickInterval)
	defer ticker.Stop()

	e.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick is one poll: resume audio, resolve, decide, dispatch, publish. It
// never blocks on collaborators and isolates their failures so a bad tick
// cannot stop the cadence.
func (e *Engine) tick(ctx context.Context) {
	started := time.Now()
	now := e.clock.Now()

	// Playback backends suspend without regular nudges; resuming is an
	// idempotent no-op when already active.
	go func() {
		if err := e.player.Resume(ctx); err != nil {
			e.logger.Debug("audio resume failed", zap.Error(err))
		}
	}()

	e.mu.Lock()
	schedule := e.schedule
	state := Resolve(schedule, now)
	cues := e.triggers.Decide(schedule, state, now)

	classEnded := e.wasActive && !state.IsClassActive
	e.wasActive = state.IsClassActive
	snap := Snapshot{State: state, Schedule: schedule, Occurrence: e.occ, Group: e.group}
	e.snap = snap
	e.mu.Unlock()

	if e.sink != nil {
		go e.sink.PutState(ctx, snap)
	}

	for _, cue := range cues {
		e.dispatch.Dispatch(cue)
		e.metrics.CueFired(string(cue.Kind))
		e.logger.Info("cue fired",
			zap.String("kind", string(cue.Kind)),
			zap.String("section", cue.SectionName),
			zap.String("sound", string(cue.Sound)),
		)
	}

	e.metrics.SetClassActive(state.IsClassActive)
	e.metrics.ObserveTick(time.Since(started))

	if classEnded {
		if err := e.reselect(ctx); err != nil {
			e.logger.Warn("schedule re-selection after class end failed", zap.Error(err))
		}
	}
}

// reselect consults the storage collaborator and the selector for the
// schedule to resolve against. Markers survive a reselect that lands on
// the same schedule and are cleared when the selection moves.
func (e *Engine) reselect(ctx context.Context) error {
	group, err := e.source.ActiveGroup(ctx)
	if err != nil {
		return err
	}

	var schedules []models.Schedule
	if group != nil {
		schedules, err = e.source.ListSchedules(ctx, group.ID)
		if err != nil {
			return err
		}
	}

	selected, occ := SelectCurrent(schedules, e.clock.Now())

	e.mu.Lock()
	defer e.mu.Unlock()

	switched := (selected == nil) != (e.schedule == nil) ||
		(selected != nil && e.schedule != nil && selected.ID != e.schedule.ID)
	if switched {
		e.triggers.Reset()
		name := ""
		if selected != nil {
			name = selected.Name
		}
		e.logger.Info("resolved schedule changed", zap.String("schedule", name), zap.String("next", occ.Label))
	}
	e.group = group
	e.schedule = selected
	e.occ = occ
	return nil
}

package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/pkg/jobs"
)

// QueueDispatcher applies cues through a worker queue so audio I/O never
// runs on the tick path. A failed cue is logged by the queue and dropped;
// retrying would break the at-most-once contract.
type QueueDispatcher struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewQueueDispatcher wires a dispatcher around the given player. Call
// Start before the engine starts ticking and Stop after it stops.
func NewQueueDispatcher(player audio.Player, logger *zap.Logger) *QueueDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &QueueDispatcher{logger: logger}
	d.queue = jobs.NewQueue("cues", func(ctx context.Context, job jobs.Job) error {
		cue, ok := job.Payload.(Cue)
		if !ok {
			d.logger.Warn("cue queue received unexpected payload", zap.String("job_id", job.ID))
			return nil
		}
		switch cue.Kind {
		case CueTwoMinuteWarning:
			return player.PlayTwoMinuteWarning(ctx, cue.Sound)
		default:
			return player.PlayEndBell(ctx, cue.Sound)
		}
	}, jobs.QueueConfig{Workers: 1, BufferSize: 8, Logger: logger})
	return d
}

// Start launches the queue workers.
func (d *QueueDispatcher) Start(ctx context.Context) {
	d.queue.Start(ctx)
}

// Stop drains the workers.
func (d *QueueDispatcher) Stop() {
	d.queue.Stop()
}

// Dispatch enqueues a cue without blocking.
func (d *QueueDispatcher) Dispatch(cue Cue) {
	job := jobs.Job{
		ID:      uuid.NewString(),
		Type:    string(cue.Kind),
		Payload: cue,
	}
	if err := d.queue.Enqueue(job); err != nil {
		d.logger.Warn("failed to enqueue cue", zap.String("kind", string(cue.Kind)), zap.Error(err))
	}
}

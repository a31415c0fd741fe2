package audio

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Player is the audio collaborator consumed by the bell engine. All calls
// are treated as fire-and-forget by the caller; a failed cue is logged and
// never retried.
type Player interface {
	PlayEndBell(ctx context.Context, sound Sound) error
	PlayTwoMinuteWarning(ctx context.Context, sound Sound) error
	SetMuted(muted bool)
	Muted() bool
	// Resume keeps the downstream playback context alive. Display
	// backends suspend themselves when not recently driven, so the engine
	// calls this on every tick as an idempotent no-op when already active.
	Resume(ctx context.Context) error
}

// CueEvent is the wire form of a single audio cue, published for display
// clients. The tone spec is embedded so clients stay catalogue free.
type CueEvent struct {
	ID    string    `json:"id"`
	Kind  string    `json:"kind"`
	Sound Sound     `json:"sound"`
	Tone  ToneSpec  `json:"tone"`
	At    time.Time `json:"at"`
}

const (
	cueKindEndBell          = "end_bell"
	cueKindTwoMinuteWarning = "two_minute_warning"
)

// RedisPlayer publishes cue events on a Redis pub/sub channel that the
// wall display subscribes to.
type RedisPlayer struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
	muted   atomic.Bool
}

// NewRedisPlayer constructs a player publishing on the given channel.
func NewRedisPlayer(client *redis.Client, channel string, logger *zap.Logger) *RedisPlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPlayer{client: client, channel: channel, logger: logger}
}

// PlayEndBell publishes an end-of-section bell cue.
func (p *RedisPlayer) PlayEndBell(ctx context.Context, sound Sound) error {
	return p.publish(ctx, cueKindEndBell, sound)
}

// PlayTwoMinuteWarning publishes a two-minute warning cue.
func (p *RedisPlayer) PlayTwoMinuteWarning(ctx context.Context, sound Sound) error {
	return p.publish(ctx, cueKindTwoMinuteWarning, sound)
}

// SetMuted drops cue publishes while muted. Resume keep-alives still run.
func (p *RedisPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the current mute state.
func (p *RedisPlayer) Muted() bool {
	return p.muted.Load()
}

// Resume pings the transport so the pub/sub connection stays warm.
func (p *RedisPlayer) Resume(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.client.Ping(ctx).Err()
}

func (p *RedisPlayer) publish(ctx context.Context, kind string, sound Sound) error {
	if p.muted.Load() {
		p.logger.Debug("cue suppressed while muted", zap.String("kind", kind), zap.String("sound", string(sound)))
		return nil
	}

	event := CueEvent{
		ID:    uuid.NewString(),
		Kind:  kind,
		Sound: sound,
		Tone:  sound.Tone(),
		At:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return err
	}
	p.logger.Info("cue published", zap.String("kind", kind), zap.String("sound", string(sound)))
	return nil
}

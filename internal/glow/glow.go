package glow

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/wheelibin/glow/internal/concurrency"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/lights"
)

type ColourSource interface {
	CurrentColour(ctx context.Context, email string) (lights.Reading, error)
}

// the subset of *sse.Server the feed publishes through
type Publisher interface {
	CreateStream(id string) *sse.Stream
	StreamExists(id string) bool
	Publish(id string, event *sse.Event)
}

// Glow pushes each subscribed user's current light colour to their event
// stream on every tick.
type Glow struct {
	logger    *log.Logger
	source    ColourSource
	publisher Publisher
	interval  time.Duration
	worker    concurrency.ThrottledWorker

	mu          sync.Mutex
	subscribers map[string]struct{}
}

func NewGlow(logger *log.Logger, source ColourSource, publisher Publisher, interval time.Duration) *Glow {
	if interval <= 0 {
		interval = constants.DefaultFeedInterval
	}
	g := &Glow{
		logger:      logger,
		source:      source,
		publisher:   publisher,
		interval:    interval,
		subscribers: map[string]struct{}{},
	}
	g.worker = concurrency.NewThrottledWorker(constants.FeedPublishSpacing, g.publish)
	return g
}

// Subscribe makes sure the stream for email exists and includes it in updates.
func (g *Glow) Subscribe(email string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.publisher.StreamExists(email) {
		g.publisher.CreateStream(email)
	}
	g.subscribers[email] = struct{}{}
	g.logger.Debug("feed subscriber added", "email", email)
}

func (g *Glow) Subscribers() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo.Keys(g.subscribers)
}

// prune drops subscribers whose stream has gone away and returns the rest
func (g *Glow) prune() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for email := range g.subscribers {
		if !g.publisher.StreamExists(email) {
			delete(g.subscribers, email)
			g.logger.Debug("feed subscriber removed", "email", email)
		}
	}
	return lo.Keys(g.subscribers)
}

func (g *Glow) Run(ctx context.Context) {
	g.logger.Debug("Glow.Run")

	updateTimer := time.NewTicker(g.interval)
	defer updateTimer.Stop()

	// update everyone straight away
	g.UpdateAll(ctx)

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("Glow.Run: stop signal received")
			return

		case t := <-updateTimer.C:
			g.logger.Debug("Glow.Run: publishing colours...", "t", t)
			g.UpdateAll(ctx)
		}
	}
}

func (g *Glow) UpdateAll(ctx context.Context) {
	emails := g.prune()
	for email, err := range g.worker.Run(ctx, emails) {
		g.logger.Error("unable to publish colour", "email", email, "err", err)
	}
}

func (g *Glow) publish(ctx context.Context, email string) error {
	reading, err := g.source.CurrentColour(ctx, email)
	if err != nil {
		return err
	}
	data, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	g.publisher.Publish(email, &sse.Event{Event: []byte("colour"), Data: data})
	return nil
}

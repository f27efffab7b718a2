// Package app wires the scan controller to the coach session.
package app

import (
	"context"
	"time"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/scan"
)

// Backend is everything the scan controller and the coach need.
type Backend interface {
	scan.Backend
	Chat(ctx context.Context, req model.ChatRequest) (string, error)
}

// Config tunes both components.
type Config struct {
	Scheduler      common.Scheduler
	Now            func() time.Time
	Pick           func(n int) int
	ResolveImage   func(path string) string
	HandoffDelay   time.Duration
	NoticeDuration time.Duration
	CoachLatency   time.Duration
	HistoryLimit   int
}

// App owns one scan controller and one coach session. Every successful
// classification is handed to the coach after the handoff delay.
type App struct {
	Scan  *scan.Controller
	Coach *coach.Session
}

// New builds the pair and wires the handoff.
func New(backend Backend, scanView scan.View, coachView coach.View, cfg Config) *App {
	if cfg.Scheduler == nil {
		cfg.Scheduler = common.RealScheduler{}
	}

	session := coach.NewSession(backend, coachView, coach.Config{
		Scheduler: cfg.Scheduler,
		Pick:      cfg.Pick,
		Latency:   cfg.CoachLatency,
	})

	controller := scan.NewController(backend, scanView, scan.Config{
		Scheduler:      cfg.Scheduler,
		Handoff:        session.TriggerAfterScan,
		Now:            cfg.Now,
		Pick:           cfg.Pick,
		ResolveImage:   cfg.ResolveImage,
		HandoffDelay:   cfg.HandoffDelay,
		NoticeDuration: cfg.NoticeDuration,
		HistoryLimit:   cfg.HistoryLimit,
	})

	return &App{Scan: controller, Coach: session}
}

// Start loads the stats bar, history and achievements.
func (a *App) Start(ctx context.Context) error {
	return a.Scan.LoadInitial(ctx)
}

// Reset returns the scan side to Idle. The coach keeps its transcript and
// context.
func (a *App) Reset() {
	a.Scan.Reset()
}

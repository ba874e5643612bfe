package application

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Transition is reported whenever an application's status differs from
// the previous poll. The first poll always reports, with an empty From.
type Transition struct {
	AppID string
	From  string
	To    string
	At    time.Time
}

type Scheduler struct {
	log    *zap.Logger
	use    *BadgeUseCase
	every  time.Duration
	apps   []string
	notify func(Transition)

	last map[string]string
}

func NewScheduler(l *zap.Logger, u *BadgeUseCase, apps []string, every time.Duration, notify func(Transition)) *Scheduler {
	return &Scheduler{
		log: l, use: u, apps: apps, every: every, notify: notify,
		last: make(map[string]string, len(apps)),
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.every)
	defer t.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	for _, app := range s.apps {
		if ctx.Err() != nil {
			return
		}
		s.pollOnce(ctx, app)
	}
}

func (s *Scheduler) pollOnce(ctx context.Context, app string) {
	status := s.use.Status(ctx, app).String()

	prev, ok := s.last[app]
	if ok && prev == status {
		s.log.Debug("unchanged", zap.String("app", app), zap.String("status", status))
		return
	}

	s.last[app] = status
	if s.notify != nil {
		s.notify(Transition{AppID: app, From: prev, To: status, At: time.Now()})
	}
}

// Package scheduler triggers scrape cycles on a cron spec.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"scholarship-feed/internal/scrape/model"
)

// Runner runs one scrape cycle.
type Runner interface {
	RunCycle(ctx context.Context) model.CycleSummary
}

type Worker struct {
	Log    *zap.Logger
	Runner Runner
	Spec   string // cron spec, e.g. "0 */6 * * *" or "@every 6h"
}

// Run executes one cycle immediately, then one per tick until ctx is done.
// Ticks that fire while a cycle is still running are skipped.
func (w *Worker) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{w.Log})))
	if _, err := c.AddFunc(w.Spec, func() { w.RunOnce(ctx) }); err != nil {
		return eris.Wrapf(err, "scheduler: invalid spec %q", w.Spec)
	}

	w.RunOnce(ctx)

	c.Start()
	w.Log.Info("Scrape scheduler started", zap.String("spec", w.Spec))

	<-ctx.Done()
	w.Log.Info("Waiting for running scrape cycle to finish...")
	<-c.Stop().Done()
	return nil
}

// RunOnce runs a single cycle and logs its summary.
func (w *Worker) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	sum := w.Runner.RunCycle(ctx)
	if !sum.Success {
		w.Log.Error("Scheduled scrape failed",
			zap.String("error", sum.Error),
			zap.Strings("failedSources", sum.Stats.FailedSources),
		)
		return
	}
	w.Log.Info("Scheduled scrape finished",
		zap.String("message", sum.Message),
		zap.Int("inserted", sum.Stats.Inserted),
		zap.Int("updated", sum.Stats.Updated),
	)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ log *zap.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

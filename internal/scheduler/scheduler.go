// Package scheduler runs the background maintenance jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"

	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of work.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context)
}

type Scheduler struct {
	cron   *cron.Cron
	logger logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(log logger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log}))),
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers a job. An empty schedule disables the job.
func (s *Scheduler) Add(job Job) error {
	if job.Schedule == "" {
		s.logger.Infof("[Scheduler] job %s disabled", job.Name)
		return nil
	}

	_, err := s.cron.AddFunc(job.Schedule, func() {
		s.logger.Debugf("[Scheduler] running %s", job.Name)
		job.Run(s.ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", job.Schedule, job.Name, err)
	}

	s.logger.Infof("[Scheduler] job %s scheduled: %s", job.Name, job.Schedule)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

// Len reports the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("[Scheduler] %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorf("[Scheduler] %s: %v %v", msg, err, keysAndValues)
}

package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"school-cms/pkg/logger"
)

type JobScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	RemoveJob(id string) error
	ListJobs() map[string]JobInfo
	IsRunning() bool
}

// JobInfo is a snapshot of one registered job
type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  time.Time
}

type entry struct {
	cronExpr string
	job      *gocron.Job
	lastRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*entry
	mu        sync.RWMutex
	running   bool
}

// NewJobScheduler runs jobs in UTC. A job never overlaps with itself.
func NewJobScheduler() JobScheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &GocronScheduler{
		scheduler: scheduler,
		jobs:      make(map[string]*entry),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.SchedulerWarn("start", "Scheduler is already running", nil)
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Scheduler("started", "Job scheduler started", map[string]interface{}{"jobs": len(s.jobs)})
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Scheduler("stopped", "Job scheduler stopped", nil)
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Tag(id).Do(func() {
		now := time.Now().UTC()
		logger.Scheduler("job_executing", "Executing job", map[string]interface{}{"job_id": id})

		s.mu.Lock()
		if e, exists := s.jobs[id]; exists {
			e.lastRun = &now
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}

	s.jobs[id] = &entry{cronExpr: cronExpr, job: job}

	logger.Scheduler("job_added", "Job added", map[string]interface{}{"job_id": id, "cron_expr": cronExpr})
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}

	s.scheduler.RemoveByReference(e.job)
	delete(s.jobs, id)
	logger.Scheduler("job_removed", "Job removed", map[string]interface{}{"job_id": id})
	return nil
}

func (s *GocronScheduler) ListJobs() map[string]JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make(map[string]JobInfo, len(s.jobs))
	for id, e := range s.jobs {
		info := JobInfo{
			ID:       id,
			CronExpr: e.cronExpr,
			NextRun:  e.job.NextRun(),
		}
		if e.lastRun != nil {
			lastRun := *e.lastRun
			info.LastRun = &lastRun
		}
		jobs[id] = info
	}
	return jobs
}

// ValidateCronExpression checks a five-field cron expression
func ValidateCronExpression(cronExpr string) error {
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Cron(cronExpr).Do(func() {}); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return nil
}

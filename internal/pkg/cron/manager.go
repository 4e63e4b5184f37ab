package cron

import (
	"Ripple/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	archiveJob *job.ArchiveJob
	// archiveSpec robfig/cron 表达式（带秒域）
	archiveSpec string
}

func NewCronManager(archiveJob *job.ArchiveJob, archiveSpec string) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		archiveJob:  archiveJob,
		archiveSpec: archiveSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.archiveSpec, s.archiveJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

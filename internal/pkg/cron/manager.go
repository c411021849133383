package cron

import (
	"Socials/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	likeCountSpec string
	likeCountJob  *job.LikeCountJob
}

func NewCronManager(likeCountSpec string, likeCountJob *job.LikeCountJob) *Manager {
	return &Manager{
		engine: cron.New(cron.WithSeconds(), cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		likeCountSpec: likeCountSpec,
		likeCountJob:  likeCountJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.likeCountSpec, s.likeCountJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "like_count_spec", s.likeCountSpec)
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}

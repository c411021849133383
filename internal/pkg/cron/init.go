package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册并启动定时任务，cron.like_count_spec 配置为空时不启用计数校正
func InitCron(mgr *Manager) error {
	if mgr.likeCountSpec == "" {
		log.Warn("Like count reconcile disabled, cron engine not started")
		return nil
	}
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	mgr.Start()

	for _, entry := range mgr.engine.Entries() {
		log.Info("Cron job scheduled", "entry_id", entry.ID, "next", entry.Next)
	}
	return nil
}

package job

import (
	"Ripple/internal/pkg/logger"
	"Ripple/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ArchiveJob 定时把所有活跃帖子转为已归档。
// 失败只记日志，等下一个调度周期重跑，不做即时重试
type ArchiveJob struct {
	postSvc service.PostService
}

func NewArchiveJob(postSvc service.PostService) *ArchiveJob {
	return &ArchiveJob{
		postSvc: postSvc,
	}
}

func (s *ArchiveJob) Run() {
	traceID := "job-archive-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	count, err := s.postSvc.RunArchiveSweep(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "archive sweep failed, waiting for next tick", "err", err)
		return
	}

	log.InfoContext(ctx, "archive sweep finished", "archived_count", count)
}

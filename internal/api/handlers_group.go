package api

import (
	"Ripple/internal/api/handler"
)

// HandlersGroup 汇总所有 Handler，便于路由装配
type HandlersGroup struct {
	PostHandler       *handler.PostHandler
	EngagementHandler *handler.EngagementHandler
	FeedHandler       *handler.FeedHandler
}

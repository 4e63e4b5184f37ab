package handler

import (
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

// GetFeed 衰减分排序的活跃帖子流
func (s *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	feed, err := s.feedSvc.GetFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

// GetLeaderboard 累计点赞榜，可按标签过滤
func (s *FeedHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.DefaultLeaderboardLimit)))
	if limit < 1 || limit > 100 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	tag := c.Query("tag")

	board, err := s.feedSvc.GetLeaderboard(c.Request.Context(), limit, tag)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

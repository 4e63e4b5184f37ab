package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

// ToggleLike 点赞/取消点赞，同一接口反复调用自动切换
func (s *EngagementHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	record, err := s.engagementSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

// RecordView 上报浏览，同一用户只记一次
func (s *EngagementHandler) RecordView(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	record, err := s.engagementSvc.RecordView(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

// CreateComment 发表评论
func (s *EngagementHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	record, err := s.engagementSvc.AddComment(c.Request.Context(), userID, req.PostID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

// GetComments 按发表顺序返回帖子评论
func (s *EngagementHandler) GetComments(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.engagementSvc.GetComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// GetEngagementState 帖子互动概览
func (s *EngagementHandler) GetEngagementState(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	state, err := s.engagementSvc.GetEngagementState(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

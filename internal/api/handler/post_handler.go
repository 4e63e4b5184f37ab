package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc       service.PostService
	engagementSvc service.EngagementService
}

func NewPostHandler(postSvc service.PostService, engagementSvc service.EngagementService) *PostHandler {
	return &PostHandler{
		postSvc:       postSvc,
		engagementSvc: engagementSvc,
	}
}

// CreatePost 发布帖子
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost 帖子详情，登录用户顺带上报一次浏览
func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if userID > 0 {
		go func() {
			_, _ = s.engagementSvc.RecordView(context.Background(), userID, postID)
		}()
	}

	response.Success(c, post)
}

// GetPostByUserId 指定作者的帖子列表，含已归档
func (s *PostHandler) GetPostByUserId(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || authorID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 || pageSize < 1 || pageSize > 50 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	list, err := s.postSvc.GetPostByUserId(c.Request.Context(), authorID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/pkg/redis"
	"Ripple/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// maxSaveRetries 乐观锁冲突的重试上限，超过后向调用方返回 ErrActionConflict
const maxSaveRetries = 3

const summaryCacheExpiration = 5 * time.Minute

type EngagementService interface {
	ToggleLike(ctx context.Context, userID uint64, postID string) (*dto.EngagementRecordDTO, error)
	RecordView(ctx context.Context, userID uint64, postID string) (*dto.EngagementRecordDTO, error)
	AddComment(ctx context.Context, userID uint64, postID string, content string) (*dto.EngagementRecordDTO, error)
	GetEngagementState(ctx context.Context, userID uint64, postID string) (*dto.EngagementStateDTO, error)
	GetComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error)
}

type engagementServiceImpl struct {
	postRepo repository.PostRepo
	producer kafka.Producer
}

func NewEngagementService(postRepo repository.PostRepo, producer kafka.Producer) EngagementService {
	return &engagementServiceImpl{
		postRepo: postRepo,
		producer: producer,
	}
}

func (s *engagementServiceImpl) ToggleLike(ctx context.Context, userID uint64, postID string) (*dto.EngagementRecordDTO, error) {
	if userID == 0 {
		return nil, ErrCallerInvalid
	}

	var added bool
	post, err := s.mutatePost(ctx, postID, func(p *model.Post) error {
		added = p.ToggleLike(userID, time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := consts.EngagementActionUnlike
	if added {
		action = consts.EngagementActionLike
	}
	s.afterMutation(ctx, postID, userID, action)

	return buildRecordDTO(post, userID), nil
}

func (s *engagementServiceImpl) RecordView(ctx context.Context, userID uint64, postID string) (*dto.EngagementRecordDTO, error) {
	if userID == 0 {
		return nil, ErrCallerInvalid
	}

	var recorded bool
	post, err := s.mutatePost(ctx, postID, func(p *model.Post) error {
		recorded = p.RecordView(userID, time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if recorded {
		s.afterMutation(ctx, postID, userID, consts.EngagementActionView)
	}

	return buildRecordDTO(post, userID), nil
}

func (s *engagementServiceImpl) AddComment(ctx context.Context, userID uint64, postID string, content string) (*dto.EngagementRecordDTO, error) {
	if userID == 0 {
		return nil, ErrCallerInvalid
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentEmpty
	}

	post, err := s.mutatePost(ctx, postID, func(p *model.Post) error {
		p.AddComment(userID, content, time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, postID, userID, consts.EngagementActionComment)

	return buildRecordDTO(post, userID), nil
}

// GetEngagementState 帖子互动概览。匿名访问走 Redis 缓存，
// 登录用户需要 Liked 标记，直接读文档
func (s *engagementServiceImpl) GetEngagementState(ctx context.Context, userID uint64, postID string) (*dto.EngagementStateDTO, error) {
	key := consts.PostEngagementKey + postID

	if userID == 0 {
		cached, err := redis.GetValue(ctx, key)
		if err == nil && cached != "" {
			var state dto.EngagementStateDTO
			if err := json.Unmarshal([]byte(cached), &state); err == nil {
				return &state, nil
			}
		}
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	state := &dto.EngagementStateDTO{
		PostID:        post.ID,
		LikesCount:    len(post.Likes),
		CommentsCount: len(post.Comments),
		ViewsCount:    len(post.Views),
		Liked:         post.HasLiked(userID),
	}

	go func() {
		cacheable := *state
		cacheable.Liked = false
		if payload, err := json.Marshal(&cacheable); err == nil {
			_ = redis.SetWithExpiration(context.Background(), key, payload, summaryCacheExpiration)
		}
	}()

	return state, nil
}

func (s *engagementServiceImpl) GetComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	// 保持插入顺序返回，倒序展示交给前端
	res := make([]*dto.CommentDTO, 0, len(post.Comments))
	for _, c := range post.Comments {
		res = append(res, &dto.CommentDTO{
			UserID:   c.UserID,
			Content:  c.Content,
			PostedAt: c.PostedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return res, nil
}

// mutatePost 读取-修改-保存的统一入口。
// 保存使用文档版本号做 CAS，冲突时重新读取后重放，保证同一帖子
// 的并发互动不会互相覆盖
func (s *engagementServiceImpl) mutatePost(ctx context.Context, postID string, mutate func(*model.Post) error) (*model.Post, error) {
	for i := 0; i < maxSaveRetries; i++ {
		post, err := s.postRepo.GetPost(ctx, postID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, ErrPostNotFound
		}

		if err := mutate(post); err != nil {
			return nil, err
		}
		post.RefreshStats()

		err = s.postRepo.SavePost(ctx, post)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}

		time.Sleep(time.Duration(i+1) * 20 * time.Millisecond)
	}

	log.WarnContext(ctx, "post mutation retries exhausted", "post_id", postID)
	return nil, ErrActionConflict
}

// afterMutation 失效缓存并上报互动事件
func (s *engagementServiceImpl) afterMutation(ctx context.Context, postID string, userID uint64, action string) {
	go func() {
		_ = redis.DeleteKey(context.Background(), consts.PostEngagementKey+postID)
	}()

	if s.producer != nil {
		s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
			PostID:     postID,
			UserID:     userID,
			Action:     action,
			OccurredAt: time.Now(),
		})
	}
}

func buildRecordDTO(post *model.Post, userID uint64) *dto.EngagementRecordDTO {
	return &dto.EngagementRecordDTO{
		PostID:        post.ID,
		LikesCount:    len(post.Likes),
		CommentsCount: len(post.Comments),
		ViewsCount:    len(post.Views),
		Liked:         post.HasLiked(userID),
	}
}

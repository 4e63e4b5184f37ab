package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, userID uint64, postID string) (*dto.PostDTO, error)
	GetPostByUserId(ctx context.Context, userID uint64, page, pageSize int) (*dto.PostListDTO, error)
	// RunArchiveSweep 归档所有活跃帖子，返回归档数量。由定时任务触发
	RunArchiveSweep(ctx context.Context, now time.Time) (int64, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if userID == 0 {
		return nil, ErrCallerInvalid
	}

	now := time.Now()
	post := &model.Post{
		ID:        uuid.NewString(),
		AuthorID:  userID,
		Title:     postDTO.Title,
		Content:   postDTO.Content,
		Tags:      util.ExtractTags(postDTO.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	post.Stats.RankingResetAt = now

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return convertToPostDTO(post, userID), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, userID uint64, postID string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return convertToPostDTO(post, userID), nil
}

// GetPostByUserId 作者视角的列表，包含已归档帖子
func (s *postServiceImpl) GetPostByUserId(ctx context.Context, userID uint64, page, pageSize int) (*dto.PostListDTO, error) {
	posts, err := s.postRepo.GetPostsByAuthor(ctx, userID, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > pageSize
	if hasMore {
		posts = posts[:pageSize]
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, convertToPostDTO(p, userID))
	}
	return &dto.PostListDTO{List: list, HasMore: hasMore}, nil
}

func (s *postServiceImpl) RunArchiveSweep(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.postRepo.ArchiveActivePosts(ctx, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.InfoContext(ctx, "archived active posts", "count", count)
	}
	return count, nil
}

func convertToPostDTO(post *model.Post, userID uint64) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)

	item.LikesCount = len(post.Likes)
	item.CommentsCount = len(post.Comments)
	item.ViewsCount = len(post.Views)
	item.Liked = post.HasLiked(userID)
	item.CreatedAt = post.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = post.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}

package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/repository"
	"context"
	"sort"
	"time"
)

const (
	// 评论权重高于点赞
	commentScoreWeight = 2.0
	// 新帖年龄下限（小时），避免分母趋零把分数放飞
	minAgeHours = 0.1
)

// FeedScore 信息流衰减分：互动加权和除以帖子年龄。
// 只在读取时计算，不落库
func FeedScore(post *model.Post, now time.Time) float64 {
	ageHours := now.Sub(post.CreatedAt).Hours()
	if ageHours < minAgeHours {
		ageHours = minAgeHours
	}

	// 用权威集合长度，不用计数缓存
	weighted := float64(len(post.Likes)) + commentScoreWeight*float64(len(post.Comments))
	return weighted / ageHours
}

// RankFeed 对一批帖子按衰减分降序排列，过滤已归档帖子。
// 稳定排序：同分保持输入顺序，保证相同输入产出相同结果
func RankFeed(posts []*model.Post, now time.Time) []*model.Post {
	eligible := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if !p.IsArchived {
			eligible = append(eligible, p)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return FeedScore(eligible[i], now) > FeedScore(eligible[j], now)
	})
	return eligible
}

// RankedPost 榜单排名结果
type RankedPost struct {
	Post *model.Post
	Rank int
}

// RankLeaderboard 累计点赞数榜单，不做时间衰减。
// tag 非空时先按标签过滤，limit 截断后赋 0 起始的密集名次
func RankLeaderboard(posts []*model.Post, limit int, tag string) []RankedPost {
	filtered := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return len(filtered[i].Likes) > len(filtered[j].Likes)
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	ranked := make([]RankedPost, 0, len(filtered))
	for i, p := range filtered {
		ranked = append(ranked, RankedPost{Post: p, Rank: i})
	}
	return ranked
}

type FeedService interface {
	GetFeed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	GetLeaderboard(ctx context.Context, limit int, tag string) ([]*dto.LeaderboardEntryDTO, error)
}

type feedServiceImpl struct {
	postRepo  repository.PostRepo
	batchSize int
}

func NewFeedService(postRepo repository.PostRepo, batchSize int) FeedService {
	return &feedServiceImpl{
		postRepo:  postRepo,
		batchSize: batchSize,
	}
}

// GetFeed 取一批活跃帖子快照后排序，容忍计算期间的新增互动
func (s *feedServiceImpl) GetFeed(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetActivePosts(ctx, s.batchSize)
	if err != nil {
		return nil, err
	}

	ranked := RankFeed(posts, time.Now())

	res := make([]*dto.PostDTO, 0, len(ranked))
	for _, p := range ranked {
		res = append(res, convertToPostDTO(p, userID))
	}
	return res, nil
}

func (s *feedServiceImpl) GetLeaderboard(ctx context.Context, limit int, tag string) ([]*dto.LeaderboardEntryDTO, error) {
	posts, err := s.postRepo.GetActivePosts(ctx, s.batchSize)
	if err != nil {
		return nil, err
	}

	ranked := RankLeaderboard(posts, limit, tag)

	res := make([]*dto.LeaderboardEntryDTO, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, &dto.LeaderboardEntryDTO{
			Rank:       r.Rank,
			PostID:     r.Post.ID,
			Title:      r.Post.Title,
			AuthorID:   r.Post.AuthorID,
			LikesCount: len(r.Post.Likes),
		})
	}
	return res, nil
}

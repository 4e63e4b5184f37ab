package model

import (
	"strings"
	"time"
)

// Post 帖子聚合根，互动数据（点赞/浏览/评论）全部内嵌在文档中，
// 读写都是整文档的 read-modify-write
type Post struct {
	ID         string         `bson:"_id" json:"id"`
	AuthorID   uint64         `bson:"author_id" json:"authorId"`
	Title      string         `bson:"title" json:"title"`
	Content    string         `bson:"content" json:"content"`
	Tags       []string       `bson:"tags" json:"tags"`
	IsArchived bool           `bson:"is_archived" json:"isArchived"`
	Likes      []LikeEntry    `bson:"likes" json:"likes"`
	Views      []ViewEntry    `bson:"views" json:"views"`
	Comments   []CommentEntry `bson:"comments" json:"comments"`
	Stats      RankingStats   `bson:"ranking_stats" json:"rankingStats"`
	Version    int64          `bson:"version" json:"-"` // 乐观锁版本号
	CreatedAt  time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updatedAt"`
}

type LikeEntry struct {
	UserID  uint64    `bson:"user_id" json:"userId"`
	LikedAt time.Time `bson:"liked_at" json:"likedAt"`
}

type ViewEntry struct {
	UserID   uint64    `bson:"user_id" json:"userId"`
	ViewedAt time.Time `bson:"viewed_at" json:"viewedAt"`
}

type CommentEntry struct {
	UserID   uint64    `bson:"user_id" json:"userId"`
	Content  string    `bson:"content" json:"content"`
	PostedAt time.Time `bson:"posted_at" json:"postedAt"`
}

// RankingStats 聚合计数缓存，随时可以从 Likes/Views/Comments 重新推导，
// 不作为唯一数据来源
type RankingStats struct {
	LikesCount     int       `bson:"likes_count" json:"likesCount"`
	CommentsCount  int       `bson:"comments_count" json:"commentsCount"`
	ViewsCount     int       `bson:"views_count" json:"viewsCount"`
	RankingResetAt time.Time `bson:"ranking_reset_at" json:"rankingResetAt"`
}

func (Post) CollectionName() string {
	return "posts"
}

// ToggleLike 点赞/取消点赞，按 userID 去重。
// 每次调用先清掉 userID 为 0 的脏数据，再保证该用户至多一条点赞记录。
// 返回 true 表示本次为点赞，false 表示取消点赞。
func (p *Post) ToggleLike(userID uint64, now time.Time) bool {
	cleaned := p.Likes[:0]
	found := false
	for _, e := range p.Likes {
		if e.UserID == 0 {
			continue
		}
		if e.UserID == userID {
			found = true
			continue
		}
		cleaned = append(cleaned, e)
	}
	p.Likes = cleaned

	if found {
		return false
	}
	p.Likes = append(p.Likes, LikeEntry{UserID: userID, LikedAt: now})
	return true
}

// RecordView 记录浏览，同一用户只记一次，没有取消浏览。
// 返回 false 表示该用户已浏览过，本次为空操作。
func (p *Post) RecordView(userID uint64, now time.Time) bool {
	cleaned := p.Views[:0]
	found := false
	for _, e := range p.Views {
		if e.UserID == 0 {
			continue
		}
		if e.UserID == userID {
			found = true
		}
		cleaned = append(cleaned, e)
	}
	p.Views = cleaned

	if found {
		return false
	}
	p.Views = append(p.Views, ViewEntry{UserID: userID, ViewedAt: now})
	return true
}

// AddComment 追加评论，不去重，保持插入顺序
func (p *Post) AddComment(userID uint64, content string, now time.Time) {
	p.Comments = append(p.Comments, CommentEntry{
		UserID:   userID,
		Content:  strings.TrimSpace(content),
		PostedAt: now,
	})
}

// RefreshStats 用权威集合长度覆盖计数缓存，保存前调用，避免增量更新漂移
func (p *Post) RefreshStats() {
	p.Stats.LikesCount = len(p.Likes)
	p.Stats.CommentsCount = len(p.Comments)
	p.Stats.ViewsCount = len(p.Views)
}

// HasLiked 当前用户是否已点赞
func (p *Post) HasLiked(userID uint64) bool {
	for _, e := range p.Likes {
		if e.UserID == userID {
			return true
		}
	}
	return false
}

// HasTag 是否带有指定标签
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

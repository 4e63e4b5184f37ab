package dto

// EngagementRecordDTO 互动操作后的最新计数快照
type EngagementRecordDTO struct {
	PostID        string `json:"postId"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	ViewsCount    int    `json:"viewsCount"`
	Liked         bool   `json:"liked"`
}

// EngagementStateDTO 帖子详情页的互动概览
type EngagementStateDTO struct {
	PostID        string `json:"postId"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	ViewsCount    int    `json:"viewsCount"`
	Liked         bool   `json:"liked"`
}

// CommentCreateDTO 发表评论请求体
type CommentCreateDTO struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

type CommentDTO struct {
	UserID   uint64 `json:"userId"`
	Content  string `json:"content"`
	PostedAt string `json:"postedAt"`
}

// LeaderboardEntryDTO 榜单条目，Rank 从 0 开始密集排列
type LeaderboardEntryDTO struct {
	Rank       int    `json:"rank"`
	PostID     string `json:"postId"`
	Title      string `json:"title"`
	AuthorID   uint64 `json:"authorId"`
	LikesCount int    `json:"likesCount"`
}

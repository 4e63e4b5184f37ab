package dto

// PostBaseDTO 创建帖子请求体
type PostBaseDTO struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required,max=5000"`
}

type PostDTO struct {
	ID            string   `json:"id"`
	AuthorID      uint64   `json:"authorId"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	IsArchived    bool     `json:"isArchived"`
	LikesCount    int      `json:"likesCount"`
	CommentsCount int      `json:"commentsCount"`
	ViewsCount    int      `json:"viewsCount"`
	Liked         bool     `json:"liked"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// PostListDTO 列表返回，带翻页标记
type PostListDTO struct {
	List    []*PostDTO `json:"list"`
	HasMore bool       `json:"hasMore"`
}

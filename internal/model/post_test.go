package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost() *Post {
	return &Post{
		ID:        "post-1",
		AuthorID:  1,
		Title:     "Test Post",
		Content:   "Content",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToggleLike_Involution(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	added := p.ToggleLike(42, now)
	assert.True(t, added)
	assert.Len(t, p.Likes, 1)
	assert.True(t, p.HasLiked(42))

	added = p.ToggleLike(42, now)
	assert.False(t, added)
	assert.Empty(t, p.Likes)
	assert.False(t, p.HasLiked(42))
}

func TestToggleLike_CleansCorruptedEntries(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	// 模拟存储层注入的脏数据：重复点赞 + 空 userID
	p.Likes = []LikeEntry{
		{UserID: 7, LikedAt: now},
		{UserID: 0, LikedAt: now},
		{UserID: 7, LikedAt: now},
		{UserID: 9, LikedAt: now},
	}

	// 第三方用户的 toggle 也要触发清理
	added := p.ToggleLike(100, now)
	require.True(t, added)

	var sevens int
	for _, e := range p.Likes {
		assert.NotZero(t, e.UserID)
		if e.UserID == 7 {
			sevens++
		}
	}
	assert.Equal(t, 1, sevens)
	assert.True(t, p.HasLiked(9))
	assert.True(t, p.HasLiked(100))
}

func TestToggleLike_DuplicateOwnEntries(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	p.Likes = []LikeEntry{
		{UserID: 7, LikedAt: now},
		{UserID: 7, LikedAt: now},
	}

	// 本人 toggle：重复记录一并移除，结果是取消点赞
	added := p.ToggleLike(7, now)
	assert.False(t, added)
	assert.False(t, p.HasLiked(7))
}

func TestRecordView_Idempotent(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	recorded := p.RecordView(42, now)
	assert.True(t, recorded)
	recorded = p.RecordView(42, now)
	assert.False(t, recorded)
	assert.Len(t, p.Views, 1)

	recorded = p.RecordView(43, now)
	assert.True(t, recorded)
	assert.Len(t, p.Views, 2)

	p.RefreshStats()
	assert.Equal(t, 2, p.Stats.ViewsCount)

	recorded = p.RecordView(43, now)
	assert.False(t, recorded)
	p.RefreshStats()
	assert.Len(t, p.Views, 2)
	assert.Equal(t, 2, p.Stats.ViewsCount)
}

func TestAddComment_PreservesOrder(t *testing.T) {
	p := newTestPost()
	base := time.Now()

	p.AddComment(1, "first", base)
	p.AddComment(2, "  second  ", base.Add(time.Minute))
	p.AddComment(1, "third", base.Add(2*time.Minute))

	require.Len(t, p.Comments, 3)
	assert.Equal(t, "first", p.Comments[0].Content)
	assert.Equal(t, "second", p.Comments[1].Content)
	assert.Equal(t, "third", p.Comments[2].Content)

	p.RefreshStats()
	assert.Equal(t, 3, p.Stats.CommentsCount)
}

func TestRefreshStats_OverwritesDriftedCounters(t *testing.T) {
	p := newTestPost()
	now := time.Now()

	p.ToggleLike(1, now)
	p.ToggleLike(2, now)
	p.AddComment(1, "hi", now)
	p.RecordView(1, now)

	// 人为制造漂移
	p.Stats.LikesCount = 99
	p.Stats.ViewsCount = -1

	p.RefreshStats()
	assert.Equal(t, 2, p.Stats.LikesCount)
	assert.Equal(t, 1, p.Stats.CommentsCount)
	assert.Equal(t, 1, p.Stats.ViewsCount)
}

package service

import (
	"Ripple/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo *fakePostRepo) *model.Post {
	t.Helper()
	now := time.Now().Add(-2 * time.Hour)
	post := &model.Post{
		ID:        "post-1",
		AuthorID:  1,
		Title:     "Test Post",
		Content:   "Content #golang",
		Tags:      []string{"golang"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreatePost(context.Background(), post))
	return post
}

func TestEngagement_ToggleLike(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)
	ctx := context.Background()

	record, err := svc.ToggleLike(ctx, 42, "post-1")
	require.NoError(t, err)
	assert.True(t, record.Liked)
	assert.Equal(t, 1, record.LikesCount)

	// 再次调用取消点赞，回到初始状态
	record, err = svc.ToggleLike(ctx, 42, "post-1")
	require.NoError(t, err)
	assert.False(t, record.Liked)
	assert.Equal(t, 0, record.LikesCount)

	stored, err := repo.GetPost(ctx, "post-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)
	assert.Equal(t, 0, stored.Stats.LikesCount)
}

func TestEngagement_ToggleLike_InvalidCaller(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)

	_, err := svc.ToggleLike(context.Background(), 0, "post-1")
	assert.ErrorIs(t, err, ErrCallerInvalid)
}

func TestEngagement_ToggleLike_PostNotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewEngagementService(repo, nil)

	_, err := svc.ToggleLike(context.Background(), 42, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestEngagement_RecordView_Idempotent(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)
	ctx := context.Background()

	record, err := svc.RecordView(ctx, 7, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, record.ViewsCount)

	record, err = svc.RecordView(ctx, 8, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 2, record.ViewsCount)

	// 同一用户重复浏览不增加
	record, err = svc.RecordView(ctx, 8, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 2, record.ViewsCount)

	stored, err := repo.GetPost(ctx, "post-1")
	require.NoError(t, err)
	assert.Len(t, stored.Views, 2)
	assert.Equal(t, 2, stored.Stats.ViewsCount)
}

func TestEngagement_AddComment(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)
	ctx := context.Background()

	record, err := svc.AddComment(ctx, 7, "post-1", "first")
	require.NoError(t, err)
	assert.Equal(t, 1, record.CommentsCount)

	_, err = svc.AddComment(ctx, 7, "post-1", "  second  ")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, 8, "post-1", "third")
	require.NoError(t, err)

	comments, err := svc.GetComments(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestEngagement_AddComment_EmptyText(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)

	_, err := svc.AddComment(context.Background(), 7, "post-1", "   ")
	assert.ErrorIs(t, err, ErrCommentEmpty)

	stored, _ := repo.GetPost(context.Background(), "post-1")
	assert.Empty(t, stored.Comments)
}

func TestEngagement_ConflictRetry(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	repo.forcedConflicts = 2
	svc := NewEngagementService(repo, nil)

	record, err := svc.ToggleLike(context.Background(), 42, "post-1")
	require.NoError(t, err)
	assert.True(t, record.Liked)
	assert.Equal(t, 3, repo.saveCalls)
}

func TestEngagement_ConflictRetriesExhausted(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	repo.forcedConflicts = maxSaveRetries
	svc := NewEngagementService(repo, nil)

	_, err := svc.ToggleLike(context.Background(), 42, "post-1")
	assert.ErrorIs(t, err, ErrActionConflict)

	// 重试耗尽时不能留下半写状态
	stored, _ := repo.GetPost(context.Background(), "post-1")
	assert.Empty(t, stored.Likes)
}

func TestEngagement_CorruptedLikesCleanedOnToggle(t *testing.T) {
	repo := newFakePostRepo()
	post := seedPost(t, repo)
	ctx := context.Background()

	// 直接往存储里注入脏数据
	repo.mu.Lock()
	stored := repo.posts[post.ID]
	now := time.Now()
	stored.Likes = []model.LikeEntry{
		{UserID: 5, LikedAt: now},
		{UserID: 5, LikedAt: now},
		{UserID: 0, LikedAt: now},
	}
	repo.mu.Unlock()

	svc := NewEngagementService(repo, nil)
	record, err := svc.ToggleLike(ctx, 42, post.ID)
	require.NoError(t, err)

	// 42 点赞 + 5 去重后剩一条
	assert.Equal(t, 2, record.LikesCount)

	after, _ := repo.GetPost(ctx, post.ID)
	var fives int
	for _, e := range after.Likes {
		assert.NotZero(t, e.UserID)
		if e.UserID == 5 {
			fives++
		}
	}
	assert.Equal(t, 1, fives)
}

func TestEngagement_GetEngagementState(t *testing.T) {
	repo := newFakePostRepo()
	seedPost(t, repo)
	svc := NewEngagementService(repo, nil)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, 42, "post-1")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, 7, "post-1", "hello")
	require.NoError(t, err)

	state, err := svc.GetEngagementState(ctx, 42, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.LikesCount)
	assert.Equal(t, 1, state.CommentsCount)
	assert.True(t, state.Liked)

	state, err = svc.GetEngagementState(ctx, 0, "post-1")
	require.NoError(t, err)
	assert.False(t, state.Liked)
}

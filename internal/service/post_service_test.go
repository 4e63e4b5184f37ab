package service

import (
	"Ripple/internal/api/dto"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, &dto.PostBaseDTO{
		Title:   "hello",
		Content: "learning #golang today",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.False(t, post.IsArchived)
	assert.Equal(t, []string{"golang"}, post.Tags)

	stored, err := repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.AuthorID)
}

func TestPostService_CreatePost_InvalidCaller(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	_, err := svc.CreatePost(context.Background(), 0, &dto.PostBaseDTO{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrCallerInvalid)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	_, err := svc.GetPost(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_ArchiveSweep_Idempotent(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(ctx, 1, &dto.PostBaseDTO{Title: "t", Content: "c"})
		require.NoError(t, err)
	}

	count, err := svc.RunArchiveSweep(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// 二次执行没有活跃帖子可归档
	count, err = svc.RunArchiveSweep(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 归档后作者仍可见
	list, err := svc.GetPostByUserId(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.List, 3)
	for _, p := range list.List {
		assert.True(t, p.IsArchived)
	}
}

func TestPostService_ArchivedExcludedFromFeed(t *testing.T) {
	repo := newFakePostRepo()
	postSvc := NewPostService(repo)
	feedSvc := NewFeedService(repo, 100)
	ctx := context.Background()

	_, err := postSvc.CreatePost(ctx, 1, &dto.PostBaseDTO{Title: "t", Content: "c"})
	require.NoError(t, err)

	feed, err := feedSvc.GetFeed(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 1)

	_, err = postSvc.RunArchiveSweep(ctx, time.Now())
	require.NoError(t, err)

	feed, err = feedSvc.GetFeed(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

package service

import (
	"Ripple/internal/model"
	"Ripple/internal/repository"
	"context"
	"sync"
	"time"
)

// fakePostRepo 内存版 PostRepo，模拟文档库的整文档读写与版本校验
type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*model.Post

	// forcedConflicts 前 N 次 SavePost 强制返回版本冲突
	forcedConflicts int
	saveCalls       int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.Post)}
}

func clonePost(p *model.Post) *model.Post {
	cp := *p
	cp.Likes = append([]model.LikeEntry(nil), p.Likes...)
	cp.Views = append([]model.ViewEntry(nil), p.Views...)
	cp.Comments = append([]model.CommentEntry(nil), p.Comments...)
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}

func (s *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = clonePost(post)
	return nil
}

func (s *fakePostRepo) GetPost(_ context.Context, id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(p), nil
}

func (s *fakePostRepo) SavePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveCalls++
	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		return repository.ErrVersionConflict
	}

	stored, ok := s.posts[post.ID]
	if !ok || stored.Version != post.Version {
		return repository.ErrVersionConflict
	}

	post.Version++
	post.UpdatedAt = time.Now()
	s.posts[post.ID] = clonePost(post)
	return nil
}

func (s *fakePostRepo) GetActivePosts(_ context.Context, limit int) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*model.Post
	for _, p := range s.posts {
		if !p.IsArchived && len(res) < limit {
			res = append(res, clonePost(p))
		}
	}
	return res, nil
}

func (s *fakePostRepo) GetPostsByAuthor(_ context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*model.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			res = append(res, clonePost(p))
		}
	}
	if offset >= len(res) {
		return nil, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *fakePostRepo) ArchiveActivePosts(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, p := range s.posts {
		if !p.IsArchived {
			p.IsArchived = true
			p.UpdatedAt = now
			p.Version++
			count++
		}
	}
	return count, nil
}

package job

import (
	"Ripple/internal/api/dto"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePostService struct {
	sweepCalls int
	sweepCount int64
	sweepErr   error
}

func (s *fakePostService) CreatePost(context.Context, uint64, *dto.PostBaseDTO) (*dto.PostDTO, error) {
	return nil, nil
}

func (s *fakePostService) GetPost(context.Context, uint64, string) (*dto.PostDTO, error) {
	return nil, nil
}

func (s *fakePostService) GetPostByUserId(context.Context, uint64, int, int) (*dto.PostListDTO, error) {
	return nil, nil
}

func (s *fakePostService) RunArchiveSweep(context.Context, time.Time) (int64, error) {
	s.sweepCalls++
	return s.sweepCount, s.sweepErr
}

func TestArchiveJob_Run(t *testing.T) {
	svc := &fakePostService{sweepCount: 5}
	NewArchiveJob(svc).Run()
	assert.Equal(t, 1, svc.sweepCalls)
}

func TestArchiveJob_Run_SwallowsError(t *testing.T) {
	// 失败不 panic，等下一个调度周期
	svc := &fakePostService{sweepErr: errors.New("mongo down")}
	job := NewArchiveJob(svc)
	assert.NotPanics(t, func() { job.Run() })
	assert.Equal(t, 1, svc.sweepCalls)
}

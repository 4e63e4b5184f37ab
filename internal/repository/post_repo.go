package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrVersionConflict 保存时版本号不匹配，说明有并发写入
var ErrVersionConflict = errors.New("post version conflict")

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	// SavePost 整文档替换，以读取时的 Version 作为 CAS 条件，
	// 版本不匹配返回 ErrVersionConflict
	SavePost(ctx context.Context, post *model.Post) error
	GetActivePosts(ctx context.Context, limit int) ([]*model.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error)
	// ArchiveActivePosts 将所有活跃帖子置为已归档，返回本次归档数量
	ArchiveActivePosts(ctx context.Context, now time.Time) (int64, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection(model.Post{}.CollectionName()),
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	_, err := s.col.InsertOne(ctx, post)
	return err
}

func (s *postRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) SavePost(ctx context.Context, post *model.Post) error {
	filter := bson.M{
		"_id":     post.ID,
		"version": post.Version,
	}

	post.Version++
	post.UpdatedAt = time.Now()

	res, err := s.col.ReplaceOne(ctx, filter, post)
	if err != nil {
		post.Version--
		return err
	}
	if res.MatchedCount == 0 {
		post.Version--
		return ErrVersionConflict
	}
	return nil
}

func (s *postRepoImpl) GetActivePosts(ctx context.Context, limit int) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{"is_archived": false}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPostsByAuthor 作者视角的列表，包含已归档帖子
func (s *postRepoImpl) GetPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := s.col.Find(ctx, bson.M{"author_id": authorID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *postRepoImpl) ArchiveActivePosts(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.col.UpdateMany(ctx,
		bson.M{"is_archived": false},
		bson.M{
			"$set": bson.M{"is_archived": true, "updated_at": now},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

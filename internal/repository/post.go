package repository

import (
	"context"
	"errors"

	"devlink/internal/cache"
	"devlink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts, reactions and
// comments.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error

	GetReaction(ctx context.Context, postID, userID uint) (*models.PostReaction, error)
	SetReaction(ctx context.Context, postID, authorID, userID uint, kind string) error
	RemoveReaction(ctx context.Context, postID, authorID, userID uint, kind string) error

	AddComment(ctx context.Context, comment *models.Comment, authorID uint) error
	GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, authorID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostListKey)
	cache.Invalidate(ctx, cache.UserPostsKey(post.UserID))
	return nil
}

// GetByID loads the post with its author, comments and reactions.
// Returns (nil, nil) when no such post exists.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := r.postQuery(ctx).First(&post, id).Error; err != nil {
			return err
		}
		post.SplitReactions()
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	// On a cache hit the likes and dislikes arrive already split, since the
	// raw reaction rows are not part of the JSON representation.
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.PostListKey, &posts, cache.ListTTL, func() error {
		if err := r.postQuery(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
			return err
		}
		for _, p := range posts {
			p.SplitReactions()
		}
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.UserPostsKey(userID), &posts, cache.ListTTL, func() error {
		if err := r.postQuery(ctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&posts).Error; err != nil {
			return err
		}
		for _, p := range posts {
			p.SplitReactions()
		}
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) postQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Reactions").
		// Comments keep insertion order, oldest first.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.User")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}
		cache.InvalidatePost(ctx, id, post.UserID)
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetReaction returns (nil, nil) when the user holds no reaction on the post.
func (r *postRepository) GetReaction(ctx context.Context, postID, userID uint) (*models.PostReaction, error) {
	var reaction models.PostReaction
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

// SetReaction upserts the user's reaction on the post. The unique index on
// (post_id, user_id) turns a concurrent duplicate into an update of the same
// row, so a user can never hold a like and a dislike at once. authorID is the
// post author's id, needed to drop their cached feed.
func (r *postRepository) SetReaction(ctx context.Context, postID, authorID, userID uint, kind string) error {
	reaction := models.PostReaction{PostID: postID, UserID: userID, Kind: kind}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"kind": kind}),
	}).Create(&reaction).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID, authorID)
	return nil
}

// RemoveReaction deletes the user's reaction of the given kind. Removing a
// reaction that is absent or of the other kind is a no-op.
func (r *postRepository) RemoveReaction(ctx context.Context, postID, authorID, userID uint, kind string) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, kind).
		Delete(&models.PostReaction{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID, authorID)
	return nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment, authorID uint) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID, authorID)
	return nil
}

// GetComment returns (nil, nil) when the comment does not exist on the post.
func (r *postRepository) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID, authorID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&models.Comment{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID, authorID)
	return nil
}

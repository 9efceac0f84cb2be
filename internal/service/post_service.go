package service

import (
	"context"

	"devlink/internal/models"
	"devlink/internal/repository"
)

// PostService handles the post feed, reactions and comments.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  uint
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create stores a new post with an avatar snapshot of its author.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:  in.UserID,
		Heading: in.Heading,
		Content: in.Content,
		Avatar:  user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	post.User = *user
	post.Comments = []models.Comment{}
	post.SplitReactions()
	return post, nil
}

// ListAll returns every post, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// ListByUser returns one author's posts, newest first.
func (s *PostService) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// Like records the caller's like. A dislike held by the caller is cleared in
// the same store operation, so DISLIKED goes to LIKED in one call.
func (s *PostService) Like(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.reactablePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.postRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if reaction != nil && reaction.Kind == models.ReactionLike {
		return nil, models.NewConflictError("Can't like the same post twice")
	}

	if err := s.postRepo.SetReaction(ctx, postID, post.UserID, userID, models.ReactionLike); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// RemoveLike withdraws the caller's like.
func (s *PostService) RemoveLike(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.reactablePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.postRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if reaction == nil || reaction.Kind != models.ReactionLike {
		return nil, models.NewConflictError("Can't remove a like from a post which is not liked yet")
	}

	if err := s.postRepo.RemoveReaction(ctx, postID, post.UserID, userID, models.ReactionLike); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// Dislike records the caller's dislike, clearing any like in the same store
// operation.
func (s *PostService) Dislike(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.reactablePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.postRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if reaction != nil && reaction.Kind == models.ReactionDislike {
		return nil, models.NewConflictError("Can't dislike the same post twice")
	}

	if err := s.postRepo.SetReaction(ctx, postID, post.UserID, userID, models.ReactionDislike); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// RemoveDislike withdraws the caller's dislike.
func (s *PostService) RemoveDislike(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.reactablePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.postRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if reaction == nil || reaction.Kind != models.ReactionDislike {
		return nil, models.NewConflictError("Can't remove a dislike from a post which is not disliked yet")
	}

	if err := s.postRepo.RemoveReaction(ctx, postID, post.UserID, userID, models.ReactionDislike); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// AddComment appends a comment and returns the post with the fresh comment
// list.
func (s *PostService) AddComment(ctx context.Context, postID, userID uint, text string) (*models.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
	}
	if err := s.postRepo.AddComment(ctx, comment, post.UserID); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// RemoveComment deletes a comment. Only the comment's author or the post's
// author may remove it; a comment that is already gone is a no-op.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID, userID uint) (*models.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return post, nil
	}
	if comment.UserID != userID && post.UserID != userID {
		return nil, models.NewForbiddenError("Can't remove another user's comment")
	}

	if err := s.postRepo.DeleteComment(ctx, postID, commentID, post.UserID); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, postID)
}

// Delete removes a post with its reactions and comments. Author only.
func (s *PostService) Delete(ctx context.Context, postID, userID uint) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("Can't delete another user's post")
	}
	return s.postRepo.Delete(ctx, postID)
}

func (s *PostService) getPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewValidationError("No such post exist")
	}
	return post, nil
}

// reactablePost loads the post and rejects the author reacting to their own
// post.
func (s *PostService) reactablePost(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, models.NewForbiddenError("Author can't like/dislike it's own post")
	}
	return post, nil
}

// mustGet reloads a post that is known to exist after a successful write.
func (s *PostService) mustGet(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewValidationError("No such post exist")
	}
	return post, nil
}

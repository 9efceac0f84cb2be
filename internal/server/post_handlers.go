package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// noSuchPost is the response for an unknown or unparseable post id.
func noSuchPost() *models.AppError {
	return models.NewValidationError("No such post exist")
}

// GetAllPosts handles GET /post/all.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListAll(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPostsByUser handles GET /post/user/:user_id.
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id", noSuchPost())
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetMyPosts handles GET /post/me/all.
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListByUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /post/create.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	var msgs []string
	if req.Heading == "" {
		msgs = append(msgs, "Heading is required")
	}
	if req.Content == "" {
		msgs = append(msgs, "Content is required")
	}
	if len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	post, err := s.postService.Create(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /post/delete/:post_id. Author only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), postID, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post deleted successfully"})
}

// LikePost handles GET /post/like/:post_id.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	post, err := s.postService.Like(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// RemoveLike handles DELETE /post/remove/like/:post_id.
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	post, err := s.postService.RemoveLike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DislikePost handles GET /post/dislike/:post_id.
func (s *Server) DislikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	post, err := s.postService.Dislike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// RemoveDislike handles DELETE /post/remove/dislike/:post_id.
func (s *Server) RemoveDislike(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	post, err := s.postService.RemoveDislike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// CreateComment handles POST /post/comment/:post_id.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if req.Comment == "" {
		return models.RespondWithValidationErrors(c, []string{"Comment field is required"})
	}

	post, err := s.postService.AddComment(c.UserContext(), postID, currentUserID(c), req.Comment)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// RemoveComment handles DELETE /post/remove/comment/:post_id/:comment_id.
// Removing a comment that is already gone returns the unchanged post.
func (s *Server) RemoveComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id", noSuchPost())
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "comment_id", noSuchPost())
	if err != nil {
		return nil
	}

	post, err := s.postService.RemoveComment(c.UserContext(), postID, commentID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

package service

import (
	"context"

	"devlink/internal/models"
)

// Function-field stubs for the repository interfaces. Unset fields return
// zero values so each test wires only what it exercises.

type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsername != nil {
		return s.getByUsername(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.create != nil {
		return s.create(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.update != nil {
		return s.update(ctx, user)
	}
	return nil
}

type stubPostRepo struct {
	create         func(ctx context.Context, post *models.Post) error
	getByID        func(ctx context.Context, id uint) (*models.Post, error)
	list           func(ctx context.Context) ([]*models.Post, error)
	listByUser     func(ctx context.Context, userID uint) ([]*models.Post, error)
	delete         func(ctx context.Context, id uint) error
	getReaction    func(ctx context.Context, postID, userID uint) (*models.PostReaction, error)
	setReaction    func(ctx context.Context, postID, authorID, userID uint, kind string) error
	removeReaction func(ctx context.Context, postID, authorID, userID uint, kind string) error
	addComment     func(ctx context.Context, comment *models.Comment, authorID uint) error
	getComment     func(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	deleteComment  func(ctx context.Context, postID, commentID, authorID uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.create != nil {
		return s.create(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, nil
}

func (s *stubPostRepo) List(ctx context.Context) ([]*models.Post, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s *stubPostRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	if s.listByUser != nil {
		return s.listByUser(ctx, userID)
	}
	return nil, nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return nil
}

func (s *stubPostRepo) GetReaction(ctx context.Context, postID, userID uint) (*models.PostReaction, error) {
	if s.getReaction != nil {
		return s.getReaction(ctx, postID, userID)
	}
	return nil, nil
}

func (s *stubPostRepo) SetReaction(ctx context.Context, postID, authorID, userID uint, kind string) error {
	if s.setReaction != nil {
		return s.setReaction(ctx, postID, authorID, userID, kind)
	}
	return nil
}

func (s *stubPostRepo) RemoveReaction(ctx context.Context, postID, authorID, userID uint, kind string) error {
	if s.removeReaction != nil {
		return s.removeReaction(ctx, postID, authorID, userID, kind)
	}
	return nil
}

func (s *stubPostRepo) AddComment(ctx context.Context, comment *models.Comment, authorID uint) error {
	if s.addComment != nil {
		return s.addComment(ctx, comment, authorID)
	}
	return nil
}

func (s *stubPostRepo) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	if s.getComment != nil {
		return s.getComment(ctx, postID, commentID)
	}
	return nil, nil
}

func (s *stubPostRepo) DeleteComment(ctx context.Context, postID, commentID, authorID uint) error {
	if s.deleteComment != nil {
		return s.deleteComment(ctx, postID, commentID, authorID)
	}
	return nil
}

type stubProfileRepo struct {
	getByUserID      func(ctx context.Context, userID uint) (*models.Profile, error)
	list             func(ctx context.Context) ([]models.Profile, error)
	create           func(ctx context.Context, profile *models.Profile) error
	save             func(ctx context.Context, profile *models.Profile) error
	deleteFn         func(ctx context.Context, userID uint) error
	getExperience    func(ctx context.Context, profileID, expID uint) (*models.Experience, error)
	createExperience func(ctx context.Context, exp *models.Experience) error
	saveExperience   func(ctx context.Context, exp *models.Experience) error
	deleteExperience func(ctx context.Context, profileID, expID uint) error
	getEducation     func(ctx context.Context, profileID, eduID uint) (*models.Education, error)
	createEducation  func(ctx context.Context, edu *models.Education) error
	saveEducation    func(ctx context.Context, edu *models.Education) error
	deleteEducation  func(ctx context.Context, profileID, eduID uint) error
}

func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	if s.getByUserID != nil {
		return s.getByUserID(ctx, userID)
	}
	return nil, nil
}

func (s *stubProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	if s.create != nil {
		return s.create(ctx, profile)
	}
	return nil
}

func (s *stubProfileRepo) Save(ctx context.Context, profile *models.Profile) error {
	if s.save != nil {
		return s.save(ctx, profile)
	}
	return nil
}

func (s *stubProfileRepo) Delete(ctx context.Context, userID uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID)
	}
	return nil
}

func (s *stubProfileRepo) GetExperience(ctx context.Context, profileID, expID uint) (*models.Experience, error) {
	if s.getExperience != nil {
		return s.getExperience(ctx, profileID, expID)
	}
	return nil, nil
}

func (s *stubProfileRepo) CreateExperience(ctx context.Context, exp *models.Experience) error {
	if s.createExperience != nil {
		return s.createExperience(ctx, exp)
	}
	return nil
}

func (s *stubProfileRepo) SaveExperience(ctx context.Context, exp *models.Experience) error {
	if s.saveExperience != nil {
		return s.saveExperience(ctx, exp)
	}
	return nil
}

func (s *stubProfileRepo) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	if s.deleteExperience != nil {
		return s.deleteExperience(ctx, profileID, expID)
	}
	return nil
}

func (s *stubProfileRepo) GetEducation(ctx context.Context, profileID, eduID uint) (*models.Education, error) {
	if s.getEducation != nil {
		return s.getEducation(ctx, profileID, eduID)
	}
	return nil, nil
}

func (s *stubProfileRepo) CreateEducation(ctx context.Context, edu *models.Education) error {
	if s.createEducation != nil {
		return s.createEducation(ctx, edu)
	}
	return nil
}

func (s *stubProfileRepo) SaveEducation(ctx context.Context, edu *models.Education) error {
	if s.saveEducation != nil {
		return s.saveEducation(ctx, edu)
	}
	return nil
}

func (s *stubProfileRepo) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	if s.deleteEducation != nil {
		return s.deleteEducation(ctx, profileID, eduID)
	}
	return nil
}

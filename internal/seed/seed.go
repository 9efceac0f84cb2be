// Package seed provides helpers to create development and test fixtures.
// Not intended for production databases.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data a seeding run produces.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	Password        string
}

// DefaultOptions returns the preset used by cmd/seed.
func DefaultOptions() Options {
	return Options{
		Users:           10,
		PostsPerUser:    3,
		CommentsPerPost: 2,
		Password:        "password123",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a hashed password and gravatar avatar.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(gofakeit.Email())
	user := &models.User{
		Username: gofakeit.Username(),
		Email:    email,
		Password: string(hash),
		Avatar:   service.GravatarURL(email),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a developer profile with a couple of experience and
// education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:    user.ID,
		Firstname: gofakeit.FirstName(),
		Lastname:  gofakeit.LastName(),
		Status:    gofakeit.JobTitle(),
		Skills:    []string{gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage(), "Git"},
		Company:   gofakeit.Company(),
		Website:   gofakeit.URL(),
		Location:  gofakeit.City(),
		Bio:       gofakeit.Sentence(12),
		Social: models.SocialLinks{
			Youtube:  "https://youtube.com/@" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
		LastUpdated: time.Now(),
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	from := time.Now().AddDate(-1-f.rand.Intn(5), 0, 0)
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        &from,
		Current:     true,
		Description: gofakeit.Sentence(10),
	}
	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}

	eduFrom := from.AddDate(-4, 0, 0)
	eduTo := from
	edu := &models.Education{
		ProfileID: profile.ID,
		School:    fmt.Sprintf("%s University", gofakeit.City()),
		Degree:    "BSc",
		Field:     "Computer Science",
		Place:     gofakeit.City(),
		From:      &eduFrom,
		To:        &eduTo,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreatePost persists a post with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Heading:   gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		Avatar:    user.Avatar,
		CreatedAt: time.Now().Add(-time.Duration(f.rand.Intn(90*24)) * time.Hour),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the post.
func (f *Factory) CreateComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(8),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReaction persists a reaction unless the user authored the post.
func (f *Factory) CreateReaction(post *models.Post, user *models.User, kind string) error {
	if post.UserID == user.ID {
		return nil
	}
	reaction := &models.PostReaction{PostID: post.ID, UserID: user.ID, Kind: kind}
	return f.db.Create(reaction).Error
}

// Run seeds a full development fixture set: users with profiles, posts,
// comments and a mix of likes and dislikes.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(opts.Password)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if _, err := f.CreateProfile(user); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			for j := 0; j < opts.CommentsPerPost; j++ {
				commenter := users[f.rand.Intn(len(users))]
				if _, err := f.CreateComment(post, commenter); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
			}
			reactor := users[f.rand.Intn(len(users))]
			kind := models.ReactionLike
			if f.rand.Intn(4) == 0 {
				kind = models.ReactionDislike
			}
			if err := f.CreateReaction(post, reactor, kind); err != nil {
				return fmt.Errorf("seed reaction: %w", err)
			}
		}
	}

	log.Printf("seeded %d users, %d posts", len(users), len(users)*opts.PostsPerUser)
	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Reaction kinds. A user holds at most one reaction per post, so a like and
// a dislike by the same user can never coexist.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Post is a feed entry written by a user.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Heading string `gorm:"not null" json:"heading"`
	Content string `gorm:"type:text;not null" json:"content"`
	// Avatar is a snapshot of the author's avatar at creation time.
	Avatar    string         `json:"avatar,omitempty"`
	Reactions []PostReaction `gorm:"foreignKey:PostID" json:"-"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	// Likes and Dislikes are the Reactions rows split by kind at load time.
	Likes     []PostReaction `gorm:"-" json:"likes"`
	Dislikes  []PostReaction `gorm:"-" json:"dislikes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SplitReactions populates Likes and Dislikes from the loaded Reactions rows.
func (p *Post) SplitReactions() {
	p.Likes = make([]PostReaction, 0, len(p.Reactions))
	p.Dislikes = make([]PostReaction, 0)
	for _, r := range p.Reactions {
		switch r.Kind {
		case ReactionLike:
			p.Likes = append(p.Likes, r)
		case ReactionDislike:
			p.Dislikes = append(p.Dislikes, r)
		}
	}
}

// PostReaction records a single user's like or dislike of a post.
// The unique index on (PostID, UserID) keeps the two sets disjoint and
// makes duplicate reactions impossible, even under concurrent requests.
type PostReaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	Kind      string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Comment is one entry of a post's ordered comment list. The primary key is
// the sub-identifier used to remove the comment.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"-"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Text      string         `gorm:"not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

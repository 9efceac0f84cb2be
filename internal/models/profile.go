package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the public developer profile attached to a user. Exactly one
// profile exists per user, enforced by the unique index on UserID.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID" json:"user"`
	Firstname      string       `gorm:"not null" json:"firstname"`
	Lastname       string       `gorm:"not null" json:"lastname"`
	Status         string       `gorm:"not null" json:"status"`
	Skills         []string     `gorm:"serializer:json;not null" json:"skills"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID" json:"education"`
	// LastUpdated is set explicitly by the service on every successful write.
	LastUpdated time.Time      `json:"lastUpdated"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SocialLinks is the social sub-record of a profile. It is rebuilt from the
// request on every profile upsert, so omitted links are cleared.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Experience is one work history entry. The primary key is the stable
// sub-identifier used to target the entry for update and delete.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is one education history entry, addressed by its primary key
// the same way experience entries are.
type Education struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProfileID uint       `gorm:"not null;index" json:"-"`
	School    string     `gorm:"not null" json:"school"`
	Degree    string     `gorm:"not null" json:"degree"`
	Field     string     `gorm:"not null" json:"field"`
	Place     string     `json:"place,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	Current   bool       `json:"current"`
}

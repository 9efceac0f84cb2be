package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	ProfileKeyPrefix   = "profile:user:%d"
	ProfileListKey     = "profiles:all"
	PostKeyPrefix      = "post:%d"
	PostListKey        = "posts:all"
	UserPostsKeyPrefix = "posts:user:%d"
)

const (
	UserTTL    = 5 * time.Minute
	ProfileTTL = 10 * time.Minute
	PostTTL    = 5 * time.Minute
	ListTTL    = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserPostsKey(userID uint) string {
	return fmt.Sprintf(UserPostsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateProfile drops the per-user profile entry along with the listing,
// which embeds every profile.
func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, ProfileListKey)
}

// InvalidatePost drops the post entry and both listings that contain it.
func InvalidatePost(ctx context.Context, postID, authorID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostListKey)
	Invalidate(ctx, UserPostsKey(authorID))
}

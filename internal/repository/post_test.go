package repository

import (
	"context"
	"regexp"
	"testing"

	"devlink/internal/cache"
	"devlink/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_GetReaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "post_id", "user_id", "kind"}).
			AddRow(1, 10, 2, models.ReactionLike)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_reactions" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(10, 2, 1).
			WillReturnRows(rows)

		reaction, err := repo.GetReaction(ctx, 10, 2)
		assert.NoError(t, err)
		assert.NotNil(t, reaction)
		assert.Equal(t, models.ReactionLike, reaction.Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_reactions" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(10, 3, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		reaction, err := repo.GetReaction(ctx, 10, 3)
		assert.NoError(t, err)
		assert.Nil(t, reaction)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_SetReaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// The write must be an upsert keyed on (post_id, user_id) so a held
	// dislike flips to a like in the same statement.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "post_reactions" .* ON CONFLICT \("post_id","user_id"\) DO UPDATE SET "kind"=`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.SetReaction(ctx, 10, 1, 2, models.ReactionLike)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ReactionWriteDropsAuthorFeed(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedKeys := func() {
		require.NoError(t, cache.SetJSON(ctx, cache.PostKey(10), models.Post{ID: 10}, cache.PostTTL))
		require.NoError(t, cache.SetJSON(ctx, cache.PostListKey, []models.Post{{ID: 10}}, cache.ListTTL))
		require.NoError(t, cache.SetJSON(ctx, cache.UserPostsKey(1), []models.Post{{ID: 10}}, cache.ListTTL))
	}
	assertDropped := func() {
		t.Helper()
		assert.False(t, mr.Exists(cache.PostKey(10)))
		assert.False(t, mr.Exists(cache.PostListKey))
		// The author's cached feed must go stale too, or /post/user and
		// /post/me/all keep serving old reaction counts.
		assert.False(t, mr.Exists(cache.UserPostsKey(1)))
	}

	seedKeys()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "post_reactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	require.NoError(t, repo.SetReaction(ctx, 10, 1, 2, models.ReactionLike))
	assertDropped()

	seedKeys()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "post_reactions"`)).
		WithArgs(10, 2, models.ReactionLike).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.RemoveReaction(ctx, 10, 1, 2, models.ReactionLike))
	assertDropped()

	seedKeys()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()
	require.NoError(t, repo.AddComment(ctx, &models.Comment{PostID: 10, UserID: 2, Text: "Nice"}, 1))
	assertDropped()

	seedKeys()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=`)).
		WithArgs(sqlmock.AnyArg(), 3, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.DeleteComment(ctx, 10, 3, 1))
	assertDropped()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_RemoveReaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "post_reactions" WHERE post_id = $1 AND user_id = $2 AND kind = $3`)).
		WithArgs(10, 2, models.ReactionLike).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RemoveReaction(ctx, 10, 1, 2, models.ReactionLike)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{UserID: 2, Heading: "Hello", Content: "World"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_AddComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	comment := &models.Comment{PostID: 7, UserID: 2, Text: "Nice"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	err := repo.AddComment(ctx, comment, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE id = $1 AND post_id = $2`)).
		WithArgs(3, 7, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	comment, err := repo.GetComment(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Nil(t, comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DeleteComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// Comments carry deleted_at, so the delete is a soft delete update.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=`)).
		WithArgs(sqlmock.AnyArg(), 3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteComment(ctx, 7, 3, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID_CommentsOldestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "heading"}).AddRow(7, 1, "Hello"))
	// Comments load in insertion order, oldest first.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."post_id" = $1 AND "comments"."deleted_at" IS NULL ORDER BY created_at ASC`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "text"}).
			AddRow(2, 7, 2, "first").
			AddRow(3, 7, 2, "second"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "commenter"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_reactions" WHERE "post_reactions"."post_id" = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "kind"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "author"))

	post, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, post)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "first", post.Comments[0].Text)
	assert.Equal(t, "second", post.Comments[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(7, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "post_reactions" WHERE post_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"=`)).
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "deleted_at"=`)).
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
